package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/services"
	"github.com/alumeee/alumniconnect/internal/middleware"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
)

// FundController handles donation funds
type FundController struct {
	fundService *services.FundService
	logger      zerolog.Logger
}

// NewFundController creates a new FundController
func NewFundController(fundService *services.FundService, logger zerolog.Logger) *FundController {
	return &FundController{
		fundService: fundService,
		logger:      logger,
	}
}

// Create opens a new fund
// @Summary Open a fund
// @Description Creates a donation fund with a positive target amount
// @Tags funds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFundRequest true "Fund information"
// @Success 201 {object} dto.APIResponse{data=dto.FundResponse} "Created fund"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /admin/funds [post]
func (c *FundController) Create(ctx *gin.Context) {
	var req dto.CreateFundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fund, err := c.fundService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: fund})
}

// List returns all funds
// @Summary List funds
// @Description Lists funds with their collection progress
// @Tags funds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FundListResponse} "Funds"
// @Router /funds [get]
func (c *FundController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	funds, err := c.fundService.List(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: funds})
}

// Get returns a single fund
// @Summary Fund detail
// @Description Returns a fund with its collection progress
// @Tags funds
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fund ID"
// @Success 200 {object} dto.APIResponse{data=dto.FundResponse} "Fund"
// @Failure 404 {object} dto.ErrorResponse "Fund not found"
// @Router /funds/{id} [get]
func (c *FundController) Get(ctx *gin.Context) {
	fundID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fund, err := c.fundService.Get(ctx.Request.Context(), fundID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: fund})
}

// Donate records a donation against a fund
// @Summary Donate
// @Description Records a positive donation and bumps the fund total atomically
// @Tags funds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fund ID"
// @Param request body dto.DonateRequest true "Donation amount"
// @Success 201 {object} dto.APIResponse{data=dto.DonationResponse} "Recorded donation"
// @Failure 400 {object} dto.ErrorResponse "Amount not positive"
// @Failure 404 {object} dto.ErrorResponse "Fund not found"
// @Router /funds/{id}/donate [post]
func (c *FundController) Donate(ctx *gin.Context) {
	fundID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.DonateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	donation, err := c.fundService.Donate(ctx.Request.Context(), userID, fundID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("fundID", fundID).Int64("userID", userID).Int64("amount", req.Amount).Msg("Donation received")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: donation})
}

// ListDonations returns donations to a fund
// @Summary Fund donations
// @Description Lists donations to a fund, newest first
// @Tags funds
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fund ID"
// @Success 200 {object} dto.APIResponse{data=dto.DonationListResponse} "Donations"
// @Failure 404 {object} dto.ErrorResponse "Fund not found"
// @Router /admin/funds/{id}/donations [get]
func (c *FundController) ListDonations(ctx *gin.Context) {
	fundID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	donations, err := c.fundService.ListDonations(ctx.Request.Context(), fundID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: donations})
}

// ListMyDonations returns the caller's donations
// @Summary Own donations
// @Description Lists the caller's donations across all funds
// @Tags funds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DonationListResponse} "Donations"
// @Router /donations/mine [get]
func (c *FundController) ListMyDonations(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	page, size := helpers.ParsePaginationParams(ctx)

	donations, err := c.fundService.ListMyDonations(ctx.Request.Context(), userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: donations})
}
