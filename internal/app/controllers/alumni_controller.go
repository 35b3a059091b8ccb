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

// AlumniController handles alumni records and their verification workflow
type AlumniController struct {
	alumniService *services.AlumniService
	logger        zerolog.Logger
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService *services.AlumniService, logger zerolog.Logger) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
		logger:        logger,
	}
}

// Create files an alumni record for the caller
// @Summary File an alumni record
// @Description Files an alumni record; it stays unverified until an admin checks it against the student roll
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlumniRequest true "Alumni information"
// @Success 201 {object} dto.APIResponse{data=dto.AlumniResponse} "Filed record"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Record already filed"
// @Router /alumni [post]
func (c *AlumniController) Create(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	alumni, err := c.alumniService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Int64("alumniID", alumni.ID).Msg("Alumni record filed")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: alumni})
}

// GetMine returns the caller's own alumni record
// @Summary Own alumni record
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AlumniResponse} "Record"
// @Failure 404 {object} dto.ErrorResponse "No record filed"
// @Router /alumni/mine [get]
func (c *AlumniController) GetMine(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	alumni, err := c.alumniService.GetMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: alumni})
}

// Get returns a single alumni record
// @Summary Alumni record by ID
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniResponse} "Record"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /alumni/{id} [get]
func (c *AlumniController) Get(ctx *gin.Context) {
	alumniID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	alumni, err := c.alumniService.Get(ctx.Request.Context(), alumniID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: alumni})
}

// List returns the alumni directory
// @Summary Alumni directory
// @Description Lists verified alumni; admins also see unverified records
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniListResponse} "Alumni"
// @Router /alumni [get]
func (c *AlumniController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	alumni, err := c.alumniService.List(ctx.Request.Context(), middleware.IsAdmin(ctx), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: alumni})
}

// Verify approves an alumni record
// @Summary Verify an alumni record
// @Description Cross-checks the record's roll number and department against the student roll before approving
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniResponse} "Verified record"
// @Failure 409 {object} dto.ErrorResponse "Record mismatch or already verified"
// @Router /admin/alumni/{id}/verify [post]
func (c *AlumniController) Verify(ctx *gin.Context) {
	alumniID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	alumni, err := c.alumniService.Verify(ctx.Request.Context(), alumniID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("alumniID", alumniID).Msg("Alumni record verified")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: alumni})
}

// Reject removes an unverified alumni record
// @Summary Reject an alumni record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Rejected"
// @Failure 409 {object} dto.ErrorResponse "Record already verified"
// @Router /admin/alumni/{id}/reject [post]
func (c *AlumniController) Reject(ctx *gin.Context) {
	alumniID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.alumniService.Reject(ctx.Request.Context(), alumniID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "alumni record rejected"}})
}

// Block blocks an alumni record
// @Summary Block an alumni
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Blocked"
// @Router /admin/alumni/{id}/block [post]
func (c *AlumniController) Block(ctx *gin.Context) {
	c.setBlocked(ctx, true, "alumni blocked")
}

// Unblock unblocks an alumni record
// @Summary Unblock an alumni
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Unblocked"
// @Router /admin/alumni/{id}/unblock [post]
func (c *AlumniController) Unblock(ctx *gin.Context) {
	c.setBlocked(ctx, false, "alumni unblocked")
}

func (c *AlumniController) setBlocked(ctx *gin.Context, blocked bool, message string) {
	alumniID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.alumniService.SetBlocked(ctx.Request.Context(), alumniID, blocked); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: message}})
}
