package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/services"
	"github.com/alumeee/alumniconnect/internal/middleware"
)

// DepartmentController handles department lookups and administration
type DepartmentController struct {
	departmentService *services.DepartmentService
	logger            zerolog.Logger
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService, logger zerolog.Logger) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		logger:            logger,
	}
}

// List returns all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Departments"
// @Router /departments [get]
func (c *DepartmentController) List(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: departments})
}

// Create adds a department
// @Summary Create a department
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=dto.DepartmentResponse} "Created department"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /admin/departments [post]
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	department, err := c.departmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("name", department.Name).Msg("Department created")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: department})
}
