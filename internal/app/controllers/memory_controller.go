package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/services"
	"github.com/alumeee/alumniconnect/internal/middleware"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
)

// MemoryController handles the memory gallery
type MemoryController struct {
	memoryService *services.MemoryService
	logger        zerolog.Logger
}

// NewMemoryController creates a new MemoryController
func NewMemoryController(memoryService *services.MemoryService, logger zerolog.Logger) *MemoryController {
	return &MemoryController{
		memoryService: memoryService,
		logger:        logger,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Create submits a gallery post
// @Summary Post a memory
// @Description Submits a gallery post with an optional image; posts wait for admin approval
// @Tags memories
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param image formData file false "Image file"
// @Success 201 {object} dto.APIResponse{data=dto.MemoryResponse} "Created post"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /memories [post]
func (c *MemoryController) Create(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateMemoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Image is optional
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	memory, err := c.memoryService.Create(ctx.Request.Context(), userID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Int64("memoryID", memory.ID).Msg("Memory posted")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: memory})
}

// List returns the public gallery
// @Summary Gallery
// @Description Lists approved posts, newest first
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.MemoryListResponse} "Posts"
// @Router /memories [get]
func (c *MemoryController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	memories, err := c.memoryService.ListApproved(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: memories})
}

// ListMine returns the caller's own posts
// @Summary Own posts
// @Description Lists the caller's posts, approved or not
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MemoryListResponse} "Posts"
// @Router /memories/mine [get]
func (c *MemoryController) ListMine(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	page, size := helpers.ParsePaginationParams(ctx)

	memories, err := c.memoryService.ListMine(ctx.Request.Context(), userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: memories})
}

// Get returns a single post
// @Summary Post detail
// @Description Returns a post; unapproved posts are visible only to their owner and admins
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Success 200 {object} dto.APIResponse{data=dto.MemoryResponse} "Post"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /memories/{id} [get]
func (c *MemoryController) Get(ctx *gin.Context) {
	memoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	memory, err := c.memoryService.Get(ctx.Request.Context(), memoryID, userID, middleware.IsAdmin(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: memory})
}

// Delete removes a post
// @Summary Delete a post
// @Description Owners can delete their own posts; admins can delete any post
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /memories/{id} [delete]
func (c *MemoryController) Delete(ctx *gin.Context) {
	memoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	if err := c.memoryService.Delete(ctx.Request.Context(), memoryID, userID, middleware.IsAdmin(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "memory deleted"}})
}

// ListPending returns posts awaiting moderation
// @Summary Pending posts
// @Description Lists posts awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MemoryListResponse} "Pending posts"
// @Router /admin/memories/pending [get]
func (c *MemoryController) ListPending(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	memories, err := c.memoryService.ListPending(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: memories})
}

// Approve publishes a pending post
// @Summary Approve a post
// @Description Publishes a pending post to the gallery
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Approved"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /admin/memories/{id}/approve [post]
func (c *MemoryController) Approve(ctx *gin.Context) {
	memoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.memoryService.Approve(ctx.Request.Context(), memoryID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "memory approved"}})
}
