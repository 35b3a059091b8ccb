package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/services"
	"github.com/alumeee/alumniconnect/internal/middleware"
)

// ProfileController handles profile reads and edits
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// GetMe returns the caller's own profile
// @Summary Own profile
// @Description Returns the caller's full profile including private fields
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profile/me [get]
func (c *ProfileController) GetMe(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	profile, err := c.profileService.GetOwnProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// GetPublic returns another user's public profile
// @Summary Public profile
// @Description Returns a user's profile with contact details removed
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.PublicProfileResponse} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profile/{id} [get]
func (c *ProfileController) GetPublic(ctx *gin.Context) {
	targetID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.profileService.GetPublicProfile(ctx.Request.Context(), targetID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateMe edits the caller's own profile
// @Summary Update own profile
// @Description Edits the caller's profile; only the owner can edit a profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /profile/me [put]
func (c *ProfileController) UpdateMe(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	profile, err := c.profileService.UpdateOwnProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Msg("Profile updated")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UploadPhoto attaches a profile photo
// @Summary Upload profile photo
// @Description Stores a photo and attaches it to the caller's profile
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo file"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoResponse} "Stored photo URL"
// @Failure 400 {object} dto.ErrorResponse "Unsupported image type"
// @Router /profile/me/photo [post]
func (c *ProfileController) UploadPhoto(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	file, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	photo, err := c.profileService.UploadPhoto(ctx.Request.Context(), userID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: photo})
}

// DeleteStudent removes a student account
// @Summary Delete student
// @Description Removes a student account and everything it owns
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [delete]
func (c *ProfileController) DeleteStudent(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.profileService.DeleteStudent(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "student deleted"}})
}

// ListStudents returns the filtered student directory
// @Summary Student directory
// @Description Lists students filtered by department and year of passing
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param departmentId query int false "Department filter"
// @Param yearOfPassing query int false "Year of passing filter"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students"
// @Router /students [get]
func (c *ProfileController) ListStudents(ctx *gin.Context) {
	var filter dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	students, err := c.profileService.ListStudents(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students})
}
