package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/filestorage"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
)

// MemoryService handles the memory gallery
type MemoryService struct {
	memoryRepo repositories.IMemoryRepository
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(memoryRepo repositories.IMemoryRepository, storage filestorage.FileStorage, logger zerolog.Logger) *MemoryService {
	return &MemoryService{
		memoryRepo: memoryRepo,
		storage:    storage,
		logger:     logger,
	}
}

func toMemoryResponse(memory *models.Memory) dto.MemoryResponse {
	resp := dto.MemoryResponse{
		ID:          memory.ID,
		Title:       memory.Title,
		Description: memory.Description,
		ImageURL:    memory.ImageURL,
		PostedAt:    memory.PostedAt,
		IsApproved:  memory.IsApproved,
		OwnerID:     memory.UserID,
	}
	if memory.User != nil {
		resp.OwnerName = strings.TrimSpace(memory.User.FirstName + " " + memory.User.LastName)
	}
	return resp
}

// Create submits a new gallery post. Posts start unapproved and stay out
// of the public gallery until an admin approves them.
func (s *MemoryService) Create(ctx context.Context, userID int64, req *dto.CreateMemoryRequest, image *multipart.FileHeader) (*dto.MemoryResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}

	memory := &models.Memory{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	}

	if image != nil {
		ext := strings.ToLower(filepath.Ext(image.Filename))
		if !allowedPhotoExtensions[ext] {
			return nil, apperrors.NewValidationError("unsupported image type")
		}
		imageURL, err := s.storage.SaveFile(image)
		if err != nil {
			return nil, err
		}
		memory.ImageURL = &imageURL
	}

	id, err := s.memoryRepo.Create(ctx, memory)
	if err != nil {
		if memory.ImageURL != nil {
			if delErr := s.storage.DeleteFile(*memory.ImageURL); delErr != nil {
				s.logger.Warn().Err(delErr).Msg("Could not remove orphaned memory image")
			}
		}
		return nil, err
	}

	created, err := s.memoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toMemoryResponse(created)
	return &resp, nil
}

// Get returns a single memory. The detail view belongs to the owner and to
// admins regardless of approval state; everyone else reads posts through
// the approved gallery listing.
func (s *MemoryService) Get(ctx context.Context, memoryID, callerID int64, callerIsAdmin bool) (*dto.MemoryResponse, error) {
	memory, err := s.memoryRepo.GetByID(ctx, memoryID)
	if err != nil {
		return nil, err
	}

	if memory.UserID != callerID && !callerIsAdmin {
		return nil, apperrors.ErrNotOwner
	}

	resp := toMemoryResponse(memory)
	return &resp, nil
}

func toMemoryList(memories []*models.Memory, total int64, page, size int) *dto.MemoryListResponse {
	items := make([]dto.MemoryResponse, 0, len(memories))
	for _, memory := range memories {
		items = append(items, toMemoryResponse(memory))
	}
	return &dto.MemoryListResponse{
		Memories:       items,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}
}

// ListApproved returns the public gallery, newest first
func (s *MemoryService) ListApproved(ctx context.Context, page, size int) (*dto.MemoryListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	memories, total, err := s.memoryRepo.ListApproved(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return toMemoryList(memories, total, page, size), nil
}

// ListMine returns the caller's own posts, approved or not
func (s *MemoryService) ListMine(ctx context.Context, userID int64, page, size int) (*dto.MemoryListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	memories, total, err := s.memoryRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return toMemoryList(memories, total, page, size), nil
}

// ListPending returns posts awaiting moderation
func (s *MemoryService) ListPending(ctx context.Context, page, size int) (*dto.MemoryListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	memories, total, err := s.memoryRepo.ListPending(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return toMemoryList(memories, total, page, size), nil
}

// Approve publishes a pending post to the gallery
func (s *MemoryService) Approve(ctx context.Context, memoryID int64) error {
	if err := s.memoryRepo.Approve(ctx, memoryID); err != nil {
		return err
	}
	s.logger.Info().Int64("memoryID", memoryID).Msg("Memory approved")
	return nil
}

// Delete removes a post. Owners can delete their own posts; admins can
// delete any post.
func (s *MemoryService) Delete(ctx context.Context, memoryID, callerID int64, callerIsAdmin bool) error {
	memory, err := s.memoryRepo.GetByID(ctx, memoryID)
	if err != nil {
		return err
	}

	if memory.UserID != callerID && !callerIsAdmin {
		return apperrors.ErrNotOwner
	}

	if err := s.memoryRepo.Delete(ctx, memoryID); err != nil {
		return err
	}

	if memory.ImageURL != nil {
		if err := s.storage.DeleteFile(*memory.ImageURL); err != nil {
			s.logger.Warn().Err(err).Int64("memoryID", memoryID).Msg("Could not remove memory image from storage")
		}
	}

	return nil
}
