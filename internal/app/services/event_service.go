package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
)

const eventDateLayout = "2006-01-02"

// EventService handles campus events
type EventService struct {
	eventRepo repositories.IEventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.IEventRepository, logger zerolog.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func toEventResponse(event *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Location:    event.Location,
		ImageURL:    event.ImageURL,
		CreatedBy:   event.CreatedBy,
	}
}

// Create announces a new event. The end date, when given, must not come
// before the start date.
func (s *EventService) Create(ctx context.Context, creatorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}

	startDate, err := time.Parse(eventDateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be YYYY-MM-DD")
	}

	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		StartDate:   startDate,
		Location:    req.Location,
		CreatedBy:   &creatorID,
	}

	if req.EndDate != "" {
		endDate, err := time.Parse(eventDateLayout, req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("endDate must be YYYY-MM-DD")
		}
		if endDate.Before(startDate) {
			return nil, apperrors.ErrInvalidDateRange
		}
		event.EndDate = &endDate
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	s.logger.Info().Int64("eventID", id).Str("title", event.Title).Msg("Event announced")

	resp := toEventResponse(event)
	return &resp, nil
}

// Get returns a single event
func (s *EventService) Get(ctx context.Context, eventID int64) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// List returns a page of events, soonest first
func (s *EventService) List(ctx context.Context, upcomingOnly bool, page, size int) (*dto.EventListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	events, total, err := s.eventRepo.List(ctx, upcomingOnly, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		items = append(items, toEventResponse(event))
	}

	return &dto.EventListResponse{
		Events:         items,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// Delete removes an event
func (s *EventService) Delete(ctx context.Context, eventID int64) error {
	return s.eventRepo.Delete(ctx, eventID)
}
