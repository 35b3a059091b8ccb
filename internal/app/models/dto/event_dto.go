package dto

import "time"

// CreateEventRequest represents event creation data. Dates use YYYY-MM-DD.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Location    string `json:"location"`
}

// EventResponse represents an event
type EventResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Location    string     `json:"location"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	CreatedBy   *int64     `json:"createdBy,omitempty"`
}

// EventListResponse is the event listing
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	PaginationInfo
}
