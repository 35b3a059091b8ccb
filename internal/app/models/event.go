package models

import "time"

// Event represents a campus event announcement.
type Event struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"` // when present, never before StartDate
	Location    string     `json:"location" db:"location"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedBy   *int64     `json:"createdBy,omitempty" db:"created_by"`
}
