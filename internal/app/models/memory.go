package models

import "time"

// Memory represents a gallery post. The owner is fixed at creation; only
// approved memories appear in the public gallery.
type Memory struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	PostedAt    time.Time `json:"postedAt" db:"posted_at"`
	IsApproved  bool      `json:"isApproved" db:"is_approved"`
	User        *User     `json:"user,omitempty"`
}
