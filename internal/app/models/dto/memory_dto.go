package dto

import "time"

// CreateMemoryRequest represents a gallery post submission (multipart form;
// the image arrives as a file part).
type CreateMemoryRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
}

// MemoryResponse represents a gallery post
type MemoryResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	PostedAt    time.Time `json:"postedAt"`
	IsApproved  bool      `json:"isApproved"`
	OwnerID     int64     `json:"ownerId"`
	OwnerName   string    `json:"ownerName,omitempty"`
}

// MemoryListResponse is the paginated gallery listing
type MemoryListResponse struct {
	Memories []MemoryResponse `json:"memories"`
	PaginationInfo
}
