package dto

import "time"

// CreateFundRequest represents fund creation data
type CreateFundRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	TargetAmount int64  `json:"targetAmount" binding:"required,gt=0"`
}

// DonateRequest represents a donation against a fund
type DonateRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// FundResponse represents a fund with its progress
type FundResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	TargetAmount    int64     `json:"targetAmount"`
	CollectedAmount int64     `json:"collectedAmount"`
	PercentOfGoal   int       `json:"percentOfGoal"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FundListResponse is the fund listing
type FundListResponse struct {
	Funds []FundResponse `json:"funds"`
}

// DonationResponse represents a recorded donation
type DonationResponse struct {
	ID        int64     `json:"id"`
	FundID    int64     `json:"fundId"`
	UserID    int64     `json:"userId"`
	Amount    int64     `json:"amount"`
	DonatedAt time.Time `json:"donatedAt"`
}

// DonationListResponse lists donations against a fund
type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	PaginationInfo
}
