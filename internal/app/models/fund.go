package models

import "time"

// Fund represents a fundraising goal. CollectedAmount only moves up, through
// donations applied as relative increments inside a transaction.
type Fund struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	TargetAmount    int64     `json:"targetAmount" db:"target_amount"`
	CollectedAmount int64     `json:"collectedAmount" db:"collected_amount"`
	ImageURL        *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// PercentOfGoal returns how far along the fund is, capped at 100.
func (f *Fund) PercentOfGoal() int {
	if f.TargetAmount <= 0 {
		return 0
	}
	pct := int(f.CollectedAmount * 100 / f.TargetAmount)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Donation represents a contribution against a fund.
type Donation struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	FundID    int64     `json:"fundId" db:"fund_id"`
	Amount    int64     `json:"amount" db:"amount"`
	DonatedAt time.Time `json:"donatedAt" db:"donated_at"`
	User      *User     `json:"user,omitempty"`
}
