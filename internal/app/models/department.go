package models

// Department represents an academic department referenced by profiles and
// alumni records. Name uniqueness is deliberately not enforced.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
