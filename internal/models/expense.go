package models

import "time"

// Expense represents a single recorded transaction. Expenses are never
// physically removed: deletion sets IsDeleted and DeletedAt, and every
// aggregation excludes flagged rows.
//
// Invariant: IsDeleted is true if and only if DeletedAt is non-nil.
type Expense struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Date      Date       `gorm:"not null;index" json:"date"`
	Amount    int64      `gorm:"type:bigint;not null" json:"amount"`
	Note      string     `gorm:"not null" json:"note"`
	Category  string     `gorm:"not null" json:"category"`
	PaidBy    string     `gorm:"not null" json:"paid_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
