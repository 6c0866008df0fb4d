package models

import "time"

// BudgetPeriod represents the period kind of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeek   BudgetPeriod = "week"
	BudgetPeriodMonth  BudgetPeriod = "month"
	BudgetPeriodCustom BudgetPeriod = "custom"
)

// Valid reports whether p is one of the known period kinds.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetPeriodWeek, BudgetPeriodMonth, BudgetPeriodCustom:
		return true
	}
	return false
}

// Budget represents a spending budget bounded by a calendar period.
// PeriodStartDate and PeriodEndDate are always normalized on write: week
// budgets span the 7-day week containing the seed date, month budgets the
// full calendar month, and custom budgets keep the caller-supplied range.
type Budget struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Name            string       `gorm:"not null" json:"name"`
	Amount          int64        `gorm:"type:bigint;not null" json:"amount"`
	Period          BudgetPeriod `gorm:"not null;index" json:"period"`
	PeriodStartDate Date         `gorm:"not null;index" json:"period_start_date"`
	PeriodEndDate   *Date        `json:"period_end_date"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// PeriodEnd returns the effective inclusive end of the budget's period,
// falling back to the start date when no end is stored.
func (b *Budget) PeriodEnd() Date {
	if b.PeriodEndDate != nil {
		return *b.PeriodEndDate
	}
	return b.PeriodStartDate
}

// Contains reports whether the given date falls inside the budget's period,
// boundaries included.
func (b *Budget) Contains(d Date) bool {
	return !d.Before(b.PeriodStartDate) && !d.After(b.PeriodEnd())
}
