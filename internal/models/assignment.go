package models

import "time"

// ExpenseBudget links one expense to at most one budget. The expense ID is
// the primary key, so assigning an expense to a new budget replaces any
// existing link. Rows are removed when the link is cleared or when the
// referenced budget is deleted.
type ExpenseBudget struct {
	ExpenseID  uint      `gorm:"primaryKey" json:"expense_id"`
	BudgetID   uint      `gorm:"not null;index" json:"budget_id"`
	AssignedAt time.Time `gorm:"not null" json:"assigned_at"`
}

// TableName overrides GORM's pluralization for the join table.
func (ExpenseBudget) TableName() string {
	return "expense_budgets"
}
