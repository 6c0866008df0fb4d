package services

import (
	"centavo/internal/models"
	"centavo/internal/pagination"
)

// BudgetCreateInput holds the fields for creating a budget. Dates arrive
// already parsed; period normalization happens inside the service.
type BudgetCreateInput struct {
	Name            string
	Amount          int64
	Period          models.BudgetPeriod
	PeriodStartDate models.Date
	PeriodEndDate   *models.Date
}

// BudgetUpdateInput is a partial patch for an existing budget. Nil fields are
// left untouched. Touching any period field re-normalizes the stored bounds,
// merging the patch over the existing record.
type BudgetUpdateInput struct {
	Name            *string
	Amount          *int64
	Period          *models.BudgetPeriod
	PeriodStartDate *models.Date
	PeriodEndDate   *models.Date
}

// BudgetServicer defines the contract for budget CRUD.
type BudgetServicer interface {
	CreateBudget(input BudgetCreateInput) (*models.Budget, error)
	GetBudgetByID(id uint) (*models.Budget, error)
	UpdateBudget(id uint, input BudgetUpdateInput) (*models.Budget, error)
	DeleteBudget(id uint) (*models.Budget, error)
}

// AssignmentResult reports the outcome of an assignment change.
type AssignmentResult struct {
	ExpenseID uint  `json:"expense_id"`
	BudgetID  *uint `json:"budget_id"`
}

// AssignmentServicer defines the contract for linking expenses to budgets.
// A nil budgetID clears any existing link. A non-nil weekStart requires the
// target budget to be a week budget starting exactly on that date, guarding
// against cross-week misassignment from stale UI state.
type AssignmentServicer interface {
	SetExpenseBudget(expenseID uint, budgetID *uint, weekStart *models.Date) (*AssignmentResult, error)
}

// BudgetSummary aggregates spending for one report window.
type BudgetSummary struct {
	TotalBudget        int64 `json:"total_budget"`
	TotalSpentAssigned int64 `json:"total_spent_assigned"`
	UnassignedSpent    int64 `json:"unassigned_spent"`
	TotalRemaining     int64 `json:"total_remaining"`
}

// BudgetListItem is one budget row in a report, with derived spend totals.
// Percentage is 0 when Amount is 0, never a division by zero.
type BudgetListItem struct {
	ID              uint                `json:"id"`
	Name            string              `json:"name"`
	Amount          int64               `json:"amount"`
	Spent           int64               `json:"spent"`
	Remaining       int64               `json:"remaining"`
	Over            bool                `json:"over"`
	Percentage      float64             `json:"percentage"`
	Period          models.BudgetPeriod `json:"period"`
	PeriodStartDate models.Date         `json:"period_start_date"`
	PeriodEndDate   *models.Date        `json:"period_end_date"`
}

// ReportTransaction is one expense row in a report's transaction list.
type ReportTransaction struct {
	ID         uint        `json:"id"`
	Date       models.Date `json:"date"`
	Note       string      `json:"note"`
	Amount     int64       `json:"amount"`
	Category   string      `json:"category"`
	BudgetID   *uint       `json:"budget_id"`
	BudgetName *string     `json:"budget_name"`
}

// BudgetReport is the full weekly report payload.
type BudgetReport struct {
	WeekStartDate models.Date         `json:"week_start_date"`
	WeekEndDate   models.Date         `json:"week_end_date"`
	Summary       BudgetSummary       `json:"summary"`
	Budgets       []BudgetListItem    `json:"budgets"`
	Transactions  []ReportTransaction `json:"transactions"`
}

// OverviewSummary aggregates all budgets regardless of window.
type OverviewSummary struct {
	TotalBudget    int64 `json:"total_budget"`
	TotalSpent     int64 `json:"total_spent"`
	TotalRemaining int64 `json:"total_remaining"`
	BudgetCount    int   `json:"budget_count"`
}

// BudgetOverview is the cross-period overview payload.
type BudgetOverview struct {
	Summary OverviewSummary  `json:"summary"`
	Budgets []BudgetListItem `json:"budgets"`
}

// ReportServicer defines the contract for the read-only report aggregations.
type ReportServicer interface {
	GetBudgetReport(weekStart models.Date, searchQuery string) (*BudgetReport, error)
	GetOverview() (*BudgetOverview, error)
}

// ExpenseInput holds the fields for creating or fully updating an expense.
type ExpenseInput struct {
	Date     models.Date
	Amount   int64
	Note     string
	Category string
	PaidBy   string
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate *models.Date
	ToDate   *models.Date
}

// ExpenseServicer defines the contract for expense entry and soft deletion.
type ExpenseServicer interface {
	CreateExpense(input ExpenseInput) (*models.Expense, error)
	UpdateExpense(id uint, input ExpenseInput) (*models.Expense, error)
	SoftDeleteExpense(id uint) (*models.Expense, error)
	GetExpenses(page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
}
