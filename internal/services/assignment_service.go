package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
)

// assignmentService maintains the at-most-one link between an expense and a
// budget. All writes go through a single upsert or delete keyed on the
// expense ID, so concurrent assignments resolve last-writer-wins.
type assignmentService struct {
	db *gorm.DB
}

// NewAssignmentService creates a new AssignmentServicer.
func NewAssignmentService(db *gorm.DB) AssignmentServicer {
	return &assignmentService{db: db}
}

// SetExpenseBudget assigns, reassigns, or clears the budget link for one
// expense. The expense's date must fall inside the target budget's period,
// boundaries included. Clearing is idempotent: unassigning an expense with no
// link succeeds.
func (s *assignmentService) SetExpenseBudget(expenseID uint, budgetID *uint, weekStart *models.Date) (*AssignmentResult, error) {
	var expense models.Expense
	if err := s.db.First(&expense, "id = ?", expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expense.IsDeleted {
		return nil, apperrors.ErrExpenseNotFound
	}

	if budgetID == nil {
		if err := s.db.Where("expense_id = ?", expenseID).Delete(&models.ExpenseBudget{}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &AssignmentResult{ExpenseID: expenseID, BudgetID: nil}, nil
	}

	var budget models.Budget
	if err := s.db.First(&budget, "id = ?", *budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if weekStart != nil {
		if budget.Period != models.BudgetPeriodWeek || !budget.PeriodStartDate.Equal(*weekStart) {
			return nil, apperrors.ErrWeekMismatch
		}
	}

	if !budget.Contains(expense.Date) {
		return nil, apperrors.ErrOutsidePeriod
	}

	link := models.ExpenseBudget{
		ExpenseID:  expenseID,
		BudgetID:   *budgetID,
		AssignedAt: time.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "expense_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"budget_id", "assigned_at"}),
	}).Create(&link).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &AssignmentResult{ExpenseID: expenseID, BudgetID: budgetID}, nil
}
