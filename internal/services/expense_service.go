package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
)

// expenseService handles expense entry and soft deletion. Deleted expenses
// keep their row and their assignment link; aggregation excludes them by flag.
type expenseService struct {
	db            *gorm.DB
	defaultPaidBy string
}

// NewExpenseService creates a new ExpenseServicer. defaultPaidBy fills in the
// payer when an entry omits it; it may be empty, in which case the payer is
// required on every entry.
func NewExpenseService(db *gorm.DB, defaultPaidBy string) ExpenseServicer {
	return &expenseService{db: db, defaultPaidBy: defaultPaidBy}
}

func (s *expenseService) validate(input *ExpenseInput) error {
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidDate, "Invalid expense date")
	}
	if input.Amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must not be negative")
	}
	input.Note = strings.TrimSpace(input.Note)
	input.PaidBy = strings.TrimSpace(input.PaidBy)
	if input.PaidBy == "" {
		input.PaidBy = s.defaultPaidBy
	}
	if input.PaidBy == "" {
		return apperrors.ErrPaidByRequired
	}
	return nil
}

// CreateExpense validates and persists a new expense entry.
func (s *expenseService) CreateExpense(input ExpenseInput) (*models.Expense, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Date:     input.Date,
		Amount:   input.Amount,
		Note:     input.Note,
		Category: input.Category,
		PaidBy:   input.PaidBy,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// UpdateExpense replaces all user-entered fields of an expense. Moving the
// date may leave the expense outside its assigned budget's period; the
// assignment is left in place and report aggregation handles the mismatch.
func (s *expenseService) UpdateExpense(id uint, input ExpenseInput) (*models.Expense, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	var expense models.Expense
	if err := s.db.First(&expense, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"date":     input.Date,
		"amount":   input.Amount,
		"note":     input.Note,
		"category": input.Category,
		"paid_by":  input.PaidBy,
	}
	if err := s.db.Model(&expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// SoftDeleteExpense flags an expense as deleted and records the deletion
// time, keeping is_deleted and deleted_at consistent.
func (s *expenseService) SoftDeleteExpense(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_deleted": true,
		"deleted_at": &now,
	}
	if err := s.db.Model(&expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// GetExpenses returns a paginated list of non-deleted expenses, newest first.
func (s *expenseService) GetExpenses(page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("is_deleted = ?", false)
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}
