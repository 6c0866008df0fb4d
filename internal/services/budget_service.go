package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/period"
)

// budgetService handles budget CRUD. Period bounds are normalized on every
// write so that stored budgets always carry canonical start/end dates.
type budgetService struct {
	db           *gorm.DB
	weekStartDay time.Weekday
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, weekStartDay time.Weekday) BudgetServicer {
	return &budgetService{db: db, weekStartDay: weekStartDay}
}

// CreateBudget validates the input, normalizes the period bounds, and
// persists a new budget.
func (s *budgetService) CreateBudget(input BudgetCreateInput) (*models.Budget, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.ErrEmptyBudgetName
	}
	if input.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if !input.Period.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}

	start, end, err := period.Normalize(input.Period, input.PeriodStartDate, input.PeriodEndDate, s.weekStartDay)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		Name:            name,
		Amount:          input.Amount,
		Period:          input.Period,
		PeriodStartDate: start,
		PeriodEndDate:   &end,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetBudgetByID returns a budget by ID.
func (s *budgetService) GetBudgetByID(id uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.First(&budget, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget applies a partial patch. Name and amount changes are narrow
// field updates; touching period, start, or end reloads the existing record,
// merges the patch over it, and re-normalizes the stored bounds. An empty
// patch is a no-op and returns (nil, nil).
func (s *budgetService) UpdateBudget(id uint, input BudgetUpdateInput) (*models.Budget, error) {
	updates := make(map[string]interface{})

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.ErrEmptyBudgetName
		}
		updates["name"] = name
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["amount"] = *input.Amount
	}

	if input.Period != nil || input.PeriodStartDate != nil || input.PeriodEndDate != nil {
		existing, err := s.GetBudgetByID(id)
		if err != nil {
			return nil, err
		}

		resolvedPeriod := existing.Period
		if input.Period != nil {
			resolvedPeriod = *input.Period
		}
		if !resolvedPeriod.Valid() {
			return nil, apperrors.ErrInvalidPeriod
		}

		resolvedStart := existing.PeriodStartDate
		if input.PeriodStartDate != nil {
			resolvedStart = *input.PeriodStartDate
		}
		resolvedEnd := existing.PeriodEndDate
		if input.PeriodEndDate != nil {
			resolvedEnd = input.PeriodEndDate
		}

		start, end, err := period.Normalize(resolvedPeriod, resolvedStart, resolvedEnd, s.weekStartDay)
		if err != nil {
			return nil, err
		}

		updates["period"] = resolvedPeriod
		updates["period_start_date"] = start
		updates["period_end_date"] = end
	}

	if len(updates) == 0 {
		return nil, nil
	}

	res := s.db.Model(&models.Budget{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrBudgetNotFound
	}

	return s.GetBudgetByID(id)
}

// DeleteBudget removes a budget and, in the same transaction, every
// assignment row referencing it. Expenses themselves are untouched; they
// simply become unassigned.
func (s *budgetService) DeleteBudget(id uint) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", id).Delete(&models.ExpenseBudget{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Budget{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}
