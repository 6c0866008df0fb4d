package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"centavo/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// MustDate parses a "YYYY-MM-DD" string, failing the test on error.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()

	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", s, err)
	}
	return d
}

// CreateTestExpense creates an expense on the given date with the given amount (in cents).
func CreateTestExpense(t *testing.T, db *gorm.DB, date models.Date, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:     date,
		Amount:   amount,
		Note:     fmt.Sprintf("Test Expense %d", nextID()),
		Category: "groceries",
		PaidBy:   "tester",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestExpenseFull creates an expense with explicit note and category.
func CreateTestExpenseFull(t *testing.T, db *gorm.DB, date models.Date, amount int64, note, category string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:     date,
		Amount:   amount,
		Note:     note,
		Category: category,
		PaidBy:   "tester",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// SoftDeleteExpense flags an expense as deleted directly in the database.
func SoftDeleteExpense(t *testing.T, db *gorm.DB, expenseID uint) {
	t.Helper()

	now := time.Now()
	err := db.Model(&models.Expense{}).Where("id = ?", expenseID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": &now}).Error
	if err != nil {
		t.Fatalf("failed to soft delete test expense: %v", err)
	}
}

// CreateTestBudget creates a budget with explicit, pre-normalized bounds.
func CreateTestBudget(t *testing.T, db *gorm.DB, name string, amount int64, kind models.BudgetPeriod, start models.Date, end *models.Date) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Name:            name,
		Amount:          amount,
		Period:          kind,
		PeriodStartDate: start,
		PeriodEndDate:   end,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestWeekBudget creates a week budget spanning the 7 days from start.
func CreateTestWeekBudget(t *testing.T, db *gorm.DB, name string, amount int64, start models.Date) *models.Budget {
	t.Helper()

	end := start.AddDays(6)
	return CreateTestBudget(t, db, name, amount, models.BudgetPeriodWeek, start, &end)
}

// AssignExpense links an expense to a budget directly in the database.
func AssignExpense(t *testing.T, db *gorm.DB, expenseID, budgetID uint) {
	t.Helper()

	link := &models.ExpenseBudget{
		ExpenseID:  expenseID,
		BudgetID:   budgetID,
		AssignedAt: time.Now(),
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to assign test expense: %v", err)
	}
}
