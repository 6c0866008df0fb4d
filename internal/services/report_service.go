package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/period"
	"centavo/internal/search"
)

// reportService computes the weekly budget report and the cross-period
// overview. It is read-only: every request recomputes from the store, and
// storage errors propagate without partial results.
type reportService struct {
	db           *gorm.DB
	weekStartDay time.Weekday
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, weekStartDay time.Weekday) ReportServicer {
	return &reportService{db: db, weekStartDay: weekStartDay}
}

// expenseRow is the joined shape of one expense with its optional assignment.
type expenseRow struct {
	ID         uint
	Date       models.Date
	Note       string
	Amount     int64
	Category   string
	BudgetID   *uint
	BudgetName *string
}

// GetBudgetReport builds the report for the week containing weekStart. A zero
// weekStart falls back to the current week.
//
// The transaction window is half-open: [weekStart, weekStart+7d). The search
// query only narrows the returned transaction list; spend totals always come
// from the full unfiltered window, so searching never changes budget math.
func (s *reportService) GetBudgetReport(weekStart models.Date, searchQuery string) (*BudgetReport, error) {
	ref := weekStart
	if ref.IsZero() {
		ref = models.Today()
	}
	start, end := period.WeekRange(ref, s.weekStartDay)
	endExclusive := start.AddDays(7)

	// Budgets whose period overlaps the window, ordered for stable display.
	var budgets []models.Budget
	err := s.db.
		Where("period_start_date <= ? AND (period_end_date IS NULL OR period_end_date >= ?)", end, start).
		Order("name, id").
		Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows, err := s.loadWindowRows(start, endExclusive)
	if err != nil {
		return nil, err
	}

	budgetIDSet := make(map[uint]struct{}, len(budgets))
	for _, b := range budgets {
		budgetIDSet[b.ID] = struct{}{}
	}

	// Walk the full unfiltered list once. An assignment pointing at a budget
	// outside the loaded set counts as unassigned spend: a budget that no
	// longer overlaps the window must not inflate totalSpentAssigned for a
	// period it does not cover.
	spentByBudget := make(map[uint]int64)
	var totalSpentAssigned, unassignedSpent int64
	for _, row := range rows {
		if row.BudgetID != nil {
			if _, ok := budgetIDSet[*row.BudgetID]; ok {
				spentByBudget[*row.BudgetID] += row.Amount
				totalSpentAssigned += row.Amount
				continue
			}
		}
		unassignedSpent += row.Amount
	}

	displayed := rows
	if matcher := search.NewMatcher(searchQuery); !matcher.Empty() {
		displayed = make([]expenseRow, 0, len(rows))
		for _, row := range rows {
			if matcher.Match(row.Note, row.Category) {
				displayed = append(displayed, row)
			}
		}
	}

	transactions := make([]ReportTransaction, 0, len(displayed))
	for _, row := range displayed {
		transactions = append(transactions, ReportTransaction{
			ID:         row.ID,
			Date:       row.Date,
			Note:       row.Note,
			Amount:     row.Amount,
			Category:   row.Category,
			BudgetID:   row.BudgetID,
			BudgetName: row.BudgetName,
		})
	}

	items := make([]BudgetListItem, 0, len(budgets))
	var totalBudget int64
	for _, b := range budgets {
		items = append(items, newBudgetListItem(&b, spentByBudget[b.ID]))
		totalBudget += b.Amount
	}

	return &BudgetReport{
		WeekStartDate: start,
		WeekEndDate:   end,
		Summary: BudgetSummary{
			TotalBudget:        totalBudget,
			TotalSpentAssigned: totalSpentAssigned,
			UnassignedSpent:    unassignedSpent,
			TotalRemaining:     totalBudget - totalSpentAssigned,
		},
		Budgets:      items,
		Transactions: transactions,
	}, nil
}

// loadWindowRows returns every non-deleted expense in [start, endExclusive),
// left-joined with its assignment and the assigned budget's name.
// Unassigned expenses sort first, then date descending, then id descending.
func (s *reportService) loadWindowRows(start, endExclusive models.Date) ([]expenseRow, error) {
	var rows []expenseRow
	err := s.db.Table("expenses").
		Select("expenses.id, expenses.date, expenses.note, expenses.amount, expenses.category, expense_budgets.budget_id AS budget_id, budgets.name AS budget_name").
		Joins("LEFT JOIN expense_budgets ON expense_budgets.expense_id = expenses.id").
		Joins("LEFT JOIN budgets ON budgets.id = expense_budgets.budget_id").
		Where("expenses.is_deleted = ?", false).
		Where("expenses.date >= ? AND expenses.date < ?", start, endExclusive).
		Order("(expense_budgets.budget_id IS NULL) DESC, expenses.date DESC, expenses.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// overviewRow carries one budget with its correlated spend aggregate.
type overviewRow struct {
	ID              uint
	Name            string
	Amount          int64
	Period          models.BudgetPeriod
	PeriodStartDate models.Date
	PeriodEndDate   *models.Date
	Spent           int64
}

// GetOverview aggregates every budget against the expenses assigned to it
// within that budget's own period bounds. Each budget sums independently, so
// overlapping weekly and monthly budgets never contaminate each other.
func (s *reportService) GetOverview() (*BudgetOverview, error) {
	var rows []overviewRow
	err := s.db.Table("budgets").
		Select("budgets.id, budgets.name, budgets.amount, budgets.period, budgets.period_start_date, budgets.period_end_date, COALESCE(SUM(expenses.amount), 0) AS spent").
		Joins("LEFT JOIN expense_budgets ON expense_budgets.budget_id = budgets.id").
		Joins("LEFT JOIN expenses ON expenses.id = expense_budgets.expense_id AND expenses.is_deleted = ? AND expenses.date >= budgets.period_start_date AND expenses.date <= COALESCE(budgets.period_end_date, budgets.period_start_date)", false).
		Group("budgets.id, budgets.name, budgets.amount, budgets.period, budgets.period_start_date, budgets.period_end_date").
		Order("budgets.name, budgets.id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	items := make([]BudgetListItem, 0, len(rows))
	var totalBudget, totalSpent int64
	for _, row := range rows {
		b := models.Budget{
			ID:              row.ID,
			Name:            row.Name,
			Amount:          row.Amount,
			Period:          row.Period,
			PeriodStartDate: row.PeriodStartDate,
			PeriodEndDate:   row.PeriodEndDate,
		}
		items = append(items, newBudgetListItem(&b, row.Spent))
		totalBudget += row.Amount
		totalSpent += row.Spent
	}

	return &BudgetOverview{
		Summary: OverviewSummary{
			TotalBudget:    totalBudget,
			TotalSpent:     totalSpent,
			TotalRemaining: totalBudget - totalSpent,
			BudgetCount:    len(items),
		},
		Budgets: items,
	}, nil
}

// newBudgetListItem derives the spend fields for one budget. A zero-amount
// budget is never flagged over and reports 0% used.
func newBudgetListItem(b *models.Budget, spent int64) BudgetListItem {
	var percentage float64
	if b.Amount > 0 {
		percentage = float64(spent) / float64(b.Amount) * 100
	}
	return BudgetListItem{
		ID:              b.ID,
		Name:            b.Name,
		Amount:          b.Amount,
		Spent:           spent,
		Remaining:       b.Amount - spent,
		Over:            b.Amount > 0 && spent > b.Amount,
		Percentage:      percentage,
		Period:          b.Period,
		PeriodStartDate: b.PeriodStartDate,
		PeriodEndDate:   b.PeriodEndDate,
	}
}
