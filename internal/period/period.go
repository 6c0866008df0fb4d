// Package period resolves budget period kinds into concrete calendar-day
// bounds. All functions are pure and operate at day granularity.
package period

import (
	"time"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
)

// WeekRange returns the inclusive 7-day span containing ref, with the start
// aligned to weekStartDay. The result always satisfies start <= ref <= end
// and start.Weekday() == weekStartDay.
func WeekRange(ref models.Date, weekStartDay time.Weekday) (models.Date, models.Date) {
	offset := (int(ref.Weekday()) - int(weekStartDay) + 7) % 7
	start := ref.AddDays(-offset)
	return start, start.AddDays(6)
}

// MonthRange returns the first and last calendar day of ref's month.
func MonthRange(ref models.Date) (models.Date, models.Date) {
	start := models.NewDate(ref.Year(), ref.Month(), 1)
	return start, start.AddMonths(1).AddDays(-1)
}

// Normalize resolves a budget's stored period bounds from its kind and a seed
// start date, using the configured week start day.
//
// Week and month kinds ignore any supplied end date and derive canonical
// bounds from the seed. Custom requires an end date on or after the start.
func Normalize(kind models.BudgetPeriod, start models.Date, end *models.Date, weekStartDay time.Weekday) (models.Date, models.Date, error) {
	if start.IsZero() {
		return models.Date{}, models.Date{}, apperrors.WithMessage(apperrors.ErrInvalidDate, "Invalid budget start date")
	}

	switch kind {
	case models.BudgetPeriodWeek:
		s, e := WeekRange(start, weekStartDay)
		return s, e, nil
	case models.BudgetPeriodMonth:
		s, e := MonthRange(start)
		return s, e, nil
	case models.BudgetPeriodCustom:
		if end == nil || end.IsZero() {
			return models.Date{}, models.Date{}, apperrors.WithMessage(apperrors.ErrInvalidDate, "Invalid budget end date")
		}
		if end.Before(start) {
			return models.Date{}, models.Date{}, apperrors.ErrInvalidPeriodRange
		}
		return start, *end, nil
	default:
		return models.Date{}, models.Date{}, apperrors.ErrInvalidPeriod
	}
}
