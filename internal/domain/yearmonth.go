package domain

import (
	"fmt"
	"time"
)

// YearMonth identifies an invoice month
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth builds a YearMonth from a month/year pair, validating the month
func NewYearMonth(year int, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, Validationf("month must be in the range [1, 12], got %d", month)
	}
	if year < 1 {
		return YearMonth{}, Validationf("year must be positive, got %d", year)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// YearMonthOf returns the invoice month a timestamp falls in
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// AddMonths returns the month n months later (n may be negative)
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// DueDate returns the installment due instant of this month: the given
// day-of-month at 23:59
func (ym YearMonth) DueDate(day int, loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, day, 23, 59, 0, 0, loc)
}

// Contains reports whether t falls in this month
func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
