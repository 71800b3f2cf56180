package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"foodcourt-pos/pos-svc/internal/domain"
)

const (
	yearsBack    = 5
	yearsForward = 1
)

// BuildReport filters history with q and aggregates the result. Dates are
// compared as calendar days in now's location.
func BuildReport(history []domain.Transaction, q domain.ReportQuery, now time.Time) domain.Report {
	report := domain.Report{Transactions: []domain.Transaction{}}
	for _, tx := range history {
		if !matchesQuery(tx, q, now) {
			continue
		}
		report.Transactions = append(report.Transactions, tx)
		report.TotalRevenue += tx.Total
	}
	report.Count = len(report.Transactions)
	if report.Count > 0 {
		report.Average = float64(report.TotalRevenue) / float64(report.Count)
	}
	return report
}

func matchesQuery(tx domain.Transaction, q domain.ReportQuery, now time.Time) bool {
	if q.TenantID != "" && tx.TenantID != q.TenantID {
		return false
	}
	if q.Search != "" && !strings.Contains(strings.ToLower(tx.TenantName), strings.ToLower(q.Search)) {
		return false
	}
	return matchesPeriod(tx.Date, q, now)
}

func matchesPeriod(date string, q domain.ReportQuery, now time.Time) bool {
	period := q.Period
	if period == "" {
		period = domain.PeriodAll
	}
	if period == domain.PeriodAll && q.Year == 0 {
		return true
	}

	day, err := time.ParseInLocation(domain.DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	today := startOfDay(now)

	switch period {
	case domain.PeriodToday:
		return day.Equal(today)
	case domain.PeriodWeek:
		weekAgo := today.AddDate(0, 0, -7)
		return !day.Before(weekAgo) && !day.After(today)
	case domain.PeriodMonth:
		switch {
		case q.Month != 0 && q.Year != 0:
			return int(day.Month()) == q.Month && day.Year() == q.Year
		case q.Month != 0:
			return int(day.Month()) == q.Month
		case q.Year != 0:
			return day.Year() == q.Year
		default:
			return day.Month() == today.Month() && day.Year() == today.Year()
		}
	case domain.PeriodAll:
		if day.Year() != q.Year {
			return false
		}
		return q.Month == 0 || int(day.Month()) == q.Month
	}
	return false
}

// AvailableYears lists the years present in history plus a fixed window
// around the current year, newest first.
func AvailableYears(history []domain.Transaction, now time.Time) []int {
	seen := make(map[int]bool)
	for _, tx := range history {
		if day, err := time.Parse(domain.DateLayout, tx.Date); err == nil {
			seen[day.Year()] = true
		}
	}
	for y := now.Year() - yearsBack; y <= now.Year()+yearsForward; y++ {
		seen[y] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// ReportScope is the tenant a role is restricted to. Cashiers with a
// selected tenant only see that tenant; everyone else sees all tenants.
func ReportScope(role domain.Role, selectedTenantID string) string {
	if role == domain.RoleAdminKasir {
		return selectedTenantID
	}
	return ""
}

func ValidateReportQuery(q domain.ReportQuery) error {
	if q.Period != "" && !q.Period.Valid() {
		return fmt.Errorf("%w: unknown period %q", ErrInvalidReportQuery, q.Period)
	}
	if q.Month < 0 || q.Month > 12 {
		return fmt.Errorf("%w: month must be 1-12", ErrInvalidReportQuery)
	}
	if q.Year < 0 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidReportQuery)
	}
	return nil
}

type ReportService struct {
	ledger *Ledger
	Clock  func() time.Time
}

func NewReportService(ledger *Ledger) *ReportService {
	return &ReportService{ledger: ledger, Clock: time.Now}
}

func (s *ReportService) Report(q domain.ReportQuery) (domain.Report, error) {
	if err := ValidateReportQuery(q); err != nil {
		return domain.Report{}, err
	}
	return BuildReport(s.ledger.List(), q, s.Clock()), nil
}

func (s *ReportService) Years() []int {
	return AvailableYears(s.ledger.List(), s.Clock())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
