package tests

import (
	"testing"

	"foodcourt-pos/pos-svc/internal/domain"
	"foodcourt-pos/pos-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportHistory() []domain.Transaction {
	return append(service.DemoTransactions(),
		domain.Transaction{ID: "3", TenantID: "2", TenantName: "Ayam Geprek Bu Sri", Total: 40000, Date: "2024-11-20", PaymentMethod: domain.PaymentCash},
		domain.Transaction{ID: "4", TenantID: "3", TenantName: "Mie Ayam Cak Man", Total: 18000, Date: "2023-12-01", PaymentMethod: domain.PaymentQRIS},
		domain.Transaction{ID: "5", TenantID: "3", TenantName: "Mie Ayam Cak Man", Total: 25000, Date: "2024-12-02", PaymentMethod: domain.PaymentCash},
	)
}

func TestBuildReport(t *testing.T) {
	tests := []struct {
		name      string
		query     domain.ReportQuery
		wantIDs   []string
		wantTotal int64
	}{
		{
			name:      "all periods",
			query:     domain.ReportQuery{Period: domain.PeriodAll},
			wantIDs:   []string{"1", "2", "3", "4", "5"},
			wantTotal: 208000,
		},
		{
			name:      "empty period means all",
			query:     domain.ReportQuery{},
			wantIDs:   []string{"1", "2", "3", "4", "5"},
			wantTotal: 208000,
		},
		{
			name:      "today",
			query:     domain.ReportQuery{Period: domain.PeriodToday},
			wantIDs:   []string{"1"},
			wantTotal: 75000,
		},
		{
			name:      "week includes the day seven days back",
			query:     domain.ReportQuery{Period: domain.PeriodWeek},
			wantIDs:   []string{"1", "2", "5"},
			wantTotal: 150000,
		},
		{
			name:      "current month",
			query:     domain.ReportQuery{Period: domain.PeriodMonth},
			wantIDs:   []string{"1", "2", "5"},
			wantTotal: 150000,
		},
		{
			name:      "month and year",
			query:     domain.ReportQuery{Period: domain.PeriodMonth, Month: 12, Year: 2023},
			wantIDs:   []string{"4"},
			wantTotal: 18000,
		},
		{
			name:      "month in any year",
			query:     domain.ReportQuery{Period: domain.PeriodMonth, Month: 12},
			wantIDs:   []string{"1", "2", "4", "5"},
			wantTotal: 168000,
		},
		{
			name:      "month period with only a year",
			query:     domain.ReportQuery{Period: domain.PeriodMonth, Year: 2024},
			wantIDs:   []string{"1", "2", "3", "5"},
			wantTotal: 190000,
		},
		{
			name:      "all with year",
			query:     domain.ReportQuery{Period: domain.PeriodAll, Year: 2023},
			wantIDs:   []string{"4"},
			wantTotal: 18000,
		},
		{
			name:      "all with year and month",
			query:     domain.ReportQuery{Period: domain.PeriodAll, Year: 2024, Month: 11},
			wantIDs:   []string{"3"},
			wantTotal: 40000,
		},
		{
			name:      "month ignored without year under all",
			query:     domain.ReportQuery{Period: domain.PeriodAll, Month: 11},
			wantIDs:   []string{"1", "2", "3", "4", "5"},
			wantTotal: 208000,
		},
		{
			name:      "search is case insensitive",
			query:     domain.ReportQuery{Search: "MIE ayam"},
			wantIDs:   []string{"4", "5"},
			wantTotal: 43000,
		},
		{
			name:      "tenant scope",
			query:     domain.ReportQuery{TenantID: "1", Period: domain.PeriodToday},
			wantIDs:   []string{"1"},
			wantTotal: 75000,
		},
		{
			name:      "no matches",
			query:     domain.ReportQuery{Search: "sate"},
			wantIDs:   []string{},
			wantTotal: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			report := service.BuildReport(reportHistory(), testCase.query, fixedNow)

			ids := make([]string, 0, len(report.Transactions))
			for _, tx := range report.Transactions {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, testCase.wantIDs, ids)
			assert.Equal(t, testCase.wantTotal, report.TotalRevenue)
			assert.Equal(t, len(testCase.wantIDs), report.Count)
		})
	}
}

func TestBuildReport_TodayScenario(t *testing.T) {
	report := service.BuildReport(service.DemoTransactions(), domain.ReportQuery{Period: domain.PeriodToday}, fixedNow)

	assert.Equal(t, int64(75000), report.TotalRevenue)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, 75000.0, report.Average)
}

func TestBuildReport_EmptyHasZeroAverage(t *testing.T) {
	report := service.BuildReport(nil, domain.ReportQuery{Period: domain.PeriodAll}, fixedNow)

	assert.NotNil(t, report.Transactions)
	assert.Zero(t, report.Count)
	assert.Zero(t, report.Average)
}

func TestBuildReport_UnparseableDates(t *testing.T) {
	history := []domain.Transaction{{ID: "x", TenantName: "Bakso", Total: 1000, Date: "09/12/2024"}}

	all := service.BuildReport(history, domain.ReportQuery{Period: domain.PeriodAll}, fixedNow)
	assert.Equal(t, 1, all.Count)

	today := service.BuildReport(history, domain.ReportQuery{Period: domain.PeriodToday}, fixedNow)
	assert.Zero(t, today.Count)
}

func TestAvailableYears(t *testing.T) {
	history := append(reportHistory(), domain.Transaction{ID: "old", Date: "2010-01-01"})

	years := service.AvailableYears(history, fixedNow)

	assert.Equal(t, []int{2025, 2024, 2023, 2022, 2021, 2020, 2019, 2010}, years)
}

func TestReportScope(t *testing.T) {
	assert.Equal(t, "1", service.ReportScope(domain.RoleAdminKasir, "1"))
	assert.Equal(t, "", service.ReportScope(domain.RoleAdminKasir, ""))
	assert.Equal(t, "", service.ReportScope(domain.RoleSuperAdmin, "1"))
}

func TestReportService_ValidatesQuery(t *testing.T) {
	_, ledger := seededCatalog(t, newRedisStore(t))
	reports := service.NewReportService(ledger)
	reports.Clock = fixedClock

	tests := []struct {
		name    string
		query   domain.ReportQuery
		wantErr bool
	}{
		{name: "valid", query: domain.ReportQuery{Period: domain.PeriodWeek}},
		{name: "unknown period", query: domain.ReportQuery{Period: "yearly"}, wantErr: true},
		{name: "month out of range", query: domain.ReportQuery{Period: domain.PeriodMonth, Month: 13}, wantErr: true},
		{name: "negative year", query: domain.ReportQuery{Period: domain.PeriodAll, Year: -1}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			report, err := reports.Report(testCase.query)
			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidReportQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, report.Count)
			assert.Equal(t, 62500.0, report.Average)
		})
	}

	assert.Equal(t, 2025, reports.Years()[0])
}
