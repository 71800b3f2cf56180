package domain

type DatePeriod string

const (
	PeriodAll   DatePeriod = "all"
	PeriodToday DatePeriod = "today"
	PeriodWeek  DatePeriod = "week"
	PeriodMonth DatePeriod = "month"
)

func (p DatePeriod) Valid() bool {
	switch p {
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// ReportQuery narrows the transaction history. Month is 1-12; zero values of
// Year and Month mean "not chosen".
type ReportQuery struct {
	Search string     `json:"search"`
	Period DatePeriod `json:"period"`
	Year   int        `json:"year,omitempty"`
	Month  int        `json:"month,omitempty"`
	// TenantID restricts the report to one tenant when non-empty.
	TenantID string `json:"tenantId,omitempty"`
}

type Report struct {
	Transactions []Transaction `json:"transactions"`
	TotalRevenue int64         `json:"totalRevenue"`
	Count        int           `json:"count"`
	Average      float64       `json:"average"`
}
