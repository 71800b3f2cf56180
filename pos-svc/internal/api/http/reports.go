package httpapi

import (
	"net/http"
	"strconv"

	"foodcourt-pos/pos-svc/internal/domain"
	"foodcourt-pos/pos-svc/internal/service"
)

// getReport reads search, period, year and month from the query string.
// Cashiers only ever see their selected tenant.
func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := domain.ReportQuery{
		Search: query.Get("search"),
		Period: domain.DatePeriod(query.Get("period")),
	}
	if q.Period == "" {
		q.Period = domain.PeriodAll
	}

	var err error
	if q.Year, err = optionalInt(query.Get("year")); err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}
	if q.Month, err = optionalInt(query.Get("month")); err != nil {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}

	claims := claimsFrom(r.Context())
	q.TenantID = service.ReportScope(claims.Role, h.session(r).TenantID())
	if claims.Role == domain.RoleSuperAdmin {
		q.TenantID = query.Get("tenant_id")
	}

	report, err := h.svc.Reports.Report(q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getReportYears(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Reports.Years())
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard.Dashboard(r.Context()))
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
