package service

import (
	"context"
	"log"
	"sort"
	"time"

	"foodcourt-pos/pos-svc/internal/domain"
)

const topTenantsLimit = 5

type DashboardService struct {
	catalog *CatalogStore
	ledger  *Ledger
	stats   SalesStats
	Clock   func() time.Time
}

// NewDashboardService accepts nil stats; today's ranking is then computed
// from the ledger.
func NewDashboardService(catalog *CatalogStore, ledger *Ledger, stats SalesStats) *DashboardService {
	return &DashboardService{catalog: catalog, ledger: ledger, stats: stats, Clock: time.Now}
}

func (s *DashboardService) Dashboard(ctx context.Context) domain.Dashboard {
	tenants := s.catalog.Tenants()
	var d domain.Dashboard
	for _, t := range tenants {
		d.TotalSales += t.TotalSales
	}
	d.TenantCount = len(tenants)
	d.TotalTransactions = len(s.ledger.List())
	d.TopTenantsToday = s.TopTenantsToday(ctx)
	return d
}

func (s *DashboardService) TopTenantsToday(ctx context.Context) []domain.TenantSales {
	today := s.Clock().Format(domain.DateLayout)

	if s.stats != nil {
		top, err := s.stats.TopTenants(ctx, today, topTenantsLimit)
		if err != nil {
			log.Printf("Error reading sales stats, falling back to ledger: %v", err)
		} else if len(top) > 0 {
			for i := range top {
				if t, ok := s.catalog.Tenant(top[i].TenantID); ok {
					top[i].TenantName = t.Name
				}
			}
			return top
		}
	}
	return s.topTenantsFromLedger(today)
}

func (s *DashboardService) topTenantsFromLedger(date string) []domain.TenantSales {
	byTenant := make(map[string]*domain.TenantSales)
	for _, tx := range s.ledger.List() {
		if tx.Date != date {
			continue
		}
		entry, ok := byTenant[tx.TenantID]
		if !ok {
			entry = &domain.TenantSales{TenantID: tx.TenantID, TenantName: tx.TenantName}
			byTenant[tx.TenantID] = entry
		}
		entry.Revenue += tx.Total
		entry.Transactions++
	}

	top := make([]domain.TenantSales, 0, len(byTenant))
	for _, entry := range byTenant {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Revenue != top[j].Revenue {
			return top[i].Revenue > top[j].Revenue
		}
		return top[i].TenantID < top[j].TenantID
	})
	if len(top) > topTenantsLimit {
		top = top[:topTenantsLimit]
	}
	return top
}
