package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"foodcourt-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
)

// CatalogStore owns tenants and menu items. Every mutation saves the whole
// affected collection and only then replaces the in-memory copy.
type CatalogStore struct {
	mu      sync.RWMutex
	store   SnapshotStore
	tenants []domain.Tenant
	menu    []domain.MenuItem
	seeded  bool

	NewID func() string
}

func NewCatalogStore(store SnapshotStore) *CatalogStore {
	return &CatalogStore{store: store, NewID: uuid.NewString}
}

// Load reads both collections. The demo data is installed only on a fresh
// install, when seed is set and neither collection exists yet.
func (c *CatalogStore) Load(ctx context.Context, seed bool) error {
	tenants, tenantsFound, err := loadCollection[domain.Tenant](ctx, c.store, KeyTenants)
	if err != nil {
		return err
	}
	menu, menuFound, err := loadCollection[domain.MenuItem](ctx, c.store, KeyMenu)
	if err != nil {
		return err
	}

	seeded := seed && !tenantsFound && !menuFound
	if seeded {
		tenants = DemoTenants()
		menu = DemoMenuItems()
	}

	c.mu.Lock()
	c.tenants = tenants
	c.menu = menu
	c.seeded = seeded
	c.mu.Unlock()
	return nil
}

// Seeded reports whether the last Load installed the demo catalog. The
// ledger only seeds its demo history when this is true.
func (c *CatalogStore) Seeded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seeded
}

func (c *CatalogStore) Tenants() []domain.Tenant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneOrEmpty(c.tenants)
}

func (c *CatalogStore) Tenant(id string) (domain.Tenant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx := c.tenantIndex(id); idx >= 0 {
		return c.tenants[idx], true
	}
	return domain.Tenant{}, false
}

func (c *CatalogStore) AddTenant(ctx context.Context, in domain.TenantInput) (domain.Tenant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tenant := domain.Tenant{
		ID:          c.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
	}
	updated := append(slices.Clone(c.tenants), tenant)
	if err := saveCollection(ctx, c.store, KeyTenants, updated); err != nil {
		return domain.Tenant{}, err
	}
	c.tenants = updated
	return tenant, nil
}

// UpdateTenant returns nil without error when the tenant does not exist.
func (c *CatalogStore) UpdateTenant(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.tenantIndex(id)
	if idx < 0 {
		return nil, nil
	}
	updated := slices.Clone(c.tenants)
	tenant := &updated[idx]
	if patch.Name != nil {
		tenant.Name = *patch.Name
	}
	if patch.Description != nil {
		tenant.Description = *patch.Description
	}
	if patch.Image != nil {
		tenant.Image = *patch.Image
	}
	if err := saveCollection(ctx, c.store, KeyTenants, updated); err != nil {
		return nil, err
	}
	c.tenants = updated
	result := updated[idx]
	return &result, nil
}

// DeleteTenant leaves the tenant's menu items in place.
func (c *CatalogStore) DeleteTenant(ctx context.Context, id string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.tenantIndex(id)
	if idx < 0 {
		return 0, nil
	}
	updated := slices.Delete(slices.Clone(c.tenants), idx, idx+1)
	if err := saveCollection(ctx, c.store, KeyTenants, updated); err != nil {
		return 0, err
	}
	c.tenants = updated
	return 1, nil
}

// RecordSale is the only path that moves tenant sales aggregates.
func (c *CatalogStore) RecordSale(ctx context.Context, tenantID string, amount int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.tenantIndex(tenantID)
	if idx < 0 {
		return ErrTenantNotFound
	}
	updated := slices.Clone(c.tenants)
	updated[idx].TotalSales += amount
	updated[idx].TotalTransactions++
	if err := saveCollection(ctx, c.store, KeyTenants, updated); err != nil {
		return err
	}
	c.tenants = updated
	return nil
}

func (c *CatalogStore) MenuItems() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneOrEmpty(c.menu)
}

func (c *CatalogStore) MenuItem(id string) (domain.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx := c.menuIndex(id); idx >= 0 {
		return c.menu[idx], true
	}
	return domain.MenuItem{}, false
}

// GetMenuByTenant filters by tenant id only, so items of a deleted tenant
// are still returned for that id.
func (c *CatalogStore) GetMenuByTenant(tenantID string) []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := []domain.MenuItem{}
	for _, item := range c.menu {
		if item.TenantID == tenantID {
			items = append(items, item)
		}
	}
	return items
}

func (c *CatalogStore) AddMenuItem(ctx context.Context, in domain.MenuItemInput) (domain.MenuItem, error) {
	if err := validateMenuFields(in.Name, in.Price, in.Category); err != nil {
		return domain.MenuItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tenantIndex(in.TenantID) < 0 {
		return domain.MenuItem{}, ErrTenantNotFound
	}
	item := domain.MenuItem{
		ID:       c.NewID(),
		TenantID: in.TenantID,
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		Image:    in.Image,
		Category: strings.TrimSpace(in.Category),
	}
	updated := append(slices.Clone(c.menu), item)
	if err := saveCollection(ctx, c.store, KeyMenu, updated); err != nil {
		return domain.MenuItem{}, err
	}
	c.menu = updated
	return item, nil
}

// UpdateMenuItem returns nil without error when the item does not exist.
func (c *CatalogStore) UpdateMenuItem(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.menuIndex(id)
	if idx < 0 {
		return nil, nil
	}
	updated := slices.Clone(c.menu)
	item := &updated[idx]
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.Category != nil {
		item.Category = strings.TrimSpace(*patch.Category)
	}
	if err := validateMenuFields(item.Name, item.Price, item.Category); err != nil {
		return nil, err
	}
	if err := saveCollection(ctx, c.store, KeyMenu, updated); err != nil {
		return nil, err
	}
	c.menu = updated
	result := updated[idx]
	return &result, nil
}

func (c *CatalogStore) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.menuIndex(id)
	if idx < 0 {
		return 0, nil
	}
	updated := slices.Delete(slices.Clone(c.menu), idx, idx+1)
	if err := saveCollection(ctx, c.store, KeyMenu, updated); err != nil {
		return 0, err
	}
	c.menu = updated
	return 1, nil
}

func (c *CatalogStore) tenantIndex(id string) int {
	return slices.IndexFunc(c.tenants, func(t domain.Tenant) bool { return t.ID == id })
}

func (c *CatalogStore) menuIndex(id string) int {
	return slices.IndexFunc(c.menu, func(m domain.MenuItem) bool { return m.ID == id })
}

func validateMenuFields(name string, price int64, category string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidMenuItem)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidMenuItem)
	}
	return nil
}

func cloneOrEmpty[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
