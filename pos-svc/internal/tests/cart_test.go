package tests

import (
	"testing"

	"foodcourt-pos/pos-svc/internal/domain"
	"foodcourt-pos/pos-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baksoUrat  = domain.MenuItem{ID: "1", TenantID: "1", Name: "Bakso Urat", Price: 25000, Category: domain.CategoryFood}
	esTeh      = domain.MenuItem{ID: "6", TenantID: "1", Name: "Es Teh Manis", Price: 8000, Category: domain.CategoryDrink}
	geprekOrig = domain.MenuItem{ID: "7", TenantID: "2", Name: "Geprek Original", Price: 20000, Category: domain.CategoryFood}
)

func TestCart_AddMergesByID(t *testing.T) {
	cart := service.NewCart()
	cart.Add(baksoUrat)
	cart.Add(esTeh)
	cart.Add(baksoUrat)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "6", items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, int64(58000), cart.Total())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		wantLen   int
		wantTotal int64
	}{
		{name: "set quantity", qty: 3, wantLen: 2, wantTotal: 83000},
		{name: "zero removes", qty: 0, wantLen: 1, wantTotal: 8000},
		{name: "negative removes", qty: -2, wantLen: 1, wantTotal: 8000},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := service.NewCart()
			cart.Add(baksoUrat)
			cart.Add(esTeh)

			cart.UpdateQuantity(baksoUrat.ID, testCase.qty)

			assert.Len(t, cart.Items(), testCase.wantLen)
			assert.Equal(t, testCase.wantTotal, cart.Total())
		})
	}
}

func TestCart_ZeroQuantityEqualsRemove(t *testing.T) {
	for _, qty := range []int{0, -1} {
		updated := service.NewCart()
		removed := service.NewCart()
		for _, cart := range []*service.Cart{updated, removed} {
			cart.Add(baksoUrat)
			cart.Add(esTeh)
			cart.Add(geprekOrig)
		}

		updated.UpdateQuantity(esTeh.ID, qty)
		removed.Remove(esTeh.ID)

		assert.Equal(t, removed.Items(), updated.Items())
		assert.Equal(t, removed.Total(), updated.Total())
	}
}

func TestCart_TotalTracksEveryStep(t *testing.T) {
	steps := []struct {
		name  string
		apply func(*service.Cart)
	}{
		{name: "add bakso", apply: func(c *service.Cart) { c.Add(baksoUrat) }},
		{name: "add es teh", apply: func(c *service.Cart) { c.Add(esTeh) }},
		{name: "add bakso again", apply: func(c *service.Cart) { c.Add(baksoUrat) }},
		{name: "set es teh to 4", apply: func(c *service.Cart) { c.UpdateQuantity(esTeh.ID, 4) }},
		{name: "add geprek", apply: func(c *service.Cart) { c.Add(geprekOrig) }},
		{name: "remove bakso", apply: func(c *service.Cart) { c.Remove(baksoUrat.ID) }},
		{name: "zero geprek", apply: func(c *service.Cart) { c.UpdateQuantity(geprekOrig.ID, 0) }},
		{name: "update missing", apply: func(c *service.Cart) { c.UpdateQuantity("missing", 3) }},
		{name: "add bakso back", apply: func(c *service.Cart) { c.Add(baksoUrat) }},
	}

	cart := service.NewCart()
	for _, step := range steps {
		step.apply(cart)

		var want int64
		for _, item := range cart.Items() {
			require.Positive(t, item.Quantity, step.name)
			want += item.Price * int64(item.Quantity)
		}
		assert.Equal(t, want, cart.Total(), step.name)
	}
	assert.Equal(t, int64(8000*4+25000), cart.Total())
}

func TestCart_UnknownIDsAreNoOps(t *testing.T) {
	cart := service.NewCart()
	cart.Add(baksoUrat)

	cart.UpdateQuantity("missing", 5)
	cart.Remove("missing")

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.Quantity(baksoUrat.ID))
	assert.Equal(t, 0, cart.Quantity("missing"))
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := service.NewCart()
	cart.Add(baksoUrat)
	cart.Add(esTeh)

	cart.Remove(baksoUrat.ID)
	assert.Equal(t, int64(8000), cart.Total())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())
	assert.NotNil(t, cart.Items())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	cart := service.NewCart()
	cart.Add(baksoUrat)

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Quantity(baksoUrat.ID))
}

func TestSession_AddItem(t *testing.T) {
	tests := []struct {
		name    string
		tenant  string
		item    domain.MenuItem
		wantErr error
	}{
		{name: "same tenant", tenant: "1", item: baksoUrat},
		{name: "no tenant selected", tenant: "", item: baksoUrat, wantErr: service.ErrNoTenantSelected},
		{name: "other tenant's item", tenant: "1", item: geprekOrig, wantErr: service.ErrItemNotInTenant},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sess := service.NewSession("u1", domain.RoleAdminKasir)
			if testCase.tenant != "" {
				sess.SelectTenant(testCase.tenant)
			}

			err := sess.AddItem(testCase.item)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, sess.Cart().Items)
			} else {
				assert.NoError(t, err)
				assert.Len(t, sess.Cart().Items, 1)
			}
		})
	}
}

func TestSession_SelectTenantClearsCartOnChange(t *testing.T) {
	sess := service.NewSession("u1", domain.RoleAdminKasir)
	sess.SelectTenant("1")
	require.NoError(t, sess.AddItem(baksoUrat))

	sess.SelectTenant("1")
	assert.Len(t, sess.Cart().Items, 1)

	sess.SelectTenant("2")
	view := sess.Cart()
	assert.Equal(t, "2", view.TenantID)
	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.Total)
}

func TestSessionRegistry_Get(t *testing.T) {
	registry := service.NewSessionRegistry()

	first := registry.Get("u1", domain.RoleAdminKasir)
	assert.Same(t, first, registry.Get("u1", domain.RoleAdminKasir))

	replaced := registry.Get("u1", domain.RoleSuperAdmin)
	assert.NotSame(t, first, replaced)
	assert.Equal(t, domain.RoleSuperAdmin, replaced.Role)

	registry.Drop("u1")
	assert.NotSame(t, replaced, registry.Get("u1", domain.RoleSuperAdmin))
}

func TestCartService(t *testing.T) {
	catalog, _ := seededCatalog(t, newRedisStore(t))
	carts := service.NewCartService(catalog)
	sess := service.NewSession("u1", domain.RoleAdminKasir)

	_, err := carts.SelectTenant(sess, "missing")
	assert.ErrorIs(t, err, service.ErrTenantNotFound)

	tenant, err := carts.SelectTenant(sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "Bakso Pak Kumis", tenant.Name)

	_, err = carts.AddItem(sess, "missing")
	assert.ErrorIs(t, err, service.ErrMenuItemNotFound)

	_, err = carts.AddItem(sess, "7")
	assert.ErrorIs(t, err, service.ErrItemNotInTenant)

	view, err := carts.AddItem(sess, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(25000), view.Total)
}
