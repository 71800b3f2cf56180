package service

import (
	"sync"

	"foodcourt-pos/pos-svc/internal/domain"
)

// Session is one signed-in user's workspace: the selected tenant and the
// cart being rung up for it.
type Session struct {
	mu       sync.Mutex
	UserID   string
	Role     domain.Role
	tenantID string
	cart     *Cart
}

func NewSession(userID string, role domain.Role) *Session {
	return &Session{UserID: userID, Role: role, cart: NewCart()}
}

func (s *Session) TenantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenantID
}

// SelectTenant clears the cart when the selection changes so items never
// carry over between tenants.
func (s *Session) SelectTenant(tenantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tenantID != tenantID {
		s.cart.Clear()
	}
	s.tenantID = tenantID
}

func (s *Session) AddItem(item domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tenantID == "" {
		return ErrNoTenantSelected
	}
	if item.TenantID != s.tenantID {
		return ErrItemNotInTenant
	}
	s.cart.Add(item)
	return nil
}

func (s *Session) UpdateQuantity(itemID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(itemID, qty)
}

func (s *Session) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Session) Cart() domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartView{
		TenantID: s.tenantID,
		Items:    s.cart.Items(),
		Total:    s.cart.Total(),
	}
}

// SessionRegistry keeps sessions in memory; carts are not persisted.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) Get(userID string, role domain.Role) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[userID]
	if !ok || sess.Role != role {
		sess = NewSession(userID, role)
		r.sessions[userID] = sess
	}
	return sess
}

func (r *SessionRegistry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

// CartService resolves catalog ids before touching a session.
type CartService struct {
	catalog *CatalogStore
}

func NewCartService(catalog *CatalogStore) *CartService {
	return &CartService{catalog: catalog}
}

func (s *CartService) SelectTenant(sess *Session, tenantID string) (domain.Tenant, error) {
	tenant, ok := s.catalog.Tenant(tenantID)
	if !ok {
		return domain.Tenant{}, ErrTenantNotFound
	}
	sess.SelectTenant(tenant.ID)
	return tenant, nil
}

func (s *CartService) AddItem(sess *Session, menuItemID string) (domain.CartView, error) {
	item, ok := s.catalog.MenuItem(menuItemID)
	if !ok {
		return domain.CartView{}, ErrMenuItemNotFound
	}
	if err := sess.AddItem(item); err != nil {
		return domain.CartView{}, err
	}
	return sess.Cart(), nil
}
