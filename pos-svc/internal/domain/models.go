package domain

import "time"

// Prices and totals are whole rupiah.

type Tenant struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	TotalSales        int64  `json:"totalSales"`
	TotalTransactions int    `json:"totalTransactions"`
}

type TenantInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// TenantPatch carries the editable tenant fields; nil means unchanged.
// Sales aggregates are not editable.
type TenantPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type MenuItem struct {
	ID       string `json:"id"`
	TenantID string `json:"tenantId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type MenuItemInput struct {
	TenantID string `json:"tenantId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type MenuItemPatch struct {
	Name     *string `json:"name,omitempty"`
	Price    *int64  `json:"price,omitempty"`
	Image    *string `json:"image,omitempty"`
	Category *string `json:"category,omitempty"`
}

const (
	CategoryFood  = "Makanan"
	CategoryDrink = "Minuman"
	CategorySnack = "Snack"
)

var DefaultCategories = []string{CategoryFood, CategoryDrink, CategorySnack}

type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

func (c CartItem) Subtotal() int64 {
	return c.Price * int64(c.Quantity)
}

type CartView struct {
	TenantID string     `json:"tenantId,omitempty"`
	Items    []CartItem `json:"items"`
	Total    int64      `json:"total"`
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentQRIS PaymentMethod = "QRIS"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentQRIS
}

// DateLayout is the calendar-day format of Transaction.Date.
const DateLayout = "2006-01-02"

type Transaction struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenantId"`
	TenantName    string        `json:"tenantName"`
	Items         []CartItem    `json:"items"`
	Total         int64         `json:"total"`
	Date          string        `json:"date"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

const EventTransactionCreated = "transaction_created"

type TransactionEvent struct {
	Type          string        `json:"type"`
	TransactionID string        `json:"transaction_id"`
	TenantID      string        `json:"tenant_id"`
	TenantName    string        `json:"tenant_name"`
	Total         int64         `json:"total"`
	Date          string        `json:"date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Timestamp     time.Time     `json:"timestamp"`
}

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdminKasir Role = "admin_kasir"
)

func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdminKasir
}

type AdminStatus string

const (
	StatusPending  AdminStatus = "pending"
	StatusApproved AdminStatus = "approved"
	StatusRejected AdminStatus = "rejected"
)

type User struct {
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Email    string      `json:"email,omitempty"`
	Username string      `json:"username,omitempty"`
	Role     Role        `json:"role"`
	Status   AdminStatus `json:"status,omitempty"`
}

// Account is the stored form of a User.
type Account struct {
	User
	PasswordHash string `json:"passwordHash"`
}

type Credentials struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// AuthResult reports validation outcomes as data rather than errors.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

type TenantSales struct {
	TenantID     string `json:"tenant_id"`
	TenantName   string `json:"tenant_name"`
	Revenue      int64  `json:"revenue"`
	Transactions int    `json:"transactions"`
}

type Dashboard struct {
	TotalSales        int64         `json:"total_sales"`
	TotalTransactions int           `json:"total_transactions"`
	TenantCount       int           `json:"tenant_count"`
	TopTenantsToday   []TenantSales `json:"top_tenants_today"`
}
