package service

import "errors"

var (
	// ErrPersistence marks a failed snapshot write. The in-memory state is
	// left as it was before the operation.
	ErrPersistence = errors.New("persistence failure")

	ErrTenantNotFound       = errors.New("tenant not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidMenuItem      = errors.New("invalid menu item")
	ErrItemNotInTenant      = errors.New("menu item does not belong to the selected tenant")
	ErrNoTenantSelected     = errors.New("no tenant selected")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidReportQuery   = errors.New("invalid report query")
	ErrInvalidToken         = errors.New("invalid token")
)
