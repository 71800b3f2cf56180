package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodcourt-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
)

type CheckoutProcessor struct {
	catalog   *CatalogStore
	ledger    *Ledger
	publisher TransactionPublisher

	Clock func() time.Time
	NewID func() string
}

// NewCheckoutProcessor accepts a nil publisher when the event pipeline is off.
func NewCheckoutProcessor(catalog *CatalogStore, ledger *Ledger, publisher TransactionPublisher) *CheckoutProcessor {
	return &CheckoutProcessor{
		catalog:   catalog,
		ledger:    ledger,
		publisher: publisher,
		Clock:     time.Now,
		NewID:     uuid.NewString,
	}
}

// Checkout turns the session's cart into a transaction. The cart is cleared
// only after the transaction and the tenant aggregates are both persisted;
// if the aggregate update fails the transaction is taken back out of the
// ledger. An empty cart is rejected with ErrEmptyCart.
func (p *CheckoutProcessor) Checkout(ctx context.Context, sess *Session, method domain.PaymentMethod) (*domain.Transaction, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.tenantID == "" {
		return nil, ErrNoTenantSelected
	}
	if sess.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	tenant, ok := p.catalog.Tenant(sess.tenantID)
	if !ok {
		return nil, ErrTenantNotFound
	}

	tx := domain.Transaction{
		ID:            p.NewID(),
		TenantID:      tenant.ID,
		TenantName:    tenant.Name,
		Items:         sess.cart.Items(),
		Total:         sess.cart.Total(),
		Date:          p.Clock().Format(domain.DateLayout),
		PaymentMethod: method,
	}

	if err := p.ledger.Prepend(ctx, tx); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}
	if err := p.catalog.RecordSale(ctx, tenant.ID, tx.Total); err != nil {
		if rbErr := p.ledger.Remove(ctx, tx.ID); rbErr != nil {
			log.Printf("ERROR: rollback of transaction %s failed: %v", tx.ID, rbErr)
		}
		return nil, fmt.Errorf("update tenant aggregates: %w", err)
	}

	sess.cart.Clear()

	if p.publisher != nil {
		event := domain.TransactionEvent{
			Type:          domain.EventTransactionCreated,
			TransactionID: tx.ID,
			TenantID:      tx.TenantID,
			TenantName:    tx.TenantName,
			Total:         tx.Total,
			Date:          tx.Date,
			PaymentMethod: tx.PaymentMethod,
			Timestamp:     p.Clock(),
		}
		if err := p.publisher.PublishTransaction(ctx, event); err != nil {
			log.Printf("Error publishing transaction %s: %v", tx.ID, err)
		}
	}

	return &tx, nil
}
