package service

import (
	"context"

	"foodcourt-pos/pos-svc/internal/domain"
	"foodcourt-pos/pos-svc/internal/storage"
)

// SnapshotStore persists whole JSON collections under a key. Load reports
// found=false for a key that was never saved.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

type TransactionPublisher interface {
	PublishTransaction(ctx context.Context, event domain.TransactionEvent) error
}

type SalesStats interface {
	RecordSale(ctx context.Context, event domain.TransactionEvent) error
	TopTenants(ctx context.Context, date string, limit int) ([]domain.TenantSales, error)
}

type QRGenerator interface {
	Generate(transactionID string) ([]byte, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessTransaction(ctx context.Context, event domain.TransactionEvent)
}

var (
	_ SnapshotStore        = (*storage.RedisSnapshotStore)(nil)
	_ SnapshotStore        = (*storage.PostgresSnapshotStore)(nil)
	_ TransactionPublisher = (*storage.KafkaPublisher)(nil)
	_ SalesStats           = (*storage.RedisSalesStats)(nil)
	_ QRGenerator          = DefaultQRGenerator{}
	_ ConsumerInterface    = (*SalesConsumer)(nil)
)
