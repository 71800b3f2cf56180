package storage

import (
	"context"
	"errors"
	"time"

	"foodcourt-pos/pos-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisSalesStats keeps per-day sorted sets of revenue and transaction
// counts keyed by tenant id.
type RedisSalesStats struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSalesStats(client *redis.Client, ttl time.Duration) *RedisSalesStats {
	return &RedisSalesStats{Client: client, TTL: ttl}
}

func (s *RedisSalesStats) RevenueKey(date string) string {
	return "sales:daily:" + date
}

func (s *RedisSalesStats) CountKey(date string) string {
	return "sales:daily:" + date + ":count"
}

func (s *RedisSalesStats) SeenKey(transactionID string) string {
	return "sales:seen:" + transactionID
}

// recordSaleScript marks the transaction as seen only after both increments
// succeeded. KEYS: seen, revenue, count. ARGV: total, tenant id, ttl in ms.
var recordSaleScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('ZINCRBY', KEYS[2], ARGV[1], ARGV[2])
redis.call('ZINCRBY', KEYS[3], 1, ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], '1', 'PX', ARGV[3])
	redis.call('PEXPIRE', KEYS[2], ARGV[3])
	redis.call('PEXPIRE', KEYS[3], ARGV[3])
else
	redis.call('SET', KEYS[1], '1')
end
return 1
`)

// RecordSale counts each transaction id once, so redelivered events are
// harmless. A failed write leaves no seen marker and can be retried.
func (s *RedisSalesStats) RecordSale(ctx context.Context, event domain.TransactionEvent) error {
	keys := []string{s.SeenKey(event.TransactionID), s.RevenueKey(event.Date), s.CountKey(event.Date)}
	return recordSaleScript.Run(ctx, s.Client, keys, event.Total, event.TenantID, s.TTL.Milliseconds()).Err()
}

func (s *RedisSalesStats) TopTenants(ctx context.Context, date string, limit int) ([]domain.TenantSales, error) {
	if limit <= 0 {
		return []domain.TenantSales{}, nil
	}
	result, err := s.Client.ZRevRangeWithScores(ctx, s.RevenueKey(date), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.TenantSales, 0, len(result))
	for _, member := range result {
		tenantID, _ := member.Member.(string)
		count, err := s.Client.ZScore(ctx, s.CountKey(date), tenantID).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, err
		}
		top = append(top, domain.TenantSales{
			TenantID:     tenantID,
			Revenue:      int64(member.Score),
			Transactions: int(count),
		})
	}
	return top, nil
}
