package service

import (
	"context"
	"encoding/json"
	"log"

	"foodcourt-pos/pos-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// SalesConsumer folds checkout events into the sales leaderboards.
type SalesConsumer struct {
	Reader *kafka.Reader
	Stats  SalesStats
}

func NewSalesConsumer(reader *kafka.Reader, stats SalesStats) *SalesConsumer {
	return &SalesConsumer{
		Reader: reader,
		Stats:  stats,
	}
}

func (c *SalesConsumer) Start(ctx context.Context) {
	log.Println("Starting sales consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Sales consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.TransactionEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessTransaction(ctx, event)
	}
}

func (c *SalesConsumer) ProcessTransaction(ctx context.Context, event domain.TransactionEvent) {
	if event.Type != domain.EventTransactionCreated {
		return
	}
	log.Printf("Processing transaction: ID=%s, TenantID=%s, Total=%d",
		event.TransactionID, event.TenantID, event.Total)

	if err := c.Stats.RecordSale(ctx, event); err != nil {
		log.Printf("Error recording sale: %v", err)
		return
	}

	log.Printf("Successfully processed transaction %s", event.TransactionID)
}
