package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcourt-pos/config"
	httpapi "foodcourt-pos/pos-svc/internal/api/http"
	"foodcourt-pos/pos-svc/internal/service"
	"foodcourt-pos/pos-svc/internal/storage"
)

const salesStatsTTL = 48 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	var store service.SnapshotStore
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db := config.MustInitPostgres(cfg.DB)
		defer db.Close()
		pg := storage.NewPostgresSnapshotStore(db)
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		store = pg
	default:
		store = storage.NewRedisSnapshotStore(rdb, "")
	}
	log.Printf("Using %s snapshot store", cfg.StoreBackend)

	catalog := service.NewCatalogStore(store)
	if err := catalog.Load(ctx, cfg.SeedDemo); err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	if catalog.Seeded() {
		log.Println("Seeded demo tenants and menu")
	}
	ledger := service.NewLedger(store)
	if err := ledger.Load(ctx, catalog.Seeded()); err != nil {
		log.Fatal("Failed to load transactions:", err)
	}
	accounts := service.NewAccountService(store)
	if err := accounts.Load(ctx); err != nil {
		log.Fatal("Failed to load accounts:", err)
	}
	if err := accounts.AddBootstrapSuperAdmin(cfg.SuperAdmin.Name, cfg.SuperAdmin.Email, cfg.SuperAdmin.Password); err != nil {
		log.Fatal("Failed to register super admin:", err)
	}

	stats := storage.NewRedisSalesStats(rdb, salesStatsTTL)

	var publisher service.TransactionPublisher
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		consumer := service.NewSalesConsumer(reader, stats)
		go consumer.Start(ctx)
	} else {
		log.Println("KAFKA_BROKER not set, sales events disabled")
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Catalog:   catalog,
		Carts:     service.NewCartService(catalog),
		Sessions:  service.NewSessionRegistry(),
		Checkout:  service.NewCheckoutProcessor(catalog, ledger, publisher),
		Ledger:    ledger,
		Reports:   service.NewReportService(ledger),
		Accounts:  accounts,
		Tokens:    service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Dashboard: service.NewDashboardService(catalog, ledger, stats),
		QR:        service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		UploadDir: cfg.UploadDir,
	})

	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
}
