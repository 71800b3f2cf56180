package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPAddr      string        `env:"HTTP_ADDR" envDefault:":8081"`
	StoreBackend  string        `env:"STORE_BACKEND" envDefault:"redis"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	SeedDemo      bool          `env:"SEED_DEMO" envDefault:"true"`
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"change-me"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
	UploadDir     string        `env:"UPLOAD_DIR" envDefault:"./uploads"`

	SuperAdmin SuperAdminConfig
	DB         DBConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
}

type SuperAdminConfig struct {
	Name     string `env:"SUPERADMIN_NAME" envDefault:"Super Admin"`
	Email    string `env:"SUPERADMIN_EMAIL" envDefault:"admin@wbi.com"`
	Password string `env:"SUPERADMIN_PASSWORD" envDefault:"admin123"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"foodcourt"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
}

type RedisConfig struct {
	Host string `env:"REDIS_HOST" envDefault:"localhost"`
	Port string `env:"REDIS_PORT" envDefault:"6379"`
	DB   int    `env:"REDIS_DB" envDefault:"0"`
}

// Kafka is optional: an empty broker disables the sales event pipeline.
type KafkaConfig struct {
	Broker  string `env:"KAFKA_BROKER"`
	Topic   string `env:"KAFKA_TOPIC" envDefault:"transactions"`
	GroupID string `env:"KAFKA_GROUP_ID" envDefault:"pos-svc-sales"`
}

func (c KafkaConfig) Enabled() bool {
	return c.Broker != ""
}

// Load reads a .env file when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoreBackend != BackendRedis && cfg.StoreBackend != BackendPostgres {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return cfg, nil
}

func (c DBConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

func MustInitPostgres(cfg DBConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
		DB:   cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}
