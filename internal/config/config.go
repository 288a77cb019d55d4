package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka `validate:"required"`

	Cache Cache `validate:"required"`

	Payment Payment `validate:"required"`

	Checkout Checkout `validate:"required"`

	Upload Upload
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Payment configures the external wallet gateway. Key1 signs outgoing
// create-order requests, Key2 verifies result callbacks.
type Payment struct {
	Endpoint    string `validate:"required,url"`
	AppID       string `validate:"required"`
	Key1        string `validate:"required"`
	Key2        string `validate:"required"`
	CallbackURL string `validate:"required,url"`

	RequestTimeout time.Duration `validate:"gt=0"`
	// ResultTimeout bounds how long a checkout session waits for the wallet
	// callback before the attempt is failed.
	ResultTimeout time.Duration `validate:"gt=0"`
}

type Checkout struct {
	DeliveryFee string `validate:"required"`
}

type Upload struct {
	Endpoint string
	Preset   string
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "foodorder"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:        env("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Payment: Payment{
			Endpoint:    env("PAYMENT_ENDPOINT", "https://sb-openapi.zalopay.vn/v2/create"),
			AppID:       env("PAYMENT_APP_ID", ""),
			Key1:        env("PAYMENT_KEY1", ""),
			Key2:        env("PAYMENT_KEY2", ""),
			CallbackURL: env("PAYMENT_CALLBACK_URL", "http://localhost:8080/payments/callback"),

			RequestTimeout: envDuration("PAYMENT_REQUEST_TIMEOUT", 5*time.Second),
			ResultTimeout:  envDuration("PAYMENT_RESULT_TIMEOUT", 15*time.Minute),
		},

		Checkout: Checkout{
			DeliveryFee: env("CHECKOUT_DELIVERY_FEE", "10"),
		},

		Upload: Upload{
			Endpoint: env("UPLOAD_ENDPOINT", ""),
			Preset:   env("UPLOAD_PRESET", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
