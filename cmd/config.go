package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver     string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost       string `envconfig:"DB_HOST" default:"localhost"`
	DBPort       string `envconfig:"DB_PORT" default:"5432"`
	DBUser       string `envconfig:"DB_USER"`
	DBPassword   string `envconfig:"DB_PASSWORD"`
	DBName       string `envconfig:"DB_NAME"`
	DBSslMode    string `envconfig:"DB_SSLMODE" default:"disable"`
	DBSqlitePath string `envconfig:"DB_SQLITE_PATH" default:"fueldelivery.db"`

	SessionSecret string `envconfig:"SESSION_SECRET" required:"true"`
	BcryptCost    int    `envconfig:"BCRYPT_COST" default:"10"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	PriceCacheTTL time.Duration `envconfig:"PRICE_CACHE_TTL" default:"5m"`

	KafkaHost              string `envconfig:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `envconfig:"KAFKA_ORDER_CHANGED_TOPIC" default:"order.status.changed"`

	SweepSchedule     string `envconfig:"SWEEP_SCHEDULE" default:"@every 1m"`
	FuelPrices        string `envconfig:"FUEL_PRICES" default:"Petrol:96.72,Diesel:89.62"`
	OpenAPIValidation bool   `envconfig:"OPENAPI_VALIDATION" default:"true"`
}

// FuelPrice is one entry of the FUEL_PRICES seed list.
type FuelPrice struct {
	FuelType string
	Price    string
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBName == "" || c.DBUser == "" {
			return errors.New("DB_NAME and DB_USER are required for the postgres driver")
		}
	case DriverSQLite:
		if c.DBSqlitePath == "" {
			return errors.New("DB_SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	_, err := c.FuelPriceList()
	return err
}

// PostgresDSN builds the connection string for the postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty when Kafka is not configured.
func (c Config) KafkaBrokers() []string {
	return splitList(c.KafkaHost)
}

// FuelPriceList parses FUEL_PRICES ("Petrol:96.72,Diesel:89.62").
func (c Config) FuelPriceList() ([]FuelPrice, error) {
	entries := splitList(c.FuelPrices)
	prices := make([]FuelPrice, 0, len(entries))
	for _, entry := range entries {
		fuelType, price, ok := strings.Cut(entry, ":")
		fuelType, price = strings.TrimSpace(fuelType), strings.TrimSpace(price)
		if !ok || fuelType == "" || price == "" {
			return nil, fmt.Errorf("FUEL_PRICES entry %q must look like Type:price", entry)
		}
		prices = append(prices, FuelPrice{FuelType: fuelType, Price: price})
	}
	return prices, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
