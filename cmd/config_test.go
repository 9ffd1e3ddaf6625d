package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "LOG_LEVEL", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
	"DB_NAME", "DB_SSLMODE", "DB_SQLITE_PATH", "SESSION_SECRET", "BCRYPT_COST", "REDIS_ADDR",
	"REDIS_PASSWORD", "PRICE_CACHE_TTL", "KAFKA_HOST", "KAFKA_ORDER_CHANGED_TOPIC",
	"SWEEP_SCHEDULE", "FUEL_PRICES", "OPENAPI_VALIDATION",
}

// clearEnv unsets every config variable for the test and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "fueldelivery.db", cfg.DBSqlitePath)
	assert.Equal(t, "@every 1m", cfg.SweepSchedule)
	assert.Equal(t, 5*time.Minute, cfg.PriceCacheTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.OpenAPIValidation)
	assert.Empty(t, cfg.KafkaBrokers())
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfigReadsEnvFileWithoutOverridingEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte(
		"HTTP_PORT=7070\n"+
			"SESSION_SECRET=from-file\n"+
			"DB_DRIVER=postgres\n"+
			"DB_USER=fuel\n"+
			"DB_NAME=fueldelivery\n"+
			"KAFKA_HOST=kafka-1:9092, kafka-2:9092\n"+
			"OPENAPI_VALIDATION=false\n",
	), 0o600))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "from-file", cfg.SessionSecret)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers())
	assert.False(t, cfg.OpenAPIValidation)
	assert.Equal(t,
		"host=localhost port=5432 user=fuel password= dbname=fueldelivery sslmode=disable",
		cfg.PostgresDSN(),
	)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"session secret is required", map[string]string{"DB_DRIVER": "sqlite"}},
		{"unknown driver", map[string]string{"SESSION_SECRET": "s", "DB_DRIVER": "mysql"}},
		{"postgres needs a database", map[string]string{"SESSION_SECRET": "s", "DB_DRIVER": "postgres"}},
		{"malformed fuel prices", map[string]string{
			"SESSION_SECRET": "s", "DB_DRIVER": "sqlite", "FUEL_PRICES": "Petrol",
		}},
		{"malformed duration", map[string]string{
			"SESSION_SECRET": "s", "DB_DRIVER": "sqlite", "PRICE_CACHE_TTL": "soon",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestFuelPriceList(t *testing.T) {
	cfg := Config{FuelPrices: " Petrol:96.72 , Diesel : 89.62,"}

	prices, err := cfg.FuelPriceList()
	require.NoError(t, err)
	assert.Equal(t, []FuelPrice{
		{FuelType: "Petrol", Price: "96.72"},
		{FuelType: "Diesel", Price: "89.62"},
	}, prices)

	cfg.FuelPrices = ""
	prices, err = cfg.FuelPriceList()
	require.NoError(t, err)
	assert.Empty(t, prices)

	cfg.FuelPrices = "Petrol:"
	_, err = cfg.FuelPriceList()
	assert.Error(t, err)
}
