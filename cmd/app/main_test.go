package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// No .env file exists in the test working directory, so getConfigs must fall
// back to the process environment without failing.
func TestGetConfigs_WithoutDotEnvFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DEFAULT_WAREHOUSE_ID", "2")
	t.Setenv("STOCK_CHECK_RETRY_INTERVAL", "250ms")

	config := getConfigs()

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, int64(2), config.DefaultWarehouseID)
	assert.Equal(t, 250*time.Millisecond, config.StockCheckRetryInterval)
}

func TestGetConfigs_Defaults(t *testing.T) {
	t.Setenv("DEFAULT_WAREHOUSE_ID", "")
	t.Setenv("STORE_POOL_SIZE", "")
	t.Setenv("STOCK_CHECK_MAX_RETRIES", "")
	t.Setenv("STOCK_CHECK_RETRY_INTERVAL", "")

	config := getConfigs()

	assert.Equal(t, int64(1), config.DefaultWarehouseID)
	assert.Equal(t, 16, config.StorePoolSize)
	assert.Equal(t, uint64(3), config.StockCheckMaxRetries)
	assert.Equal(t, time.Second, config.StockCheckRetryInterval)
}
