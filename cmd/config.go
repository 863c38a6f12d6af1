package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application: HTTP port, database coordinates, remote service base URLs and
// the orchestration tuning knobs.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	WarehouseBaseURL string
	DeliveryBaseURL  string

	// DefaultWarehouseID is the warehouse every new checkout is assigned to;
	// WarehouseAddress seeds its row on startup when missing.
	DefaultWarehouseID int64
	WarehouseAddress   string

	// StorePoolSize bounds how many operations may block on storage at once.
	StorePoolSize int

	// StockCheckMaxRetries and StockCheckRetryInterval tune the retry policy
	// of the checkout stock verification call.
	StockCheckMaxRetries    uint64
	StockCheckRetryInterval time.Duration
}
