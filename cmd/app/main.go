package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"controltower/cmd"
	"controltower/internal/adapters/out/postgres/orderrepo"
	"controltower/internal/adapters/out/postgres/productrepo"
	"controltower/internal/adapters/out/postgres/shoprepo"
	"controltower/internal/adapters/out/postgres/warehouserepo"
	"controltower/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if err := app.SeedDefaultWarehouse(context.Background()); err != nil {
		log.Fatalf("Failed to seed default warehouse: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetUncompletedOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is optional; containerized deployments inject the environment
	// directly.
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded, using process environment")
	}

	config := cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),

		WarehouseBaseURL: os.Getenv("WAREHOUSE_BASE_URL"),
		DeliveryBaseURL:  os.Getenv("DELIVERY_BASE_URL"),
		WarehouseAddress: os.Getenv("WAREHOUSE_ADDRESS"),

		DefaultWarehouseID:      envInt64("DEFAULT_WAREHOUSE_ID", 1),
		StorePoolSize:           int(envInt64("STORE_POOL_SIZE", 16)),
		StockCheckMaxRetries:    uint64(envInt64("STOCK_CHECK_MAX_RETRIES", 3)),
		StockCheckRetryInterval: envDuration("STOCK_CHECK_RETRY_INTERVAL", time.Second),
	}
	return config
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shoprepo.ShopDTO{},
		&productrepo.ProductDTO{},
		&warehouserepo.WarehouseDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ProductOrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
