package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/DRSN-tech/store-api/internal/app"
	config "github.com/DRSN-tech/store-api/internal/cfg"
	"github.com/DRSN-tech/store-api/pkg/logger"
)

const defaultCSV = "Amazon_Products.csv"

// Загрузчик каталога. ВНИМАНИЕ: удаляет все таблицы перед загрузкой.
func main() {
	file := flag.String("file", getEnvOrDefault("PRODUCTS_CSV", defaultCSV), "CSV file path or s3://bucket/key")
	flag.Parse()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := app.RunLoader(ctx, cfg, log, *file)
	if err != nil {
		log.Errorf(err, "failed to load products from %s", *file)
		os.Exit(1)
	}

	log.Infof("loaded %d products (%d rows skipped), seed user id=%d", res.Inserted, res.Skipped, res.SeedUser.ID)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
