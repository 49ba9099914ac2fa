package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	RunAddress       string
	TaxRate          decimal.Decimal
	SnapshotInterval time.Duration
}

func New() *Config {
	cfg := &Config{}

	var taxRate float64
	var snapshotSec int
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flag.Float64Var(&taxRate, "t", 0.18, "tax rate applied to the subtotal")
	flag.IntVar(&snapshotSec, "i", 0, "sales snapshot interval in seconds (0 disables)")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	if raw, ok := os.LookupEnv("TAX_RATE"); ok {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			taxRate = parsed
		}
	}
	if raw, ok := os.LookupEnv("SNAPSHOT_INTERVAL"); ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			snapshotSec = parsed
		}
	}

	cfg.TaxRate = decimal.NewFromFloat(taxRate)
	cfg.SnapshotInterval = time.Duration(snapshotSec) * time.Second
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
