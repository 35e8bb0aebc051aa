package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	LogLevel string
	Seed     uint64
}

// loadConfig reads flag defaults from the environment. A .env file is
// honored when present.
func loadConfig() config {
	_ = godotenv.Load()

	cfg := config{
		LogLevel: "info",
		Seed:     1,
	}

	if v := os.Getenv("MBR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MBR_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}

	return cfg
}
