package config

import (
	"log"
	"os"
	"strconv"
)

const (
	defaultDatabasePath  = "catalog.db"
	defaultAllowedOrigin = "http://localhost:5173"
)

const (
	defaultImportQueueSize  = 16
	defaultNumImportWorkers = 1
)

type Config struct {
	// database path
	DatabasePath string

	// CORS origin allowed to reach the API
	AllowedOrigin string

	// default catalog CSV source used when the import trigger omits one
	CatalogCSVURL string

	// import worker settings
	ImportQueueSize  int
	NumImportWorkers int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DatabasePath:     getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		AllowedOrigin:    getEnvOrDefault("ALLOWED_ORIGIN", defaultAllowedOrigin),
		CatalogCSVURL:    os.Getenv("CATALOG_CSV_URL"),
		ImportQueueSize:  getEnvIntOrDefault("IMPORT_QUEUE_SIZE", defaultImportQueueSize),
		NumImportWorkers: getEnvIntOrDefault("NUM_IMPORT_WORKERS", defaultNumImportWorkers),
	}

	return cfg, nil
}
