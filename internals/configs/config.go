package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	Port          string
	StorageDriver string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] no .env file found, using system environment")
	}

	Port = GetEnv("PORT", "3000")
	StorageDriver = GetEnv("STORAGE_DRIVER", DriverPostgres)

	if StorageDriver != DriverPostgres && StorageDriver != DriverMemory {
		log.Fatalf("unknown STORAGE_DRIVER %q (want %q or %q)", StorageDriver, DriverPostgres, DriverMemory)
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
