package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the service configuration loaded from environment
// variables. The ARFCN scalars are defaults; upload requests may
// override them per run.
type Config struct {
	ListenAddr string

	OldARFCN        int
	NewARFCN        int
	N77BSSB         int
	AllowedN77SSB   []int
	AllowedN77ARFCN []int

	InventoryDB string
	UploadDir   string
	OutputDir   string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		OldARFCN:        getEnvInt("OLD_ARFCN", 652000),
		NewARFCN:        getEnvInt("NEW_ARFCN", 648672),
		N77BSSB:         getEnvInt("N77B_SSB", 660001),
		AllowedN77SSB:   getEnvInts("ALLOWED_N77_SSB"),
		AllowedN77ARFCN: getEnvInts("ALLOWED_N77_ARFCN"),

		InventoryDB: getEnv("INVENTORY_DB", ""),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		OutputDir:   getEnv("OUTPUT_DIR", "filtered"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

// getEnvInts parses a comma-separated integer list; malformed entries
// are skipped.
func getEnvInts(key string) []int {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(val, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil {
			out = append(out, n)
		}
	}
	return out
}
