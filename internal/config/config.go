package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by LINEAGE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("LINEAGE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// DatabaseURL returns the journal database URL. Empty means memory-only
// operation: the registry starts from the seed alone and nothing is
// recorded across restarts.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// DecayInterval returns how often the decay worker runs.
// Defaults to 24h if not set.
func DecayInterval() time.Duration {
	hours, err := strconv.ParseFloat(os.Getenv("DECAY_INTERVAL_HOURS"), 64)
	if err != nil || hours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(hours * float64(time.Hour))
}

// ReadTrustThreshold is the default gate threshold for read operations.
func ReadTrustThreshold() float64 {
	v, err := strconv.ParseFloat(os.Getenv("READ_TRUST_THRESHOLD"), 64)
	if err != nil || v < 0 || v > 1 {
		return 0.3
	}
	return v
}

// PrivilegedTrustThreshold is the default gate threshold for privileged
// operations.
func PrivilegedTrustThreshold() float64 {
	v, err := strconv.ParseFloat(os.Getenv("PRIVILEGED_TRUST_THRESHOLD"), 64)
	if err != nil || v < 0 || v > 1 {
		return 0.85
	}
	return v
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
