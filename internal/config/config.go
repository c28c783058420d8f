package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Required variables are enforced by must() and a
// missing value halts startup; optional values fall back to documented
// defaults.
type Config struct {
	Env            string          // application environment (e.g. "dev", "prod")
	Port           string          // HTTP port to listen on
	DBUser         string          // database username
	DBPass         string          // database password (optional)
	DBHost         string          // database host address
	DBPort         string          // database port number
	DBName         string          // database name
	JWTSecret      string          // secret used to sign JWTs
	AccessTTLMin   int             // access token time-to-live in minutes
	RefreshTTLDays int             // refresh token time-to-live in days
	BcryptCost     int             // bcrypt cost for password hashing
	CommissionRate decimal.Decimal // agent share of utilidad, fraction of 1
}

// Load reads configuration values from environment variables and returns a
// Config. The commission rate defaults to 0.20 (the agency's standing 20%
// split) and the access token TTL to 480 minutes, one working shift.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   envInt("ACCESS_TOKEN_TTL_MIN", 480),
		RefreshTTLDays: envInt("REFRESH_TOKEN_TTL_DAYS", 7),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		CommissionRate: envRate("COMMISSION_RATE", "0.20"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envInt reads an optional integer variable, falling back to def when unset.
// A value that is present but not an integer halts startup rather than
// silently running with a wrong TTL or cost.
func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// envRate reads an optional decimal fraction (e.g. "0.20"). The default is
// parsed the same way so both paths reject typos at startup.
func envRate(key, def string) decimal.Decimal {
	s := os.Getenv(key)
	if s == "" {
		s = def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("invalid decimal for %s: %q", key, s)
	}
	return d
}
