package config

import (
	"errors"  // Validation errors
	"net/url" // URL escaping for credentials
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // String manipulation
	"time"    // Durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	Port            string        // Listen port
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database cluster host
	DBScheme        string        // mongodb or mongodb+srv
	DBURI           string        // Full connection string, overrides the parts above
	DBName          string        // Database name
	DBTimeout       time.Duration // Per-call database timeout
	DBMaxPool       uint64        // Maximum pooled connections
	JWTSecret       string        // Bearer credential signing secret
	StripeKey       string        // Payment processor secret key
	PaymentCurrency string        // Currency used for payment intents
	RedisAddr       string        // Redis server address, empty disables caching
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	CacheTTL        time.Duration // Cache entry lifetime
	CORSOrigins     []string      // Allowed CORS origins
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	maxPool, err := strconv.ParseUint(os.Getenv("DB_MAX_POOL"), 10, 64)
	if err != nil || maxPool == 0 {
		maxPool = 20
	}
	return &Config{
		Port:            getEnv("PORT", "4000"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASS"),
		DBHost:          getEnv("DB_HOST", "cluster0.7aech.mongodb.net"),
		DBScheme:        getEnv("DB_SCHEME", "mongodb+srv"),
		DBURI:           os.Getenv("DB_URI"),
		DBName:          getEnv("DB_NAME", "PORTFOLIO-SERVER-3"),
		DBTimeout:       getDuration("DB_TIMEOUT", 5*time.Second),
		DBMaxPool:       maxPool,
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeKey:       os.Getenv("STRIPE_SECRET_KEY"),
		PaymentCurrency: strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         redisDB,
		CacheTTL:        getDuration("CACHE_TTL", 60*time.Second),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		IsProd:          os.Getenv("IS_PROD") == "true",
	}
}

// Validate reports configuration that would leave the server unusable
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if c.DBURI == "" && c.DBHost == "" {
		return errors.New("DB_URI or DB_HOST is required")
	}
	if c.DBTimeout <= 0 {
		return errors.New("DB_TIMEOUT must be positive")
	}
	return nil
}

// MongoURI builds the connection string for the document database
func (c *Config) MongoURI() string {
	if c.DBURI != "" {
		return c.DBURI
	}
	var auth string
	if c.DBUser != "" {
		auth = url.UserPassword(c.DBUser, c.DBPassword).String() + "@"
	}
	return c.DBScheme + "://" + auth + c.DBHost + "/?retryWrites=true&w=majority"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
