package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// WeekStartDay is the weekday that weekly budgets and report windows
	// start on (0 = Sunday ... 6 = Saturday).
	WeekStartDay time.Weekday

	// DefaultPaidBy is used when an expense entry omits the payer.
	DefaultPaidBy string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "centavo"),
		DBPassword: getEnv("DB_PASSWORD", "centavo"),
		DBName:     getEnv("DB_NAME", "centavo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		DefaultPaidBy: getEnv("DEFAULT_PAID_BY", ""),
	}

	// Parse week start day
	wsdStr := getEnv("WEEK_START_DAY", "0")
	wsd, err := strconv.Atoi(wsdStr)
	if err != nil || wsd < 0 || wsd > 6 {
		log.Printf("Warning: invalid WEEK_START_DAY value '%s', falling back to Sunday\n", wsdStr)
		wsd = 0
	}
	config.WeekStartDay = time.Weekday(wsd)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
