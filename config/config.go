package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string

	DangerThreshold   float64 // default dropout-rate threshold for danger zones (%)
	PopularEnrollMin  int     // enrollments needed before a course counts as popular
	AnalysisCacheTTL  int     // seconds a computed course analysis stays cached
	AnalysisCronSpec  string  // cron spec for the background re-analysis job
	AlertWebhookURL   string  // optional webhook for critical danger-zone alerts
	AlertWebhookToken string
	RecommendMaxLimit int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "edulytics.db"),

		DangerThreshold:   getEnvFloat("DANGER_THRESHOLD", 10),
		PopularEnrollMin:  getEnvInt("POPULAR_ENROLL_MIN", 1500),
		AnalysisCacheTTL:  getEnvInt("ANALYSIS_CACHE_TTL", 300),
		AnalysisCronSpec:  getEnv("ANALYSIS_CRON_SPEC", "0 3 * * *"),
		AlertWebhookURL:   getEnv("ALERT_WEBHOOK_URL", ""),
		AlertWebhookToken: getEnv("ALERT_WEBHOOK_TOKEN", ""),
		RecommendMaxLimit: getEnvInt("RECOMMEND_MAX_LIMIT", 20),
	}

	if os.Getenv("DB_HOST") == "" {
		log.Println("Warning: DB_HOST not set. Falling back to local SQLite database.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
