package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	JWT           JWTConfig
	OpenFoodFacts OpenFoodFactsConfig
	Retention     RetentionConfig
	Logger        LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type OpenFoodFactsConfig struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
}

type RetentionConfig struct {
	Window        time.Duration
	SweepInterval time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly
	// (useful for Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	offTimeout, _ := strconv.Atoi(getEnv("OFF_TIMEOUT_SECONDS", "10"))
	offRate, _ := strconv.ParseFloat(getEnv("OFF_REQUESTS_PER_SEC", "2"), 64)
	retentionDays, _ := strconv.Atoi(getEnv("COMPARISON_RETENTION_DAYS", "30"))
	sweepMinutes, _ := strconv.Atoi(getEnv("RETENTION_SWEEP_MINUTES", "60"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ecocart"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		OpenFoodFacts: OpenFoodFactsConfig{
			BaseURL:        getEnv("OFF_BASE_URL", "https://world.openfoodfacts.org"),
			Timeout:        time.Duration(offTimeout) * time.Second,
			RequestsPerSec: offRate,
		},
		Retention: RetentionConfig{
			Window:        time.Duration(retentionDays) * 24 * time.Hour,
			SweepInterval: time.Duration(sweepMinutes) * time.Minute,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
