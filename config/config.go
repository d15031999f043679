package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string
		Port        string
		FrontendURL string
		UploadDir   string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	JWT struct {
		AccessTokenSecret        string
		AccessTokenExpiryMinutes int
	}
	Fixtures struct {
		APIHost string
		APIKey  string
	}
	PDF struct {
		BrandTitle string
	}
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8090")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.UploadDir = getEnv("UPLOAD_DIR", "./public/uploads")

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "scoutbase_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.JWT.AccessTokenSecret = getEnv("JWT_ACCESS_TOKEN_SECRET", "change-me-access-secret")

	var err error
	cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %w", err)
	}

	cfg.Fixtures.APIHost = getEnv("FIXTURES_API_HOST", "v3.football.api-sports.io")
	cfg.Fixtures.APIKey = getEnv("FIXTURES_API_KEY", "")

	cfg.PDF.BrandTitle = getEnv("PDF_BRAND_TITLE", "9011 SOCCER SCOUTING")

	if cfg.JWT.AccessTokenSecret == "change-me-access-secret" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default JWT secret in production. Please set JWT_ACCESS_TOKEN_SECRET.")
	}
	if cfg.Fixtures.APIKey == "" {
		log.Println("WARNING: FIXTURES_API_KEY not set; fixtures search will be rejected by the upstream API.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		_, err = ConnectDB(*appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
