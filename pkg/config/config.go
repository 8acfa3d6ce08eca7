package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SimilaritySourceFile     = "file"
	SimilaritySourcePostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Log       LogConfig
	Artifacts ArtifactConfig
	Database  DatabaseConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type LogConfig struct {
	Level  string
	Format string
}

type ArtifactConfig struct {
	SimilaritySource string
	SimilarityPath   string
	ScalerPath       string
	ModelPath        string
	DefaultTopN      int
	MaxTopN          int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	defaultTopN, err := getEnvInt("DEFAULT_TOP_N", 5)
	if err != nil {
		return nil, err
	}

	maxTopN, err := getEnvInt("MAX_TOP_N", 50)
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Shopper Spectrum"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: timeout,
			AllowOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", ""),
			Format: getEnv("LOG_FORMAT", ""),
		},
		Artifacts: ArtifactConfig{
			SimilaritySource: getEnv("SIMILARITY_SOURCE", SimilaritySourceFile),
			SimilarityPath:   getEnv("SIMILARITY_PATH", "artifacts/product_similarity.csv"),
			ScalerPath:       getEnv("SCALER_PATH", "artifacts/scaler.json"),
			ModelPath:        getEnv("MODEL_PATH", "artifacts/kmeans_model.json"),
			DefaultTopN:      defaultTopN,
			MaxTopN:          maxTopN,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "shopper_spectrum"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Artifacts.SimilaritySource {
	case SimilaritySourceFile:
		if c.Artifacts.SimilarityPath == "" {
			return errors.New("missing similarity table path")
		}
	case SimilaritySourcePostgres:
		if c.Database.Password == "" {
			return errors.New("missing database password")
		}
	default:
		return fmt.Errorf("unknown similarity source %q", c.Artifacts.SimilaritySource)
	}

	if c.Artifacts.ScalerPath == "" {
		return errors.New("missing scaler path")
	}

	if c.Artifacts.ModelPath == "" {
		return errors.New("missing cluster model path")
	}

	if c.Artifacts.DefaultTopN <= 0 {
		return errors.New("default top n must be greater than 0")
	}

	if c.Artifacts.MaxTopN < c.Artifacts.DefaultTopN {
		return errors.New("max top n must not be less than default top n")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}
