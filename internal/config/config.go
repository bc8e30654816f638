package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	PipelineVersion string
	CollectionType  string

	BaseURL      string
	CategoryPath string
	MaxPages     int
	PageDelay    time.Duration
	HTTPTimeout  time.Duration

	WorkerCount int
	OutputDir   string
	LogFile     string

	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration

	OpenAIKey       string
	ClassifierModel string
	MetricsPort     string
}

func Load() (*Config, error) {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("ENVIRONMENT", "dev"),
		PipelineVersion: getEnv("PIPELINE_VERSION", "v1.0"),
		CollectionType:  getEnv("COLLECTION_TYPE", "web_scraping"),
		BaseURL:         getEnv("BASE_URL", "https://www.magazinevoce.com.br"),
		CategoryPath:    getEnv("CATEGORY_PATH", "/magazineoficialweblu/celulares-e-smartphones/l/te/"),
		MaxPages:        getEnvInt("MAX_PAGES", 0), // 0 = todas
		WorkerCount:     getEnvInt("WORKER_COUNT", 4),
		OutputDir:       getEnv("OUTPUT_DIR", "data/raw"),
		LogFile:         getEnv("LOG_FILE", "data/logs/scraping.log"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ClassifierModel: getEnv("CLASSIFIER_MODEL", "gpt-4o-mini"),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
	}

	var err error
	if cfg.PageDelay, err = parseDurationEnv("PAGE_DELAY", "5s"); err != nil {
		return nil, fmt.Errorf("invalid PAGE_DELAY: %w", err)
	}
	if cfg.HTTPTimeout, err = parseDurationEnv("HTTP_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if cfg.CacheTTL, err = parseDurationEnv("CACHE_TTL", "168h"); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	if cfg.WorkerCount < 1 {
		return nil, errors.New("WORKER_COUNT must be >= 1")
	}
	if cfg.MaxPages < 0 {
		return nil, errors.New("MAX_PAGES must be >= 0")
	}

	return cfg, nil
}

// IsProduction reports whether logs should be restricted to info level.
func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return i
}

func parseDurationEnv(k, d string) (time.Duration, error) {
	raw := getEnv(k, d)
	dur, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if dur < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return dur, nil
}
