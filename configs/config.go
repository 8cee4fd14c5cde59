package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Chart     ChartConfig
	Watchlist WatchlistConfig
	Telegram  TelegramConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	OpsPort string
	Env     string
}

// BackendConfig holds trading backend configuration
type BackendConfig struct {
	URL string
}

// ChartConfig holds chart loading configuration
type ChartConfig struct {
	YahooSuffix string
}

// WatchlistConfig holds watchlist seeding and refresh configuration
type WatchlistConfig struct {
	File        string
	RefreshCron string
}

// TelegramConfig holds notification configuration
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			OpsPort: getEnv("OPS_PORT", "8081"),
			Env:     getEnv("GO_ENV", "development"),
		},
		Backend: BackendConfig{
			URL: getEnv("BACKEND_URL", "http://localhost:5000"),
		},
		Chart: ChartConfig{
			YahooSuffix: getEnv("YAHOO_SUFFIX", ".NS"),
		},
		Watchlist: WatchlistConfig{
			File:        getEnv("WATCHLIST_FILE", "configs/watchlist.yaml"),
			RefreshCron: getEnv("REFRESH_CRON", "*/1 * * * *"),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
	}
}

// WatchlistFile is the YAML shape of the default watchlist.
type WatchlistFile struct {
	Symbols []string `yaml:"symbols"`
}

// defaultSymbols seeds the watchlist when no file is configured.
var defaultSymbols = []string{"RELIANCE", "TCS", "INFY", "HDFCBANK", "BAJFINANCE"}

// LoadWatchlist reads the default watchlist from a YAML file. A missing file
// is not an error; the built-in defaults are returned instead.
func LoadWatchlist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultSymbols, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read watchlist file: %w", err)
	}

	var file WatchlistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse watchlist file: %w", err)
	}
	if len(file.Symbols) == 0 {
		return defaultSymbols, nil
	}
	return file.Symbols, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
