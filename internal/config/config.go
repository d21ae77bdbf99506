package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"MarketMonitor/internal/model"
)

// CategoryConfig is one configured group of tickers.
type CategoryConfig struct {
	Name    string   `yaml:"name"`
	Tickers []string `yaml:"tickers"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
		APIBase  string `yaml:"api_base"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider string `yaml:"provider"` // yahoo | vstrader
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Schedule struct {
		Cron string `yaml:"cron"` // empty: run once and exit
	} `yaml:"schedule"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
	Proxy      string            `yaml:"proxy"`
	Categories []CategoryConfig  `yaml:"categories"`
	Names      map[string]string `yaml:"names"`
}

// DefaultCategories is used when the config file lists none.
var DefaultCategories = []CategoryConfig{
	{Name: "Indici", Tickers: []string{"^GSPC", "^IXIC", "^DJI", "FTSEMIB.MI", "^STOXX50E", "^GDAXI", "^N225"}},
	{Name: "ETF", Tickers: []string{"SWDA.MI", "CSSPX.MI", "EIMI.MI", "VWCE.DE"}},
	{Name: "Materie Prime", Tickers: []string{"GC=F", "SI=F", "CL=F"}},
	{Name: "Valute", Tickers: []string{"EURUSD=X", "EURCHF=X"}},
	{Name: "Crypto", Tickers: []string{"BTC-USD", "ETH-USD"}},
}

// DefaultNames maps default tickers to display names.
var DefaultNames = map[string]string{
	"^GSPC":      "S&P 500",
	"^IXIC":      "Nasdaq",
	"^DJI":       "Dow Jones",
	"FTSEMIB.MI": "FTSE MIB",
	"^STOXX50E":  "Euro Stoxx 50",
	"^GDAXI":     "DAX",
	"^N225":      "Nikkei 225",
	"SWDA.MI":    "iShares MSCI World",
	"CSSPX.MI":   "iShares Core S&P 500",
	"EIMI.MI":    "iShares MSCI EM IMI",
	"VWCE.DE":    "Vanguard FTSE All-World",
	"GC=F":       "Oro",
	"SI=F":       "Argento",
	"CL=F":       "Petrolio WTI",
	"EURUSD=X":   "EUR/USD",
	"EURCHF=X":   "EUR/CHF",
	"BTC-USD":    "Bitcoin",
	"ETH-USD":    "Ethereum",
}

// Load reads an optional .env file and the YAML config, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("VSTRADER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("VSTRADER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Telegram.APIBase == "" {
		cfg.Telegram.APIBase = "https://api.telegram.org"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = slices.Clone(DefaultCategories)
		if cfg.Names == nil {
			cfg.Names = maps.Clone(DefaultNames)
		}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	switch c.DataSource.Provider {
	case "yahoo":
	case "vstrader":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for vstrader")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	seen := make(map[string]bool)
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("categories[%d].name is required", i)
		}
		if seen[cat.Name] {
			return fmt.Errorf("category %q is listed twice", cat.Name)
		}
		seen[cat.Name] = true
		for j, t := range cat.Tickers {
			if strings.TrimSpace(t) == "" {
				return fmt.Errorf("categories[%d].tickers[%d] is empty", i, j)
			}
		}
	}
	return nil
}

// DisplayName returns the configured name for symbol, or the symbol itself.
func (c *Config) DisplayName(symbol string) string {
	if name, ok := c.Names[symbol]; ok && name != "" {
		return name
	}
	return symbol
}

// Instruments resolves the configured categories into ordered instruments.
func (c *Config) Instruments() []model.Category {
	cats := make([]model.Category, len(c.Categories))
	for i, cc := range c.Categories {
		cat := model.Category{Name: cc.Name, Instruments: make([]model.Instrument, len(cc.Tickers))}
		for j, t := range cc.Tickers {
			cat.Instruments[j] = model.Instrument{Symbol: t, Name: c.DisplayName(t), Category: cc.Name}
		}
		cats[i] = cat
	}
	return cats
}
