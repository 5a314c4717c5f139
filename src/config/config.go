package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Providers       ProvidersConfig      `mapstructure:"providers"`
	Sync            SyncConfig           `mapstructure:"sync"`
}

type ServiceConfig struct {
	Port        string `mapstructure:"port"`
	LogLevel    string `mapstructure:"logLevel"`
	LogToFile   bool   `mapstructure:"logToFile"`
	LogFilePath string `mapstructure:"logFilePath"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Driver           string `mapstructure:"driver"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type ExternalClientConfig struct {
	YNAB YNABConfig `mapstructure:"ynab"`
	FX   FXConfig   `mapstructure:"fx"`
}

type YNABConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type FXConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type ProvidersConfig struct {
	// Order lists provider names in preference order; unknown names are ignored.
	Order     []string        `mapstructure:"order"`
	RB        RBConfig        `mapstructure:"rb"`
	CoinGecko CoinGeckoConfig `mapstructure:"coingecko"`
	Static    StaticConfig    `mapstructure:"static"`
}

type RBConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type CoinGeckoConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
}

type StaticConfig struct {
	Currency string             `mapstructure:"currency"`
	Prices   map[string]float64 `mapstructure:"prices"`
}

type SyncConfig struct {
	CronSpec string `mapstructure:"cronSpec"`
	Payee    string `mapstructure:"payee"`
	Memo     string `mapstructure:"memo"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Sync.CronSpec == "" {
		cfg.Sync.CronSpec = "0 6 * * *"
	}
	if cfg.Sync.Payee == "" {
		cfg.Sync.Payee = "Portfolio Sync"
	}
	if cfg.Sync.Memo == "" {
		cfg.Sync.Memo = "Automatic balance adjustment"
	}
	return &cfg, nil
}
