package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Static key expected in the X-API-Key header on tool routes.
	APIKey string `mapstructure:"API_KEY"`

	// Pricing configuration.
	Currency    string  `mapstructure:"CURRENCY"`
	DeliveryFee float64 `mapstructure:"DELIVERY_FEE"`

	// Optional YAML file overriding the built-in equipment catalog.
	CatalogFile string `mapstructure:"CATALOG_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_KEY", "dev-key")
	viper.SetDefault("CURRENCY", "GHS")
	viper.SetDefault("DELIVERY_FEE", 100)
	viper.SetDefault("CATALOG_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
