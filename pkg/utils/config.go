package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Pricing  PricingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// AdminConfig holds back-office auth settings. APIKeyHash is a bcrypt hash of
// the admin bearer key, never the key itself.
type AdminConfig struct {
	APIKeyHash string
}

// PricingConfig holds the rates applied when the server computes a booking's
// price breakdown itself.
type PricingConfig struct {
	TaxRate        float64
	ServiceFeeRate float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TAX_RATE", 0.0)
	viper.SetDefault("SERVICE_FEE_RATE", 0.0)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			APIKeyHash: viper.GetString("ADMIN_API_KEY_HASH"),
		},
		Pricing: PricingConfig{
			TaxRate:        viper.GetFloat64("TAX_RATE"),
			ServiceFeeRate: viper.GetFloat64("SERVICE_FEE_RATE"),
		},
	}

	return config, nil
}
