package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Garage   GarageConfig
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

type SessionConfig struct {
	ExpiryHours int
}

// GarageConfig holds the per-deployment price tables.
// Daily rates differ per garage, so they live in config, not code.
type GarageConfig struct {
	RateStandard    float64
	RateEV          float64
	PriceCarWash    float64
	PriceEVCharging float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("RATE_STANDARD", 15)
	viper.SetDefault("RATE_EV", 25)
	viper.SetDefault("ADDON_PRICE_CAR_WASH", 12)
	viper.SetDefault("ADDON_PRICE_EV_CHARGING", 8)

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
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Garage: GarageConfig{
			RateStandard:    viper.GetFloat64("RATE_STANDARD"),
			RateEV:          viper.GetFloat64("RATE_EV"),
			PriceCarWash:    viper.GetFloat64("ADDON_PRICE_CAR_WASH"),
			PriceEVCharging: viper.GetFloat64("ADDON_PRICE_EV_CHARGING"),
		},
	}

	return config, nil
}
