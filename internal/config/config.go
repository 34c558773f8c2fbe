package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Results  ResultsConfig
	Mail     MailConfig
	LogLevel string
}

// ServerConfig holds HTTP API server configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// ResultsConfig holds drawing-results endpoint configuration
type ResultsConfig struct {
	BaseURL string
	Mock    bool
}

// MailConfig holds SMTP relay configuration
type MailConfig struct {
	Server string
	Port   string
	From   string
	To     []string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// .env files are optional
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if the config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "8080")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("Results.BaseURL", "https://data.ny.gov/resource/5xaw-6ayf.json")
	viper.SetDefault("Results.Mock", false)
	viper.SetDefault("Mail.Server", "localhost")
	viper.SetDefault("Mail.Port", "25")
	viper.SetDefault("LogLevel", "info")
}
