/**
 * @description
 * This file handles the configuration management for the webhook server. It
 * uses the Viper library to read settings from environment variables or a
 * local .env file.
 *
 * @dependencies
 * - github.com/spf13/viper: configuration management.
 */
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration for the webhook server.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	// MonobankToken is the personal API token used to register the
	// webhook and query the API.
	MonobankToken string `mapstructure:"MONOBANK_TOKEN"`
	// WebhookBaseURL is the public address this server is reachable at;
	// the token path segment is appended to it on registration.
	WebhookBaseURL string `mapstructure:"WEBHOOK_BASE_URL"`
	// RabbitMQURL enables relaying received statement events to a broker
	// when set; empty disables the relay.
	RabbitMQURL       string `mapstructure:"RABBITMQ_URL"`
	StatementExchange string `mapstructure:"STATEMENT_EXCHANGE"`
}

// LoadConfig reads configuration from a .env file in dir or from the
// environment.
func LoadConfig(dir string) (Config, error) {
	viper.AddConfigPath(dir)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind env vars explicitly
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("MONOBANK_TOKEN")
	_ = viper.BindEnv("WEBHOOK_BASE_URL")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("STATEMENT_EXCHANGE")

	viper.SetDefault("SERVER_PORT", "8822")
	viper.SetDefault("STATEMENT_EXCHANGE", "statement_events")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
