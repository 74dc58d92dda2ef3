// Package config loads bot configuration from the environment. A .env
// file in the working directory is honored when present but never
// overrides variables already set.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the bot needs to run
type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN" validate:"required"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET" validate:"required"`
	Port               string `envconfig:"PORT" default:"3000"`
	DataDir            string `envconfig:"DATA_DIR" default:"./data"`

	// FeedbackChannelID is where /feedback submissions are relayed.
	// The feedback commands report themselves unconfigured when empty.
	FeedbackChannelID string `envconfig:"FEEDBACK_CHANNEL_ID"`

	// DevelopmentCommands gates the test subcommands that force a
	// scheduled run on demand
	DevelopmentCommands bool `envconfig:"DEVELOPMENT_COMMANDS" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the environment (plus an optional .env file) into a Config
// and validates it
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}
