package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// DefaultUpstreamURL is the evaluation API that the forwarder relays to.
const DefaultUpstreamURL = "https://5d7jeswgsk.execute-api.eu-west-2.amazonaws.com/uat"

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// getEnv returns the value of key, or fallback when it is unset or empty.
	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName:     getEnv("DB_NAME", "players.db"),
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		RosterFile: getEnv("ROSTER_FILE", ""),
		Upstream: UpstreamConfig{
			URL: getEnv("UPSTREAM_URL", DefaultUpstreamURL),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		PubSub: PubSubConfig{
			ProjectID: getEnv("GCP_PROJECT", ""),
			Topic:     getEnv("PUBSUB_TOPIC", "evaluation-saved"),
		},
	}
	return cfg
}

// ParseLevel maps LOG_LEVEL onto a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("Unknown log level, falling back to info", "level", level)
		return log.InfoLevel
	}
	return lvl
}
