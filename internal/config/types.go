package config

// Config holds all configuration for the application.
type Config struct {
	DBName     string
	Port       string
	LogLevel   string
	RosterFile string
	Upstream   UpstreamConfig
	Slack      SlackConfig
	Turso      TursoConfig
	PubSub     PubSubConfig
}

type UpstreamConfig struct {
	URL string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type PubSubConfig struct {
	ProjectID string
	Topic     string
}

// Enabled reports whether both the bot token and the channel are set.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

func (c PubSubConfig) Enabled() bool {
	return c.ProjectID != ""
}
