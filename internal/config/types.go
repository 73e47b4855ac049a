package config

// Config holds all configuration for the application.
type Config struct {
	Port     string
	LogLevel string
	DBName   string
	Turso    TursoConfig
	Slack    SlackConfig
	Match    MatchDefaults
}

type SlackConfig struct {
	Token     string
	ChannelID string
	DryRun    bool
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// MatchDefaults is the game the server starts with.
type MatchDefaults struct {
	Format      string
	ScoringMode string
	TargetScore int
	WinByTwo    bool
	PlayerNames []string
}

// Enabled reports whether both a token and a channel are set.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}
