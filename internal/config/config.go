package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getInt := func(key string, fallback int) int {
		raw := getEnv(key, "")
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Error: environment variable %s must be an integer, got %q", key, raw)
		}
		return v
	}
	getBool := func(key string, fallback bool) bool {
		raw := getEnv(key, "")
		if raw == "" {
			return fallback
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			log.Fatalf("Error: environment variable %s must be a boolean, got %q", key, raw)
		}
		return v
	}

	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DBName:   getEnv("DB_NAME", ""),
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
			DryRun:    getBool("SLACK_DRY_RUN", false),
		},
		Match: MatchDefaults{
			Format:      getEnv("GAME_FORMAT", string(scoring.FormatDoubles)),
			ScoringMode: getEnv("SCORING_MODE", string(scoring.ModeSideOut)),
			TargetScore: getInt("TARGET_SCORE", 11),
			WinByTwo:    getBool("WIN_BY_TWO", true),
			PlayerNames: ParsePlayerNames(getEnv("PLAYER_NAMES", "")),
		},
	}
	return cfg
}

// ParsePlayerNames splits a comma separated list, keeping blank entries so that
// positions still map to teams.
func ParsePlayerNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// MatchConfig converts the defaults into a game config. Without names, the roster is
// filled with blanks sized for the format so that default player names are used.
func (d MatchDefaults) MatchConfig() scoring.MatchConfig {
	format := scoring.Format(d.Format)
	names := d.PlayerNames
	if len(names) == 0 {
		names = make([]string, format.PlayerCount())
	}
	return scoring.MatchConfig{
		Format:      format,
		ScoringMode: scoring.ScoringMode(d.ScoringMode),
		TargetScore: d.TargetScore,
		WinByTwo:    d.WinByTwo,
		PlayerNames: names,
	}
}
