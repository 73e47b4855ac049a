package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mauv0809/pickle-tracker/internal/config"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	resetFormat   string
	resetMode     string
	resetTarget   int
	resetWinByTwo bool
	resetPlayers  string
)

func init() {
	resetCmd.Flags().StringVar(&resetFormat, "format", string(scoring.FormatDoubles), "Game format: singles, doubles or team")
	resetCmd.Flags().StringVar(&resetMode, "mode", string(scoring.ModeSideOut), "Scoring mode: side-out or rally")
	resetCmd.Flags().IntVar(&resetTarget, "target", 11, "Points needed to win")
	resetCmd.Flags().BoolVar(&resetWinByTwo, "win-by-two", true, "Require a two point lead to win")
	resetCmd.Flags().StringVar(&resetPlayers, "players", "", "Comma separated player names, team A first")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(ackCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current score, server and side-switch state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/match", nil)
	},
}

var pointCmd = &cobra.Command{
	Use:       "point <A|B>",
	Short:     "Record a rally won by team A or B",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"A", "B"},
	RunE: func(cmd *cobra.Command, args []string) error {
		team := scoring.Team(strings.ToUpper(args[0]))
		if !team.Valid() {
			return fmt.Errorf("team must be A or B, got %q", args[0])
		}
		return performRequest(http.MethodPost, "/match/point?team="+url.QueryEscape(string(team)), nil)
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last recorded rally",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/match/undo", nil)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current game and start a new one",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := config.MatchDefaults{
			Format:      resetFormat,
			ScoringMode: resetMode,
			TargetScore: resetTarget,
			WinByTwo:    resetWinByTwo,
			PlayerNames: config.ParsePlayerNames(resetPlayers),
		}
		body, err := json.Marshal(defaults.MatchConfig())
		if err != nil {
			return fmt.Errorf("failed to encode game config: %w", err)
		}
		return performRequest(http.MethodPost, "/match", body)
	},
}

var ackCmd = &cobra.Command{
	Use:   "ack",
	Short: "Acknowledge that players have switched sides",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/match/side-switch/ack", nil)
	},
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the rally log of the current game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/match/log", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

func performRequest(method, endpoint string, body []byte) error {
	target := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
