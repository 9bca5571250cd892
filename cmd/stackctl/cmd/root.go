// Package cmd implements the stackctl command tree.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ganeshdatta23/skillstacker"
	"github.com/ganeshdatta23/skillstacker/internal/config"
	"github.com/ganeshdatta23/skillstacker/session"
)

var (
	apiURL    string
	jsonOut   bool
	outFormat string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "stackctl",
	Short: "Browse the SkillStacker catalog from the terminal",
	Long: `stackctl is a client for the SkillStacker content platform.

It browses the product catalog, the film/actor/category data explorer and
the publications collection, and manages your login session.

Examples:
  stackctl auth login --email ada@example.com
  stackctl films list --rating PG --limit 20
  stackctl products list --search academy
  stackctl reviews add 42 --rating 5 --title "Great" --content "Loved it"
  stackctl search bear --category films
  stackctl stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config and SKILLSTACKER_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print raw JSON output")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// getStore opens the configured session store. Failures degrade to a
// no-op store so read-only commands still work.
func getStore(cfg *config.Config) *session.Store {
	store, err := session.NewStore(cfg.Session.File)
	if err != nil {
		slog.Debug("session store unavailable", "error", err)
		store, _ = session.NewStore("")
	}
	return store
}

// getClient builds the API client from config, flags and the session
// store.
func getClient() (*skillstacker.Client, *session.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if apiURL != "" {
		cfg.API.URL = apiURL
	}

	store := getStore(cfg)
	client := skillstacker.NewClient(
		skillstacker.WithBaseURL(cfg.API.URL),
		skillstacker.WithTimeout(cfg.API.Timeout),
		skillstacker.WithSession(store),
		skillstacker.WithAuthExpiredHandler(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run `stackctl auth login` to sign in again.")
		}),
	)
	return client, store, nil
}

// getManager builds the session manager over a fresh client and store.
func getManager() (*session.Manager, *skillstacker.Client, error) {
	client, store, err := getClient()
	if err != nil {
		return nil, nil, err
	}
	return session.NewManager(client, store, slog.Default()), client, nil
}

// newTable returns a tabwriter for aligned table output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printTableHeader(w *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

// wantJSON reports whether structured output was requested.
func wantJSON() bool {
	return jsonOut || outFormat == "json" || outFormat == "yaml"
}

// printStructured renders v as JSON or YAML per the output flags.
func printStructured(v interface{}) error {
	if outFormat == "yaml" && !jsonOut {
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	return printJSON(v)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printError(err error) {
	if apiErr, ok := skillstacker.IsAPIError(err); ok {
		fmt.Fprintf(os.Stderr, "Error: %s (HTTP %d)\n", apiErr.Detail, apiErr.StatusCode)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// truncate shortens a string for table cells, counting runes so a
// multibyte title is never cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
