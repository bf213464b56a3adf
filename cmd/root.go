package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/config"
	"github.com/s0up4200/tmdbctl/tmdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *tmdb.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	sessionID string
	dryRun    bool
	noConfirm bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbctl",
	Short: "A tool to manage TheMovieDB lists from the command line",
	Long: `tmdbctl is a CLI tool for TheMovieDB. It can inspect the API
configuration, run the authentication flow to obtain a session, and create,
inspect, and modify your movie lists.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build version for the version command and self-update
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", "", "TMDb session id (overrides tmdb.session_id from config)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
}

// initializeApp initializes the configuration and the TMDb client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Create TMDb client
	opts := []tmdb.Option{
		tmdb.WithUserAgent("tmdbctl/" + version),
	}
	if cfg.TMDb.BaseURL != "" {
		opts = append(opts, tmdb.WithBaseURL(cfg.TMDb.BaseURL))
	}

	client, err = tmdb.NewClient(cfg.TMDb.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TMDb client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// currentSession returns the session id from the flag or config
func currentSession() (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}
	if cfg.TMDb.SessionID != "" {
		return cfg.TMDb.SessionID, nil
	}
	return "", fmt.Errorf("a session id is required: run 'tmdbctl auth' or set tmdb.session_id in config")
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tmdbctl %s (built %s)\n", version, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
