package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/config"
	"github.com/abhisek/mcqgen/internal/logging"
	"github.com/abhisek/mcqgen/internal/store"
)

// envLogDir overrides the default log directory.
const envLogDir = "MCQGEN_LOG_DIR"

// skipBootstrap marks commands that run without a logger or config.
const skipBootstrap = "skip-bootstrap"

// appState is built once per process in the root pre-run hook.
type appState struct {
	log      *zap.Logger
	closeLog func() error
	settings config.Settings
}

var state = appState{log: zap.NewNop()}

var rootCmd = &cobra.Command{
	Use:   "mcqgen",
	Short: "Generate multiple-choice questions from text",
	Long: "mcqgen turns source text into multiple-choice questions, saves them as JSON or YAML,\n" +
		"and serves them over HTTP or as an interactive terminal quiz.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipBootstrap] != "" {
			return nil
		}
		return bootstrap(cmd)
	},
}

// Execute runs the root command and releases process resources.
func Execute() error {
	defer func() {
		if state.closeLog != nil {
			_ = state.closeLog()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to JSON config file")
	rootCmd.PersistentFlags().String("log-dir", "", "Directory for daily log files (overrides "+envLogDir+")")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MCQGEN_DB env var)")
	rootCmd.PersistentFlags().String("generator", "", "Question generator: placeholder or llm (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// bootstrap creates the logger, loads .env and the config file, then applies
// flag overrides.
func bootstrap(cmd *cobra.Command) error {
	logDir, _ := cmd.Flags().GetString("log-dir")
	if logDir == "" {
		logDir = os.Getenv(envLogDir)
	}

	log, closeLog, err := logging.New(logging.Options{Dir: logDir})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	state.log = log
	state.closeLog = closeLog

	config.LoadDotEnv(log)

	cfgPath, _ := cmd.Flags().GetString("config")
	settings := config.Resolve(log, config.Load(log, cfgPath))
	if g, _ := cmd.Flags().GetString("generator"); g != "" {
		settings.Generator = g
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	state.settings = settings

	log.Debug("bootstrap complete",
		zap.String("command", cmd.CommandPath()),
		zap.String("generator", settings.Generator))
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db_path from config, then MCQGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := state.settings.DBPath; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event database for the current command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
