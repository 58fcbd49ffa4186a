// jettyboot is a terminal rendition of the Jetty Boot arcade game.
//
// Usage:
//
//	jettyboot                - Play (same as "jettyboot play")
//	jettyboot play           - Play in this terminal
//	jettyboot serve          - Start SSH server for remote play
//	jettyboot scores         - Show the saved name and high score
//	jettyboot config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <preset> - easy, normal or hard
//	--store <path>        - Override the high score location
//	--backend <name>      - file or sqlite
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagStore      string
	flagBackend    string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jettyboot",
	Short: "Jetty Boot - steer a rocket boot through the pillars",
	Long: `Jetty Boot is a one-button arcade game for the terminal.

Fly the boot through the gaps between pillars. Clear every pillar
of a level to fly away to the next one. Three crashes and it's over.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - Show the saved name and high score
  config   - Print the effective configuration

Examples:
  jettyboot
  jettyboot --difficulty hard
  jettyboot --backend sqlite
  jettyboot serve --ssh :2222
  jettyboot config > my-jettyboot.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "High score location (default depends on backend)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "High score backend: file, sqlite")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config from flags. An invalid config is fatal.
func loadConfig() config.JettyConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagStore != "" {
		cfg.Storage.Path = flagStore
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the process logger. fallback receives logs when no
// --log-file is given; the terminal game passes io.Discard so logs never
// draw over the screen.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		path := flagLogFile
		if strings.HasPrefix(path, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, path[2:])
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "jettyboot",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger, closeFn
}

// openStore opens the configured record store.
func openStore(cfg config.JettyConfig) (storage.RecordStore, error) {
	return storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
}
