// hexflap is a terminal arcade for the HEX FLAP pipeline runner and the
// Pittsburgh flight simulator.
//
// Usage:
//
//	hexflap list              - List available games
//	hexflap play <game>       - Play a game
//	hexflap menu              - Pick games interactively
//	hexflap scores <game>     - Show the run history of a game
//	hexflap sim <game>        - Run a game headless
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.hexflap/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/tommynicol/hexflap/internal/games/flap"
	_ "github.com/tommynicol/hexflap/internal/games/flight"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexflap",
	Short: "hexflap - retro arcade games in your terminal",
	Long: `hexflap runs two small arcade games in the terminal:

  flap    - HEX FLAP, steer a chip through the instruction pipeline
  flight  - fly over Pittsburgh collecting fuel cells

Examples:
  hexflap list
  hexflap play flap
  hexflap play flight --difficulty hard
  hexflap scores flap
  hexflap sim flap --ticks 2000 --flap-every 18 --seed 7`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexflap/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger writing to stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "hexflap",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// redirectToFile points the logger at ~/.hexflap/hexflap.log while the TUI
// owns the terminal. The returned function restores stderr.
func redirectToFile(logger *log.Logger) func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".hexflap")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "hexflap.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return func() {}
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}
