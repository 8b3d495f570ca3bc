package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
	"github.com/tommynicol/hexflap/internal/platform/tui"
	"github.com/tommynicol/hexflap/internal/registry"
	"github.com/tommynicol/hexflap/internal/session"
	"github.com/tommynicol/hexflap/internal/sfx"
	"github.com/tommynicol/hexflap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (flap):
  Enter        - Start
  Space/Up/W   - Flap

Controls (flight):
  Enter        - Take off
  W/S          - Throttle up / down
  A/D          - Turn
  Space/X      - Climb / descend

Everywhere:
  P/Esc        - Pause
  M            - Toggle sound
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  hexflap play flap
  hexflap play flap --difficulty hard
  hexflap play flight --mute
  hexflap play flap --config ./my-flap.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound cues muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := newLogger()

	cfg := runtimeConfig()
	env, err := openRun(gameID, flagConfig, cfg, logger, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	restore := redirectToFile(logger)
	runErr := tui.Run(env.sess, cfg, logger, env.uiOptions()...)
	restore()
	env.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// run bundles a session with the resources it borrows.
type run struct {
	sess   *session.Session
	store  *storage.Store
	player *sfx.Player
}

// openRun creates the game, applies its config and wires storage and
// sound into a new session. A missing scores database only costs
// persistence. With audio set the device is opened even under --mute so
// the sound can be toggled back on while playing.
func openRun(gameID, configPath string, cfg core.RuntimeConfig, logger *log.Logger, audio bool) (*run, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (run 'hexflap list' to see available games)", gameID)
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.LoadConfig(configPath, preset); err != nil {
			return nil, fmt.Errorf("loading %s config: %w", gameID, err)
		}
	}
	game.Reset(cfg)

	r := &run{}
	opts := []session.Option{
		session.WithKey(registry.HighScoreKey(gameID)),
		session.WithLogger(logger.WithPrefix(gameID)),
	}

	r.store, err = storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable, high score will not persist", "error", err)
		r.store = nil
	} else {
		opts = append(opts, session.WithHighScores(r.store), session.WithRunRecorder(r.store))
	}

	if audio {
		r.player = sfx.NewPlayer()
		r.player.SetMuted(flagMute)
		if err := r.player.Init(); err != nil {
			logger.Debug("audio unavailable, playing silently", "error", err)
		}
		opts = append(opts, session.WithCueSink(r.player))
	}

	r.sess = session.New(game, opts...)
	logger.Debug("session ready", "game", gameID, "seed", cfg.Seed, "difficulty", preset)
	return r, nil
}

// uiOptions hands the sound player to the TUI for the mute key.
func (r *run) uiOptions() []tui.ModelOption {
	if r.player == nil {
		return nil
	}
	return []tui.ModelOption{tui.WithMuter(r.player)}
}

// Close releases the audio device and the database.
func (r *run) Close() {
	if r.player != nil {
		r.player.Close()
	}
	if r.store != nil {
		r.store.Close()
	}
}
