package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tommynicol/hexflap/internal/core"
)

var (
	flagTicks     int
	flagFlapEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless",
	Long: `Run a game without a terminal UI through the same session tick path.
The run starts immediately and presses jump every --flap-every ticks
(0 never presses). The outcome is logged and recorded like a normal run.

Use --seed for a reproducible run.

Examples:
  hexflap sim flap --ticks 3000 --flap-every 20 --seed 42
  hexflap sim flight --ticks 600 --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 20, "Press jump every N ticks (0 = never)")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := newLogger()

	cfg := runtimeConfig()
	env, err := openRun(gameID, flagConfig, cfg, logger, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()

	sess := env.sess
	sess.Enqueue(core.ActionStart)

	var res core.StepResult
	cues := map[core.Cue]int{}
	for i := 0; i < flagTicks; i++ {
		if flagFlapEvery > 0 && i > 0 && i%flagFlapEvery == 0 {
			sess.Enqueue(core.ActionJump)
		}
		res = sess.Tick()
		for _, c := range res.Cues {
			cues[c]++
		}
		if res.State.GameOver() {
			break
		}
	}

	logger.Info("simulation finished",
		"game", gameID,
		"seed", cfg.Seed,
		"ticks", res.State.Tick,
		"phase", res.State.Phase,
		"score", res.State.Score,
		"high", res.State.HighScore,
		"jumps", cues[core.CueJump],
		"run", sess.RunID(),
	)
}
