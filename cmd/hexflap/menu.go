package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tommynicol/hexflap/internal/platform/tui"
	"github.com/tommynicol/hexflap/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start hexflap in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab for the
scoreboard. After a game you return to the menu.

Examples:
  hexflap menu
  hexflap menu --difficulty easy --mute`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound cues muted")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	restore := redirectToFile(logger)
	defer restore()

	cfg := runtimeConfig()
	for {
		// The menu reads best scores fresh each time around
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("scores database unavailable", "error", err)
			store = nil
		}

		var res tui.MenuResult
		if store != nil {
			res, err = tui.RunMenu(store, cfg)
		} else {
			res, err = tui.RunMenu(nil, cfg)
		}
		if err != nil {
			closeStore(store)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg.ScreenW, cfg.ScreenH = res.Config.ScreenW, res.Config.ScreenH

		switch {
		case res.Quit:
			closeStore(store)
			return
		case res.WantsScoreboard:
			var goBack bool
			if store != nil {
				goBack, err = tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			} else {
				goBack, err = tui.RunScoreboard(nil, "", cfg.ScreenW, cfg.ScreenH)
			}
			closeStore(store)
			if err != nil || !goBack {
				return
			}
			continue
		}
		closeStore(store)

		env, err := openRun(res.GameID, "", cfg, logger, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		runErr := tui.Run(env.sess, cfg, logger, env.uiOptions()...)
		env.Close()
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			return
		}
	}
}

func closeStore(s *storage.Store) {
	if s != nil {
		s.Close()
	}
}
