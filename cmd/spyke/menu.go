package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinthought/spyke/internal/composition"
	"github.com/thinthought/spyke/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive scene picker",
	Long: `Start spyke in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to run a scene. When you
leave a scene with B or Esc you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Run scene
  Tab          - Scene browser
  Q            - Quit

Examples:
  spyke menu
  spyke menu --fps 30
  spyke menu --db ./scenes.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	settings := loadSettings()
	store := openStore(settings)

	cfg := runtimeConfig(settings)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the scene browser
		if menuResult.WantsBrowser {
			goBack, brErr := tui.RunBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if brErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", brErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from browser
		}

		if menuResult.SceneName == "" {
			break
		}

		// Resolve the selected scene
		var doc composition.Document
		if menuResult.Bundled {
			doc = composition.Demo()
		} else if store != nil {
			loaded, loadErr := store.LoadScene(menuResult.SceneName)
			if loadErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
				continue
			}
			doc = loaded
		} else {
			continue
		}

		// Run the scene
		if err := tui.Run(doc, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
