package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thinthought/spyke/internal/composition"
	"github.com/thinthought/spyke/internal/config"
	"github.com/thinthought/spyke/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Run a scene",
	Long: `Run a scene composition.

With no argument, the bundled demo scene is used. A .json argument is
loaded as a composition file; anything else is looked up in the scene
database by name.

Controls:
  A/D or arrows  - Move
  Space/W/Up     - Jump
  P              - Pause
  R              - Restart
  F3             - Debug overlay
  B/Esc          - Back
  Q/Ctrl+C       - Quit

Examples:
  spyke play
  spyke play ./my-scene.json
  spyke play sandbox --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	settings := loadSettings()

	doc, err := resolveScene(args, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(settings)

	if runErr := tui.Run(doc, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveScene picks the composition to run: bundled demo, a file, or a
// stored scene.
func resolveScene(args []string, settings config.Settings) (composition.Document, error) {
	if len(args) == 0 {
		return composition.Demo(), nil
	}

	name := args[0]
	if strings.HasSuffix(name, ".json") || fileExists(name) {
		doc, err := composition.LoadFile(name)
		if err != nil {
			return composition.Document{}, err
		}
		return doc, nil
	}

	store := openStore(settings)
	if store == nil {
		return composition.Document{}, fmt.Errorf("scene %q is not a file and the database is unavailable", name)
	}
	defer store.Close()

	doc, err := store.LoadScene(name)
	if err != nil {
		return composition.Document{}, fmt.Errorf("%w\nRun 'spyke scenes list' to see stored scenes", err)
	}
	return doc, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
