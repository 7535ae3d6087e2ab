// spyke is a terminal playground for entity-environment scene compositions.
//
// Usage:
//
//	spyke list               - List catalog entity and environment types
//	spyke play [scene]       - Run a scene (bundled demo by default)
//	spyke menu               - Interactive scene picker
//	spyke validate <file>    - Check a composition file
//	spyke scenes             - Manage stored scenes
//	spyke serve              - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.spyke/scenes.db)
//	--config <path>  - Path to custom settings YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thinthought/spyke/internal/config"
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/storage"

	// Import catalog packages to register their types
	_ "github.com/thinthought/spyke/internal/entities"
	_ "github.com/thinthought/spyke/internal/environments"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spyke",
	Short: "Spyke - Entity-environment scenes in your terminal",
	Long: `Spyke is a terminal-based starter kit for building scenes out of
entities and environments. Environments contribute rules (gravity,
damping, hazards) to everything placed inside them; entities move,
render, and can anchor nested environments of their own.

Available commands:
  list      - Show the catalog of entity and environment types
  play      - Run a scene directly
  menu      - Interactive scene picker
  validate  - Check a composition file without running it
  scenes    - Manage scenes stored in the database
  serve     - Start SSH server for remote sessions

Examples:
  spyke list
  spyke play
  spyke play ./my-scene.json
  spyke menu
  spyke validate ./my-scene.json
  spyke serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scenes database (empty = from settings)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings loads platform settings and applies flag overrides.
func loadSettings() config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = config.DefaultSettings()
	}
	if flagFPS > 0 {
		settings.Window.FPS = flagFPS
	}
	if flagDBPath != "" {
		settings.Storage.DB = flagDBPath
	}
	return settings
}

// runtimeConfig builds the runtime config from settings and the
// terminal size. Zero window dimensions mean "use the full terminal".
func runtimeConfig(settings config.Settings) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	if settings.Window.Width > 0 {
		width = settings.Window.Width
	}
	if settings.Window.Height > 0 {
		height = settings.Window.Height
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.Window.FPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scene database, or returns nil with a warning.
func openStore(settings config.Settings) *storage.Store {
	store, err := storage.Open(settings.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scenes database: %v\n", err)
		return nil
	}
	return store
}
