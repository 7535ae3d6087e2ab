package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in configuration, used when no settings
// file is found anywhere in the search path.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  0, // full terminal
			Height: 0,
			Title:  "spyke",
			FPS:    60,
		},
		Storage: StorageSettings{
			DB: "~/.spyke/scenes.db",
		},
	}
}
