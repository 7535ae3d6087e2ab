// Package config provides YAML-based settings loading for the starter kit:
// window/clock parameters and storage locations.
package config

// Settings contains all platform-level configuration.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Storage StorageSettings `yaml:"storage"`
}

// WindowSettings defines the playfield and clock.
type WindowSettings struct {
	// Width and Height are the playfield size in cells. Zero means use
	// the full terminal size.
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// FPS is the simulation tick rate.
	FPS int `yaml:"fps"`
}

// StorageSettings defines where persistent data lives.
type StorageSettings struct {
	// DB is the path to the scene database. A leading ~ expands to the
	// user's home directory.
	DB string `yaml:"db"`
}
