// Package config holds the settings for a rendering session. Values come from
// built-in defaults, then an optional TOML file, then command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ushitora-anqou/aqdraw/constant"
)

var (
	ErrInvalidFPS         = errors.New("config: fps must be positive")
	ErrInvalidSize        = errors.New("config: window size must be positive")
	ErrInvalidRefreshRate = errors.New("config: refresh rate must be positive")
	ErrInvalidRefreshes   = errors.New("config: max refreshes must not be negative")
)

type Config struct {
	// Upper bound on executed frames per second.
	FPS float64 `toml:"fps"`

	// Initial window (container) size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`

	// Display refresh rate emulated by hosts without vsync.
	RefreshRate float64 `toml:"refresh_rate"`

	// Stop after this many host refreshes. Zero runs until the window closes.
	MaxRefreshes int `toml:"max_refreshes"`

	// Id of the canvas element on the web host.
	CanvasID string `toml:"canvas_id"`

	// PNG file the headless host writes its last frame to.
	Snapshot string `toml:"snapshot"`
}

func Default() *Config {
	return &Config{
		FPS:         constant.THROTTLE_FPS,
		Width:       constant.WINDOW_WIDTH,
		Height:      constant.WINDOW_HEIGHT,
		Title:       constant.WINDOW_TITLE,
		Resizable:   true,
		RefreshRate: constant.REFRESH_RATE,
		CanvasID:    constant.CANVAS_ID,
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// Parse decodes TOML on top of the defaults. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	conf := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if !(c.FPS > 0) {
		return ErrInvalidFPS
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidSize
	}
	if !(c.RefreshRate > 0) {
		return ErrInvalidRefreshRate
	}
	if c.MaxRefreshes < 0 {
		return ErrInvalidRefreshes
	}
	return nil
}
