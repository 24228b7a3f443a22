// Package config loads sketchpad settings from a TOML file and the
// command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"MySketchPad/internal/logging"
)

type Config struct {
	WindowWidth  float64  `toml:"window_width"`
	WindowHeight float64  `toml:"window_height"`
	DefaultColor string   `toml:"default_color"`
	DefaultWidth float64  `toml:"default_width"`
	MinWidth     float64  `toml:"min_width"`
	MaxWidth     float64  `toml:"max_width"`
	Palette      []string `toml:"palette"`
	Background   string   `toml:"background"`
	ExportName   string   `toml:"export_name"`
	LogLevel     string   `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		WindowWidth:  1024,
		WindowHeight: 768,
		DefaultColor: "#000000",
		DefaultWidth: 5,
		MinWidth:     1,
		MaxWidth:     50,
		Palette:      []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00"},
		Background:   "#ffffff",
		ExportName:   "drawing.png",
		LogLevel:     "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logging.Logger().Warn("unknown config key", "file", path, "key", key.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// FromArgs parses command-line flags, loads the file named by -config and
// applies any flags given explicitly on top of it.
func FromArgs(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("sketchpad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", os.Getenv("SKETCHPAD_CONFIG"), "path to a TOML config file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	width := fs.Float64("width", 0, "window width")
	height := fs.Float64("height", 0, "window height")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "width":
			cfg.WindowWidth = *width
		case "height":
			cfg.WindowHeight = *height
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %vx%v must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.MinWidth <= 0 || c.MaxWidth < c.MinWidth {
		errs = append(errs, fmt.Errorf("width range [%v, %v] is invalid", c.MinWidth, c.MaxWidth))
	}
	if c.DefaultWidth < c.MinWidth || c.DefaultWidth > c.MaxWidth {
		errs = append(errs, fmt.Errorf("default_width %v is outside [%v, %v]", c.DefaultWidth, c.MinWidth, c.MaxWidth))
	}
	if _, err := ParseColor(c.DefaultColor); err != nil {
		errs = append(errs, fmt.Errorf("default_color: %w", err))
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette is empty"))
	}
	for i, p := range c.Palette {
		if _, err := ParseColor(p); err != nil {
			errs = append(errs, fmt.Errorf("palette[%d]: %w", i, err))
		}
	}
	if strings.TrimSpace(c.ExportName) == "" {
		errs = append(errs, errors.New("export_name is empty"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// PaletteColors returns the parsed palette. Call after Validate.
func (c *Config) PaletteColors() []color.NRGBA {
	out := make([]color.NRGBA, 0, len(c.Palette))
	for _, p := range c.Palette {
		col, err := ParseColor(p)
		if err != nil {
			continue
		}
		out = append(out, col)
	}
	return out
}

// ParseColor parses a #rgb or #rrggbb colour into an opaque colour.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexColor formats c as #rrggbb, ignoring alpha.
func HexColor(c color.NRGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
