package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/spaceclub/spaceclub/input"
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/scene"
	"github.com/spaceclub/spaceclub/terminal"
)

// ErrInvalid marks every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
// Precedence: defaults, then file, then SPACECLUB_ env, then CLI flags
type Config struct {
	Debug      bool   `toml:"debug"`
	Color      string `toml:"color"`
	FPS        int    `toml:"fps"`
	ContentDir string `toml:"content_dir"`

	Audio Audio `toml:"audio"`
	Scene Scene `toml:"scene"`

	// Keys rebinds keys to action names, merged over the defaults
	Keys map[string]string `toml:"keys"`
}

// Audio holds cue playback settings
type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// Scene mirrors scene.Config with file-friendly names
type Scene struct {
	ZoomMin         float64 `toml:"zoom_min"`
	ZoomMax         float64 `toml:"zoom_max"`
	ZoomStep        float64 `toml:"zoom_step"`
	DragSensitivity float64 `toml:"drag_sensitivity"`
	Inertia         bool    `toml:"inertia"`
	CoastDecay      float64 `toml:"coast_decay"`
	FocusEase       bool    `toml:"focus_ease"`
	FocusRate       float64 `toml:"focus_rate"`
	Starfield       string  `toml:"starfield"`
	StarCount       int     `toml:"star_count"`
}

// Default returns configuration built from parameter constants
func Default() Config {
	sc := scene.DefaultConfig()
	return Config{
		Color: "auto",
		FPS:   parameter.DefaultFPS,
		Audio: Audio{
			Enabled:      true,
			MasterVolume: parameter.AudioDefaultVolume,
		},
		Scene: Scene{
			ZoomMin:         sc.ZoomMin,
			ZoomMax:         sc.ZoomMax,
			ZoomStep:        sc.ZoomStep,
			DragSensitivity: sc.DragSensitivity,
			Inertia:         sc.Inertia,
			CoastDecay:      sc.CoastDecay,
			FocusEase:       sc.FocusEase,
			FocusRate:       sc.FocusRate,
			Starfield:       string(sc.Starfield),
			StarCount:       sc.StarCount,
		},
	}
}

// LoadFile decodes a TOML file over cfg; keys absent from the file keep their value
func LoadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown keys %v: %w", path, undecoded, ErrInvalid)
	}
	return nil
}

// Load builds the configuration from defaults, an optional file and the environment
func Load(path string, lookup LookupFunc) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	ApplyEnv(&cfg, lookup)
	return cfg, nil
}

// Validate reports every invalid setting joined into one error
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}

	if _, err := terminal.ParseColorMode(c.Color); err != nil {
		fail("color %q", c.Color)
	}
	if c.FPS <= 0 {
		fail("fps %d must be positive", c.FPS)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		fail("audio.master_volume %v outside [0,1]", c.Audio.MasterVolume)
	}

	s := c.Scene
	if s.ZoomMin <= 0 {
		fail("scene.zoom_min %v must be positive", s.ZoomMin)
	}
	if s.ZoomMin > s.ZoomMax {
		fail("scene.zoom_min %v above zoom_max %v", s.ZoomMin, s.ZoomMax)
	}
	if s.ZoomStep <= 0 {
		fail("scene.zoom_step %v must be positive", s.ZoomStep)
	}
	if s.CoastDecay <= 0 {
		fail("scene.coast_decay %v must be positive", s.CoastDecay)
	}
	if s.FocusRate <= 0 || s.FocusRate > 1 {
		fail("scene.focus_rate %v outside (0,1]", s.FocusRate)
	}
	if s.StarCount < 0 {
		fail("scene.star_count %d is negative", s.StarCount)
	}
	switch scene.StarfieldMode(s.Starfield) {
	case scene.StarfieldTwinkle, scene.StarfieldDrift:
	default:
		fail("scene.starfield %q", s.Starfield)
	}

	if _, err := input.ParseKeyBindings(c.Keys); err != nil {
		errs = append(errs, fmt.Errorf("%v: %w", err, ErrInvalid))
	}

	return errors.Join(errs...)
}

// KeyTable returns the default bindings with Keys applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.ParseKeyBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// ColorMode resolves the color setting, detecting from the environment for auto
func (c Config) ColorMode() (terminal.ColorMode, error) {
	return terminal.ParseColorMode(c.Color)
}

// SceneConfig converts to the scene package's tuning
func (c Config) SceneConfig() scene.Config {
	sc := scene.DefaultConfig()
	sc.ZoomMin = c.Scene.ZoomMin
	sc.ZoomMax = c.Scene.ZoomMax
	sc.ZoomStep = c.Scene.ZoomStep
	sc.DragSensitivity = c.Scene.DragSensitivity
	sc.Inertia = c.Scene.Inertia
	sc.CoastDecay = c.Scene.CoastDecay
	sc.FocusEase = c.Scene.FocusEase
	sc.FocusRate = c.Scene.FocusRate
	sc.Starfield = scene.StarfieldMode(c.Scene.Starfield)
	sc.StarCount = c.Scene.StarCount
	return sc
}
