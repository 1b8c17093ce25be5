package config

import (
	"log"
	"os"
	"strconv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SPACECLUB_"

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// OSEnv reads the process environment
var OSEnv LookupFunc = os.LookupEnv

// ApplyEnv overrides cfg from SPACECLUB_* variables; unparsable values are logged and ignored
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		return
	}
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}
	parseBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			} else {
				log.Printf("config: ignoring %s%s=%q: %v", EnvPrefix, name, v, err)
			}
		}
	}
	parseFloat := func(name string, dst *float64) {
		if v, ok := get(name); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			} else {
				log.Printf("config: ignoring %s%s=%q: %v", EnvPrefix, name, v, err)
			}
		}
	}

	parseBool("DEBUG", &cfg.Debug)
	if v, ok := get("COLOR"); ok {
		cfg.Color = v
	}
	if v, ok := get("FPS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FPS = n
		} else {
			log.Printf("config: ignoring %sFPS=%q: %v", EnvPrefix, v, err)
		}
	}
	if v, ok := get("CONTENT_DIR"); ok {
		cfg.ContentDir = v
	}

	parseBool("AUDIO_ENABLED", &cfg.Audio.Enabled)

	// Master volume is 0-100, converted to 0.0-1.0 and clamped
	if v, ok := get("MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		} else {
			log.Printf("config: ignoring %sMASTER_VOLUME=%q: %v", EnvPrefix, v, err)
		}
	}

	parseFloat("ZOOM_STEP", &cfg.Scene.ZoomStep)
	parseBool("INERTIA", &cfg.Scene.Inertia)
	if v, ok := get("STARFIELD"); ok {
		cfg.Scene.Starfield = v
	}
}
