package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// SourceEmbedded names the built-in configuration in Load results.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.flapper/config.yaml -> ./configs/flapper.yaml -> embedded default.
// Files are merged over the defaults, so partial files are allowed.
// The second return value names the source that was used.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "flapper.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks invariants the simulation relies on.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size must be positive", ErrInvalid)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return fmt.Errorf("%w: bird size must be positive", ErrInvalid)
	case c.Bird.X < 0 || c.Bird.X+c.Bird.Width > c.Canvas.Width:
		return fmt.Errorf("%w: bird must fit inside the canvas horizontally", ErrInvalid)
	case c.Bird.Tilt.Min > c.Bird.Tilt.Max:
		return fmt.Errorf("%w: bird tilt min %.2f exceeds max %.2f", ErrInvalid, c.Bird.Tilt.Min, c.Bird.Tilt.Max)
	case c.Pipes.Width <= 0 || c.Pipes.Gap <= 0:
		return fmt.Errorf("%w: pipe width and gap must be positive", ErrInvalid)
	case c.Pipes.SpawnInterval <= 0:
		return fmt.Errorf("%w: pipe spawn interval must be positive", ErrInvalid)
	case c.Pipes.MaxTopHeight(c.Canvas.Height) <= c.Pipes.MinHeight:
		return fmt.Errorf("%w: pipe height range [%.0f, %.0f] is empty", ErrInvalid,
			c.Pipes.MinHeight, c.Pipes.MaxTopHeight(c.Canvas.Height))
	case c.Particles.Count < 0:
		return fmt.Errorf("%w: particle count must not be negative", ErrInvalid)
	}

	for _, r := range []struct {
		name string
		Range
	}{
		{"vx", c.Particles.VX},
		{"vy", c.Particles.VY},
		{"size", c.Particles.Size},
		{"decay", c.Particles.Decay},
	} {
		if r.Min > r.Max {
			return fmt.Errorf("%w: particle %s range is inverted", ErrInvalid, r.name)
		}
	}
	if c.Particles.Decay.Min <= 0 {
		return fmt.Errorf("%w: particle decay must be positive", ErrInvalid)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume must be within [0, 1]", ErrInvalid)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio sample rate must be positive", ErrInvalid)
	}
	return nil
}

// UserPath returns a path inside ~/.flapper, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".flapper"}, elem...)...)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
