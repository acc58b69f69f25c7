package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, want)
	}
}

func TestDefaultPipeRange(t *testing.T) {
	cfg := Default()
	got := cfg.Pipes.MaxTopHeight(cfg.Canvas.Height)
	if got != 270 {
		t.Errorf("MaxTopHeight() = %v, expected 270", got)
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("pipes:\n  speed: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Pipes.Speed != 3 {
		t.Errorf("Pipes.Speed = %v, expected 3", cfg.Pipes.Speed)
	}
	if cfg.Pipes.Gap != 180 {
		t.Errorf("Pipes.Gap = %v, expected default 180", cfg.Pipes.Gap)
	}
	if cfg.Bird.JumpForce != -9 {
		t.Errorf("Bird.JumpForce = %v, expected default -9", cfg.Bird.JumpForce)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero canvas", func(c *Config) { c.Canvas.Height = 0 }},
		{"zero bird", func(c *Config) { c.Bird.Width = 0 }},
		{"bird left of canvas", func(c *Config) { c.Bird.X = -1 }},
		{"bird past right edge", func(c *Config) { c.Bird.X = 361 }},
		{"inverted tilt", func(c *Config) { c.Bird.Tilt.Min = 1 }},
		{"zero gap", func(c *Config) { c.Pipes.Gap = 0 }},
		{"zero interval", func(c *Config) { c.Pipes.SpawnInterval = 0 }},
		{"empty pipe range", func(c *Config) { c.Canvas.Height = 380 }},
		{"negative count", func(c *Config) { c.Particles.Count = -1 }},
		{"inverted vx", func(c *Config) { c.Particles.VX = Range{Min: 2, Max: -2} }},
		{"zero decay", func(c *Config) { c.Particles.Decay = Range{Min: 0, Max: 0.04} }},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"zero rate", func(c *Config) { c.Audio.SampleRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestValidateReportsFirstInvertedRange(t *testing.T) {
	cfg := Default()
	cfg.Particles.VY = Range{Min: 5, Max: 2}
	cfg.Particles.Size = Range{Min: 9, Max: 3}
	cfg.Particles.Decay = Range{Min: 0.04, Max: 0.02}

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "particle vy range") {
			t.Fatalf("Validate() = %v, expected the vy range to be reported", err)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("bird:\n  gravity: 0.4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Bird.Gravity != 0.4 {
		t.Errorf("Bird.Gravity = %v, expected 0.4", cfg.Bird.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  height: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Error("marshalled config does not parse back to the defaults")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, "x.db") {
		t.Errorf("ExpandHome(~) = %q", got)
	}
}
