package config

import (
	_ "embed"
)

//go:embed defaults/flapper.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/flapper.yaml and is used when the embedded file fails to parse.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Bird: BirdConfig{
			X:         100,
			StartY:    250,
			Width:     40,
			Height:    30,
			Gravity:   0.5,
			JumpForce: -9,
			Tilt: TiltConfig{
				Factor: 0.05,
				Min:    -0.5,
				Max:    0.8,
			},
		},
		Pipes: PipeConfig{
			Width:         60,
			Gap:           180,
			Speed:         2,
			SpawnInterval: 90,
			MinHeight:     50,
			GroundMargin:  100,
			CapOverhang:   5,
			CapHeight:     20,
		},
		Particles: ParticleConfig{
			Count:           15,
			VX:              Range{Min: -2, Max: 2},
			VY:              Range{Min: 2, Max: 5},
			Size:            Range{Min: 3, Max: 9},
			Decay:           Range{Min: 0.02, Max: 0.04},
			Gravity:         0.2,
			AnimateWhenIdle: true,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     1.0,
			SampleRate: 44100,
		},
		TUI: TUIConfig{
			HalfBlock: true,
		},
		Window: WindowConfig{
			Scale: 1.0,
			Title: "Flapper",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
