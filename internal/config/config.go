// Package config provides YAML-based configuration loading and validation
// for the flapper game and its front-ends.
package config

// Config contains all tunable parameters of the game.
type Config struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Bird      BirdConfig     `yaml:"bird"`
	Pipes     PipeConfig     `yaml:"pipes"`
	Particles ParticleConfig `yaml:"particles"`
	Audio     AudioConfig    `yaml:"audio"`
	TUI       TUIConfig      `yaml:"tui"`
	Window    WindowConfig   `yaml:"window"`
}

// CanvasConfig defines the logical playfield size in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the player object and its physics.
type BirdConfig struct {
	X         float64    `yaml:"x"`
	StartY    float64    `yaml:"start_y"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Gravity   float64    `yaml:"gravity"`
	JumpForce float64    `yaml:"jump_force"` // Negative = up
	Tilt      TiltConfig `yaml:"tilt"`
}

// TiltConfig maps vertical velocity to the cosmetic rotation of the bird.
type TiltConfig struct {
	Factor float64 `yaml:"factor"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// PipeConfig defines obstacle geometry and cadence.
type PipeConfig struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // Frames between spawns
	MinHeight     float64 `yaml:"min_height"`
	GroundMargin  float64 `yaml:"ground_margin"`
	CapOverhang   float64 `yaml:"cap_overhang"`
	CapHeight     float64 `yaml:"cap_height"`
}

// MaxTopHeight returns the upper bound for a pipe's top segment height.
func (p PipeConfig) MaxTopHeight(canvasHeight float64) float64 {
	return canvasHeight - p.Gap - p.MinHeight - p.GroundMargin
}

// Range is a closed interval used for randomized parameters.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp maps t in [0, 1) onto the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// ParticleConfig defines the flap particle effect.
type ParticleConfig struct {
	Count           int     `yaml:"count"`
	VX              Range   `yaml:"vx"`
	VY              Range   `yaml:"vy"`
	Size            Range   `yaml:"size"`
	Decay           Range   `yaml:"decay"`
	Gravity         float64 `yaml:"gravity"`
	AnimateWhenIdle bool    `yaml:"animate_when_idle"` // Keep decaying outside the playing state
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// TUIConfig defines terminal rendering options.
type TUIConfig struct {
	HalfBlock bool `yaml:"half_block"` // Two vertical pixels per cell
}

// WindowConfig defines desktop window options.
type WindowConfig struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}
