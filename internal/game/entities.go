// Package game implements the flapper simulation: a bird falling under
// gravity, flapping through a stream of gated pipes, scoring one point per
// pipe cleared.
//
// The package is pure: it performs no I/O, owns no goroutines and keeps no
// package-level state. Rendering goes through a canvas.Surface, sounds and
// overlay panels through the AudioSink and Presenter interfaces, and frame
// pacing through a Scheduler supplied by the host.
package game

import (
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Bird is the player-controlled object. X, Width and Height never change.
type Bird struct {
	X, Y     float64
	Velocity float64 // Vertical, positive = down
	Width    float64
	Height   float64
	Rotation float64 // Cosmetic tilt in radians, never used for collision
}

// Box returns the bird's collision box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Center returns the center of the bird.
func (b Bird) Center() (float64, float64) {
	return b.Box().Center()
}

// Pipe is a pair of gates with an opening of the configured gap height below
// TopHeight.
type Pipe struct {
	X         float64
	TopHeight float64
	Scored    bool // Set once, when the trailing edge passes the bird
}

// Segments returns the upper and lower gate boxes. The upper one spans from
// the top of the canvas to TopHeight, the lower one from the end of the gap
// to the bottom.
func (p Pipe) Segments(pc config.PipeConfig, canvasHeight float64) (top, bottom core.Box) {
	bottomY := p.TopHeight + pc.Gap
	return core.NewBox(p.X, 0, pc.Width, p.TopHeight),
		core.NewBox(p.X, bottomY, pc.Width, canvasHeight-bottomY)
}

// Particle is a short-lived visual effect point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64 // In (0, 1]; removed once it reaches zero
	Decay  float64
}
