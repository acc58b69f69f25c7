package game

import (
	"fmt"

	"github.com/vovakirdan/flapper/internal/config"
)

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// countingRand returns a constant and counts calls.
type countingRand struct {
	v     float64
	calls int
}

func (r *countingRand) Float64() float64 {
	r.calls++
	return r.v
}

// recorder captures presenter updates and cues in order.
type recorder struct {
	events []string
	cues   map[Cue]int
}

func newRecorder() *recorder {
	return &recorder{cues: make(map[Cue]int)}
}

func (r *recorder) Play(c Cue) {
	r.cues[c]++
	r.events = append(r.events, "cue:"+c.String())
}

func (r *recorder) ShowStart()    { r.events = append(r.events, "showStart") }
func (r *recorder) HideStart()    { r.events = append(r.events, "hideStart") }
func (r *recorder) ShowGameOver() { r.events = append(r.events, "showGameOver") }
func (r *recorder) HideGameOver() { r.events = append(r.events, "hideGameOver") }
func (r *recorder) SetScore(n int) {
	r.events = append(r.events, fmt.Sprintf("score:%d", n))
}
func (r *recorder) SetFinalScore(n int) {
	r.events = append(r.events, fmt.Sprintf("final:%d", n))
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func newTestSession(rng Rand) (*Session, *recorder) {
	rec := newRecorder()
	s := NewSession(config.Default(), WithRand(rng), WithAudio(rec), WithPresenter(rec))
	return s, rec
}
