package game

// Cue names a feedback sound.
type Cue int

const (
	CueFap      Cue = iota // Short descending chirp on every flap
	CueScore               // Flat tone when a pipe is cleared
	CueGameOver            // Long descending tone on collision
)

func (c Cue) String() string {
	switch c {
	case CueFap:
		return "fap"
	case CueScore:
		return "score"
	case CueGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Cues lists every cue, in declaration order.
var Cues = []Cue{CueFap, CueScore, CueGameOver}

// AudioSink plays cues. Play must not block the simulation.
type AudioSink interface {
	Play(c Cue)
}

// Presenter receives overlay and score display updates. It is write-only:
// the simulation never reads presentation state back.
type Presenter interface {
	ShowStart()
	HideStart()
	ShowGameOver()
	HideGameOver()
	SetScore(score int)
	SetFinalScore(score int)
}

// NopAudio discards all cues.
type NopAudio struct{}

func (NopAudio) Play(Cue) {}

// NopPresenter ignores all updates.
type NopPresenter struct{}

func (NopPresenter) ShowStart()        {}
func (NopPresenter) HideStart()        {}
func (NopPresenter) ShowGameOver()     {}
func (NopPresenter) HideGameOver()     {}
func (NopPresenter) SetScore(int)      {}
func (NopPresenter) SetFinalScore(int) {}
