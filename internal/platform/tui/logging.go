package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/game"
)

// LoggingPresenter forwards presentation calls and audio cues while logging
// them at debug level.
type LoggingPresenter struct {
	Next   game.Presenter
	Audio  game.AudioSink
	Logger *log.Logger
}

func (p LoggingPresenter) ShowStart() {
	p.Logger.Debug("show start")
	p.Next.ShowStart()
}

func (p LoggingPresenter) HideStart() {
	p.Logger.Debug("hide start")
	p.Next.HideStart()
}

func (p LoggingPresenter) ShowGameOver() {
	p.Logger.Debug("show game over")
	p.Next.ShowGameOver()
}

func (p LoggingPresenter) HideGameOver() {
	p.Logger.Debug("hide game over")
	p.Next.HideGameOver()
}

func (p LoggingPresenter) SetScore(n int) {
	p.Logger.Debug("score", "value", n)
	p.Next.SetScore(n)
}

func (p LoggingPresenter) SetFinalScore(n int) {
	p.Logger.Debug("final score", "value", n)
	p.Next.SetFinalScore(n)
}

// Play implements game.AudioSink.
func (p LoggingPresenter) Play(c game.Cue) {
	p.Logger.Debug("cue", "name", c)
	if p.Audio != nil {
		p.Audio.Play(c)
	}
}
