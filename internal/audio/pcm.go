package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flapper/internal/game"
)

// RenderPCM renders a cue to signed 16-bit little-endian interleaved stereo.
func RenderPCM(c game.Cue, sampleRate int, volume float64) []byte {
	s := CueStreamer(c, beep.SampleRate(sampleRate), volume)

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
