package playback

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
)

// toneAmplitude keeps synthesized tones well below clipping.
const toneAmplitude = 0.4 * math.MaxInt16

// toneStep is one segment of a synthesized clip. A zero frequency is silence.
// The frequency glides linearly from From to To over the step.
type toneStep struct {
	From     float64
	To       float64
	Duration time.Duration
}

// builtinPatterns describes the default clip for every catalog sound.
func builtinPatterns() map[alarm.Sound][]toneStep {
	return map[alarm.Sound][]toneStep{
		alarm.SoundClassic: {
			{From: 880, To: 880, Duration: 150 * time.Millisecond},
			{Duration: 100 * time.Millisecond},
			{From: 880, To: 880, Duration: 150 * time.Millisecond},
			{Duration: 600 * time.Millisecond},
		},
		alarm.SoundChime: {
			{From: 1046.5, To: 1046.5, Duration: 250 * time.Millisecond},
			{From: 784, To: 784, Duration: 250 * time.Millisecond},
			{From: 523.25, To: 523.25, Duration: 400 * time.Millisecond},
			{Duration: 500 * time.Millisecond},
		},
		alarm.SoundSiren: {
			{From: 600, To: 1200, Duration: 700 * time.Millisecond},
			{From: 1200, To: 600, Duration: 700 * time.Millisecond},
		},
	}
}

// synthesize renders the steps as stereo 16-bit little-endian PCM.
func synthesize(steps []toneStep) []byte {
	var total int

	for _, step := range steps {
		total += framesFor(step.Duration)
	}

	out := make([]byte, 0, total*bytesPerFrame)
	phase := 0.0

	for _, step := range steps {
		frames := framesFor(step.Duration)

		for i := range frames {
			var sample int16

			if step.From > 0 {
				progress := float64(i) / float64(frames)
				freq := step.From + (step.To-step.From)*progress
				phase += 2 * math.Pi * freq / SampleRate
				sample = int16(toneAmplitude * math.Sin(phase))
			}

			for range ChannelCount {
				out = binary.LittleEndian.AppendUint16(out, uint16(sample)) //nolint:gosec // Two's complement encoding.
			}
		}

		phase = math.Mod(phase, 2*math.Pi)
	}

	return out
}

func framesFor(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}
