package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/harvest/config"
	"github.com/lixenwraith/harvest/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave of the given shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *config.AudioConfig, s SoundType) float64 {
	v, ok := cfg.EffectVolumes[s.String()]
	if !ok {
		v = 1.0
	}
	return v * cfg.MasterVolume
}

// Bell fundamentals by crop points: E5, G#5, B5
var collectPitches = [...]float64{659.25, 830.61, 987.77}

// collectPitch returns the bell fundamental for a crop worth points
func collectPitch(points int) float64 {
	idx := min(max(points, 1), len(collectPitches)) - 1
	return collectPitches[idx]
}

// CreateCollectSound generates a bell whose pitch rises with crop value
func CreateCollectSound(cfg *config.AudioConfig, points int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := collectPitch(points)

	fund := NewOscillator(freq, constants.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, rate)

	// Octave overtone
	over := NewOscillator(freq*2, constants.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundCollect))
}

// CreateWinSound generates a rising two-note chime
func CreateWinSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constants.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CoinSoundNote1Duration, constants.CoinSoundAttack, constants.CoinSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CoinSoundNote2Duration, constants.CoinSoundAttack, constants.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundWin))
}

// CreateGameOverSound generates a low saw buzz
func CreateGameOverSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, constants.BuzzSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.BuzzSoundDuration, constants.BuzzSoundAttack, constants.BuzzSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundGameOver))
}

// CreatePauseSound generates a short click
func CreatePauseSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1200.0, constants.TickSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundPause))
}

// GetSoundEffect returns the streamer for a sound; points only affect SoundCollect
func GetSoundEffect(soundType SoundType, cfg *config.AudioConfig, points int) beep.Streamer {
	switch soundType {
	case SoundCollect:
		return CreateCollectSound(cfg, points)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundPause:
		return CreatePauseSound(cfg)
	default:
		return nil
	}
}
