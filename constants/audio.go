package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Bell Sound Timing (crop collected)
const (
	BellSoundDuration           = 400 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 350 * time.Millisecond
	BellSoundOvertoneRelease    = 150 * time.Millisecond
)

// Coin Sound Timing (win)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Buzz Sound Timing (game over)
const (
	BuzzSoundDuration = 450 * time.Millisecond
	BuzzSoundAttack   = 10 * time.Millisecond
	BuzzSoundRelease  = 200 * time.Millisecond
)

// Tick Sound Timing (pause toggle)
const (
	TickSoundDuration = 40 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 30 * time.Millisecond
)
