package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/younwookim/tilerun/internal/application/session"
)

const ms = time.Millisecond

var cueNotes = map[session.Cue][]note{
	session.CueJump: {
		{freq: 330, duration: 120 * ms, wave: WaveSquare, sweep: 2400},
	},
	session.CueCoin: {
		{freq: 987.77, duration: 70 * ms, wave: WaveSquare},
		{freq: 1318.51, duration: 180 * ms, wave: WaveSquare},
	},
	session.CueHurt: {
		{freq: 220, duration: 250 * ms, wave: WaveSquare, sweep: -500},
	},
	session.CueStomp: {
		{freq: 0, duration: 60 * ms, wave: WaveNoise},
		{freq: 160, duration: 90 * ms, wave: WaveSine},
	},
	session.CuePowerup: {
		{freq: 523.25, duration: 80 * ms, wave: WaveSquare},
		{freq: 659.25, duration: 80 * ms, wave: WaveSquare},
		{freq: 783.99, duration: 80 * ms, wave: WaveSquare},
		{freq: 1046.5, duration: 160 * ms, wave: WaveSquare},
	},
	session.CueLevelComplete: {
		{freq: 523.25, duration: 120 * ms, wave: WaveSine},
		{freq: 659.25, duration: 120 * ms, wave: WaveSine},
		{freq: 783.99, duration: 120 * ms, wave: WaveSine},
		{freq: 1046.5, duration: 400 * ms, wave: WaveSine},
	},
	session.CueGameOver: {
		{freq: 392, duration: 200 * ms, wave: WaveSine},
		{freq: 311.13, duration: 200 * ms, wave: WaveSine},
		{freq: 261.63, duration: 500 * ms, wave: WaveSine, sweep: -60},
	},
}

// CueStreamer builds a fresh streamer for a cue at the given volume.
// Returns nil for unknown cues.
func CueStreamer(cue session.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, rate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// CueDuration returns the length of a cue
func CueDuration(cue session.Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.duration
	}
	return d
}
