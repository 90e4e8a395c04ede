package assets

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/automoto/coindash/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache synthesized PCM per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) {
	if _, ok := l.sfxCache[id]; ok {
		return
	}
	l.sfxCache[id] = Synthesize(l.context.SampleRate(), config.Sound.Tones[id])
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	l.PreloadSFX(id)
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// Synthesize renders tones back to back as 16-bit little-endian stereo
// PCM, the format ebiten's audio players expect.
func Synthesize(sampleRate int, tones []config.Tone) []byte {
	var buf bytes.Buffer
	for _, t := range tones {
		samples := int(t.Duration * float64(sampleRate))
		phase := 0.0
		for i := range samples {
			progress := float64(i) / float64(samples)
			freq := t.StartHz + (t.EndHz-t.StartHz)*progress
			phase += freq / float64(sampleRate)

			v := t.Volume
			if math.Mod(phase, 1) >= 0.5 {
				v = -v
			}
			// linear fade out per tone
			v *= 1 - progress

			s := int16(v * math.MaxInt16)
			_ = binary.Write(&buf, binary.LittleEndian, s)
			_ = binary.Write(&buf, binary.LittleEndian, s)
		}
	}
	return buf.Bytes()
}
