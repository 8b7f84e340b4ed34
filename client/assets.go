package client

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"math"

	"github.com/ConnorK747/RetroGame/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

//go:embed assets/version.txt
var Version string

type tone struct {
	freq     float64
	duration float64
}

// There are no sound files, every cue is a short synthesized beep.
var tones = map[string]tone{
	"jump": {freq: 660, duration: 0.06},
	"land": {freq: 180, duration: 0.04},
	"bump": {freq: 120, duration: 0.05},
	"fell": {freq: 220, duration: 0.25},
	"goal": {freq: 990, duration: 0.3},
}

type Assets struct {
	sounds map[string]*audio.Player
}

// Sound returns nil when audio is disabled.
func (a *Assets) Sound(name string) *audio.Player {
	if a.sounds == nil {
		return nil
	}
	sound := a.sounds[name]
	if sound == nil {
		log.Fatalf("invalid sound name: %s", name)
	}
	return sound
}

func (a *Assets) Play(name string) {
	p := a.Sound(name)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Println(err)
		return
	}
	p.Play()
}

func LoadAssets(cfg utils.AudioConfig) (*Assets, error) {
	a := &Assets{}
	if !cfg.Enabled {
		return a, nil
	}

	ctx := audio.NewContext(sampleRate)
	a.sounds = make(map[string]*audio.Player, len(tones))
	for name, t := range tones {
		p, err := audio.NewPlayer(ctx, bytes.NewReader(beep(t.freq, t.duration)))
		if err != nil {
			return nil, fmt.Errorf("sound %s: %w", name, err)
		}
		p.SetVolume(cfg.Volume)
		a.sounds[name] = p
	}
	return a, nil
}

// beep synthesizes a sine wave as 16-bit little endian stereo PCM, fading
// out over the last quarter to avoid a click.
func beep(freq, duration float64) []byte {
	n := int(sampleRate * duration)
	fade := n / 4
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 1.0
		if left := n - i; left < fade {
			amp = float64(left) / float64(fade)
		}
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		s := int16(v * amp * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
