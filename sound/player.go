// Package sound plays the widget's two audio clips on a best-effort basis.
//
// Playback failures never leave this package: Play logs and returns. Clips
// are decoded once into memory buffers at the output sample rate, so each
// Play only creates a new streamer over the buffer. Overlapping plays of the
// same clip mix on the speaker.
package sound

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Clip names one of the playable sounds.
type Clip string

const (
	ClipTick Clip = "tick"
	ClipBip  Clip = "bip"
)

// DefaultSampleRate is the rate the speaker is opened with.
const DefaultSampleRate beep.SampleRate = 44100

var (
	ErrClipNotLoaded = errors.New("clip not loaded")
	ErrMuted         = errors.New("sound muted")
	ErrNoOutput      = errors.New("no audio output")
)

// Output receives the streamers to play.
type Output interface {
	Play(s beep.Streamer) error
}

type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) error {
	speaker.Play(s)
	return nil
}

type noOutput struct{ err error }

func (n noOutput) Play(beep.Streamer) error {
	return fmt.Errorf("%w: %v", ErrNoOutput, n.err)
}

// OpenSpeaker initialises the system speaker at rate. When no device is
// available the returned Output reports ErrNoOutput on every Play.
func OpenSpeaker(rate beep.SampleRate) Output {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return noOutput{err: err}
	}
	return speakerOutput{}
}

// Player holds decoded clips and the volume settings.
type Player struct {
	mu      sync.Mutex
	out     Output
	rate    beep.SampleRate
	buffers map[Clip]*beep.Buffer
	volume  float64
	muted   bool
}

// NewPlayer creates a player writing to out at the given sample rate.
func NewPlayer(out Output, rate beep.SampleRate) *Player {
	return &Player{out: out, rate: rate, buffers: make(map[Clip]*beep.Buffer)}
}

// LoadFS decodes the file at name from fsys into clip.
func (p *Player) LoadFS(fsys fs.FS, clip Clip, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	return p.Load(clip, name, f)
}

// Load decodes rc into clip. The decoder is chosen from the extension of
// name. rc is closed before Load returns.
func (p *Player) Load(clip Clip, name string, rc io.ReadCloser) error {
	defer rc.Close()

	streamer, format, err := decode(name, rc)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(4, format.SampleRate, p.rate, streamer)
		format.SampleRate = p.rate
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(src)
	if buffer.Len() == 0 {
		return fmt.Errorf("decode %s: no samples", name)
	}

	p.mu.Lock()
	p.buffers[clip] = buffer
	p.mu.Unlock()
	return nil
}

func decode(name string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		return wav.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	case ".ogg":
		return vorbis.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", ext)
	}
}

// Loaded reports whether clip has a decoded buffer.
func (p *Player) Loaded(clip Clip) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.buffers[clip]
	return ok
}

// SetVolume sets the gain as a power of two: 0 keeps the clip level, -1
// halves it.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// TryPlay starts clip from the beginning and returns why it could not.
func (p *Player) TryPlay(clip Clip) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return ErrMuted
	}
	b, ok := p.buffers[clip]
	if !ok {
		return fmt.Errorf("%w: %s", ErrClipNotLoaded, clip)
	}
	return p.out.Play(&effects.Volume{
		Streamer: b.Streamer(0, b.Len()),
		Base:     2,
		Volume:   p.volume,
	})
}

// Play starts clip and logs any failure.
func (p *Player) Play(clip Clip) {
	if err := p.TryPlay(clip); err != nil && !errors.Is(err, ErrMuted) {
		log.Printf("Error playing sound %s: %v", clip, err)
	}
}
