package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toneWAV builds a mono 16-bit PCM wav of n samples.
func toneWAV(rate, n int) []byte {
	data := new(bytes.Buffer)
	for i := 0; i < n; i++ {
		v := int16(math.Sin(2*math.Pi*440*float64(i)/float64(rate)) * 8000)
		binary.Write(data, binary.LittleEndian, v)
	}

	b := new(bytes.Buffer)
	b.WriteString("RIFF")
	binary.Write(b, binary.LittleEndian, uint32(36+data.Len()))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(b, binary.LittleEndian, uint32(16))
	binary.Write(b, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(b, binary.LittleEndian, uint16(1)) // mono
	binary.Write(b, binary.LittleEndian, uint32(rate))
	binary.Write(b, binary.LittleEndian, uint32(rate*2))
	binary.Write(b, binary.LittleEndian, uint16(2))
	binary.Write(b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	binary.Write(b, binary.LittleEndian, uint32(data.Len()))
	b.Write(data.Bytes())
	return b.Bytes()
}

type recordingOutput struct {
	mu     sync.Mutex
	played []beep.Streamer
	err    error
}

func (r *recordingOutput) Play(s beep.Streamer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.played = append(r.played, s)
	return nil
}

func drain(s beep.Streamer) int {
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

func TestLoadAndPlay(t *testing.T) {
	out := &recordingOutput{}
	p := NewPlayer(out, 8000)
	fsys := fstest.MapFS{"tick.wav": {Data: toneWAV(8000, 800)}}

	require.NoError(t, p.LoadFS(fsys, ClipTick, "tick.wav"))
	assert.True(t, p.Loaded(ClipTick))
	assert.False(t, p.Loaded(ClipBip))

	require.NoError(t, p.TryPlay(ClipTick))
	require.NoError(t, p.TryPlay(ClipTick))
	require.Len(t, out.played, 2)
	assert.Equal(t, 800, drain(out.played[0]), "each play starts from the beginning")
	assert.Equal(t, 800, drain(out.played[1]))
}

func TestLoadResamples(t *testing.T) {
	out := &recordingOutput{}
	p := NewPlayer(out, 16000)
	require.NoError(t, p.Load(ClipBip, "bip.wav", io.NopCloser(bytes.NewReader(toneWAV(8000, 800)))))
	require.NoError(t, p.TryPlay(ClipBip))
	assert.InDelta(t, 1600, drain(out.played[0]), 20)
}

func TestLoadErrors(t *testing.T) {
	p := NewPlayer(&recordingOutput{}, 8000)

	err := p.LoadFS(fstest.MapFS{}, ClipTick, "missing.wav")
	assert.Error(t, err)

	err = p.Load(ClipTick, "tick.flac", io.NopCloser(bytes.NewReader(nil)))
	assert.ErrorContains(t, err, "unsupported audio format")

	err = p.Load(ClipTick, "tick.wav", io.NopCloser(bytes.NewReader([]byte("not a wav"))))
	assert.Error(t, err)
	assert.False(t, p.Loaded(ClipTick))
}

func TestPlayFailuresAreSwallowed(t *testing.T) {
	out := &recordingOutput{}
	p := NewPlayer(out, 8000)

	assert.ErrorIs(t, p.TryPlay(ClipBip), ErrClipNotLoaded)
	assert.NotPanics(t, func() { p.Play(ClipBip) })

	require.NoError(t, p.Load(ClipBip, "bip.wav", io.NopCloser(bytes.NewReader(toneWAV(8000, 80)))))
	out.err = errors.New("device busy")
	assert.Error(t, p.TryPlay(ClipBip))
	assert.NotPanics(t, func() { p.Play(ClipBip) })

	assert.ErrorIs(t, noOutput{err: errors.New("no device")}.Play(nil), ErrNoOutput)
}

func TestMuteAndVolume(t *testing.T) {
	out := &recordingOutput{}
	p := NewPlayer(out, 8000)
	require.NoError(t, p.Load(ClipTick, "tick.wav", io.NopCloser(bytes.NewReader(toneWAV(8000, 80)))))

	p.SetMuted(true)
	assert.ErrorIs(t, p.TryPlay(ClipTick), ErrMuted)
	assert.Empty(t, out.played)

	p.SetMuted(false)
	p.SetVolume(-1)
	require.NoError(t, p.TryPlay(ClipTick))
	require.Len(t, out.played, 1)
}
