package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickN(s *Stopwatch, n int) Elapsed {
	var e Elapsed
	for i := 0; i < n; i++ {
		e = s.Tick()
	}
	return e
}

func TestTickCarry(t *testing.T) {
	cases := []struct {
		ticks int
		want  Elapsed
	}{
		{1, Elapsed{Hundredths: 1}},
		{99, Elapsed{Hundredths: 99}},
		{100, Elapsed{Seconds: 1}},
		{6000, Elapsed{Minutes: 1}},
		{360000, Elapsed{Hours: 1}},
		{366101, Elapsed{Hours: 1, Minutes: 1, Seconds: 1, Hundredths: 1}},
	}
	for _, tc := range cases {
		s := New()
		require.True(t, s.Start())
		assert.Equal(t, tc.want, tickN(s, tc.ticks), "after %d ticks", tc.ticks)
	}
}

func TestElapsedFormatting(t *testing.T) {
	e := Elapsed{Hours: 123, Minutes: 4, Seconds: 59, Hundredths: 7}
	assert.Equal(t, [4]string{"123", "04", "59", "07"}, e.Fields())
	assert.Equal(t, "123:04:59:07", e.String())
	assert.Equal(t, "00:00:00:00", Elapsed{}.String())
	assert.Equal(t, time.Minute+1500*time.Millisecond, Elapsed{Minutes: 1, Seconds: 1, Hundredths: 50}.Duration())
}

func TestTickFrozenUnlessRunning(t *testing.T) {
	s := New()
	assert.True(t, tickN(s, 10).IsZero(), "stopped stopwatch must not advance")

	require.True(t, s.Start())
	tickN(s, 25)
	require.True(t, s.Pause())
	frozen := s.GetElapsed()
	tickN(s, 50)
	assert.Equal(t, frozen, s.GetElapsed())

	require.True(t, s.Start())
	assert.Equal(t, frozen.Centis()+1, s.Tick().Centis())
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	s := New()
	assert.True(t, s.Start())
	assert.False(t, s.Start())
	assert.Equal(t, StateRunning, s.GetState())
}

func TestPauseRequiresRunning(t *testing.T) {
	s := New()
	assert.False(t, s.Pause())
	assert.Equal(t, StateStopped, s.GetState())
}

func TestResetFromAnyState(t *testing.T) {
	for _, prep := range []func(*Stopwatch){
		func(s *Stopwatch) {},
		func(s *Stopwatch) { s.Start(); tickN(s, 300) },
		func(s *Stopwatch) { s.Start(); tickN(s, 300); s.RecordLap(); s.Pause() },
	} {
		s := New()
		prep(s)
		s.Reset()
		snap := s.GetSnapshot()
		assert.Equal(t, StateStopped, snap.State)
		assert.True(t, snap.Elapsed.IsZero())
		assert.Empty(t, snap.Laps)
	}
}

func TestRecordLap(t *testing.T) {
	s := New()
	_, ok := s.RecordLap()
	assert.False(t, ok, "no lap at zero")

	s.Start()
	tickN(s, 150)
	lap, ok := s.RecordLap()
	require.True(t, ok)
	assert.Equal(t, Lap{Index: 1, Time: Elapsed{Seconds: 1, Hundredths: 50}}, lap)

	tickN(s, 5)
	lap, ok = s.RecordLap()
	require.True(t, ok)
	assert.Equal(t, 2, lap.Index)
	assert.Equal(t, "00:00:01:55", lap.Time.String())

	snap := s.GetSnapshot()
	require.Len(t, snap.Laps, 2)
	assert.Equal(t, 1, snap.Laps[0].Index)

	// the snapshot is a copy
	snap.Laps[0].Index = 99
	assert.Equal(t, 1, s.GetSnapshot().Laps[0].Index)
}

func TestRecordLapAfterPause(t *testing.T) {
	s := New()
	s.Start()
	tickN(s, 3)
	s.Pause()
	lap, ok := s.RecordLap()
	require.True(t, ok)
	assert.Equal(t, 3, lap.Time.Hundredths)
}
