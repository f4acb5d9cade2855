package player

import (
	"bytes"
	"os"
	"testing"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/logging"
	"github.com/jsphweid/changes/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(nil)
	os.Exit(m.Run())
}

type start struct {
	tick uint64
	key  uint8
}

func starts(t *testing.T, s *smf.SMF) []start {
	t.Helper()

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	var res []start
	for _, track := range parsed.Tracks {
		var absTicks uint64
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			var ch, key, vel uint8
			if midi.Message(evt.Message).GetNoteStart(&ch, &key, &vel) {
				res = append(res, start{absTicks, key})
			}
		}
	}
	return res
}

func harmony(t *testing.T, name string, conv func(chord.Harmony) (*chord.Chord, error)) chord.Harmony {
	h := chord.FromNote(note.MustLookup(name))
	if conv == nil {
		return h
	}
	c, err := conv(h)
	require.NoError(t, err)
	return chord.FromChord(c)
}

func TestRenderNotesAndChords(t *testing.T) {
	p := New(harmony(t, "C", nil)).Add(harmony(t, "G", chord.Harmony.Seven))

	s, err := p.Render(Options{})
	require.NoError(t, err)

	assert.Equal(t, []start{
		{0, 60},
		{960, 67}, {960, 71}, {960, 74}, {960, 77},
	}, starts(t, s))
}

func TestRenderScale(t *testing.T) {
	p := New(harmony(t, "C", chord.Harmony.Minor))

	s, err := p.Render(Options{Scale: true, BPM: 90})
	require.NoError(t, err)

	var keys []uint8
	var ticks []uint64
	for _, st := range starts(t, s) {
		keys = append(keys, st.key)
		ticks = append(ticks, st.tick)
	}
	assert.Equal(t, []uint8{60, 62, 63, 65, 67, 68, 70}, keys)
	assert.Equal(t, []uint64{0, 960, 1920, 2880, 3840, 4800, 5760}, ticks)
}

func TestRenderWrappedSpelling(t *testing.T) {
	// B# sits above the B natural seam
	p := New(harmony(t, "C#", chord.Harmony.MajorSeven))
	s, err := p.Render(Options{})
	require.NoError(t, err)

	var keys []uint8
	for _, st := range starts(t, s) {
		keys = append(keys, st.key)
	}
	assert.Equal(t, []uint8{61, 65, 68, 72}, keys)
}

func TestRenderOutOfRange(t *testing.T) {
	high := chord.FromNote(note.MustLookup("C").WithOctave(10))
	_, err := New(high).Render(Options{})
	assert.ErrorIs(t, err, ErrKeyOutOfRange)
}

func TestAddDoesNotChangeReceiver(t *testing.T) {
	assert := assert.New(t)

	empty := New()
	one := empty.Add(harmony(t, "D", nil))
	two := one.Add(harmony(t, "E", nil))

	assert.Equal(0, empty.Len())
	assert.Equal(1, one.Len())
	assert.Equal(2, two.Len())
	assert.Equal("D", two.Items()[0].Name())
}
