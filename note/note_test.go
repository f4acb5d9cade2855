package note

import (
	"errors"
	"os"
	"testing"

	"github.com/jsphweid/changes/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(nil)
	os.Exit(m.Run())
}

func simpleNames(notes []Note) []string {
	var res []string
	for _, n := range notes {
		res = append(res, n.SimpleName())
	}
	return res
}

func TestCatalogShape(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Catalog(), 35)
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		spellings := pc.Spellings()
		assert.GreaterOrEqual(len(spellings), 1)
		assert.LessOrEqual(len(spellings), 3)
		for _, s := range spellings {
			assert.Equal(pc, s.Class)
			assert.Equal(int(pc)+12*s.Wrap, s.Letter.Semitone()+s.Accidental, s.SimpleName())
		}
	}
}

func TestCanonicalSpellings(t *testing.T) {
	var names []string
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		names = append(names, pc.String())
	}
	assert.Equal(t, []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}, names)
}

func TestLookup(t *testing.T) {
	cases := []struct {
		in   string
		name string
		pc   PitchClass
	}{
		{"Bb", "B♭", 10},
		{"f#", "F♯", 6},
		{"B♭", "B♭", 10},
		{"E##", "E♯♯", 6},
		{" Ebb ", "E♭♭", 2},
		{"B#", "B♯", 0},
		{"Cb", "C♭", 11},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			n, err := Lookup(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.name, n.Name())
			assert.Equal(t, c.pc, n.PitchClass())
			assert.Equal(t, 0, n.Octave())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, in := range []string{"", "H", "E###", "Cbbb", "7"} {
		_, err := Lookup(in)
		assert.True(t, errors.Is(err, ErrUnknownSpelling), in)
	}
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	pc, err := Resolve(LetterB, 1)
	assert.NoError(err)
	assert.Equal(PitchClass(0), pc)

	pc, err = Resolve(LetterC, -1)
	assert.NoError(err)
	assert.Equal(PitchClass(11), pc)

	_, err = Resolve(LetterE, 3)
	assert.ErrorIs(err, ErrUnknownSpelling)
}

func TestEnharmonicsKeepOctave(t *testing.T) {
	db := MustLookup("Db").AddOctave(2)
	enh := db.Enharmonics()

	assert.Equal(t, []string{"C#", "Db", "B##"}, simpleNames(enh))
	for _, e := range enh {
		assert.Equal(t, 2, e.Octave())
	}
}

func TestLegibleEnharmonic(t *testing.T) {
	cases := map[string]string{
		"B##": "C#",
		"B#":  "C",
		"Fbb": "D#",
		"Db":  "Db",
		"C#":  "C#",
		"Cb":  "B",
		"E":   "E",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustLookup(in).LegibleEnharmonic().SimpleName(), in)
	}
}

func TestAddOctaveReturnsCopy(t *testing.T) {
	c := MustLookup("C")
	up := c.AddOctave(1)

	assert := assert.New(t)
	assert.Equal(0, c.Octave())
	assert.Equal(1, up.Octave())
	assert.Equal(5, up.OctaveDesignation())
	assert.True(c.Equals(up))
}

func TestToneFrequency(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(440.0, MustLookup("A").ToneFrequency(), 1e-9)
	assert.InDelta(880.0, MustLookup("A").AddOctave(1).ToneFrequency(), 1e-9)
	assert.InDelta(220.0, MustLookup("A").AddOctave(-1).ToneFrequency(), 1e-9)
	assert.InDelta(523.2, MustLookup("B#").ToneFrequency(), 1e-9)
	assert.InDelta(246.95, MustLookup("Cb").ToneFrequency(), 1e-9)
	assert.InDelta(MustLookup("Bb").ToneFrequency(), MustLookup("A#").ToneFrequency(), 1e-9)
}

func TestMIDIKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, MustLookup("C").MIDIKey())
	assert.Equal(69, MustLookup("A").MIDIKey())
	assert.Equal(72, MustLookup("B#").MIDIKey())
	assert.Equal(59, MustLookup("Cb").MIDIKey())
	assert.Equal(57, MustLookup("A").AddOctave(-1).MIDIKey())
}

func TestDistanceTo(t *testing.T) {
	c := MustLookup("C")
	g := MustLookup("G")

	assert := assert.New(t)
	assert.Equal(7, c.DistanceTo(g))
	assert.Equal(5, g.DistanceTo(c))
	assert.Equal(0, c.DistanceTo(MustLookup("B#")))
	assert.True(c.ToneEquals(MustLookup("Dbb")))
	assert.False(c.Equals(MustLookup("Dbb")))
}
