package chord

import (
	"testing"

	"github.com/jsphweid/changes/note"
	"github.com/stretchr/testify/assert"
)

func lookupAll(names ...string) []note.Note {
	var res []note.Note
	for _, n := range names {
		res = append(res, note.MustLookup(n))
	}
	return res
}

func allChords() []*Chord {
	var res []*Chord
	for _, s := range note.Catalog() {
		r := note.MustLookup(s.SimpleName())
		for _, q := range Qualities() {
			res = append(res, newChord(r, ModifierSet{}, q))
		}
	}
	return res
}

func TestLegibleRepairsRepeatedLetter(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"C", "Db", "Eb", "E"}, names(Legible(lookupAll("C", "Db", "D#", "E"))))
	assert.Equal([]string{"C", "D", "Eb", "F"}, names(Legible(lookupAll("B#", "D", "D#", "E#"))))
	// E has no spelling on F that costs nothing
	assert.Equal([]string{"Eb", "E"}, names(Legible(lookupAll("Eb", "E"))))
}

func TestLegibleFSharpMajor(t *testing.T) {
	fSharp, err := root("F#").Major()
	assert.NoError(t, err)

	assert.Equal(t, []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}, names(fSharp.Scale()))
	assert.Equal(t, []string{"F#", "G#", "A#", "B", "C#", "D#", "F"}, names(fSharp.LegibleScale()))
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1}, octaves(fSharp.LegibleScale()))
}

func TestLegibleIsIdempotent(t *testing.T) {
	for _, c := range allChords() {
		once := c.LegibleScale()
		assert.Equal(t, once, Legible(once), c.Name())

		chordOnce := c.LegibleChord()
		assert.Equal(t, chordOnce, FixOctaves(chordOnce), c.Name())
	}
}

func TestLegibleKeepsPitchAndMinimalAccidentals(t *testing.T) {
	for _, c := range allChords() {
		scale := c.Scale()
		legible := c.LegibleScale()
		if !assert.Len(t, legible, len(scale)) {
			continue
		}
		for i := range scale {
			assert.Equal(t, scale[i].PitchClass(), legible[i].PitchClass())
			assert.LessOrEqual(t, legible[i].Accidentals(), scale[i].LegibleEnharmonic().Accidentals(),
				"%s degree %d", c.Name(), i)
		}
	}
}

func TestOctavesAscend(t *testing.T) {
	height := func(n note.Note) int {
		return int(n.Letter()) + note.NumLetters*n.Octave()
	}
	for _, c := range allChords() {
		for _, notes := range [][]note.Note{c.Scale(), c.Chord(), c.LegibleScale(), c.LegibleChord()} {
			for i := 1; i < len(notes); i++ {
				assert.LessOrEqual(t, height(notes[i-1]), height(notes[i]), c.Name())
			}
		}
	}
}

func TestFixOctaves(t *testing.T) {
	assert := assert.New(t)

	fixed := FixOctaves(lookupAll("B", "C", "D"))
	assert.Equal([]int{0, 1, 1}, octaves(fixed))

	// only the first note's octave counts
	in := []note.Note{note.MustLookup("C").WithOctave(2), note.MustLookup("E").WithOctave(7)}
	assert.Equal([]int{2, 2}, octaves(FixOctaves(in)))

	assert.Equal(fixed, FixOctaves(fixed))
	assert.Nil(FixOctaves(nil))
}
