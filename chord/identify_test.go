package chord

import (
	"testing"

	"github.com/jsphweid/changes/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetForEveryQuality(t *testing.T) {
	c := note.MustLookup("C")
	for _, q := range Qualities() {
		set, ok := SetFor(q)
		require.True(t, ok, q.Name)

		res, err := ClassifySet(c, set)
		require.NoError(t, err, q.Name)
		assert.Same(t, q, res.Quality())

		built, ok := Build(c, q)
		require.True(t, ok)
		assert.Equal(t, res.Name(), built.Name())
	}
}

func identifiedNames(notes []note.Note) []string {
	var res []string
	for _, c := range Identify(notes) {
		res = append(res, c.SimpleName())
	}
	return res
}

func TestIdentify(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"C"}, identifiedNames(lookupAll("C", "E", "G")))
	assert.Equal([]string{"A-7"}, identifiedNames(lookupAll("A", "C", "E", "G")))
	assert.Equal([]string{"G7"}, identifiedNames(lookupAll("G", "B", "D", "F")))
	assert.Equal([]string{"C+", "E+", "G#+"}, identifiedNames(lookupAll("C", "E", "G#")))

	dim := identifiedNames(lookupAll("C", "Eb", "Gb", "A"))
	assert.Len(dim, 4)
	assert.Equal("C°", dim[0])

	assert.Empty(Identify(lookupAll("C", "C#", "D")))
	assert.Empty(Identify(nil))
}

func TestIdentifyIgnoresOctaves(t *testing.T) {
	notes := []note.Note{
		note.MustLookup("G").WithOctave(-1),
		note.MustLookup("B").WithOctave(-1),
		note.MustLookup("F").WithOctave(0),
		note.MustLookup("D").WithOctave(1),
	}
	found := Identify(notes)
	require.NotEmpty(t, found)
	assert.Same(t, DominantSeven, found[0].Quality())
	assert.Equal(t, 0, found[0].Root().Octave())
}
