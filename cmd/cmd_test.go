package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/logging"
	"github.com/jsphweid/changes/midi"
	"github.com/jsphweid/changes/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(nil)
	os.Exit(m.Run())
}

func TestResolveChord(t *testing.T) {
	c, err := resolveChord("F")
	require.NoError(t, err)
	assert.Same(t, chord.Major, c.Quality())

	c, err = resolveChord("D-7")
	require.NoError(t, err)
	assert.Equal(t, "D-7", c.SimpleName())

	_, err = resolveChord("Q")
	assert.Error(t, err)
}

func TestLiveSpellsLatestLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("C\nD-7\n\nG7\n")

	require.NoError(t, live(in, &out, time.Hour))

	assert.Contains(t, out.String(), "G7:")
	assert.NotContains(t, out.String(), "D-7")
}

func TestLiveReportsBadSymbols(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, live(strings.NewReader("C7sus4\n"), &out, time.Hour))
	assert.Contains(t, out.String(), "C7sus4: bad chord symbol")
}

func TestExportThenInspect(t *testing.T) {
	dir := t.TempDir()
	path, err := export([]string{"D-7", "G7", "CΔ7"}, dir, "ii-V-I", player.Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ii-V-I.mid"), path)

	s, err := midi.ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, midi.Simultaneities(midi.NoteStarts(s)), 3)

	var out bytes.Buffer
	require.NoError(t, inspect(&out, path))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "(D-7:")
	assert.Contains(t, lines[1], "(G7:")
	assert.Contains(t, lines[2], "(CΔ7:")
}

func TestExportRejectsBadSymbols(t *testing.T) {
	dir := t.TempDir()
	_, err := export([]string{"D-7", "nope"}, dir, "", player.Options{})
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestQualities(t *testing.T) {
	var out bytes.Buffer
	listQualities(&out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(chord.Qualities()))
	assert.True(t, strings.HasPrefix(lines[0], "major "))

	out.Reset()
	require.NoError(t, describeQuality(&out, "seven-sharp-nine"))
	assert.True(t, strings.HasPrefix(out.String(), "C7(♯9):"))

	assert.Error(t, describeQuality(&out, "sus4"))
}
