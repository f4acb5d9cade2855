package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/changes/note"
	"github.com/jsphweid/changes/util"
)

// Chord is a resolved quality over a root: the proper scale and chord
// (spelled by interval) and their legible counterparts.
type Chord struct {
	root      note.Note
	modifiers ModifierSet
	quality   *Quality

	scale        []note.Note
	chord        []note.Note
	legibleScale []note.Note
	legibleChord []note.Note
}

func newChord(root note.Note, modifiers ModifierSet, quality *Quality) *Chord {
	scale := quality.BuildScale(root)
	tones := quality.BuildChord(root, scale)
	legibleScale := Legible(scale)

	return &Chord{
		root:         root,
		modifiers:    modifiers,
		quality:      quality,
		scale:        FixOctaves(scale),
		chord:        FixOctaves(tones),
		legibleScale: legibleScale,
		legibleChord: legibleTones(tones, legibleScale),
	}
}

func copyNotes(notes []note.Note) []note.Note {
	res := make([]note.Note, len(notes))
	copy(res, notes)
	return res
}

func (c *Chord) Root() note.Note {
	return c.root
}

func (c *Chord) Quality() *Quality {
	return c.quality
}

func (c *Chord) Modifiers() []Modifier {
	return c.modifiers.Modifiers()
}

func (c *Chord) ModifierSet() ModifierSet {
	return c.modifiers
}

func (c *Chord) Scale() []note.Note {
	return copyNotes(c.scale)
}

func (c *Chord) Chord() []note.Note {
	return copyNotes(c.chord)
}

func (c *Chord) LegibleScale() []note.Note {
	return copyNotes(c.legibleScale)
}

func (c *Chord) LegibleChord() []note.Note {
	return copyNotes(c.legibleChord)
}

func (c *Chord) Descriptions() []string {
	return append([]string(nil), c.quality.Descriptions...)
}

// Structure labels each chord tone relative to the root ("1", "♭3", ...).
func (c *Chord) Structure() []string {
	return append([]string(nil), c.quality.Structure...)
}

// Name is the root followed by the modifier symbols, e.g. "C7(♯9)".
func (c *Chord) Name() string {
	return c.root.Name() + c.modifiers.Symbols()
}

var asciiAccidentals = strings.NewReplacer(note.SharpSign, "#", note.FlatSign, "b")

func (c *Chord) SimpleName() string {
	return asciiAccidentals.Replace(c.Name())
}

// Key identifies the sounding chord by its sorted MIDI keys, e.g. "60-64-67".
func (c *Chord) Key() string {
	keys := make([]int, 0, len(c.chord))
	for _, n := range c.chord {
		keys = append(keys, n.MIDIKey())
	}
	sort.Ints(keys)

	var res string
	for i, k := range keys {
		res += fmt.Sprintf("%v", k)
		if i < len(keys)-1 {
			res += "-"
		}
	}
	return res
}

// Equals reports whether both chords share a quality and a root pitch class.
func (c *Chord) Equals(other *Chord) bool {
	return c.quality == other.quality && c.root.ToneEquals(other.root)
}

// Movement is one voice moving between two chords.
type Movement struct {
	From note.Note
	To   note.Note
	Step int
}

// Compare pairs every tone of c with every tone of other that lies within
// two half steps in either direction, closest first.
func (c *Chord) Compare(other *Chord) []Movement {
	var res []Movement
	for _, from := range c.chord {
		for _, to := range other.chord {
			dist := util.Min(from.DistanceTo(to), note.NumPitchClasses-from.DistanceTo(to))
			if dist <= 2 {
				res = append(res, Movement{From: from, To: to, Step: dist})
			}
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Step < res[j].Step
	})
	return res
}

func noteNames(notes []note.Note) string {
	names := make([]string, 0, len(notes))
	for _, n := range notes {
		names = append(names, n.Name())
	}
	return strings.Join(names, ", ")
}

func (c *Chord) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", c.Name())
	fmt.Fprintf(&sb, "    Description: %s\n", strings.Join(c.quality.Descriptions, ", "))
	fmt.Fprintf(&sb, "    Chord Structure: %s\n", strings.Join(c.quality.Structure, ", "))
	fmt.Fprintf(&sb, "    Scale: %s\n", noteNames(c.scale))
	fmt.Fprintf(&sb, "    Chord: %s\n", noteNames(c.chord))
	fmt.Fprintf(&sb, "    Legible Scale: %s\n", noteNames(c.legibleScale))
	fmt.Fprintf(&sb, "    Legible Chord: %s\n", noteNames(c.legibleChord))
	return sb.String()
}
