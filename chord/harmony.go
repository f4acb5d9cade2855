package chord

import (
	"github.com/jsphweid/changes/note"
)

type Kind int

const (
	NoteKind Kind = iota
	ChordKind
)

func (k Kind) String() string {
	if k == ChordKind {
		return "chord"
	}
	return "note"
}

// Harmony is either a bare note or a resolved chord. Conversions work the
// same on both: a note starts from an empty modifier set, a chord from its
// own.
type Harmony struct {
	Kind  Kind
	Note  note.Note
	Chord *Chord
}

func FromNote(n note.Note) Harmony {
	return Harmony{Kind: NoteKind, Note: n}
}

func FromChord(c *Chord) Harmony {
	return Harmony{Kind: ChordKind, Note: c.Root(), Chord: c}
}

func (h Harmony) Root() note.Note {
	switch h.Kind {
	case ChordKind:
		return h.Chord.Root()
	default:
		return h.Note
	}
}

func (h Harmony) modifierSet() ModifierSet {
	switch h.Kind {
	case ChordKind:
		return h.Chord.ModifierSet()
	default:
		return ModifierSet{}
	}
}

func (h Harmony) Name() string {
	switch h.Kind {
	case ChordKind:
		return h.Chord.Name()
	default:
		return h.Note.Name()
	}
}

func (h Harmony) String() string {
	switch h.Kind {
	case ChordKind:
		return h.Chord.String()
	default:
		return h.Note.Name()
	}
}

// Notes is what sounds: the chord tones, or the single note.
func (h Harmony) Notes() []note.Note {
	switch h.Kind {
	case ChordKind:
		return h.Chord.Chord()
	default:
		return []note.Note{h.Note}
	}
}

// Apply adds modifiers one at a time and re-resolves. Conflicts are reported
// before classification is attempted.
func (h Harmony) Apply(mods ...Modifier) (*Chord, error) {
	set := h.modifierSet()
	var err error
	for _, m := range mods {
		if set, err = set.Add(m); err != nil {
			return nil, err
		}
	}
	return ClassifySet(h.Root(), set)
}

// Major adds nothing: the major third is the default, so it resolves the
// current set as it stands.
func (h Harmony) Major() (*Chord, error)          { return h.Apply() }
func (h Harmony) Minor() (*Chord, error)          { return h.Apply(ModMinorThird) }
func (h Harmony) SharpFive() (*Chord, error)      { return h.Apply(ModSharpFive) }
func (h Harmony) Augmented() (*Chord, error)      { return h.SharpFive() }
func (h Harmony) FlatFive() (*Chord, error)       { return h.Apply(ModFlatFive) }
func (h Harmony) MajorSeven() (*Chord, error)     { return h.Apply(ModMajorSeven) }
func (h Harmony) Seven() (*Chord, error)          { return h.Apply(ModDominantSeven) }
func (h Harmony) FlatNine() (*Chord, error)       { return h.Apply(ModFlatNine) }
func (h Harmony) SharpNine() (*Chord, error)      { return h.Apply(ModSharpNine) }
func (h Harmony) SharpEleven() (*Chord, error)    { return h.Apply(ModSharpEleven) }
func (h Harmony) HalfDiminished() (*Chord, error) { return h.Apply(ModHalfDiminished) }
func (h Harmony) Diminished() (*Chord, error)     { return h.Apply(ModDiminished) }
func (h Harmony) FullyDiminished() (*Chord, error) {
	return h.Diminished()
}

func (c *Chord) Major() (*Chord, error)          { return FromChord(c).Major() }
func (c *Chord) Minor() (*Chord, error)          { return FromChord(c).Minor() }
func (c *Chord) SharpFive() (*Chord, error)      { return FromChord(c).SharpFive() }
func (c *Chord) Augmented() (*Chord, error)      { return FromChord(c).Augmented() }
func (c *Chord) FlatFive() (*Chord, error)       { return FromChord(c).FlatFive() }
func (c *Chord) MajorSeven() (*Chord, error)     { return FromChord(c).MajorSeven() }
func (c *Chord) Seven() (*Chord, error)          { return FromChord(c).Seven() }
func (c *Chord) FlatNine() (*Chord, error)       { return FromChord(c).FlatNine() }
func (c *Chord) SharpNine() (*Chord, error)      { return FromChord(c).SharpNine() }
func (c *Chord) SharpEleven() (*Chord, error)    { return FromChord(c).SharpEleven() }
func (c *Chord) HalfDiminished() (*Chord, error) { return FromChord(c).HalfDiminished() }
func (c *Chord) Diminished() (*Chord, error)     { return FromChord(c).Diminished() }
func (c *Chord) FullyDiminished() (*Chord, error) {
	return FromChord(c).FullyDiminished()
}
