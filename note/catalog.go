package note

import (
	"fmt"
	"strings"

	"github.com/jsphweid/changes/util"
)

const (
	SharpSign = "♯"
	FlatSign  = "♭"
)

// Spelling is one conventional name for a pitch class.
//
// Wrap is +1 for spellings whose natural letter sits below the B/C seam but
// sound above it (B#, B##) and -1 for the reverse (Cb, Cbb). It keeps
// octave and frequency bookkeeping right without touching the stepping
// arithmetic.
type Spelling struct {
	Letter     Letter
	Accidental int
	Class      PitchClass
	Wrap       int
}

func (s Spelling) accidentalString(sharp, flat string) string {
	if s.Accidental > 0 {
		return strings.Repeat(sharp, s.Accidental)
	}
	return strings.Repeat(flat, -s.Accidental)
}

// Name uses the Unicode sharp and flat signs.
func (s Spelling) Name() string {
	return s.Letter.String() + s.accidentalString(SharpSign, FlatSign)
}

// SimpleName uses '#' and 'b'.
func (s Spelling) SimpleName() string {
	return s.Letter.String() + s.accidentalString("#", "b")
}

// Accidentals is the number of accidental marks the spelling needs.
func (s Spelling) Accidentals() int {
	return util.Abs(s.Accidental)
}

// Grouped by pitch class, canonical spelling first. Order matters: it
// decides canonical spellings and breaks legibility ties.
var catalog = []Spelling{
	{LetterC, 0, 0, 0}, {LetterB, 1, 0, 1}, {LetterD, -2, 0, 0},
	{LetterC, 1, 1, 0}, {LetterD, -1, 1, 0}, {LetterB, 2, 1, 1},
	{LetterD, 0, 2, 0}, {LetterC, 2, 2, 0}, {LetterE, -2, 2, 0},
	{LetterD, 1, 3, 0}, {LetterE, -1, 3, 0}, {LetterF, -2, 3, 0},
	{LetterE, 0, 4, 0}, {LetterD, 2, 4, 0}, {LetterF, -1, 4, 0},
	{LetterF, 0, 5, 0}, {LetterE, 1, 5, 0}, {LetterG, -2, 5, 0},
	{LetterF, 1, 6, 0}, {LetterG, -1, 6, 0}, {LetterE, 2, 6, 0},
	{LetterG, 0, 7, 0}, {LetterF, 2, 7, 0}, {LetterA, -2, 7, 0},
	{LetterG, 1, 8, 0}, {LetterA, -1, 8, 0},
	{LetterA, 0, 9, 0}, {LetterG, 2, 9, 0}, {LetterB, -2, 9, 0},
	{LetterA, 1, 10, 0}, {LetterB, -1, 10, 0}, {LetterC, -2, 10, -1},
	{LetterB, 0, 11, 0}, {LetterA, 2, 11, 0}, {LetterC, -1, 11, -1},
}

var (
	byClass [NumPitchClasses][]int
	byName  = make(map[string]int)
)

func init() {
	for i, s := range catalog {
		if s.Letter.Semitone()+s.Accidental != int(s.Class)+NumPitchClasses*s.Wrap {
			panic(fmt.Sprintf("catalog row %d (%s) does not resolve to pitch class %d", i, s.SimpleName(), s.Class))
		}
		byClass[s.Class] = append(byClass[s.Class], i)
		byName[s.SimpleName()] = i
	}
	for pc, idxs := range byClass {
		if len(idxs) == 0 {
			panic(fmt.Sprintf("pitch class %d has no spelling", pc))
		}
	}
}

// Catalog returns a copy of every spelling, in catalog order.
func Catalog() []Spelling {
	res := make([]Spelling, len(catalog))
	copy(res, catalog)
	return res
}

// Spellings is PitchClass.Spellings for callers holding a plain int.
func Spellings(pc PitchClass) []Spelling {
	return pc.Add(0).Spellings()
}

// Resolve finds the pitch class a letter and accidental spell.
func Resolve(letter Letter, accidental int) (PitchClass, error) {
	for _, s := range catalog {
		if s.Letter == letter && s.Accidental == accidental {
			return s.Class, nil
		}
	}
	return 0, fmt.Errorf("%w: %s with accidental %d", ErrUnknownSpelling, letter, accidental)
}

var unicodeAccidentals = strings.NewReplacer(
	"\U0001D12A", "##", // double sharp
	"\U0001D12B", "bb", // double flat
	SharpSign, "#",
	FlatSign, "b",
)

// Lookup resolves a spelling such as "Bb", "F#" or "B♭" to a Note in the
// reference octave.
func Lookup(name string) (Note, error) {
	normalized := unicodeAccidentals.Replace(strings.TrimSpace(name))
	if normalized == "" {
		return Note{}, fmt.Errorf("%w: empty name", ErrUnknownSpelling)
	}
	normalized = strings.ToUpper(normalized[:1]) + normalized[1:]

	idx, ok := byName[normalized]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrUnknownSpelling, name)
	}
	return Note{spelling: idx}, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Note {
	n, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return n
}
