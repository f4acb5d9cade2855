package chord

import (
	"github.com/jsphweid/changes/note"
)

// SetFor returns the modifiers that resolve to q, or false when no rule
// produces it.
func SetFor(q *Quality) (ModifierSet, bool) {
	if q == Major {
		return ModifierSet{}, true
	}
	if q == HalfDiminished {
		s, _ := NewModifierSet(ModHalfDiminished)
		return s, true
	}
	for _, r := range singleRules {
		if r.quality == q {
			s, _ := NewModifierSet(r.m)
			return s, true
		}
	}
	for _, r := range pairRules {
		if r.quality == q {
			s, _ := NewModifierSet(r.a, r.b)
			return s, true
		}
	}
	return ModifierSet{}, false
}

// Build makes the chord of quality q on root.
func Build(root note.Note, q *Quality) (*Chord, bool) {
	set, ok := SetFor(q)
	if !ok {
		return nil, false
	}
	return newChord(root, set, q), true
}

func pitchClasses(notes []note.Note) map[note.PitchClass]bool {
	res := make(map[note.PitchClass]bool)
	for _, n := range notes {
		res[n.PitchClass()] = true
	}
	return res
}

func samePitchClasses(a, b map[note.PitchClass]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for pc := range a {
		if !b[pc] {
			return false
		}
	}
	return true
}

// Identify names the chords whose tones are exactly the pitch classes of
// notes, trying each distinct note as the root in the order given. Chords
// rooted on the first note come first.
func Identify(notes []note.Note) []*Chord {
	want := pitchClasses(notes)
	tried := make(map[note.PitchClass]bool)

	var res []*Chord
	for _, n := range notes {
		if tried[n.PitchClass()] {
			continue
		}
		tried[n.PitchClass()] = true

		root := n.WithOctave(0)
		for _, q := range qualities {
			c, ok := Build(root, q)
			if ok && samePitchClasses(want, pitchClasses(c.chord)) {
				res = append(res, c)
			}
		}
	}
	return res
}
