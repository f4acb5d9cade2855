package chord

import (
	"fmt"

	"github.com/jsphweid/changes/note"
)

type pairRule struct {
	a, b    Modifier
	quality *Quality
}

// checked in order; the first pair contained in the set wins
var pairRules = []pairRule{
	{ModDominantSeven, ModSharpNine, SevenSharpNine},
	{ModDominantSeven, ModFlatNine, SevenFlatNine},
	{ModSharpFive, ModDominantSeven, AugmentedSeven},
	{ModSharpFive, ModMajorSeven, AugmentedMajorSeven},
	{ModDominantSeven, ModSharpEleven, SevenSharpEleven},
	{ModMinorThird, ModMajorSeven, MinorMajorSeven},
	{ModMinorThird, ModDominantSeven, MinorSeven},
}

type singleRule struct {
	m       Modifier
	quality *Quality
}

var singleRules = []singleRule{
	{ModHalfDiminished, HalfDiminished},
	{ModDiminished, Diminished},
	{ModSharpFive, Augmented},
	{ModDominantSeven, DominantSeven},
	{ModMajorSeven, MajorSeven},
	{ModMinorThird, Minor},
	{ModMajorThird, Major},
}

// Resolve maps a modifier set to its quality. The half-diminished triple
// collapses into the single half-diminished marker, so the returned set may
// differ from the one passed in.
func Resolve(set ModifierSet) (*Quality, ModifierSet, error) {
	switch set.Len() {
	case 3:
		if set.ContainsAll(ModMinorThird, ModFlatFive, ModDominantSeven) {
			marker, _ := NewModifierSet(ModHalfDiminished)
			return HalfDiminished, marker, nil
		}
	case 2:
		for _, r := range pairRules {
			if set.ContainsAll(r.a, r.b) {
				return r.quality, set, nil
			}
		}
	case 1:
		for _, r := range singleRules {
			if set.Contains(r.m) {
				return r.quality, set, nil
			}
		}
	case 0:
		return Major, set, nil
	}
	return nil, set, fmt.Errorf("%w: %s", ErrNoMatchingQuality, set)
}

// Classify builds the chord for root under the given modifiers, in any order.
func Classify(root note.Note, modifiers ...Modifier) (*Chord, error) {
	set, err := NewModifierSet(modifiers...)
	if err != nil {
		return nil, err
	}
	return ClassifySet(root, set)
}

func ClassifySet(root note.Note, set ModifierSet) (*Chord, error) {
	quality, set, err := Resolve(set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root.SimpleName(), err)
	}
	return newChord(root, set, quality), nil
}
