package chord

import (
	"fmt"
	"sort"
	"strings"
)

// Slot is the chord member a modifier alters. A set holds at most one
// modifier per slot.
type Slot int

const (
	SlotOther Slot = iota
	SlotThird
	SlotFifth
	SlotSeventh
	SlotNinth
	SlotEleventh
)

func (s Slot) String() string {
	switch s {
	case SlotThird:
		return "third"
	case SlotFifth:
		return "fifth"
	case SlotSeventh:
		return "seventh"
	case SlotNinth:
		return "ninth"
	case SlotEleventh:
		return "eleventh"
	default:
		return "other"
	}
}

// Modifier is a single alteration applied to a root.
type Modifier struct {
	name   string
	symbol string
	slot   Slot
	// sort key; the slot's degree except for the flat five
	order int
}

var (
	ModMajorThird = Modifier{"major third", "", SlotThird, 3}
	ModMinorThird = Modifier{"minor third", "-", SlotThird, 3}

	ModSharpFive = Modifier{"sharp five", "+", SlotFifth, 5}
	// Sorts among the sevenths so the half-diminished triple lines up.
	ModFlatFive = Modifier{"flat five", "(♭5)", SlotFifth, 7}

	ModDominantSeven = Modifier{"dominant seven", "7", SlotSeventh, 7}
	ModMajorSeven    = Modifier{"major seven", "Δ7", SlotSeventh, 7}

	ModFlatNine  = Modifier{"flat nine", "(♭9)", SlotNinth, 9}
	ModSharpNine = Modifier{"sharp nine", "(♯9)", SlotNinth, 9}

	ModSharpEleven = Modifier{"sharp eleven", "(♯11)", SlotEleventh, 11}

	ModDiminished     = Modifier{"diminished", "°", SlotOther, 0}
	ModHalfDiminished = Modifier{"half diminished", "Ø", SlotOther, 0}
)

func (m Modifier) Name() string {
	return m.name
}

// Symbol is what the modifier contributes to a chord name.
func (m Modifier) Symbol() string {
	return m.symbol
}

func (m Modifier) Slot() Slot {
	return m.slot
}

func (m Modifier) String() string {
	return m.name
}

// ModifierSet is a slot-exclusive, ordered collection of modifiers.
type ModifierSet struct {
	mods []Modifier
}

// NewModifierSet adds each modifier in turn.
func NewModifierSet(mods ...Modifier) (ModifierSet, error) {
	var s ModifierSet
	var err error
	for _, m := range mods {
		if s, err = s.Add(m); err != nil {
			return ModifierSet{}, err
		}
	}
	return s, nil
}

// Add returns a new set including m, or ErrConflictingModifier when m's
// slot is already taken.
func (s ModifierSet) Add(m Modifier) (ModifierSet, error) {
	for _, existing := range s.mods {
		if existing.slot == m.slot {
			return s, fmt.Errorf("%w: %s and %s both alter the %s",
				ErrConflictingModifier, existing, m, m.slot)
		}
	}

	mods := make([]Modifier, len(s.mods), len(s.mods)+1)
	copy(mods, s.mods)
	mods = append(mods, m)
	sort.SliceStable(mods, func(i, j int) bool {
		return mods[i].order < mods[j].order
	})
	return ModifierSet{mods: mods}, nil
}

func (s ModifierSet) Len() int {
	return len(s.mods)
}

func (s ModifierSet) Contains(m Modifier) bool {
	for _, existing := range s.mods {
		if existing == m {
			return true
		}
	}
	return false
}

func (s ModifierSet) ContainsAll(mods ...Modifier) bool {
	for _, m := range mods {
		if !s.Contains(m) {
			return false
		}
	}
	return true
}

// Modifiers returns the set in sort order.
func (s ModifierSet) Modifiers() []Modifier {
	res := make([]Modifier, len(s.mods))
	copy(res, s.mods)
	return res
}

// Symbols concatenates the modifier symbols in sort order.
func (s ModifierSet) Symbols() string {
	var sb strings.Builder
	for _, m := range s.mods {
		sb.WriteString(m.symbol)
	}
	return sb.String()
}

func (s ModifierSet) String() string {
	names := make([]string, 0, len(s.mods))
	for _, m := range s.mods {
		names = append(names, m.name)
	}
	return "{" + strings.Join(names, ", ") + "}"
}
