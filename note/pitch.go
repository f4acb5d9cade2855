package note

import (
	"github.com/jsphweid/changes/util"
)

const NumPitchClasses = 12

// PitchClass is an equal-tempered semitone class, 0 (C) through 11 (B).
type PitchClass int

// reference frequencies for octave designation 4
var frequencies = [NumPitchClasses]float64{
	261.6, // C
	277.2, // C#
	293.7, // D
	311.1, // D#
	329.6, // E
	349.2, // F
	370.0, // F#
	392.0, // G
	415.3, // G#
	440.0, // A
	466.2, // A#
	493.9, // B
}

func (p PitchClass) Add(semitones int) PitchClass {
	return PitchClass(util.Mod(int(p)+semitones, NumPitchClasses))
}

func (p PitchClass) Next() PitchClass {
	return p.Add(1)
}

func (p PitchClass) Frequency() float64 {
	return frequencies[p]
}

// Spellings lists every catalog spelling of p, canonical first.
func (p PitchClass) Spellings() []Spelling {
	idxs := byClass[p]
	res := make([]Spelling, 0, len(idxs))
	for _, i := range idxs {
		res = append(res, catalog[i])
	}
	return res
}

// Canonical is the first catalog spelling of p.
func (p PitchClass) Canonical() Note {
	return Note{spelling: byClass[p][0]}
}

func (p PitchClass) String() string {
	return catalog[byClass[p][0]].SimpleName()
}

// Letter is a natural note name. The order is the diatonic cycle C D E F G A B.
type Letter int

const (
	LetterC Letter = iota
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
)

const NumLetters = 7

var letterNames = [NumLetters]string{"C", "D", "E", "F", "G", "A", "B"}

var naturalSemitones = [NumLetters]int{0, 2, 4, 5, 7, 9, 11}

// Next walks count letters forward around the cycle.
func (l Letter) Next(count int) Letter {
	return Letter(util.Mod(int(l)+count, NumLetters))
}

func (l Letter) Semitone() int {
	return naturalSemitones[l]
}

func (l Letter) String() string {
	return letterNames[l]
}
