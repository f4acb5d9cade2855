package note

import (
	"math"
)

// Note is a spelled pitch plus an octave displacement relative to the
// reference octave (designation 4). Notes are values; every operation
// returns a new one.
type Note struct {
	spelling int
	octave   int
}

func (n Note) Spelling() Spelling {
	return catalog[n.spelling]
}

func (n Note) Name() string {
	return n.Spelling().Name()
}

func (n Note) SimpleName() string {
	return n.Spelling().SimpleName()
}

func (n Note) String() string {
	return n.Name()
}

func (n Note) Letter() Letter {
	return n.Spelling().Letter
}

func (n Note) Accidental() int {
	return n.Spelling().Accidental
}

func (n Note) Accidentals() int {
	return n.Spelling().Accidentals()
}

func (n Note) PitchClass() PitchClass {
	return n.Spelling().Class
}

func (n Note) Octave() int {
	return n.octave
}

// AddOctave returns a copy displaced by num octaves.
func (n Note) AddOctave(num int) Note {
	n.octave += num
	return n
}

// WithOctave returns a copy in the given octave.
func (n Note) WithOctave(octave int) Note {
	n.octave = octave
	return n
}

// OctaveDesignation is scientific pitch notation: octave 0 is C4.
func (n Note) OctaveDesignation() int {
	return n.octave + 4
}

func (n Note) ToneFrequency() float64 {
	s := n.Spelling()
	return math.Ldexp(s.Class.Frequency(), n.octave+s.Wrap)
}

// MIDIKey is the MIDI note number, with C4 = 60.
func (n Note) MIDIKey() int {
	s := n.Spelling()
	return 60 + int(s.Class) + 12*(n.octave+s.Wrap)
}

// Equals reports whether both notes share a spelling, ignoring octave.
func (n Note) Equals(other Note) bool {
	return n.spelling == other.spelling
}

// ToneEquals reports whether both notes share a pitch class.
func (n Note) ToneEquals(other Note) bool {
	return n.PitchClass() == other.PitchClass()
}

// DistanceTo counts half steps upward from n to other, 0 to 11.
func (n Note) DistanceTo(other Note) int {
	count := 0
	for pc := n.PitchClass(); pc != other.PitchClass(); pc = pc.Next() {
		count++
	}
	return count
}

// Enharmonics lists every spelling of n's pitch class, in catalog order,
// keeping n's octave.
func (n Note) Enharmonics() []Note {
	idxs := byClass[n.PitchClass()]
	res := make([]Note, 0, len(idxs))
	for _, i := range idxs {
		res = append(res, Note{spelling: i, octave: n.octave})
	}
	return res
}

// LegibleEnharmonic is the enharmonic with the fewest accidentals. n wins ties.
func (n Note) LegibleEnharmonic() Note {
	best := n
	for _, e := range n.Enharmonics() {
		if e.Accidentals() < best.Accidentals() {
			best = e
		}
	}
	return best
}
