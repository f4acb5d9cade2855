package note

import (
	"fmt"

	"github.com/jsphweid/changes/logging"
)

// Interval is a named distance above a root.
type Interval int

const (
	MinorSecond Interval = iota
	MajorSecond
	SharpSecond
	MinorThird
	MajorThird
	PerfectFourth
	Tritone
	FlatFifth
	PerfectFifth
	SharpFifth
	MinorSixth
	MajorSixth
	FlatFlatSeventh
	MinorSeventh
	MajorSeventh
	PerfectOctave
)

type intervalDef struct {
	name      string
	semitones int
	// letters away from the root, which pins the spelling
	steps int
}

var intervals = [...]intervalDef{
	MinorSecond:     {"minor second", 1, 1},
	MajorSecond:     {"major second", 2, 1},
	SharpSecond:     {"sharp second", 3, 1},
	MinorThird:      {"minor third", 3, 2},
	MajorThird:      {"major third", 4, 2},
	PerfectFourth:   {"perfect fourth", 5, 3},
	Tritone:         {"tritone", 6, 3},
	FlatFifth:       {"flat fifth", 6, 4},
	PerfectFifth:    {"perfect fifth", 7, 4},
	SharpFifth:      {"sharp fifth", 8, 4},
	MinorSixth:      {"minor sixth", 8, 5},
	MajorSixth:      {"major sixth", 9, 5},
	FlatFlatSeventh: {"flat flat seventh", 9, 6},
	MinorSeventh:    {"minor seventh", 10, 6},
	MajorSeventh:    {"major seventh", 11, 6},
	PerfectOctave:   {"perfect octave", 12, 7},
}

// Intervals lists every interval from the minor second to the octave.
func Intervals() []Interval {
	res := make([]Interval, len(intervals))
	for i := range intervals {
		res[i] = Interval(i)
	}
	return res
}

func (i Interval) Semitones() int {
	return intervals[i].semitones
}

// Steps is the diatonic distance: how many letter names above the root.
func (i Interval) Steps() int {
	return intervals[i].steps
}

func (i Interval) String() string {
	return intervals[i].name
}

// StepChecked walks i.Semitones() half steps up the chromatic circle and
// spells the destination on the letter i.Steps() above n. When the
// catalog has no such spelling it returns the destination's canonical
// spelling together with ErrDegenerateEnharmonic. The octave is carried.
func (n Note) StepChecked(i Interval) (Note, error) {
	dest := n.PitchClass()
	for k := 0; k < i.Semitones(); k++ {
		dest = dest.Next()
	}

	letter := n.Letter().Next(i.Steps())
	for _, idx := range byClass[dest] {
		if catalog[idx].Letter == letter {
			return Note{spelling: idx, octave: n.octave}, nil
		}
	}

	fallback := dest.Canonical().WithOctave(n.octave)
	return fallback, fmt.Errorf("%w: %s above %s wants %s, got %s",
		ErrDegenerateEnharmonic, i, n.SimpleName(), letter, fallback.SimpleName())
}

// Step is StepChecked with the degenerate case logged and swallowed.
func (n Note) Step(i Interval) Note {
	res, err := n.StepChecked(i)
	if err != nil {
		logging.Warn("falling back to canonical spelling", logging.Fields{
			"root":     n.SimpleName(),
			"interval": i.String(),
			"result":   res.SimpleName(),
		})
	}
	return res
}

func (n Note) MinorSecond() Note     { return n.Step(MinorSecond) }
func (n Note) MajorSecond() Note     { return n.Step(MajorSecond) }
func (n Note) SharpSecond() Note     { return n.Step(SharpSecond) }
func (n Note) MinorThird() Note      { return n.Step(MinorThird) }
func (n Note) MajorThird() Note      { return n.Step(MajorThird) }
func (n Note) PerfectFourth() Note   { return n.Step(PerfectFourth) }
func (n Note) Tritone() Note         { return n.Step(Tritone) }
func (n Note) FlatFifth() Note       { return n.Step(FlatFifth) }
func (n Note) PerfectFifth() Note    { return n.Step(PerfectFifth) }
func (n Note) SharpFifth() Note      { return n.Step(SharpFifth) }
func (n Note) MinorSixth() Note      { return n.Step(MinorSixth) }
func (n Note) MajorSixth() Note      { return n.Step(MajorSixth) }
func (n Note) FlatFlatSeventh() Note { return n.Step(FlatFlatSeventh) }
func (n Note) MinorSeventh() Note    { return n.Step(MinorSeventh) }
func (n Note) MajorSeventh() Note    { return n.Step(MajorSeventh) }
func (n Note) PerfectOctave() Note   { return n.Step(PerfectOctave) }
