package chord

import (
	"github.com/jsphweid/changes/note"
)

const (
	flat       = note.FlatSign
	sharp      = note.SharpSign
	doubleFlat = note.FlatSign + note.FlatSign
)

// Quality is a named chord/scale type. Scale and Tones list intervals above
// the root; the root itself is implied as the first entry of both.
type Quality struct {
	Name         string
	Descriptions []string
	Scale        []note.Interval
	// 1-based scale positions forming the chord, used when Tones is nil
	Degrees []int
	// explicit chord tones for qualities whose extensions are not literal
	// scale positions
	Tones     []note.Interval
	Structure []string
}

// BuildScale spells the quality's scale from root.
func (q *Quality) BuildScale(root note.Note) []note.Note {
	res := make([]note.Note, 0, len(q.Scale)+1)
	res = append(res, root)
	for _, i := range q.Scale {
		res = append(res, root.Step(i))
	}
	return res
}

// BuildChord picks the chord tones, from scale by degree or from root by
// explicit interval.
func (q *Quality) BuildChord(root note.Note, scale []note.Note) []note.Note {
	if q.Tones != nil {
		res := make([]note.Note, 0, len(q.Tones)+1)
		res = append(res, root)
		for _, i := range q.Tones {
			res = append(res, root.Step(i))
		}
		return res
	}

	res := make([]note.Note, 0, len(q.Degrees))
	for _, pos := range q.Degrees {
		res = append(res, scale[pos-1])
	}
	return res
}

func (q *Quality) String() string {
	return q.Name
}

var (
	Major = &Quality{
		Name:         "major",
		Descriptions: []string{"major"},
		Scale:        []note.Interval{note.MajorSecond, note.MajorThird, note.PerfectFourth, note.PerfectFifth, note.MajorSixth, note.MajorSeventh},
		Degrees:      []int{1, 3, 5},
		Structure:    []string{"1", "3", "5"},
	}

	Minor = &Quality{
		Name:         "minor",
		Descriptions: []string{"minor"},
		Scale:        []note.Interval{note.MajorSecond, note.MinorThird, note.PerfectFourth, note.PerfectFifth, note.MinorSixth, note.MinorSeventh},
		Degrees:      []int{1, 3, 5},
		Structure:    []string{"1", flat + "3", "5"},
	}

	MajorSeven = &Quality{
		Name:         "major-seven",
		Descriptions: []string{"ionian", "first mode of major scale"},
		Scale:        []note.Interval{note.MajorSecond, note.MajorThird, note.PerfectFourth, note.PerfectFifth, note.MajorSixth, note.MajorSeventh},
		Degrees:      []int{1, 3, 5, 7},
		Structure:    []string{"1", "3", "5", "7"},
	}

	DominantSeven = &Quality{
		Name:         "dominant-seven",
		Descriptions: []string{"mixolydian", "fifth mode of a major scale", "major with flat seven"},
		Scale:        []note.Interval{note.MajorSecond, note.MajorThird, note.PerfectFourth, note.PerfectFifth, note.MajorSixth, note.MinorSeventh},
		Degrees:      []int{1, 3, 5, 7},
		Structure:    []string{"1", "3", "5", flat + "7"},
	}

	MinorMajorSeven = &Quality{
		Name:         "minor-major-seven",
		Descriptions: []string{"melodic minor", "major with flat third"},
		Scale:        []note.Interval{note.MajorSecond, note.MinorThird, note.PerfectFourth, note.PerfectFifth, note.MajorSixth, note.MajorSeventh},
		Degrees:      []int{1, 3, 5, 7},
		Structure:    []string{"1", flat + "3", "5", "7"},
	}

	MinorSeven = &Quality{
		Name:         "minor-seven",
		Descriptions: []string{"dorian", "second mode of a major scale", "major with flat third and flat seven"},
		Scale:        []note.Interval{note.MajorSecond, note.MinorThird, note.PerfectFourth, note.PerfectFifth, note.MajorSixth, note.MinorSeventh},
		Degrees:      []int{1, 3, 5, 7},
		Structure:    []string{"1", flat + "3", "5", flat + "7"},
	}

	SevenSharpEleven = &Quality{
		Name:         "seven-sharp-eleven",
		Descriptions: []string{"lydian dominant", "lyxian", "major with sharp four and flat seven"},
		Scale:        []note.Interval{note.MajorSecond, note.MajorThird, note.Tritone, note.PerfectFifth, note.MajorSixth, note.MinorSeventh},
		Tones:        []note.Interval{note.MajorThird, note.PerfectFifth, note.MinorSeventh, note.Tritone},
		Structure:    []string{"1", "3", "5", flat + "7", sharp + "11"},
	}

	Augmented = &Quality{
		Name:         "augmented",
		Descriptions: []string{"augmented", "major with sharp five"},
		Scale:        []note.Interval{note.MajorSecond, note.MajorThird, note.PerfectFourth, note.SharpFifth, note.MajorSixth, note.MajorSeventh},
		Degrees:      []int{1, 3, 5},
		Structure:    []string{"1", "3", sharp + "5"},
	}

	AugmentedMajorSeven = &Quality{
		Name:         "augmented-major-seven",
		Descriptions: []string{"augmented major seven", "major with sharp five"},
		Scale:        []note.Interval{note.MajorSecond, note.MajorThird, note.PerfectFourth, note.SharpFifth, note.MajorSixth, note.MajorSeventh},
		Degrees:      []int{1, 3, 5, 7},
		Structure:    []string{"1", "3", sharp + "5", "7"},
	}

	AugmentedSeven = &Quality{
		Name:         "augmented-seven",
		Descriptions: []string{"augmented seven", "whole tone"},
		Scale:        []note.Interval{note.MajorSecond, note.MajorThird, note.Tritone, note.SharpFifth, note.MinorSeventh},
		Degrees:      []int{1, 3, 5, 6},
		Structure:    []string{"1", "3", sharp + "5", flat + "7"},
	}

	HalfDiminished = &Quality{
		Name:         "half-diminished",
		Descriptions: []string{"half diminished", "locrian", "seventh mode of major scale", "major scale one half step up"},
		Scale:        []note.Interval{note.MinorSecond, note.MinorThird, note.PerfectFourth, note.FlatFifth, note.MinorSixth, note.MinorSeventh},
		Degrees:      []int{1, 3, 5, 7},
		Structure:    []string{"1", flat + "3", flat + "5", flat + "7"},
	}

	Diminished = &Quality{
		Name:         "diminished",
		Descriptions: []string{"fully diminished", "whole/half/whole"},
		Scale:        []note.Interval{note.MajorSecond, note.MinorThird, note.PerfectFourth, note.FlatFifth, note.MinorSixth, note.FlatFlatSeventh, note.MajorSeventh},
		Degrees:      []int{1, 3, 5, 7},
		Structure:    []string{"1", flat + "3", flat + "5", doubleFlat + "7"},
	}

	SevenFlatNine = &Quality{
		Name:         "seven-flat-nine",
		Descriptions: []string{"fully diminished (half step first)", "half/whole/half"},
		Scale:        []note.Interval{note.MinorSecond, note.MinorThird, note.MajorThird, note.Tritone, note.PerfectFifth, note.MajorSixth, note.MinorSeventh},
		Tones:        []note.Interval{note.MajorThird, note.PerfectFifth, note.MinorSeventh, note.MinorSecond},
		Structure:    []string{"1", "3", "5", flat + "7", flat + "9"},
	}

	SevenSharpNine = &Quality{
		Name:         "seven-sharp-nine",
		Descriptions: []string{"diminished whole tone", "seventh mode of a melodic minor scale", "melodic minor up a half step"},
		Scale:        []note.Interval{note.MinorSecond, note.SharpSecond, note.MajorThird, note.Tritone, note.SharpFifth, note.MinorSeventh},
		Tones:        []note.Interval{note.MajorThird, note.PerfectFifth, note.MinorSeventh, note.SharpSecond},
		Structure:    []string{"1", "3", "5", flat + "7", sharp + "9"},
	}
)

var qualities = []*Quality{
	Major,
	Minor,
	MajorSeven,
	DominantSeven,
	MinorMajorSeven,
	MinorSeven,
	SevenSharpEleven,
	Augmented,
	AugmentedMajorSeven,
	AugmentedSeven,
	HalfDiminished,
	Diminished,
	SevenFlatNine,
	SevenSharpNine,
}

// Qualities lists every quality the classifier can produce.
func Qualities() []*Quality {
	res := make([]*Quality, len(qualities))
	copy(res, qualities)
	return res
}

func QualityNamed(name string) (*Quality, bool) {
	for _, q := range qualities {
		if q.Name == name {
			return q, true
		}
	}
	return nil, false
}
