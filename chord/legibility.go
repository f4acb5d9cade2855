package chord

import (
	"github.com/jsphweid/changes/note"
)

// Legible respells a scale for reading: each note takes its fewest-accidental
// enharmonic, then a degree that repeats the previous degree's letter moves
// to the next letter when that costs no extra accidentals. Octaves are fixed
// last. Running it on its own output changes nothing.
func Legible(scale []note.Note) []note.Note {
	res := make([]note.Note, len(scale))
	for i, n := range scale {
		res[i] = n.LegibleEnharmonic()
	}

	for k := 1; k < len(res); k++ {
		prev, cur := res[k-1], res[k]
		if cur.Letter() != prev.Letter() {
			continue
		}
		next := prev.Letter().Next(1)
		for _, e := range cur.Enharmonics() {
			if e.Letter() == next && e.Accidentals() <= cur.Accidentals() {
				res[k] = e
			}
		}
	}

	return FixOctaves(res)
}

// legibleTones spells chord tones the way the legible scale spells them,
// falling back to each tone's own legible enharmonic.
func legibleTones(tones []note.Note, legibleScale []note.Note) []note.Note {
	res := make([]note.Note, 0, len(tones))
	for _, t := range tones {
		spelled := t.LegibleEnharmonic()
		for _, n := range legibleScale {
			if n.ToneEquals(t) {
				spelled = n
				break
			}
		}
		res = append(res, spelled)
	}
	return FixOctaves(res)
}

// FixOctaves makes notes ascend by letter: every time the letter wraps
// downward (B to C and the like) the following notes go up an octave.
// Octaves are counted from the first note, so the result does not depend
// on the octaves the rest of the input carried.
func FixOctaves(notes []note.Note) []note.Note {
	if len(notes) == 0 {
		return nil
	}

	res := make([]note.Note, len(notes))
	res[0] = notes[0]
	base := notes[0].Octave()
	last := notes[0].Letter()
	add := 0
	for k := 1; k < len(notes); k++ {
		letter := notes[k].Letter()
		if letter < last {
			add++
		}
		res[k] = notes[k].WithOctave(base + add)
		last = letter
	}
	return res
}
