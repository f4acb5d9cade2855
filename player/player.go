package player

import (
	"errors"
	"fmt"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/logging"
	"github.com/jsphweid/changes/note"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrKeyOutOfRange = errors.New("note outside the MIDI key range")

type Options struct {
	BPM      float64
	Velocity uint8
	Channel  uint8
	// Scale plays each harmony's scale one note at a time instead of
	// sounding its chord.
	Scale bool
}

func (o Options) withDefaults() Options {
	if o.BPM <= 0 {
		o.BPM = constants.DefaultBPM
	}
	if o.Velocity == 0 {
		o.Velocity = constants.DefaultVelocity
	}
	return o
}

// Player is an ordered list of notes and chords. Add never changes the
// receiver.
type Player struct {
	items []chord.Harmony
}

func New(items ...chord.Harmony) Player {
	return Player{items: append([]chord.Harmony(nil), items...)}
}

func (p Player) Add(items ...chord.Harmony) Player {
	res := make([]chord.Harmony, 0, len(p.items)+len(items))
	res = append(res, p.items...)
	res = append(res, items...)
	return Player{items: res}
}

func (p Player) Items() []chord.Harmony {
	return append([]chord.Harmony(nil), p.items...)
}

func (p Player) Len() int {
	return len(p.items)
}

// groups lists what sounds together, in order.
func groups(h chord.Harmony, opts Options) [][]note.Note {
	if !opts.Scale || h.Kind != chord.ChordKind {
		return [][]note.Note{h.Notes()}
	}

	var res [][]note.Note
	for _, n := range h.Chord.Scale() {
		res = append(res, []note.Note{n})
	}
	return res
}

func key(n note.Note) (uint8, error) {
	k := n.MIDIKey()
	if k < 0 || k > 127 {
		return 0, fmt.Errorf("%w: %s in octave %v", ErrKeyOutOfRange, n.SimpleName(), n.Octave())
	}
	return uint8(k), nil
}

// Render writes one quarter note per group: a bare note or a scale degree
// alone, a chord's tones at once.
func (p Player) Render(opts Options) (*smf.SMF, error) {
	opts = opts.withDefaults()
	ticks := smf.MetricTicks(constants.TicksPerQuarter)

	res := smf.New()
	res.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTempo(opts.BPM))

	numGroups := 0
	for _, h := range p.items {
		for _, group := range groups(h, opts) {
			keys := make([]uint8, 0, len(group))
			for _, n := range group {
				k, err := key(n)
				if err != nil {
					return nil, err
				}
				keys = append(keys, k)
			}

			for _, k := range keys {
				track.Add(0, midi.NoteOn(opts.Channel, k, opts.Velocity))
			}
			delta := ticks.Ticks4th()
			for _, k := range keys {
				track.Add(delta, midi.NoteOff(opts.Channel, k))
				delta = 0
			}
			numGroups++
		}
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, err
	}

	logging.Debug("rendered", logging.Fields{
		"items":  len(p.items),
		"groups": numGroups,
		"bpm":    opts.BPM,
	})
	return res, nil
}
