package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/changes/note"
	"github.com/jsphweid/changes/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return fmt.Errorf("error encoding midi file: %w", err)
	}
	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing midi file: %w", err)
	}
	return nil
}

// SpellKey names a MIDI key with its pitch class's canonical spelling,
// octave 0 being the octave starting at middle C.
func SpellKey(key uint8) note.Note {
	pc := note.PitchClass(util.Mod(int(key), note.NumPitchClasses))
	octave := int(key)/note.NumPitchClasses - 5
	return pc.Canonical().WithOctave(octave)
}

type NoteStart struct {
	Track    int
	AbsTicks uint64
	Key      uint8
	Velocity uint8
	Note     note.Note
}

// NoteStarts lists every note-on with a non-zero velocity, track by track.
func NoteStarts(s *smf.SMF) []NoteStart {
	var res []NoteStart
	for i, track := range s.Tracks {
		var absTicks uint64
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			var ch, key, vel uint8
			if gomidi.Message(evt.Message).GetNoteStart(&ch, &key, &vel) {
				res = append(res, NoteStart{
					Track:    i,
					AbsTicks: absTicks,
					Key:      key,
					Velocity: vel,
					Note:     SpellKey(key),
				})
			}
		}
	}
	return res
}

// Simultaneities groups note starts that share a track and a tick.
func Simultaneities(starts []NoteStart) [][]NoteStart {
	var res [][]NoteStart
	for _, st := range starts {
		last := len(res) - 1
		if last >= 0 && res[last][0].Track == st.Track && res[last][0].AbsTicks == st.AbsTicks {
			res[last] = append(res[last], st)
			continue
		}
		res = append(res, []NoteStart{st})
	}
	return res
}
