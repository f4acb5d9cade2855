package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/midi"
	"github.com/jsphweid/changes/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Prints the notes struck together in a midi file and the chords they spell.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func joinNames(notes []note.Note) string {
	names := make([]string, 0, len(notes))
	for _, n := range notes {
		names = append(names, n.Name())
	}
	return strings.Join(names, " ")
}

func inspect(w io.Writer, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	for _, group := range midi.Simultaneities(midi.NoteStarts(s)) {
		notes := make([]note.Note, 0, len(group))
		for _, st := range group {
			notes = append(notes, st.Note)
		}

		line := fmt.Sprintf("track %v tick %v: %s", group[0].Track, group[0].AbsTicks, joinNames(notes))
		if found := chord.Identify(notes); len(found) > 0 {
			line += fmt.Sprintf(" (%s: %s)", found[0].Name(), joinNames(found[0].LegibleChord()))
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
