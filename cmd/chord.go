package cmd

import (
	"fmt"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/symbol"
	"github.com/spf13/cobra"
)

var legibleOnly bool

func init() {
	chordCmd.Flags().BoolVarP(&legibleOnly, "legible", "l", false, "only print the legible chord")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>...",
	Short: "Spells the scale and chord of each symbol",
	Long: `Spells the scale and chord of each symbol. A bare root is read as its major chord.
Remember to quote symbols with # or parentheses in your shell.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			c, err := resolveChord(arg)
			if err != nil {
				return err
			}
			if legibleOnly {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Name(), joinNames(c.LegibleChord()))
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), c.String())
		}
		return nil
	},
}

// resolveChord reads a symbol, taking a bare root as its major chord.
func resolveChord(s string) (*chord.Chord, error) {
	h, err := symbol.Parse(s)
	if err != nil {
		return nil, err
	}
	if h.Kind == chord.NoteKind {
		return h.Major()
	}
	return h.Chord, nil
}
