package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(qualitiesCmd)
}

var qualitiesCmd = &cobra.Command{
	Use:   "qualities [name]",
	Short: "Lists the chord qualities",
	Long: `Lists every chord quality with its symbol, structure and the scales it goes by.
Given a quality name, spells it on C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return describeQuality(cmd.OutOrStdout(), args[0])
		}
		listQualities(cmd.OutOrStdout())
		return nil
	},
}

func listQualities(w io.Writer) {
	for _, q := range chord.Qualities() {
		set, _ := chord.SetFor(q)
		fmt.Fprintf(w, "%-22s C%-8s %-16s %s\n",
			q.Name,
			set.Symbols(),
			strings.Join(q.Structure, " "),
			strings.Join(q.Descriptions, "; "))
	}
}

func describeQuality(w io.Writer, name string) error {
	q, ok := chord.QualityNamed(name)
	if !ok {
		return fmt.Errorf("unknown quality %q, see `changes qualities`", name)
	}
	c, _ := chord.Build(note.MustLookup("C"), q)
	fmt.Fprint(w, c.String())
	return nil
}
