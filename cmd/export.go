package cmd

import (
	"fmt"

	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/file"
	"github.com/jsphweid/changes/logging"
	"github.com/jsphweid/changes/midi"
	"github.com/jsphweid/changes/player"
	"github.com/jsphweid/changes/symbol"
	"github.com/jsphweid/changes/util"
	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportScale bool
	exportBPM   int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file name (default: a random name in the output dir)")
	exportCmd.Flags().BoolVar(&exportScale, "scale", false, "play each chord's scale instead of the chord")
	exportCmd.Flags().IntVar(&exportBPM, "bpm", 0, "tempo (default: CHANGES_BPM or 120)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <symbol>...",
	Short: "Renders symbols to a midi file",
	Long:  `Renders the symbols in order, one beat each, to a standard midi file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bpm := exportBPM
		if bpm <= 0 {
			bpm = constants.GetBPM()
		}
		path, err := export(args, constants.GetOutDir(), exportOut, player.Options{
			BPM:   float64(bpm),
			Scale: exportScale,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// export renders symbols to dir/name and returns the path written.
func export(symbols []string, dir string, name string, opts player.Options) (string, error) {
	harmonies, err := symbol.ParseAll(symbols)
	if err != nil {
		return "", err
	}

	s, err := player.New(harmonies...).Render(opts)
	if err != nil {
		return "", err
	}

	if err := util.EnsureOutputDir(dir); err != nil {
		return "", err
	}
	path := file.ExportPath(dir, name)
	if err := midi.WriteMidiFile(path, s); err != nil {
		return "", err
	}

	logging.Info("exported", logging.Fields{"path": path, "symbols": len(symbols)})
	return path, nil
}
