package cmd

import (
	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "changes",
	Short: "Spells scales and chords",
	Long: `Derives the scale and chord tones of chord symbols such as "D-7" or "C7(#9)",
spelled the way a musician would read them, and renders them to MIDI.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := constants.LoadEnv(); err != nil {
			logging.Debug("no .env file loaded", logging.Fields{"reason": err.Error()})
		}
		logging.SetLevel(logging.ParseLevel(constants.GetLogLevel()))
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
