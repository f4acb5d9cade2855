package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/logging"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Spells symbols as they are typed",
	Long: `Reads one symbol per line from stdin and spells the latest one once input
has been quiet for CHANGES_DEBOUNCE_MS milliseconds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wait := time.Duration(constants.GetDebounceMillis()) * time.Millisecond
		return live(cmd.InOrStdin(), cmd.OutOrStdout(), wait)
	},
}

// live spells the most recent line after input goes quiet for wait, and
// once more for a pending line at the end of input.
func live(in io.Reader, out io.Writer, wait time.Duration) error {
	var mu sync.Mutex
	var pending string

	flush := func() {
		mu.Lock()
		defer mu.Unlock()
		if pending == "" {
			return
		}

		c, err := resolveChord(pending)
		if err != nil {
			logging.Warn("could not spell", logging.Fields{"symbol": pending, "error": err.Error()})
			fmt.Fprintf(out, "%s: %v\n", pending, err)
		} else {
			fmt.Fprint(out, c.String())
		}
		pending = ""
	}

	debounced := debounce.New(wait)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		mu.Lock()
		pending = line
		mu.Unlock()
		debounced(flush)
	}

	flush()
	return scanner.Err()
}
