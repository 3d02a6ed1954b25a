package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"card-timers/core/utils"
	"card-timers/feature/monuments"

	"github.com/spf13/cobra"
)

// monumentsCmd prints the monument board.
var monumentsCmd = &cobra.Command{
	Use:   "monuments",
	Short: "List the last swipe of every monument",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		board, err := monuments.NewService(rt.store, rt.logger).Board(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(board)
		}

		fmt.Printf("Last reset: %s\n\n", utils.FormatUTC(board.LastResetUTC))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MONUMENT\tLAST SWIPE (UTC)\tPLAYER\tSINCE RESET")
		for _, m := range board.Monuments {
			last := "-"
			if m.LastSwipeUTC != nil {
				last = utils.FormatUTC(*m.LastSwipeUTC)
			}
			since := "no"
			if m.SwipedSinceReset {
				since = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, last, m.LastPlayer, since)
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(monumentsCmd)
	monumentsCmd.Flags().Bool("json", false, "Output JSON")
}
