package cmd

import (
	"fmt"
	"time"

	"card-timers/core/config"
	"card-timers/core/schedule"
	"card-timers/core/utils"

	"github.com/spf13/cobra"
)

// resetCmd is the parent command for reset schedule operations.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Inspect the reset schedule",
}

// resetNextCmd prints the upcoming reset instants.
var resetNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the upcoming reset instants",
	Long: `Prints the next reset instants in UTC and in the configured timezone.

Examples:
  # Next reset
  reset next

  # Next week of resets
  reset next --count 14`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("--count must be at least 1")
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		sched, err := schedule.New(cfg.Reset)
		if err != nil {
			return err
		}

		for _, at := range sched.Upcoming(time.Now(), count) {
			fmt.Printf("%s  (%s)\n", utils.FormatUTC(at), at.In(sched.Location()).Format("Mon 2006-01-02 15:04 MST"))
		}
		return nil
	},
}

// resetLastCmd prints the stored reset epoch.
var resetLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the stored reset epoch",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		last, err := rt.store.GetLastReset(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(utils.FormatUTC(last))
		return nil
	},
}

func init() {
	resetCmd.AddCommand(resetNextCmd, resetLastCmd)
	resetNextCmd.Flags().Int("count", 1, "Number of upcoming resets")
	RootCmd.AddCommand(resetCmd)
}
