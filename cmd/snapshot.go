package cmd

import (
	"fmt"

	"card-timers/feature/snapshot"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// snapshotCmd takes a snapshot of the monument board.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Upload a snapshot of the monument board to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := snapshotService(cmd)
		if err != nil {
			return err
		}

		info, err := svc.Export(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d bytes)\n", info.Name, info.Size)
		return nil
	},
}

// snapshotListCmd lists stored snapshots.
var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := snapshotService(cmd)
		if err != nil {
			return err
		}

		list, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, info := range list {
			fmt.Printf("%s\t%d\n", info.Name, info.Size)
		}
		return nil
	},
}

// snapshotPruneCmd removes old snapshots.
var snapshotPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove all but the newest snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")

		svc, err := snapshotService(cmd)
		if err != nil {
			return err
		}

		removed, err := svc.Prune(cmd.Context(), keep)
		for _, name := range removed {
			fmt.Println("removed", name)
		}
		return err
	},
}

func snapshotService(cmd *cobra.Command) (*snapshot.Service, error) {
	rt, err := bootstrap(cmd.Context())
	if err != nil {
		return nil, err
	}

	client, err := rt.objectStore()
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("storage is disabled (set STORAGE_ENABLED=true)")
	}

	rt.logger.Debug("Using snapshot bucket", zap.String("bucket", rt.cfg.Storage.Bucket))
	return snapshot.NewService(rt.store, client, rt.cfg.Storage, clockwork.NewRealClock(), rt.logger), nil
}

func init() {
	snapshotCmd.AddCommand(snapshotListCmd, snapshotPruneCmd)
	snapshotPruneCmd.Flags().Int("keep", 10, "Number of snapshots to keep")
	RootCmd.AddCommand(snapshotCmd)
}
