package cmd

import (
	"context"
	"errors"

	"card-timers/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the database and snapshot storage",
	Long:  `Checks that the database schema matches the state models and that the snapshot bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check integrity of the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(serverCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket if missing")
}

func runIntegrityChecks(ctx context.Context, runServer, runStorage bool) error {
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	logg := rt.logger

	client, err := rt.objectStore()
	if err != nil {
		return err
	}

	svc := integrity.NewService(rt.db, client, rt.cfg.Storage, logg)

	if runServer {
		logg.Info("Checking server schema integrity...", zap.String("driver", rt.cfg.Database.Driver))
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Server schema matches expected definition.")
		} else {
			logg.Warn("Server schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runStorage {
		logg.Info("Checking snapshot storage...")
		report, err := svc.CheckStorage(ctx)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			logg.Info("Storage is disabled, skipping.")
		case err != nil:
			return err
		case report.Exists:
			logg.Info("Snapshot bucket is present.", zap.String("bucket", report.Bucket), zap.Int("snapshots", report.Snapshots))
		case fixFlag:
			logg.Info("Creating snapshot bucket...", zap.String("bucket", report.Bucket))
			if err := svc.FixStorage(ctx); err != nil {
				return err
			}
			logg.Info("Snapshot bucket created.")
		default:
			logg.Warn("Snapshot bucket is missing", zap.String("bucket", report.Bucket))
			logg.Info("Run 'integrity storage --fix' to create it.")
		}
	}
	return nil
}
