package cmd

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"card-timers/core/reconcile"
	"card-timers/core/swipe"
	"card-timers/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// replayCmd feeds an exported CardLogger transcript through the reconciliation engine.
var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Replay CardLogger lines into the monument state",
	Long: `Reads one CardLogger message per line (from a file, or stdin when omitted)
and records every swipe. Lines are identified by a hash of the transcript
content and their line number. A monument is only written when the line is
later in the transcript than the one it already holds, so replaying the same
transcript again leaves every monument untouched, whatever --at says.

Examples:
  # Replay an export, dated at the given instant
  replay export.txt --at 2024-01-15T20:15:00Z

  # Pipe lines in
  cat export.txt | replay`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		atFlag, _ := cmd.Flags().GetString("at")
		sentAt := time.Now().UTC()
		if atFlag != "" {
			parsed, err := utils.ParseUTC(atFlag)
			if err != nil {
				return err
			}
			sentAt = parsed
		}

		in, name := cmd.InOrStdin(), "stdin"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()
			in, name = f, args[0]
		}
		content, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		engine := reconcile.NewEngine(rt.store, nil, rt.logger)

		stats, err := replay(cmd.Context(), engine, content, sentAt)
		if err != nil {
			return err
		}

		rt.logger.Info("Replay completed",
			zap.String("input", name),
			zap.String("source", stats.source),
			zap.Int("applied", stats.applied),
			zap.Int("duplicate", stats.duplicate),
			zap.Int("ignored", stats.ignored))
		return nil
	},
}

type replayStats struct {
	source                      string
	applied, duplicate, ignored int
}

// transcriptSource names a transcript by its content, independent of where it was read from.
func transcriptSource(content []byte) string {
	sum := sha256.Sum256(content)
	return "replay:" + hex.EncodeToString(sum[:8])
}

// replay records every swipe line of content, stamped with sentAt.
func replay(ctx context.Context, engine *reconcile.Engine, content []byte, sentAt time.Time) (replayStats, error) {
	stats := replayStats{source: transcriptSource(content)}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for line := 1; scanner.Scan(); line++ {
		candidate, ok := swipe.Extract(scanner.Text())
		if !ok {
			stats.ignored++
			continue
		}

		outcome, err := engine.RecordSequenced(ctx, candidate.Monument, sentAt, candidate.Player, stats.source, line)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", line, err)
		}
		if outcome == reconcile.Applied {
			stats.applied++
		} else {
			stats.duplicate++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to scan transcript: %w", err)
	}
	return stats, nil
}

func init() {
	replayCmd.Flags().String("at", "", "Arrival instant for every line (RFC 3339, default now)")
	RootCmd.AddCommand(replayCmd)
}
