// Package schedule computes and waits for the recurring reset epoch.
//
// Resets happen at fixed hours of local civil time in a named zone (by default 03:00
// and 15:00 America/New_York). The zone's DST rules come from the time zone database;
// fixed offsets are never used.
//
// # Computing the Next Reset
//
// Schedule.Next returns the earliest configured local time strictly after the given
// instant. Wall-clock times that a DST transition makes ambiguous resolve to the earlier
// of their two instants. Times that fall into a spring-forward gap resolve to the first
// valid instant after the gap (the transition itself).
//
// # Scheduler Loop
//
// Scheduler.Run repeats: compute the next reset from the current wall time, wait on a
// timer, write the current instant as the new reset epoch. The next occurrence is
// recomputed every cycle, so restarts, clock jumps and DST changes self-correct. A reset
// missed while the process was down is not fired retroactively.
//
// Cancellation during the wait stops the loop without writing. A failed write is logged
// and the loop moves on to the next occurrence.
//
// # Usage
//
//	sched, err := schedule.New(cfg.Reset)
//	if err != nil {
//	    return err // invalid time zone or hours
//	}
//	s := schedule.NewScheduler(sched, store, publisher, clockwork.NewRealClock(), logger)
//	go s.Run(ctx)
package schedule
