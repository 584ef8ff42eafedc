package evaluator

import (
	"context"
	"time"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/robfig/cron/v3"
)

// cronFiredSince reports whether sched fires in the half-open interval
// (after, until]. A zero after means "ever": any parseable schedule has fired
// before any realistic evaluation time, so it reports true without stepping
// the schedule from the zero time (the parser's search would give up).
func cronFiredSince(sched cron.Schedule, after, until time.Time) bool {
	if until.IsZero() {
		return false
	}
	if after.IsZero() {
		return true
	}
	if !after.Before(until) {
		return false
	}
	next := sched.Next(after)
	return !next.IsZero() && !next.After(until)
}

// evalOnCron computes the true subset of an on_cron condition: a partition is
// true when the schedule has fired since the partition's last materialization
// (or ever, if never materialized) and, for time-partitioned assets, the
// firing fell within the partition's active window.
func (s *evalState) evalOnCron(ctx context.Context, cond *domain.AutomationCondition) (domain.PartitionSubset, error) {
	sched, err := domain.CronParser.Parse(cond.Schedule)
	if err != nil {
		// Validate catches this at construction time; a tick only sees it if
		// the graph skipped validation.
		return domain.EmptySubset(), err
	}

	var trueKeys []domain.InternedString
	for _, raw := range s.space.Keys() {
		key := domain.NewInternedString(raw)

		m, err := s.latestMaterialization(ctx, s.ec.Spec.Key, key)
		if err != nil {
			return domain.EmptySubset(), err
		}

		var after, until time.Time
		until = s.ec.Now
		if m != nil {
			after = m.Timestamp
		}

		if s.ec.Spec.Partitions != nil {
			if window, werr := s.ec.Spec.Partitions.Window(key); werr == nil {
				if after.Before(window.Start) {
					after = window.Start
				}
				if window.End.Before(until) {
					until = window.End
				}
			}
		}

		if cronFiredSince(sched, after, until) {
			trueKeys = append(trueKeys, key)
		}
	}
	return domain.NewSubsetOf(trueKeys...), nil
}
