// Package scheduler provides background maintenance for the treatment finder
// API. It runs periodic rate limiter cleanup and usage summary logging using
// dependency injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/cleanjesus/medmate-api/data"
	"github.com/cleanjesus/medmate-api/interfaces"
	"github.com/cleanjesus/medmate-api/logging"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles periodic maintenance tasks using dependency injection
type Scheduler struct {
	cleaner   interfaces.BucketCleaner
	stats     *data.Stats
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(cleaner interfaces.BucketCleaner, stats *data.Stats) *Scheduler {
	return &Scheduler{
		cleaner:   cleaner,
		stats:     stats,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start registers the maintenance jobs and launches the scheduler
func (s *Scheduler) Start() error {
	// Drop idle rate limiter buckets so the map cannot grow unbounded
	_, err := s.scheduler.Every(30).Minutes().Do(func() {
		remaining := s.cleaner.CleanupBuckets()
		logging.Debug("Rate limiter cleanup complete", "active_buckets", remaining)
	})
	if err != nil {
		logging.Error("Failed to schedule rate limiter cleanup", "error", err)
		return fmt.Errorf("failed to schedule rate limiter cleanup: %w", err)
	}

	_, err = s.scheduler.Every(1).Hours().Do(s.logUsageSummary)
	if err != nil {
		logging.Error("Failed to schedule usage summary", "error", err)
		return fmt.Errorf("failed to schedule usage summary: %w", err)
	}

	s.scheduler.StartAsync()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// logUsageSummary writes an hourly snapshot of service usage
func (s *Scheduler) logUsageSummary() {
	uptime := time.Since(s.stats.ServerStartTime())

	args := []any{
		"uptime_hours", fmt.Sprintf("%.1f", uptime.Hours()),
		"analyses_served", s.stats.AnalysesServed(),
		"conditions_seen", s.stats.ConditionsSeen(),
		"fallbacks_used", s.stats.FallbacksUsed(),
	}
	if last := s.stats.LastAnalysis(); !last.IsZero() {
		args = append(args, "last_analysis", last.Format(time.RFC3339))
	}

	logging.Info("Usage summary", args...)
}
