package scheduler

import (
	"testing"

	"github.com/cleanjesus/medmate-api/data"
	"github.com/cleanjesus/medmate-api/interfaces"
)

type fakeCleaner struct {
	calls int
}

func (f *fakeCleaner) CleanupBuckets() int {
	f.calls++
	return 0
}

func TestSchedulerImplementsInterface(t *testing.T) {
	var _ interfaces.Scheduler = NewScheduler(&fakeCleaner{}, data.NewStats())
}

func TestSchedulerStartStop(t *testing.T) {
	sched := NewScheduler(&fakeCleaner{}, data.NewStats())

	if err := sched.Start(); err != nil {
		t.Fatalf("Expected scheduler to start, got %v", err)
	}
	sched.Stop()
}

func TestLogUsageSummary(t *testing.T) {
	stats := data.NewStats()
	sched := NewScheduler(&fakeCleaner{}, stats)

	// Must not panic with zero usage or with recorded usage
	sched.logUsageSummary()

	stats.RecordAnalysis(2, 1)
	sched.logUsageSummary()
}
