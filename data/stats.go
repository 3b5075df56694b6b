// Package data provides thread-safe service statistics for the treatment
// finder API. The pipeline itself keeps no state across requests; Stats only
// tracks atomic usage counters consumed by the health endpoint and the
// maintenance scheduler's summaries.
package data

import (
	"sync/atomic"
	"time"
)

// Stats holds service counters with atomic access.
type Stats struct {
	analysesServed  atomic.Int64
	conditionsSeen  atomic.Int64
	fallbacksUsed   atomic.Int64
	lastAnalysis    atomic.Value // time.Time
	serverStartTime atomic.Value // time.Time
}

// NewStats creates a Stats container stamped with the server start time.
func NewStats() *Stats {
	s := &Stats{}
	s.lastAnalysis.Store(time.Time{})
	s.serverStartTime.Store(time.Now())
	return s
}

// RecordAnalysis notes one completed analysis covering the given number of
// conditions, of which fallbacks were resolved through the hard fallback pair.
func (s *Stats) RecordAnalysis(conditionCount, fallbacks int) {
	s.analysesServed.Add(1)
	s.conditionsSeen.Add(int64(conditionCount))
	s.fallbacksUsed.Add(int64(fallbacks))
	s.lastAnalysis.Store(time.Now())
}

// AnalysesServed returns the number of analyses served since startup.
func (s *Stats) AnalysesServed() int64 {
	return s.analysesServed.Load()
}

// ConditionsSeen returns the total conditions processed since startup.
func (s *Stats) ConditionsSeen() int64 {
	return s.conditionsSeen.Load()
}

// FallbacksUsed returns how many conditions were resolved via fallback.
func (s *Stats) FallbacksUsed() int64 {
	return s.fallbacksUsed.Load()
}

// LastAnalysis returns the time of the most recent analysis, or the zero time
// when none has been served yet.
func (s *Stats) LastAnalysis() time.Time {
	if v := s.lastAnalysis.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

// ServerStartTime returns when the service started.
func (s *Stats) ServerStartTime() time.Time {
	if v := s.serverStartTime.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
