// Package interfaces defines core abstractions for the treatment finder API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import "context"

// Searcher defines the contract for the external web-search collaborator.
// Implementations return formatted result lines, never an error: provider
// failures degrade to a single error-description line that downstream text
// extraction simply fails to match.
type Searcher interface {
	Search(ctx context.Context, query string) []string
}

// Scheduler defines the contract for background maintenance jobs.
type Scheduler interface {
	Start() error
	Stop()
}

// BucketCleaner defines the contract for rate-limiter housekeeping invoked
// by the scheduler.
type BucketCleaner interface {
	// CleanupBuckets drops idle client buckets and returns how many remain.
	CleanupBuckets() int
}
