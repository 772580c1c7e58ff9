// ABOUTME: PageFetcher capability interface abstracts the external news source
// ABOUTME: Fixes a two-way retryable/terminal error classification for fetch failures

package interfaces

import (
	"context"

	"inshorts-news-api/core/domain"
)

// RawRecord is an unnormalized article as produced by the external
// source, before field mapping and validation.
type RawRecord struct {
	Title     string
	Content   string
	Author    string
	URL       string
	SourceURL string
	ImageURL  string
	Timestamp string
}

// RawPage is one page of raw records from the source.
// NextCursor is the source's opaque continuation token; an empty
// cursor means the source is exhausted for this category.
type RawPage struct {
	Records    []RawRecord
	NextCursor string
}

// PageFetcher fetches raw article pages from the external source.
// Implementations translate the source's concrete failure modes into
// FetchError values so the core never depends on them directly.
type PageFetcher interface {
	// FetchPage returns one page of raw records for a category.
	// An empty cursor requests the first page. Failures are returned
	// as *FetchError carrying a retryable/terminal classification.
	FetchPage(ctx context.Context, category domain.Category, cursor string) (*RawPage, error)
}

// FetchError is a classified failure from the external source
type FetchError struct {
	// Message describes the failure in human-readable form
	Message string

	// Retryable indicates the failure may be transient (timeout,
	// 5xx-equivalent). Terminal failures (invalid category,
	// 4xx-equivalent) are never retried.
	Retryable bool
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return e.Message
}
