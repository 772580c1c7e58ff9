// ABOUTME: Category fetcher collects and normalizes articles for a single category
// ABOUTME: Owns retry/backoff and error classification; failures never escape as errors

package news

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/interfaces"
)

// FetcherConfig holds tuning knobs for single-category fetches
type FetcherConfig struct {
	// Timeout applies to each individual page fetch against the source
	Timeout time.Duration

	// MaxRetries is the number of retries after the first attempt,
	// applied only to retryable failures
	MaxRetries int

	// RetryBackoff is the fixed delay between attempts
	RetryBackoff time.Duration
}

// DefaultFetcherConfig returns the default fetch tuning
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Timeout:      5 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 250 * time.Millisecond,
	}
}

// Fetcher fetches and normalizes up to a limit of articles for one
// category. All failure is expressed in the returned CategoryResult;
// Fetch never returns an error.
type Fetcher struct {
	source interfaces.PageFetcher
	logger interfaces.Logger
	config FetcherConfig
}

// NewFetcher creates a new category fetcher
func NewFetcher(source interfaces.PageFetcher, logger interfaces.Logger, config FetcherConfig) *Fetcher {
	defaults := DefaultFetcherConfig()
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = defaults.MaxRetries
	}
	if config.RetryBackoff <= 0 {
		config.RetryBackoff = defaults.RetryBackoff
	}

	return &Fetcher{
		source: source,
		logger: logger,
		config: config,
	}
}

// Fetch collects up to limit normalized articles for the category.
// It pages through the source until the limit is reached, the source
// is exhausted, or a fetch fails past its retries. The limit must
// already be validated by the caller.
func (f *Fetcher) Fetch(ctx context.Context, category domain.Category, limit int) (result domain.CategoryResult) {
	// Unexpected defects must not escape this boundary; convert them
	// into a generic per-category failure without internal detail.
	defer func() {
		if r := recover(); r != nil {
			if f.logger != nil {
				f.logger.Error("panic during category fetch", map[string]interface{}{
					"category": string(category),
					"panic":    fmt.Sprintf("%v", r),
				})
			}
			result = domain.FailedCategoryResult(string(category), "internal error while fetching news")
		}
	}()

	articles := make([]domain.Article, 0, limit)
	cursor := ""

	for len(articles) < limit {
		page, err := f.fetchPage(ctx, category, cursor)
		if err != nil {
			if f.logger != nil {
				f.logger.Warn("category fetch failed", map[string]interface{}{
					"category": string(category),
					"error":    err.Error(),
				})
			}
			return domain.FailedCategoryResult(string(category), fetchErrorMessage(category, err))
		}

		for _, raw := range page.Records {
			article, ok := NormalizeRecord(raw)
			if !ok {
				continue
			}
			articles = append(articles, article)
			if len(articles) == limit {
				break
			}
		}

		// Source exhausted for this category.
		if page.NextCursor == "" || len(page.Records) == 0 {
			break
		}
		cursor = page.NextCursor
	}

	return domain.CategoryResult{
		Category: string(category),
		Success:  true,
		Data:     articles,
	}
}

// fetchPage requests one page from the source, retrying retryable
// failures up to the configured retry budget with a fixed backoff.
func (f *Fetcher) fetchPage(ctx context.Context, category domain.Category, cursor string) (*interfaces.RawPage, error) {
	var lastErr error

	for attempt := 0; attempt <= f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(f.config.RetryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		page, err := f.fetchPageOnce(ctx, category, cursor)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// fetchPageOnce performs a single page fetch under the per-fetch timeout
func (f *Fetcher) fetchPageOnce(ctx context.Context, category domain.Category, cursor string) (*interfaces.RawPage, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	return f.source.FetchPage(fetchCtx, category, cursor)
}

// isRetryable classifies a page-fetch failure. Source errors carry
// their own classification; timeouts from the per-fetch deadline are
// transient by definition.
func isRetryable(err error) bool {
	var fetchErr *interfaces.FetchError
	if stderrors.As(err, &fetchErr) {
		return fetchErr.Retryable
	}
	return stderrors.Is(err, context.DeadlineExceeded)
}

// fetchErrorMessage builds the human-readable error stored on a
// failed CategoryResult
func fetchErrorMessage(category domain.Category, err error) string {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("timed out fetching news for category '%s'", category)
	}
	return fmt.Sprintf("failed to fetch news for category '%s': %s", category, err.Error())
}
