// ABOUTME: Aggregator orchestrates concurrent category fetches with a shared concurrency ceiling
// ABOUTME: Isolates per-category failures and merges results deterministically by request order

package news

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/errors"
	"inshorts-news-api/core/interfaces"
)

// CategoryFetcher fetches one category. Satisfied by *Fetcher.
type CategoryFetcher interface {
	Fetch(ctx context.Context, category domain.Category, limit int) domain.CategoryResult
}

// Aggregator fans category fetches out across goroutines, bounded by a
// process-wide semaphore shared with every other in-flight request.
// A failure in one category never cancels, delays, or alters the
// outcome of its siblings.
type Aggregator struct {
	fetcher CategoryFetcher
	sem     *semaphore.Weighted
	logger  interfaces.Logger
}

// NewAggregator creates an aggregator around a category fetcher.
// The semaphore is the process-wide fetch ceiling and must be shared
// across all aggregator users; passing nil disables the bound.
func NewAggregator(fetcher CategoryFetcher, sem *semaphore.Weighted, logger interfaces.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		sem:     sem,
		logger:  logger,
	}
}

// FetchOne fetches a single category. The limit is validated against
// MaxArticlesPerRequest before any fetch is dispatched; source
// failures are reported inside the returned CategoryResult.
func (a *Aggregator) FetchOne(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error) {
	if _, err := ValidateArticleLimit(limit, MaxArticlesPerRequest); err != nil {
		return domain.CategoryResult{}, err
	}

	return a.fetchBounded(ctx, category, limit), nil
}

// FetchMany fetches 1..MaxCategoriesPerRequest categories
// concurrently. Caller-input violations are returned as errors before
// any fetch is dispatched. The result holds one entry per requested
// category in request order, and Success is true when at least one
// category succeeded.
func (a *Aggregator) FetchMany(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error) {
	if _, err := ValidateArticleLimit(limit, MaxArticlesPerRequest); err != nil {
		return domain.AggregateResult{}, err
	}

	categories = dedupeCategories(categories)

	if len(categories) == 0 {
		return domain.AggregateResult{}, &errors.ValidationError{
			Field:   "categories",
			Message: "at least one category must be provided",
		}
	}
	if len(categories) > MaxCategoriesPerRequest {
		return domain.AggregateResult{}, &errors.ValidationError{
			Field:   "categories",
			Message: fmt.Sprintf("maximum %d categories allowed per request, got %d", MaxCategoriesPerRequest, len(categories)),
		}
	}

	// Fan out one goroutine per category and join on all of them.
	// Results land in request-order slots regardless of completion
	// order.
	results := make([]domain.CategoryResult, len(categories))
	var wg sync.WaitGroup

	for i, category := range categories {
		wg.Add(1)
		go func(slot int, category domain.Category) {
			defer wg.Done()
			results[slot] = a.fetchBounded(ctx, category, limit)
		}(i, category)
	}

	wg.Wait()

	success := false
	for _, result := range results {
		if result.Success {
			success = true
			break
		}
	}

	return domain.AggregateResult{
		Success: success,
		Results: results,
	}, nil
}

// fetchBounded runs one category fetch under the shared ceiling.
// The slot is held for the whole fetch, including retries, and is
// released on every exit path.
func (a *Aggregator) fetchBounded(ctx context.Context, category domain.Category, limit int) domain.CategoryResult {
	if a.sem != nil {
		if err := a.sem.Acquire(ctx, 1); err != nil {
			return domain.FailedCategoryResult(string(category),
				fmt.Sprintf("fetch canceled for category '%s': %s", category, err.Error()))
		}
		defer a.sem.Release(1)
	}

	return a.fetcher.Fetch(ctx, category, limit)
}

// dedupeCategories removes duplicates preserving first-seen order
func dedupeCategories(categories []domain.Category) []domain.Category {
	seen := make(map[domain.Category]bool, len(categories))
	deduped := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		deduped = append(deduped, c)
	}
	return deduped
}
