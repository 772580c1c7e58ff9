// ABOUTME: Limit policy validates caller-supplied limits against fixed system maxima
// ABOUTME: Pure functions with no I/O; violations are reported, never silently clamped

package news

import (
	"fmt"
	"strings"

	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/errors"
)

// Fixed system maxima. Exposed for introspection through the stats
// endpoint and shared by the handlers and core services.
const (
	// MaxArticlesPerRequest is the largest article limit a caller may request
	MaxArticlesPerRequest = 100

	// MaxCategoriesPerRequest is the largest category list a caller may request
	MaxCategoriesPerRequest = 10

	// ConcurrentFetchLimit bounds simultaneous source fetches process-wide
	ConcurrentFetchLimit = 20

	// MaxSearchResults is the largest search result limit
	MaxSearchResults = 50

	// MaxMultiCategoryArticles is the largest per-category limit on a
	// multi-category request
	MaxMultiCategoryArticles = 50

	// MinSearchQueryLen is the shortest accepted search query
	MinSearchQueryLen = 3

	// DefaultArticleLimit is used when a caller does not specify one
	DefaultArticleLimit = 10
)

// ValidateArticleLimit checks a requested article limit against the
// given maximum. Values outside [1, max] are rejected rather than
// clamped, so callers can distinguish invalid input from a trimmed
// request.
func ValidateArticleLimit(requested, max int) (int, error) {
	if requested < 1 || requested > max {
		return 0, &errors.ValidationError{
			Field:   "max_limit",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", max, requested),
		}
	}
	return requested, nil
}

// ParseCategoryList parses a comma-separated category list into an
// ordered set. Unknown names, empty lists, and lists longer than
// MaxCategoriesPerRequest are rejected. Duplicates are removed,
// preserving first-seen order.
func ParseCategoryList(csv string) ([]domain.Category, error) {
	parts := strings.Split(csv, ",")

	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil, &errors.ValidationError{
			Field:   "categories",
			Message: "at least one category must be provided",
		}
	}

	// Length is checked before deduplication: an over-long list is
	// caller abuse even when it collapses to few distinct categories.
	if len(names) > MaxCategoriesPerRequest {
		return nil, &errors.ValidationError{
			Field:   "categories",
			Message: fmt.Sprintf("maximum %d categories allowed per request, got %d", MaxCategoriesPerRequest, len(names)),
		}
	}

	seen := make(map[domain.Category]bool, len(names))
	categories := make([]domain.Category, 0, len(names))

	for _, name := range names {
		category, err := domain.ParseCategory(name)
		if err != nil {
			return nil, &errors.ValidationError{
				Field:   "categories",
				Message: err.Error(),
			}
		}

		if seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}

	return categories, nil
}
