// ABOUTME: Search service applies keyword filtering over freshly fetched articles
// ABOUTME: Resolves a scope to one or all categories and fans out through the aggregator

package search

import (
	"context"
	"fmt"
	"strings"

	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/errors"
	"inshorts-news-api/core/interfaces"
	"inshorts-news-api/core/news"
)

// fetchMultiplier oversizes the per-category fetch before filtering,
// since keyword matching is lossy.
const fetchMultiplier = 3

// maxQueryLen bounds the accepted query length
const maxQueryLen = 100

// Aggregator is the slice of the news aggregator the search service needs
type Aggregator interface {
	FetchMany(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error)
}

// Service handles search operations over the news source
type Service struct {
	aggregator Aggregator
	logger     interfaces.Logger
}

// NewService creates a new search service instance
func NewService(aggregator Aggregator, logger interfaces.Logger) *Service {
	return &Service{
		aggregator: aggregator,
		logger:     logger,
	}
}

// validateQuery validates search query parameters
func validateQuery(query string) error {
	if len(query) < news.MinSearchQueryLen {
		return &errors.ValidationError{
			Field:   "query",
			Message: fmt.Sprintf("search query must be at least %d characters", news.MinSearchQueryLen),
		}
	}

	if len(query) > maxQueryLen {
		return &errors.ValidationError{
			Field:   "query",
			Message: fmt.Sprintf("search query cannot exceed %d characters", maxQueryLen),
		}
	}

	return nil
}

// Search fetches articles for the scope and returns those whose title
// or content contains the query, case-insensitively, truncated to
// limit and labeled with the synthetic "search:{query}" category.
// A scope of "all" resolves to the full real-category enumeration.
// An empty match set with at least one reachable category is a
// success, not an error.
func (s *Service) Search(ctx context.Context, query string, scope domain.Category, limit int) (domain.CategoryResult, error) {
	query = strings.TrimSpace(query)
	if err := validateQuery(query); err != nil {
		return domain.CategoryResult{}, err
	}

	if _, err := news.ValidateArticleLimit(limit, news.MaxSearchResults); err != nil {
		return domain.CategoryResult{}, err
	}

	categories := resolveScope(scope)
	label := domain.SearchLabel(query)

	// Fetch a superset per category so post-filter truncation still
	// fills the limit where matches exist.
	fetchWidth := limit * fetchMultiplier
	if fetchWidth > news.MaxArticlesPerRequest {
		fetchWidth = news.MaxArticlesPerRequest
	}

	aggregate, err := s.aggregator.FetchMany(ctx, categories, fetchWidth)
	if err != nil {
		return domain.CategoryResult{}, err
	}

	if !aggregate.Success {
		if s.logger != nil {
			s.logger.Warn("search found no reachable categories", map[string]interface{}{
				"query": query,
				"scope": string(scope),
			})
		}
		return domain.FailedCategoryResult(label, "no categories were reachable for search"), nil
	}

	matches := make([]domain.Article, 0, limit)
	for _, result := range aggregate.Results {
		if !result.Success {
			continue
		}
		for _, article := range result.Data {
			if !article.MatchesQuery(query) {
				continue
			}
			matches = append(matches, article)
			if len(matches) == limit {
				return searchResult(label, matches), nil
			}
		}
	}

	return searchResult(label, matches), nil
}

// resolveScope expands the "all" sentinel into the real category
// enumeration; any other scope searches that single category
func resolveScope(scope domain.Category) []domain.Category {
	if scope == domain.CategoryAll {
		return domain.RealCategories()
	}
	return []domain.Category{scope}
}

func searchResult(label string, matches []domain.Article) domain.CategoryResult {
	return domain.CategoryResult{
		Category: label,
		Success:  true,
		Data:     matches,
	}
}
