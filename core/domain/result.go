// ABOUTME: Result domain models for per-category and aggregated fetch outcomes
// ABOUTME: AggregateResult preserves request order independent of completion order

package domain

// CategoryResult is the outcome of fetching a single category.
// Failure is represented as a value, never as an error that crosses
// the fetcher boundary: Success=false implies empty Data and a
// non-empty Error message; Success=true implies an empty Error.
type CategoryResult struct {
	// Category is the requested category name, or a search label
	Category string

	// Success reports whether the fetch produced usable data
	Success bool

	// Data holds the normalized articles in source order
	Data []Article

	// Error is a human-readable failure description, empty on success
	Error string
}

// TotalArticles returns the number of articles in the result
func (r CategoryResult) TotalArticles() int {
	return len(r.Data)
}

// FailedCategoryResult builds the failure value for a category
func FailedCategoryResult(category, errMsg string) CategoryResult {
	return CategoryResult{
		Category: category,
		Success:  false,
		Data:     []Article{},
		Error:    errMsg,
	}
}

// AggregateResult is the outcome of a multi-category fetch.
// Results are stored in request order; completion order of the
// underlying fetches never changes iteration order.
type AggregateResult struct {
	// Success is true when at least one category fetch succeeded
	Success bool

	// Results holds one entry per requested category, in request order
	Results []CategoryResult
}

// TotalCategories returns the number of per-category results
func (r AggregateResult) TotalCategories() int {
	return len(r.Results)
}

// Get returns the result for the named category
func (r AggregateResult) Get(category string) (CategoryResult, bool) {
	for _, res := range r.Results {
		if res.Category == category {
			return res, true
		}
	}
	return CategoryResult{}, false
}

// Names returns the category names in request order
func (r AggregateResult) Names() []string {
	names := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		names = append(names, res.Category)
	}
	return names
}
