// ABOUTME: Category domain model defines the closed set of news categories
// ABOUTME: Provides parsing and scope resolution for category names

package domain

import "fmt"

// Category is a named news topic understood by the system
type Category string

// The categories the news source understands. CategoryAll is a sentinel
// that maps to the source's combined feed rather than a real topic.
const (
	CategoryAll           Category = "all"
	CategoryBusiness      Category = "business"
	CategorySports        Category = "sports"
	CategoryTechnology    Category = "technology"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategoryPolitics      Category = "politics"
	CategoryWorld         Category = "world"
)

// Categories returns every category accepted as caller input,
// including the "all" sentinel
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryBusiness,
		CategorySports,
		CategoryTechnology,
		CategoryEntertainment,
		CategoryHealth,
		CategoryScience,
		CategoryPolitics,
		CategoryWorld,
	}
}

// RealCategories returns the category enumeration without the "all"
// sentinel. Search uses this to fan out without duplicating articles
// already covered by the combined feed.
func RealCategories() []Category {
	all := Categories()
	real := make([]Category, 0, len(all)-1)
	for _, c := range all {
		if c != CategoryAll {
			real = append(real, c)
		}
	}
	return real
}

// ParseCategory validates a caller-supplied category name
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", name)
}

// SearchLabel builds the synthetic category label attached to search
// results. It is never accepted as caller input.
func SearchLabel(query string) string {
	return "search:" + query
}
