// ABOUTME: Article domain model represents a normalized news article
// ABOUTME: Provides query matching used by the search service

package domain

import "strings"

// Article represents a single normalized news article
type Article struct {
	// ID is a unique identifier assigned at normalization time
	ID string

	// Title is the article headline
	Title string

	// Content is the short-form article body
	Content string

	// Author is the article author, empty when the source omits it
	Author string

	// URL is the source's shortened article URL
	URL string

	// ReadMoreURL links to the full story at the original publisher
	ReadMoreURL string

	// ImageURL is the article image, empty when the source omits it
	ImageURL string

	// Timestamp is the source-provided publication timestamp.
	// It is opaque to this system and never reparsed.
	Timestamp string
}

// MatchesQuery reports whether the article's title or content contains
// the query, case-insensitively
func (a Article) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Content), q)
}
