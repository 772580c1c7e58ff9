// ABOUTME: Response DTOs mirroring the public API contract
// ABOUTME: CategoryMap marshals categories as a JSON object in request order

package responses

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/danielgtaylor/huma/v2"
)

// TimestampFormat is the wall-clock format used on every response
const TimestampFormat = "2006-01-02 15:04:05 UTC"

// ArticleResponse is a single article as exposed to callers
type ArticleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author,omitempty"`
	URL         string `json:"url,omitempty"`
	ReadMoreURL string `json:"read_more_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// NewsResponse is the single-category (and search) response shape
type NewsResponse struct {
	Success       bool              `json:"success"`
	Category      string            `json:"category"`
	Data          []ArticleResponse `json:"data"`
	Error         string            `json:"error,omitempty"`
	TotalArticles int               `json:"total_articles"`
	Timestamp     string            `json:"timestamp"`
}

// CategoryNews is one category's outcome inside a multi-category response
type CategoryNews struct {
	Success       bool              `json:"success"`
	Category      string            `json:"category"`
	Data          []ArticleResponse `json:"data"`
	Error         string            `json:"error,omitempty"`
	TotalArticles int               `json:"total_articles"`
}

// MultiCategoryResponse is the multi-category response shape
type MultiCategoryResponse struct {
	Success         bool        `json:"success"`
	Categories      CategoryMap `json:"categories"`
	Timestamp       string      `json:"timestamp"`
	TotalCategories int         `json:"total_categories"`
}

// CategoryMap is an insertion-ordered category-to-result mapping.
// It marshals to a JSON object whose key order equals request order,
// independent of fetch completion order.
type CategoryMap struct {
	names  []string
	values map[string]CategoryNews
}

// Add appends a category result, keeping insertion order
func (m *CategoryMap) Add(name string, value CategoryNews) {
	if m.values == nil {
		m.values = make(map[string]CategoryNews)
	}
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the result for a category name
func (m *CategoryMap) Get(name string) (CategoryNews, bool) {
	value, ok := m.values[name]
	return value, ok
}

// Names returns the category names in insertion order
func (m *CategoryMap) Names() []string {
	return m.names
}

// Len returns the number of categories in the map
func (m *CategoryMap) Len() int {
	return len(m.names)
}

// MarshalJSON writes the mapping as an object in insertion order
func (m CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(m.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Schema describes the mapping for OpenAPI generation
func (m CategoryMap) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:                 huma.TypeObject,
		AdditionalProperties: r.Schema(reflect.TypeOf(CategoryNews{}), true, "CategoryNews"),
	}
}

// RootResponse is the service banner returned at the root path
type RootResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Docs      string `json:"docs"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse reports process status and uptime
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime,omitempty"`
}

// CategoriesResponse lists the categories callers may request
type CategoriesResponse struct {
	AvailableCategories []string `json:"available_categories"`
	Timestamp           string   `json:"timestamp"`
}

// StatsResponse exposes fixed limits and feature flags for introspection
type StatsResponse struct {
	APIVersion string          `json:"api_version"`
	Uptime     string          `json:"uptime"`
	Timestamp  string          `json:"timestamp"`
	Features   map[string]bool `json:"features"`
	Limits     StatsLimits     `json:"limits"`
}

// StatsLimits holds the fixed system maxima
type StatsLimits struct {
	MaxArticlesPerRequest   int `json:"max_articles_per_request"`
	MaxCategoriesPerRequest int `json:"max_categories_per_request"`
	ConcurrentRequestLimit  int `json:"concurrent_request_limit"`
}
