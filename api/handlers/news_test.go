package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"inshorts-news-api/core/domain"
	coreerrors "inshorts-news-api/core/errors"
)

// mockNewsService is a mock implementation of the news service
type mockNewsService struct {
	fetchOneFunc  func(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error)
	fetchManyFunc func(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error)
}

func (m *mockNewsService) FetchOne(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error) {
	if m.fetchOneFunc != nil {
		return m.fetchOneFunc(ctx, category, limit)
	}
	return domain.CategoryResult{Category: string(category), Success: true, Data: []domain.Article{}}, nil
}

func (m *mockNewsService) FetchMany(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error) {
	if m.fetchManyFunc != nil {
		return m.fetchManyFunc(ctx, categories, limit)
	}
	results := make([]domain.CategoryResult, 0, len(categories))
	for _, c := range categories {
		results = append(results, domain.CategoryResult{Category: string(c), Success: true, Data: []domain.Article{}})
	}
	return domain.AggregateResult{Success: true, Results: results}, nil
}

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	searchFunc func(ctx context.Context, query string, scope domain.Category, limit int) (domain.CategoryResult, error)
}

func (m *mockSearchService) Search(ctx context.Context, query string, scope domain.Category, limit int) (domain.CategoryResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, scope, limit)
	}
	return domain.CategoryResult{Category: domain.SearchLabel(query), Success: true, Data: []domain.Article{}}, nil
}

func testArticles(n int) []domain.Article {
	articles := make([]domain.Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, domain.Article{
			ID:      fmt.Sprintf("id-%d", i),
			Title:   fmt.Sprintf("Title %d", i),
			Content: fmt.Sprintf("Content %d", i),
		})
	}
	return articles
}

func TestNewNewsHandler(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})

	if handler == nil {
		t.Fatal("NewNewsHandler returned nil")
	}
	if handler.newsService == nil {
		t.Error("NewsHandler.newsService is nil")
	}
	if handler.searchService == nil {
		t.Error("NewsHandler.searchService is nil")
	}
}

func TestNewsHandler_RegisterRoutes(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	for _, path := range []string{"/news/multiple", "/news/{category}", "/search", "/trending"} {
		if openapi.Paths == nil || openapi.Paths[path] == nil {
			t.Errorf("GET %s endpoint not registered", path)
		} else if openapi.Paths[path].Get == nil {
			t.Errorf("GET method not registered for %s", path)
		}
	}
}

func TestGetNewsByCategory_Success(t *testing.T) {
	mockService := &mockNewsService{
		fetchOneFunc: func(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error) {
			if category != domain.CategorySports {
				t.Errorf("Expected category sports, got %s", category)
			}
			if limit != 5 {
				t.Errorf("Expected limit 5, got %d", limit)
			}
			return domain.CategoryResult{
				Category: string(category),
				Success:  true,
				Data:     testArticles(3),
			}, nil
		},
	}

	handler := NewNewsHandler(mockService, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/sports?max_limit=5")

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body struct {
		Success       bool   `json:"success"`
		Category      string `json:"category"`
		TotalArticles int    `json:"total_articles"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Success {
		t.Error("Expected success true")
	}
	if body.Category != "sports" {
		t.Errorf("Expected category sports, got %s", body.Category)
	}
	if body.TotalArticles != 3 {
		t.Errorf("Expected 3 articles, got %d", body.TotalArticles)
	}
}

func TestGetNewsByCategory_UnknownCategory(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/cooking")

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for unknown category, got %d", resp.Code)
	}
}

func TestGetNewsByCategory_InvalidLimit(t *testing.T) {
	dispatched := false
	mockService := &mockNewsService{
		fetchOneFunc: func(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error) {
			dispatched = true
			return domain.CategoryResult{}, &coreerrors.ValidationError{
				Field:   "max_limit",
				Message: "must be between 1 and 100, got 101",
			}
		},
	}

	handler := NewNewsHandler(mockService, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/sports?max_limit=101")

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for out-of-range limit, got %d", resp.Code)
	}
	if !dispatched {
		t.Error("Expected limit validation to happen in the aggregator")
	}
}

func TestGetNewsByCategory_DefaultLimit(t *testing.T) {
	mockService := &mockNewsService{
		fetchOneFunc: func(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error) {
			if limit != 10 {
				t.Errorf("Expected default limit 10, got %d", limit)
			}
			return domain.CategoryResult{Category: string(category), Success: true, Data: []domain.Article{}}, nil
		},
	}

	handler := NewNewsHandler(mockService, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/world")

	if resp.Code != 200 {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
}

func TestGetNewsByCategory_SourceFailureReturnsBody(t *testing.T) {
	mockService := &mockNewsService{
		fetchOneFunc: func(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error) {
			return domain.FailedCategoryResult(string(category), "news source returned status 503"), nil
		},
	}

	handler := NewNewsHandler(mockService, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/science")

	if resp.Code != 200 {
		t.Fatalf("Expected status 200 with failure body, got %d", resp.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Success {
		t.Error("Expected success false")
	}
	if body.Error == "" {
		t.Error("Expected error message in body")
	}
}

func TestGetMultipleCategories_Success(t *testing.T) {
	mockService := &mockNewsService{
		fetchManyFunc: func(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error) {
			if len(categories) != 2 {
				t.Errorf("Expected 2 categories, got %d", len(categories))
			}
			return domain.AggregateResult{
				Success: true,
				Results: []domain.CategoryResult{
					{Category: "sports", Success: true, Data: testArticles(2)},
					{Category: "business", Success: true, Data: testArticles(1)},
				},
			}, nil
		},
	}

	handler := NewNewsHandler(mockService, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/multiple?categories=sports,business")

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body struct {
		Success         bool            `json:"success"`
		TotalCategories int             `json:"total_categories"`
		Categories      json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Success {
		t.Error("Expected success true")
	}
	if body.TotalCategories != 2 {
		t.Errorf("Expected 2 categories, got %d", body.TotalCategories)
	}
}

func TestGetMultipleCategories_UnknownCategory(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/multiple?categories=sports,cooking")

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for unknown category, got %d", resp.Code)
	}
}

func TestGetMultipleCategories_TooManyCategories(t *testing.T) {
	categories := "all,business,sports,technology,entertainment,health,science,politics,world,all,business"

	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/multiple?categories=" + categories)

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for over-long category list, got %d", resp.Code)
	}
}

func TestGetMultipleCategories_MissingCategories(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/multiple")

	if resp.Code != 422 {
		t.Errorf("Expected status 422 for missing categories parameter, got %d", resp.Code)
	}
}

func TestGetMultipleCategories_LimitAboveMultiCap(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/multiple?categories=sports&max_limit=51")

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for limit above multi-category cap, got %d", resp.Code)
	}
}

func TestSearchNews_Success(t *testing.T) {
	mockSearch := &mockSearchService{
		searchFunc: func(ctx context.Context, query string, scope domain.Category, limit int) (domain.CategoryResult, error) {
			if query != "climate" {
				t.Errorf("Expected query climate, got %q", query)
			}
			if scope != domain.CategoryAll {
				t.Errorf("Expected default scope all, got %s", scope)
			}
			return domain.CategoryResult{
				Category: domain.SearchLabel(query),
				Success:  true,
				Data:     testArticles(2),
			}, nil
		},
	}

	handler := NewNewsHandler(&mockNewsService{}, mockSearch)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/search?query=climate")

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Category != "search:climate" {
		t.Errorf("Expected category search:climate, got %s", body.Category)
	}
}

func TestSearchNews_ScopedCategory(t *testing.T) {
	mockSearch := &mockSearchService{
		searchFunc: func(ctx context.Context, query string, scope domain.Category, limit int) (domain.CategoryResult, error) {
			if scope != domain.CategoryTechnology {
				t.Errorf("Expected scope technology, got %s", scope)
			}
			return domain.CategoryResult{Category: domain.SearchLabel(query), Success: true, Data: []domain.Article{}}, nil
		},
	}

	handler := NewNewsHandler(&mockNewsService{}, mockSearch)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/search?query=chips&category=technology")

	if resp.Code != 200 {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
}

func TestSearchNews_ShortQuery(t *testing.T) {
	mockSearch := &mockSearchService{
		searchFunc: func(ctx context.Context, query string, scope domain.Category, limit int) (domain.CategoryResult, error) {
			return domain.CategoryResult{}, &coreerrors.ValidationError{
				Field:   "query",
				Message: "must be at least 3 characters",
			}
		},
	}

	handler := NewNewsHandler(&mockNewsService{}, mockSearch)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/search?query=ab")

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for short query, got %d", resp.Code)
	}
}

func TestSearchNews_UnknownScope(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/search?query=climate&category=cooking")

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for unknown scope, got %d", resp.Code)
	}
}

func TestGetTrending_UsesAllCategory(t *testing.T) {
	mockService := &mockNewsService{
		fetchOneFunc: func(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error) {
			if category != domain.CategoryAll {
				t.Errorf("Expected category all, got %s", category)
			}
			if limit != 20 {
				t.Errorf("Expected default limit 20, got %d", limit)
			}
			return domain.CategoryResult{Category: string(category), Success: true, Data: testArticles(4)}, nil
		},
	}

	handler := NewNewsHandler(mockService, &mockSearchService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/trending")

	if resp.Code != 200 {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
}
