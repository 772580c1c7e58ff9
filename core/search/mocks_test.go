package search

import (
	"context"

	"inshorts-news-api/core/domain"
)

// mockAggregator is a mock implementation of the Aggregator interface
type mockAggregator struct {
	fetchManyFunc func(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error)
}

func (m *mockAggregator) FetchMany(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error) {
	if m.fetchManyFunc != nil {
		return m.fetchManyFunc(ctx, categories, limit)
	}
	return domain.AggregateResult{}, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

// articlesAbout builds articles whose titles contain the given word
func articlesAbout(word string, n int) []domain.Article {
	articles := make([]domain.Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, domain.Article{
			ID:      word + string(rune('a'+i)),
			Title:   "Breaking: " + word + " update",
			Content: "Details about " + word + ".",
		})
	}
	return articles
}
