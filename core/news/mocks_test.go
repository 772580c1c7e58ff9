package news

import (
	"context"
	"fmt"

	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/interfaces"
)

// mockPageFetcher is a mock implementation of the PageFetcher interface
type mockPageFetcher struct {
	fetchFunc func(ctx context.Context, category domain.Category, cursor string) (*interfaces.RawPage, error)
}

func (m *mockPageFetcher) FetchPage(ctx context.Context, category domain.Category, cursor string) (*interfaces.RawPage, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, category, cursor)
	}
	return &interfaces.RawPage{}, nil
}

// mockCategoryFetcher is a mock implementation of the CategoryFetcher interface
type mockCategoryFetcher struct {
	fetchFunc func(ctx context.Context, category domain.Category, limit int) domain.CategoryResult
}

func (m *mockCategoryFetcher) Fetch(ctx context.Context, category domain.Category, limit int) domain.CategoryResult {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, category, limit)
	}
	return domain.CategoryResult{Category: string(category), Success: true, Data: []domain.Article{}}
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

// rawRecords builds n valid raw records with distinct titles
func rawRecords(prefix string, n int) []interfaces.RawRecord {
	records := make([]interfaces.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, interfaces.RawRecord{
			Title:     fmt.Sprintf("%s title %d", prefix, i),
			Content:   fmt.Sprintf("%s content %d", prefix, i),
			SourceURL: fmt.Sprintf("https://example.com/%s/%d", prefix, i),
		})
	}
	return records
}
