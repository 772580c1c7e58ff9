// ABOUTME: Mappers convert core domain results into response DTOs
// ABOUTME: Keeps the HTTP contract independent of domain representation

package mappers

import (
	"time"

	"inshorts-news-api/api/dto/responses"
	"inshorts-news-api/core/domain"
)

// CurrentTimestamp formats the current UTC time for responses
func CurrentTimestamp() string {
	return time.Now().UTC().Format(responses.TimestampFormat)
}

// ToArticleResponses converts domain articles to their response shape
func ToArticleResponses(articles []domain.Article) []responses.ArticleResponse {
	out := make([]responses.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, responses.ArticleResponse{
			ID:          a.ID,
			Title:       a.Title,
			Content:     a.Content,
			Author:      a.Author,
			URL:         a.URL,
			ReadMoreURL: a.ReadMoreURL,
			ImageURL:    a.ImageURL,
			Timestamp:   a.Timestamp,
		})
	}
	return out
}

// ToNewsResponse converts a single-category result
func ToNewsResponse(result domain.CategoryResult) responses.NewsResponse {
	data := ToArticleResponses(result.Data)
	return responses.NewsResponse{
		Success:       result.Success,
		Category:      result.Category,
		Data:          data,
		Error:         result.Error,
		TotalArticles: len(data),
		Timestamp:     CurrentTimestamp(),
	}
}

// ToMultiCategoryResponse converts an aggregate result, preserving
// request order in the categories object
func ToMultiCategoryResponse(result domain.AggregateResult) responses.MultiCategoryResponse {
	var categories responses.CategoryMap
	for _, r := range result.Results {
		data := ToArticleResponses(r.Data)
		categories.Add(r.Category, responses.CategoryNews{
			Success:       r.Success,
			Category:      r.Category,
			Data:          data,
			Error:         r.Error,
			TotalArticles: len(data),
		})
	}

	return responses.MultiCategoryResponse{
		Success:         result.Success,
		Categories:      categories,
		Timestamp:       CurrentTimestamp(),
		TotalCategories: categories.Len(),
	}
}
