// ABOUTME: News handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for category, multi-category, search, and trending news

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"inshorts-news-api/api/dto/mappers"
	"inshorts-news-api/api/dto/responses"
	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/news"
)

// NewsService defines the methods needed from the news aggregator
type NewsService interface {
	FetchOne(ctx context.Context, category domain.Category, limit int) (domain.CategoryResult, error)
	FetchMany(ctx context.Context, categories []domain.Category, limit int) (domain.AggregateResult, error)
}

// SearchService defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, query string, scope domain.Category, limit int) (domain.CategoryResult, error)
}

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	newsService   NewsService
	searchService SearchService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService NewsService, searchService SearchService) *NewsHandler {
	return &NewsHandler{
		newsService:   newsService,
		searchService: searchService,
	}
}

// RegisterRoutes registers all news-related routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getMultipleCategoriesNews",
		Method:      http.MethodGet,
		Path:        "/news/multiple",
		Summary:     "Fetch news for multiple categories",
		Description: "Fetches news concurrently for a comma-separated list of categories. One failing category never fails the whole request.",
		Tags:        []string{"News"},
	}, h.GetMultipleCategories)

	huma.Register(api, huma.Operation{
		OperationID: "getNewsByCategory",
		Method:      http.MethodGet,
		Path:        "/news/{category}",
		Summary:     "Fetch news for a single category",
		Tags:        []string{"News"},
	}, h.GetNewsByCategory)

	huma.Register(api, huma.Operation{
		OperationID: "searchNews",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search news by keyword",
		Description: "Fetches fresh articles for the scope and returns those matching the query in title or content.",
		Tags:        []string{"News"},
	}, h.SearchNews)

	huma.Register(api, huma.Operation{
		OperationID: "getTrendingNews",
		Method:      http.MethodGet,
		Path:        "/trending",
		Summary:     "Fetch trending news across all categories",
		Tags:        []string{"News"},
	}, h.GetTrending)
}

// GetNewsByCategoryInput defines the input for the GetNewsByCategory operation
type GetNewsByCategoryInput struct {
	Category string `path:"category" doc:"News category to fetch"`
	MaxLimit int    `query:"max_limit" default:"10" doc:"Maximum number of articles (1-100)"`
}

// GetNewsByCategoryOutput defines the output for the GetNewsByCategory operation
type GetNewsByCategoryOutput struct {
	Body responses.NewsResponse
}

// GetNewsByCategory handles GET /news/{category}
func (h *NewsHandler) GetNewsByCategory(ctx context.Context, input *GetNewsByCategoryInput) (*GetNewsByCategoryOutput, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	result, err := h.newsService.FetchOne(ctx, category, input.MaxLimit)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetNewsByCategoryOutput{Body: mappers.ToNewsResponse(result)}, nil
}

// GetMultipleCategoriesInput defines the input for the GetMultipleCategories operation
type GetMultipleCategoriesInput struct {
	Categories string `query:"categories" required:"true" doc:"Comma-separated list of categories"`
	MaxLimit   int    `query:"max_limit" default:"10" doc:"Maximum articles per category (1-50)"`
}

// GetMultipleCategoriesOutput defines the output for the GetMultipleCategories operation
type GetMultipleCategoriesOutput struct {
	Body responses.MultiCategoryResponse
}

// GetMultipleCategories handles GET /news/multiple
func (h *NewsHandler) GetMultipleCategories(ctx context.Context, input *GetMultipleCategoriesInput) (*GetMultipleCategoriesOutput, error) {
	if _, err := news.ValidateArticleLimit(input.MaxLimit, news.MaxMultiCategoryArticles); err != nil {
		return nil, toHumaError(err)
	}

	categories, err := news.ParseCategoryList(input.Categories)
	if err != nil {
		return nil, toHumaError(err)
	}

	result, err := h.newsService.FetchMany(ctx, categories, input.MaxLimit)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetMultipleCategoriesOutput{Body: mappers.ToMultiCategoryResponse(result)}, nil
}

// SearchNewsInput defines the input for the SearchNews operation
type SearchNewsInput struct {
	Query    string `query:"query" required:"true" doc:"Search query (minimum 3 characters)"`
	Category string `query:"category" default:"all" doc:"Category to search within"`
	MaxLimit int    `query:"max_limit" default:"10" doc:"Maximum number of results (1-50)"`
}

// SearchNewsOutput defines the output for the SearchNews operation
type SearchNewsOutput struct {
	Body responses.NewsResponse
}

// SearchNews handles GET /search
func (h *NewsHandler) SearchNews(ctx context.Context, input *SearchNewsInput) (*SearchNewsOutput, error) {
	scope, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	result, err := h.searchService.Search(ctx, input.Query, scope, input.MaxLimit)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchNewsOutput{Body: mappers.ToNewsResponse(result)}, nil
}

// GetTrendingInput defines the input for the GetTrending operation
type GetTrendingInput struct {
	MaxLimit int `query:"max_limit" default:"20" doc:"Maximum number of trending articles (1-100)"`
}

// GetTrendingOutput defines the output for the GetTrending operation
type GetTrendingOutput struct {
	Body responses.NewsResponse
}

// GetTrending handles GET /trending as an alias for the combined feed
func (h *NewsHandler) GetTrending(ctx context.Context, input *GetTrendingInput) (*GetTrendingOutput, error) {
	result, err := h.newsService.FetchOne(ctx, domain.CategoryAll, input.MaxLimit)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetTrendingOutput{Body: mappers.ToNewsResponse(result)}, nil
}
