// ABOUTME: System handlers for root, health, categories, and stats endpoints
// ABOUTME: Reports service metadata, available categories, and fixed limits

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"inshorts-news-api/api/dto/mappers"
	"inshorts-news-api/api/dto/responses"
	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/news"
)

// APIVersion is reported by the root, health, and stats endpoints
const APIVersion = "1.0.0"

// SystemHandler handles service metadata requests
type SystemHandler struct {
	startTime time.Time
}

// NewSystemHandler creates a new system handler anchored at the given start time
func NewSystemHandler(startTime time.Time) *SystemHandler {
	return &SystemHandler{startTime: startTime}
}

// RegisterRoutes registers all system routes
func (h *SystemHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getRoot",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service banner",
		Tags:        []string{"System"},
	}, h.GetRoot)

	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.GetHealth)

	huma.Register(api, huma.Operation{
		OperationID: "getCategories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List available news categories",
		Tags:        []string{"System"},
	}, h.GetCategories)

	huma.Register(api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/stats",
		Summary:     "Service limits and feature flags",
		Tags:        []string{"System"},
	}, h.GetStats)
}

// GetRootOutput defines the output for the GetRoot operation
type GetRootOutput struct {
	Body responses.RootResponse
}

// GetRoot handles GET /
func (h *SystemHandler) GetRoot(ctx context.Context, input *struct{}) (*GetRootOutput, error) {
	return &GetRootOutput{
		Body: responses.RootResponse{
			Message:   "Inshorts News API",
			Version:   APIVersion,
			Docs:      "/docs",
			Timestamp: mappers.CurrentTimestamp(),
		},
	}, nil
}

// GetHealthOutput defines the output for the GetHealth operation
type GetHealthOutput struct {
	Body responses.HealthResponse
}

// GetHealth handles GET /health
func (h *SystemHandler) GetHealth(ctx context.Context, input *struct{}) (*GetHealthOutput, error) {
	return &GetHealthOutput{
		Body: responses.HealthResponse{
			Status:    "healthy",
			Timestamp: mappers.CurrentTimestamp(),
			Version:   APIVersion,
			Uptime:    h.uptime(),
		},
	}, nil
}

// GetCategoriesOutput defines the output for the GetCategories operation
type GetCategoriesOutput struct {
	Body responses.CategoriesResponse
}

// GetCategories handles GET /categories
func (h *SystemHandler) GetCategories(ctx context.Context, input *struct{}) (*GetCategoriesOutput, error) {
	categories := domain.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}

	return &GetCategoriesOutput{
		Body: responses.CategoriesResponse{
			AvailableCategories: names,
			Timestamp:           mappers.CurrentTimestamp(),
		},
	}, nil
}

// GetStatsOutput defines the output for the GetStats operation
type GetStatsOutput struct {
	Body responses.StatsResponse
}

// GetStats handles GET /stats
func (h *SystemHandler) GetStats(ctx context.Context, input *struct{}) (*GetStatsOutput, error) {
	return &GetStatsOutput{
		Body: responses.StatsResponse{
			APIVersion: APIVersion,
			Uptime:     h.uptime(),
			Timestamp:  mappers.CurrentTimestamp(),
			Features: map[string]bool{
				"async_support":       true,
				"concurrent_requests": true,
				"multiple_categories": true,
				"search_support":      true,
				"rate_limiting":       false,
			},
			Limits: responses.StatsLimits{
				MaxArticlesPerRequest:   news.MaxArticlesPerRequest,
				MaxCategoriesPerRequest: news.MaxCategoriesPerRequest,
				ConcurrentRequestLimit:  news.ConcurrentFetchLimit,
			},
		},
	}, nil
}

func (h *SystemHandler) uptime() string {
	return time.Since(h.startTime).Round(time.Second).String()
}
