// ABOUTME: Inshorts source client implements the PageFetcher capability interface
// ABOUTME: Translates the source's JSON API and failure modes into classified fetch errors

package inshorts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/interfaces"
)

// DefaultBaseURL is the public Inshorts API endpoint
const DefaultBaseURL = "https://inshorts.com/api/en"

// istZone renders source timestamps the way the Inshorts site does
var istZone = time.FixedZone("IST", 5*3600+1800)

// requestHeaders mimic a browser session; the source rejects plain
// API clients.
var requestHeaders = map[string]string{
	"Accept":          "*/*",
	"Accept-Language": "en-GB,en;q=0.5",
	"Content-Type":    "application/json",
	"Referer":         "https://inshorts.com/en/read",
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36",
}

// pageSize is the number of records requested per page
const pageSize = 20

// Client fetches raw news pages from the Inshorts JSON API
type Client struct {
	deps    interfaces.Dependencies
	baseURL string
}

// NewClient creates an Inshorts client. An empty baseURL selects the
// public endpoint.
func NewClient(deps interfaces.Dependencies, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		deps:    deps,
		baseURL: baseURL,
	}
}

// newsListResponse mirrors the source's JSON envelope
type newsListResponse struct {
	Data struct {
		NewsList []struct {
			NewsObj struct {
				Title        string `json:"title"`
				Content      string `json:"content"`
				AuthorName   string `json:"author_name"`
				ShortenedURL string `json:"shortened_url"`
				SourceURL    string `json:"source_url"`
				ImageURL     string `json:"image_url"`
				CreatedAt    int64  `json:"created_at"`
			} `json:"news_obj"`
		} `json:"news_list"`
		MinNewsID string `json:"min_news_id"`
	} `json:"data"`
}

// FetchPage returns one page of raw records for the category.
// Failures are returned as *interfaces.FetchError: transport errors,
// timeouts, and 5xx responses are retryable; 4xx responses and
// malformed payloads are terminal.
func (c *Client) FetchPage(ctx context.Context, category domain.Category, cursor string) (*interfaces.RawPage, error) {
	requestURL := c.buildURL(category, cursor)

	resp, err := c.deps.HTTPClient.Get(ctx, requestURL, requestHeaders)
	if err != nil {
		return nil, &interfaces.FetchError{
			Message:   fmt.Sprintf("request to news source failed: %s", err.Error()),
			Retryable: true,
		}
	}
	defer resp.Body().Close()

	if err := classifyStatus(resp.StatusCode()); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &interfaces.FetchError{
			Message:   fmt.Sprintf("reading news source response failed: %s", err.Error()),
			Retryable: true,
		}
	}

	var parsed newsListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &interfaces.FetchError{
			Message:   "unexpected response from news source",
			Retryable: false,
		}
	}

	records := make([]interfaces.RawRecord, 0, len(parsed.Data.NewsList))
	for _, entry := range parsed.Data.NewsList {
		news := entry.NewsObj
		records = append(records, interfaces.RawRecord{
			Title:     news.Title,
			Content:   news.Content,
			Author:    news.AuthorName,
			URL:       news.ShortenedURL,
			SourceURL: news.SourceURL,
			ImageURL:  news.ImageURL,
			Timestamp: formatTimestamp(news.CreatedAt),
		})
	}

	return &interfaces.RawPage{
		Records:    records,
		NextCursor: parsed.Data.MinNewsID,
	}, nil
}

// buildURL assembles the source URL for a category and page cursor.
// The "all" sentinel maps to the combined feed; real categories go
// through the trending-topics endpoint.
func (c *Client) buildURL(category domain.Category, cursor string) string {
	var endpoint string
	params := url.Values{}

	if category == domain.CategoryAll {
		endpoint = c.baseURL + "/news"
		params.Set("category", "all_news")
	} else {
		endpoint = c.baseURL + "/search/trending_topics/" + url.PathEscape(string(category))
		params.Set("category", "top_stories")
	}

	params.Set("max_limit", strconv.Itoa(pageSize))
	params.Set("include_card_data", "true")
	if cursor != "" {
		params.Set("news_offset", cursor)
	}

	return endpoint + "?" + params.Encode()
}

// classifyStatus maps an HTTP status to a fetch error classification
func classifyStatus(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status >= 500 || status == http.StatusTooManyRequests:
		return &interfaces.FetchError{
			Message:   fmt.Sprintf("news source returned status %d", status),
			Retryable: true,
		}
	default:
		return &interfaces.FetchError{
			Message:   fmt.Sprintf("news source rejected the request with status %d (invalid category?)", status),
			Retryable: false,
		}
	}
}

// formatTimestamp renders the source's epoch-milliseconds creation
// time the way the source's own site does. The result is opaque to
// the core and never reparsed.
func formatTimestamp(createdAtMillis int64) string {
	if createdAtMillis <= 0 {
		return ""
	}
	t := time.UnixMilli(createdAtMillis).In(istZone)
	return t.Format("Monday, 02 January, 2006 03:04 pm")
}
