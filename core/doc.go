// Package core contains the business logic for the Inshorts News API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Article, Category, CategoryResult)
// - news: Fetching, normalization, and concurrent multi-category aggregation
// - search: Keyword search over freshly fetched articles
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (news source, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "inshorts-news-api/core/interfaces"
//	    "inshorts-news-api/core/news"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the fetcher and aggregator
//	fetcher := news.NewFetcher(mySource, deps.Logger, news.DefaultFetcherConfig())
//	aggregator := news.NewAggregator(fetcher, sem, deps.Logger)
//
//	// Fetch several categories concurrently
//	result, err := aggregator.FetchMany(ctx, categories, 10)
package core
