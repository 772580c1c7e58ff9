// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"inshorts-news-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsSource(err) {
		return huma.Error503ServiceUnavailable("News source unavailable", err)
	}

	// Unknown errors never expose internal detail.
	return huma.Error500InternalServerError("Internal server error")
}
