// ABOUTME: Article normalizer converts raw source records into the canonical Article shape
// ABOUTME: Pure and deterministic; records without a title or content are dropped

package news

import (
	"strings"

	"github.com/google/uuid"

	"inshorts-news-api/core/domain"
	"inshorts-news-api/core/interfaces"
)

// articleNamespace seeds deterministic article IDs so that
// normalizing the same record twice yields the same Article.
var articleNamespace = uuid.MustParse("b8a4f7e2-3c91-4d6a-9f05-2e8c71d0a4b3")

// NormalizeRecord maps a raw source record onto the canonical Article
// shape. Field values are whitespace-trimmed. Records missing a
// non-empty title or content are rejected (ok=false) rather than
// propagated as errors.
func NormalizeRecord(raw interfaces.RawRecord) (domain.Article, bool) {
	title := strings.TrimSpace(raw.Title)
	content := strings.TrimSpace(raw.Content)

	if title == "" || content == "" {
		return domain.Article{}, false
	}

	readMore := strings.TrimSpace(raw.SourceURL)

	return domain.Article{
		ID:          articleID(title, readMore),
		Title:       title,
		Content:     content,
		Author:      strings.TrimSpace(raw.Author),
		URL:         strings.TrimSpace(raw.URL),
		ReadMoreURL: readMore,
		ImageURL:    strings.TrimSpace(raw.ImageURL),
		Timestamp:   strings.TrimSpace(raw.Timestamp),
	}, true
}

// articleID derives a stable UUID from the record's identity fields
func articleID(title, readMoreURL string) string {
	return uuid.NewSHA1(articleNamespace, []byte(title+"\x00"+readMoreURL)).String()
}
