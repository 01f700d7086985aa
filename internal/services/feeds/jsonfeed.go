package feeds

import (
	"context"
	"fmt"

	"SignalDesk/internal/domain/models"
	"SignalDesk/pkg/http"
	"SignalDesk/pkg/logger"
)

type jsonFeedResponse struct {
	Status string `json:"status"`
	Items  []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PubDate     string `json:"pubDate"`
		GUID        string `json:"guid"`
		Link        string `json:"link"`
	} `json:"items"`
}

// JSONFeed pulls a provider that serves its feed as rss2json-style JSON.
type JSONFeed struct {
	name     string
	url      string
	exchange bool
	client   *http.Client
	logger   *logger.Logger
}

// NewJSONFeed creates a JSON feed source for one provider endpoint.
func NewJSONFeed(name, url string, exchange bool, client *http.Client, log *logger.Logger) *JSONFeed {
	return &JSONFeed{
		name:     name,
		url:      url,
		exchange: exchange,
		client:   client,
		logger:   log,
	}
}

// Name returns the provider name.
func (f *JSONFeed) Name() string { return f.name }

// Fetch downloads and decodes the feed. A reachable endpoint that returns a
// malformed or non-ok body yields an empty payload, not an error, so one
// broken provider cannot poison a cycle.
func (f *JSONFeed) Fetch(ctx context.Context) (*models.RawFeedPayload, error) {
	var resp jsonFeedResponse
	if err := f.client.GetJSON(ctx, f.url, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", f.name, err)
	}

	payload := &models.RawFeedPayload{
		Provider: f.name,
		Exchange: f.exchange,
	}

	if resp.Status != "" && resp.Status != "ok" {
		f.logger.Warn("feed returned non-ok status",
			logger.String("provider", f.name),
			logger.String("status", resp.Status))
		return payload, nil
	}

	payload.Items = make([]models.RawFeedItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Title == "" {
			continue
		}
		payload.Items = append(payload.Items, models.RawFeedItem{
			Title:       item.Title,
			Description: item.Description,
			PubDate:     item.PubDate,
			GUID:        item.GUID,
			Link:        item.Link,
		})
	}

	return payload, nil
}
