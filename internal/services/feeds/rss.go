package feeds

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"SignalDesk/internal/domain/models"
)

// RSSFeed pulls a provider that serves classic RSS/Atom XML.
type RSSFeed struct {
	name     string
	url      string
	exchange bool
	parser   *gofeed.Parser
}

// NewRSSFeed creates an RSS feed source for one provider endpoint.
func NewRSSFeed(name, url string, exchange bool) *RSSFeed {
	return &RSSFeed{
		name:     name,
		url:      url,
		exchange: exchange,
		parser:   gofeed.NewParser(),
	}
}

// Name returns the provider name.
func (f *RSSFeed) Name() string { return f.name }

// Fetch downloads and parses the feed into the raw payload shape shared with
// JSON providers.
func (f *RSSFeed) Fetch(ctx context.Context) (*models.RawFeedPayload, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", f.name, err)
	}

	payload := &models.RawFeedPayload{
		Provider: f.name,
		Exchange: f.exchange,
		Items:    make([]models.RawFeedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil || item.Title == "" {
			continue
		}
		pubDate := item.Published
		if pubDate == "" && item.PublishedParsed != nil {
			pubDate = item.PublishedParsed.Format(time.RFC3339)
		}
		payload.Items = append(payload.Items, models.RawFeedItem{
			Title:       item.Title,
			Description: item.Description,
			PubDate:     pubDate,
			GUID:        item.GUID,
			Link:        item.Link,
		})
	}

	return payload, nil
}
