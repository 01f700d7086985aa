package news

import (
	"fmt"
	"strings"
	"time"

	"SignalDesk/internal/domain/models"
	domsvc "SignalDesk/internal/domain/service"
	"SignalDesk/internal/services/text"
	"SignalDesk/pkg/util"
)

// DefaultMaxItems caps the merged news list per derivation cycle.
const DefaultMaxItems = 60

// Normalizer merges raw feed payloads into the uniform NewsItem model,
// attaching summary, category, sentiment and impact.
type Normalizer struct {
	scorer   domsvc.ItemScorer
	maxItems int
}

// NewNormalizer creates a news normalizer. maxItems <= 0 selects the default
// cap of 60.
func NewNormalizer(scorer domsvc.ItemScorer, maxItems int) *Normalizer {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Normalizer{scorer: scorer, maxItems: maxItems}
}

// Merge flattens payloads into a capped NewsItem list. Nil payloads stand in
// for failed fetches and are skipped; one bad source never empties the batch.
func (n *Normalizer) Merge(payloads []*models.RawFeedPayload) []models.NewsItem {
	items := make([]models.NewsItem, 0, n.maxItems)

	for _, payload := range payloads {
		if payload == nil {
			continue
		}
		for _, raw := range payload.Items {
			if len(items) >= n.maxItems {
				return items
			}
			items = append(items, n.normalizeItem(payload, raw))
		}
	}

	return items
}

func (n *Normalizer) normalizeItem(payload *models.RawFeedPayload, raw models.RawFeedItem) models.NewsItem {
	summary := text.Summarize(raw.Description)
	category := text.Classify(raw.Title + " " + summary)
	sentiment, impact := n.scorer.Score(raw.Title, summary, payload.Exchange)

	id := util.FirstNonEmpty(raw.GUID, raw.Link)
	if id == "" {
		id = fmt.Sprintf("%s-%s", payload.Provider, strings.TrimSpace(raw.Title))
	}

	publishedAt := raw.PubDate
	if t, ok := util.ParseTime(raw.PubDate); ok {
		publishedAt = t.UTC().Format(time.RFC3339)
	}

	return models.NewsItem{
		ID:             id,
		Title:          raw.Title,
		Source:         payload.Provider,
		PublishedAt:    publishedAt,
		Category:       category,
		Summary:        summary,
		Sentiment:      sentiment,
		ImpactLevel:    impact,
		PriceMovePct:   models.PriceMoveUnavailable,
		Tags:           []string{payload.Provider, string(category)},
		ExchangeSource: payload.Exchange,
	}
}
