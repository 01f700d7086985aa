package service

import (
	"context"

	"SignalDesk/internal/domain/models"
)

// FeedSource fetches one provider's raw payload for a cycle.
type FeedSource interface {
	Name() string
	Fetch(ctx context.Context) (*models.RawFeedPayload, error)
}

// PriceSource returns latest quotes for a batch of asset ids.
type PriceSource interface {
	Quotes(ctx context.Context, assetIDs []string) (models.PriceSnapshot, error)
}

// ItemScorer assigns sentiment and impact to a normalized item. Implementations
// must be total: any text maps to some value of each enumeration.
type ItemScorer interface {
	Score(title, summary string, exchangeSource bool) (models.Sentiment, models.ImpactLevel)
}

// Notifier delivers idea alerts out of band (chat, mail, ...).
type Notifier interface {
	NotifyIdeas(ctx context.Context, ideas []models.TradeIdea) error
}
