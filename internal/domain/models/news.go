package models

// Category is the coarse topic label attached to every news item.
type Category string

const (
	CategoryAI      Category = "AI"
	CategoryLayer2  Category = "Layer2"
	CategoryLST     Category = "LST"
	CategoryGaming  Category = "Gaming"
	CategoryDeFi    Category = "DeFi"
	CategorySolana  Category = "Solana"
	CategoryStable  Category = "Stable"
	CategoryGeneral Category = "General"
)

// Categories lists every known category.
func Categories() []Category {
	return []Category{
		CategoryAI, CategoryLayer2, CategoryLST, CategoryGaming,
		CategoryDeFi, CategorySolana, CategoryStable, CategoryGeneral,
	}
}

// Sentiment is the directional read on a news item.
type Sentiment string

const (
	SentimentBullish  Sentiment = "Bullish"
	SentimentBearish  Sentiment = "Bearish"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentCautious Sentiment = "Cautious"
)

// ImpactLevel grades how market-moving an item is expected to be.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "High"
	ImpactMedium ImpactLevel = "Medium"
	ImpactLow    ImpactLevel = "Low"
)

// PriceMoveUnavailable is the sentinel used when no 24h change figure could
// be attached to an item.
const PriceMoveUnavailable = "unavailable"

// FallbackSummary is returned whenever a raw description cannot be reduced
// to readable text.
const FallbackSummary = "No summary available."

// RawFeedItem is one untouched record from a provider's feed.
type RawFeedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	GUID        string `json:"guid"`
	Link        string `json:"link"`
}

// RawFeedPayload is one provider's batch of raw records for one fetch cycle.
type RawFeedPayload struct {
	Provider string
	// Exchange is true for exchange announcement feeds, false for media
	// aggregators.
	Exchange bool
	Items    []RawFeedItem
}

// NewsItem is the normalized, classified view of one feed record. Immutable
// once created; enrichment produces a new value.
type NewsItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Source       string      `json:"source"`
	PublishedAt  string      `json:"publishedAt"`
	Category     Category    `json:"category"`
	Summary      string      `json:"summary"`
	Sentiment    Sentiment   `json:"sentiment"`
	ImpactLevel  ImpactLevel `json:"impactLevel"`
	PriceMovePct string      `json:"priceMovePct"`
	Tags         []string    `json:"tags"`
	// ExchangeSource carries the provider kind through the pipeline so
	// idea generation can tell announcements from media coverage.
	ExchangeSource bool `json:"-"`
}
