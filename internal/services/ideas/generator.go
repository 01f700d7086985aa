package ideas

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"SignalDesk/internal/domain/models"
	"SignalDesk/pkg/util"
)

const (
	ideaWindow        = 50
	maxNarrativeIdeas = 5
	summaryLimit      = 120
)

// EdgeSource yields pseudo-random edge estimates. Injected so tests can pin
// the sequence.
type EdgeSource interface {
	Float64() float64
}

// Generator turns a macro snapshot plus scored news into advisory trade
// ideas. Generation is wholesale: every call rebuilds the full list.
type Generator struct {
	mu   sync.Mutex
	edge EdgeSource
}

// NewGenerator creates an idea generator with the given edge source. A nil
// source falls back to a time-seeded one.
func NewGenerator(edge EdgeSource) *Generator {
	if edge == nil {
		edge = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{edge: edge}
}

// Generate applies the rule set in fixed order and always returns at least
// one idea.
func (g *Generator) Generate(macro models.MacroSnapshot, items []models.NewsItem) []models.TradeIdea {
	g.mu.Lock()
	defer g.mu.Unlock()

	window := items
	if len(window) > ideaWindow {
		window = window[:ideaWindow]
	}

	// only high-impact items count toward directional conviction
	var high []models.NewsItem
	var bullish, bearish int
	for _, item := range window {
		if item.ImpactLevel != models.ImpactHigh {
			continue
		}
		high = append(high, item)
		switch item.Sentiment {
		case models.SentimentBullish:
			bullish++
		case models.SentimentBearish:
			bearish++
		}
	}

	var out []models.TradeIdea

	if idea, ok := g.directionalIdea(macro, bullish, bearish); ok {
		out = append(out, idea)
	}
	if idea, ok := g.relativeValueIdea(high); ok {
		out = append(out, idea)
	}
	if idea, ok := g.riskIdea(macro); ok {
		out = append(out, idea)
	}
	out = append(out, g.narrativeIdeas(high)...)

	if len(out) == 0 {
		out = append(out, models.TradeIdea{
			ID:           uuid.NewString(),
			Tag:          "WAIT",
			Category:     models.IdeaNeutral,
			EdgeEstimate: "0.0%",
			Conviction:   models.ConvictionLow,
			Title:        "No strong edge",
			Summary:      "Neither the tape nor the news flow offers a clear setup. Stay flat and wait for a regime change.",
			Horizon:      "1-3 days",
			RiskNote:     "Opportunity cost only.",
		})
	}

	return out
}

func (g *Generator) directionalIdea(macro models.MacroSnapshot, bullish, bearish int) (models.TradeIdea, bool) {
	switch {
	case strings.Contains(macro.TrendLabel, "Bull"):
		conviction := models.ConvictionMedium
		if bullish > bearish {
			conviction = models.ConvictionHigh
		}
		return models.TradeIdea{
			ID:           uuid.NewString(),
			Tag:          "LONG BTC",
			Category:     models.IdeaDirectional,
			EdgeEstimate: g.edgeEstimate(),
			Conviction:   conviction,
			Title:        "Long BTC perp with the trend",
			Summary:      fmt.Sprintf("Majors trend reads %s and the flow skews bullish (%d bullish vs %d bearish headlines). Ride the move with a trailing stop.", macro.TrendLabel, bullish, bearish),
			Horizon:      "1-3 days",
			RiskNote:     "Invalidated on a close back inside the prior range.",
		}, true
	case strings.Contains(macro.TrendLabel, "Bear"):
		conviction := models.ConvictionMedium
		if bearish >= bullish {
			conviction = models.ConvictionHigh
		}
		return models.TradeIdea{
			ID:           uuid.NewString(),
			Tag:          "SHORT BTC",
			Category:     models.IdeaDirectional,
			EdgeEstimate: g.edgeEstimate(),
			Conviction:   conviction,
			Title:        "Short BTC perp with the trend",
			Summary:      fmt.Sprintf("Majors trend reads %s and the flow skews bearish (%d bearish vs %d bullish headlines). Fade bounces into resistance.", macro.TrendLabel, bearish, bullish),
			Horizon:      "1-3 days",
			RiskNote:     "Cover on a reclaim of the breakdown level; squeezes are violent.",
		}, true
	}
	return models.TradeIdea{}, false
}

func (g *Generator) relativeValueIdea(high []models.NewsItem) (models.TradeIdea, bool) {
	for _, item := range high {
		if item.ExchangeSource {
			continue
		}
		return models.TradeIdea{
			ID:           uuid.NewString(),
			Tag:          "BTC VS ALTS",
			Category:     models.IdeaRelativeValue,
			EdgeEstimate: g.edgeEstimate(),
			Conviction:   models.ConvictionMedium,
			Title:        "Long BTC against an alt basket",
			Summary:      fmt.Sprintf("High-impact coverage from %s tends to concentrate flows into BTC first. Pair long BTC against a basket of liquid alts.", item.Source),
			Horizon:      "3-7 days",
			RiskNote:     "Alt-led rallies invert this spread quickly.",
		}, true
	}
	return models.TradeIdea{}, false
}

func (g *Generator) riskIdea(macro models.MacroSnapshot) (models.TradeIdea, bool) {
	if macro.VolatilityLabel != models.VolHighStress && macro.LiquidityLabel != models.LiqThinner {
		return models.TradeIdea{}, false
	}
	return models.TradeIdea{
		ID:           uuid.NewString(),
		Tag:          "DE-RISK",
		Category:     models.IdeaRiskMgmt,
		EdgeEstimate: "0.0%",
		Conviction:   models.ConvictionHigh,
		Title:        "Cut gross exposure",
		Summary:      fmt.Sprintf("Volatility reads %s and liquidity reads %s. Reduce position sizes, widen stops and avoid market orders on size.", macro.VolatilityLabel, macro.LiquidityLabel),
		Horizon:      "Intraday",
		RiskNote:     "Missing upside is acceptable in these conditions.",
	}, true
}

func (g *Generator) narrativeIdeas(high []models.NewsItem) []models.TradeIdea {
	n := len(high)
	if n > maxNarrativeIdeas {
		n = maxNarrativeIdeas
	}

	out := make([]models.TradeIdea, 0, n)
	for i := 0; i < n; i++ {
		item := high[i]

		tag := "THEME IDEA"
		switch item.Sentiment {
		case models.SentimentBullish:
			tag = "MOMO LONG"
		case models.SentimentBearish:
			tag = "MOMO SHORT"
		}

		conviction := models.ConvictionMedium
		if i%2 == 1 {
			conviction = models.ConvictionLow
		}

		out = append(out, models.TradeIdea{
			ID:           uuid.NewString(),
			Tag:          tag,
			Category:     models.IdeaNarrative,
			EdgeEstimate: g.edgeEstimate(),
			Conviction:   conviction,
			Title:        item.Title,
			Summary:      util.Truncate(item.Summary, summaryLimit),
			Horizon:      "1-2 days",
			RiskNote:     "Narrative trades decay fast once the headline is priced.",
		})
	}
	return out
}

// edgeEstimate draws a value in [0.5, 2.5) formatted to one decimal.
func (g *Generator) edgeEstimate() string {
	return fmt.Sprintf("%.1f%%", 0.5+g.edge.Float64()*2.0)
}
