package ideas

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"SignalDesk/internal/domain/models"
)

func fixedEdge() EdgeSource {
	return rand.New(rand.NewSource(7))
}

func bullishMacro() models.MacroSnapshot {
	return models.MacroSnapshot{
		TrendLabel:      models.TrendStrongBull,
		VolatilityLabel: models.VolCalm,
		LiquidityLabel:  models.LiqNormal,
	}
}

func findByCategory(ideas []models.TradeIdea, cat models.IdeaCategory) *models.TradeIdea {
	for i := range ideas {
		if ideas[i].Category == cat {
			return &ideas[i]
		}
	}
	return nil
}

func TestGenerateDirectionalLong(t *testing.T) {
	g := NewGenerator(fixedEdge())
	items := []models.NewsItem{
		{Sentiment: models.SentimentBullish, ImpactLevel: models.ImpactHigh},
		{Sentiment: models.SentimentBullish, ImpactLevel: models.ImpactHigh},
		{Sentiment: models.SentimentBearish, ImpactLevel: models.ImpactHigh},
	}

	out := g.Generate(bullishMacro(), items)

	idea := findByCategory(out, models.IdeaDirectional)
	if idea == nil {
		t.Fatal("expected a directional idea in a bull trend")
	}
	if idea.Tag != "LONG BTC" {
		t.Fatalf("expected LONG BTC tag, got %q", idea.Tag)
	}
	if idea.Conviction != models.ConvictionHigh {
		t.Fatalf("high-impact bull skew should give High conviction, got %q", idea.Conviction)
	}
	if idea.ID == "" {
		t.Fatal("idea id must be set")
	}
}

func TestGenerateDirectionalShortConviction(t *testing.T) {
	g := NewGenerator(fixedEdge())
	macro := models.MacroSnapshot{
		TrendLabel:      models.TrendMildBear,
		VolatilityLabel: models.VolCalm,
		LiquidityLabel:  models.LiqNormal,
	}
	// equal high-impact counts: ties go High on the short side
	items := []models.NewsItem{
		{Sentiment: models.SentimentBullish, ImpactLevel: models.ImpactHigh},
		{Sentiment: models.SentimentBearish, ImpactLevel: models.ImpactHigh},
	}

	out := g.Generate(macro, items)

	idea := findByCategory(out, models.IdeaDirectional)
	if idea == nil || idea.Tag != "SHORT BTC" {
		t.Fatalf("expected SHORT BTC idea, got %+v", idea)
	}
	if idea.Conviction != models.ConvictionHigh {
		t.Fatalf("expected High conviction on tie, got %q", idea.Conviction)
	}
}

func TestGenerateDirectionalIgnoresLowImpactSentiment(t *testing.T) {
	g := NewGenerator(fixedEdge())
	// plenty of bullish flow, but none of it high impact
	items := []models.NewsItem{
		{Sentiment: models.SentimentBullish, ImpactLevel: models.ImpactLow},
		{Sentiment: models.SentimentBullish, ImpactLevel: models.ImpactMedium},
		{Sentiment: models.SentimentBullish, ImpactLevel: models.ImpactLow},
	}

	out := g.Generate(bullishMacro(), items)

	idea := findByCategory(out, models.IdeaDirectional)
	if idea == nil {
		t.Fatal("expected a directional idea in a bull trend")
	}
	if idea.Conviction != models.ConvictionMedium {
		t.Fatalf("without high-impact support conviction must be Medium, got %q", idea.Conviction)
	}
}

func TestGenerateRelativeValueNeedsMediaSource(t *testing.T) {
	g := NewGenerator(fixedEdge())
	exchangeOnly := []models.NewsItem{
		{ImpactLevel: models.ImpactHigh, ExchangeSource: true, Sentiment: models.SentimentBullish},
	}

	out := g.Generate(bullishMacro(), exchangeOnly)
	if findByCategory(out, models.IdeaRelativeValue) != nil {
		t.Fatal("exchange-sourced items must not trigger the relative-value rule")
	}

	withMedia := append(exchangeOnly, models.NewsItem{
		ImpactLevel: models.ImpactHigh,
		Source:      "coindesk",
		Sentiment:   models.SentimentBearish,
	})
	out = g.Generate(bullishMacro(), withMedia)
	idea := findByCategory(out, models.IdeaRelativeValue)
	if idea == nil {
		t.Fatal("expected relative-value idea with media high-impact item")
	}
	if idea.Conviction != models.ConvictionMedium {
		t.Fatalf("expected Medium conviction, got %q", idea.Conviction)
	}
}

func TestGenerateRiskIdea(t *testing.T) {
	g := NewGenerator(fixedEdge())

	for _, macro := range []models.MacroSnapshot{
		{TrendLabel: models.TrendSideways, VolatilityLabel: models.VolHighStress, LiquidityLabel: models.LiqDeep},
		{TrendLabel: models.TrendSideways, VolatilityLabel: models.VolCalm, LiquidityLabel: models.LiqThinner},
	} {
		out := g.Generate(macro, nil)
		idea := findByCategory(out, models.IdeaRiskMgmt)
		if idea == nil {
			t.Fatalf("expected risk idea for %s/%s", macro.VolatilityLabel, macro.LiquidityLabel)
		}
		if idea.Conviction != models.ConvictionHigh {
			t.Fatalf("risk warnings are always High, got %q", idea.Conviction)
		}
	}
}

func TestGenerateNarrativeIdeas(t *testing.T) {
	g := NewGenerator(fixedEdge())

	var items []models.NewsItem
	for i := 0; i < 8; i++ {
		sentiment := models.SentimentBullish
		if i%3 == 1 {
			sentiment = models.SentimentBearish
		} else if i%3 == 2 {
			sentiment = models.SentimentNeutral
		}
		items = append(items, models.NewsItem{
			Title:       "headline " + strconv.Itoa(i),
			Summary:     strings.Repeat("x", 200),
			ImpactLevel: models.ImpactHigh,
			Sentiment:   sentiment,
		})
	}

	out := g.Generate(models.MacroSnapshot{TrendLabel: models.TrendSideways, VolatilityLabel: models.VolCalm, LiquidityLabel: models.LiqNormal}, items)

	var narrative []models.TradeIdea
	for _, idea := range out {
		if idea.Category == models.IdeaNarrative {
			narrative = append(narrative, idea)
		}
	}
	if len(narrative) != 5 {
		t.Fatalf("expected 5 narrative ideas, got %d", len(narrative))
	}
	wantTags := []string{"MOMO LONG", "MOMO SHORT", "THEME IDEA", "MOMO LONG", "MOMO SHORT"}
	for i, idea := range narrative {
		if idea.Tag != wantTags[i] {
			t.Fatalf("idea %d: expected tag %q, got %q", i, wantTags[i], idea.Tag)
		}
		wantConviction := models.ConvictionMedium
		if i%2 == 1 {
			wantConviction = models.ConvictionLow
		}
		if idea.Conviction != wantConviction {
			t.Fatalf("idea %d: expected conviction %q, got %q", i, wantConviction, idea.Conviction)
		}
		if len([]rune(idea.Summary)) > 123 {
			t.Fatalf("idea %d: summary not truncated, len %d", i, len(idea.Summary))
		}
		if !strings.HasSuffix(idea.Summary, "...") {
			t.Fatalf("idea %d: truncated summary should end in ellipsis", i)
		}
		if !strings.HasSuffix(idea.EdgeEstimate, "%") {
			t.Fatalf("idea %d: malformed edge %q", i, idea.EdgeEstimate)
		}
	}
}

func TestGenerateEdgeEstimateRange(t *testing.T) {
	g := NewGenerator(fixedEdge())
	items := []models.NewsItem{{Sentiment: models.SentimentBullish, ImpactLevel: models.ImpactHigh, Title: "t", Summary: "s"}}

	for i := 0; i < 50; i++ {
		out := g.Generate(bullishMacro(), items)
		for _, idea := range out {
			if idea.EdgeEstimate == "0.0%" && idea.Category == models.IdeaRiskMgmt {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSuffix(idea.EdgeEstimate, "%"), 64)
			if err != nil {
				t.Fatalf("bad edge %q: %v", idea.EdgeEstimate, err)
			}
			if v < 0.5 || v > 2.5 {
				t.Fatalf("edge %v out of [0.5, 2.5]", v)
			}
		}
	}
}

func TestGenerateNeutralFallback(t *testing.T) {
	g := NewGenerator(fixedEdge())
	macro := models.MacroSnapshot{
		TrendLabel:      models.TrendSideways,
		VolatilityLabel: models.VolCalm,
		LiquidityLabel:  models.LiqNormal,
	}

	out := g.Generate(macro, nil)

	if len(out) != 1 {
		t.Fatalf("expected single fallback idea, got %d", len(out))
	}
	if out[0].Category != models.IdeaNeutral || out[0].Tag != "WAIT" {
		t.Fatalf("unexpected fallback idea %+v", out[0])
	}
}

func TestGenerateWindowLimit(t *testing.T) {
	g := NewGenerator(fixedEdge())

	// 60 items, only items beyond the first 50 are high impact
	var items []models.NewsItem
	for i := 0; i < 50; i++ {
		items = append(items, models.NewsItem{Sentiment: models.SentimentNeutral})
	}
	for i := 0; i < 10; i++ {
		items = append(items, models.NewsItem{ImpactLevel: models.ImpactHigh, Sentiment: models.SentimentBullish})
	}

	out := g.Generate(models.MacroSnapshot{TrendLabel: models.TrendSideways, VolatilityLabel: models.VolCalm, LiquidityLabel: models.LiqNormal}, items)

	if findByCategory(out, models.IdeaNarrative) != nil {
		t.Fatal("items outside the 50-item window must not produce ideas")
	}
}
