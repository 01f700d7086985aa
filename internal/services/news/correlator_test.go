package news

import (
	"testing"

	"SignalDesk/internal/domain/models"
)

func TestCorrelatorDefaultTable(t *testing.T) {
	c := NewCorrelator(nil)

	cases := map[models.Category]string{
		models.CategoryAI:      "render-token",
		models.CategoryLayer2:  "arbitrum",
		models.CategoryLST:     "lido-dao",
		models.CategoryGaming:  "immutable-x",
		models.CategoryDeFi:    "uniswap",
		models.CategorySolana:  "solana",
		models.CategoryStable:  "tether",
		models.CategoryGeneral: "bitcoin",
	}
	for cat, want := range cases {
		if got := c.AssetFor(cat); got != want {
			t.Fatalf("category %q: expected %q, got %q", cat, want, got)
		}
	}
}

func TestCorrelatorOverrides(t *testing.T) {
	c := NewCorrelator(map[string]string{
		string(models.CategoryAI): "fetch-ai",
		"Nonsense":                "dogecoin",
	})

	if got := c.AssetFor(models.CategoryAI); got != "fetch-ai" {
		t.Fatalf("expected override fetch-ai, got %q", got)
	}
	for _, id := range c.AssetIDs() {
		if id == "dogecoin" {
			t.Fatal("unknown category override should be ignored")
		}
	}
}

func TestAssetIDsDeduplicated(t *testing.T) {
	c := NewCorrelator(nil)

	ids := c.AssetIDs()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate asset id %q", id)
		}
		seen[id] = true
	}
	if !seen["bitcoin"] {
		t.Fatal("asset set must include bitcoin")
	}
}

func TestEnrichFormatsSignedChange(t *testing.T) {
	c := NewCorrelator(nil)
	items := []models.NewsItem{
		{Category: models.CategorySolana},
		{Category: models.CategoryDeFi},
	}
	snapshot := models.PriceSnapshot{
		"solana":  {Change24hPct: 4.2},
		"uniswap": {Change24hPct: -1.567},
	}

	items = c.Enrich(items, snapshot)

	if items[0].PriceMovePct != "+4.20%" {
		t.Fatalf("expected +4.20%%, got %q", items[0].PriceMovePct)
	}
	if items[1].PriceMovePct != "-1.57%" {
		t.Fatalf("expected -1.57%%, got %q", items[1].PriceMovePct)
	}
}

func TestEnrichFallsBackToBitcoin(t *testing.T) {
	c := NewCorrelator(nil)
	items := []models.NewsItem{{Category: models.CategoryAI}}
	snapshot := models.PriceSnapshot{"bitcoin": {Change24hPct: 1.0}}

	items = c.Enrich(items, snapshot)

	if items[0].PriceMovePct != "+1.00%" {
		t.Fatalf("expected bitcoin fallback quote, got %q", items[0].PriceMovePct)
	}
}

func TestEnrichWithEmptySnapshot(t *testing.T) {
	c := NewCorrelator(nil)
	items := []models.NewsItem{{Category: models.CategoryGeneral}}

	items = c.Enrich(items, models.PriceSnapshot{})

	if items[0].PriceMovePct != models.PriceMoveUnavailable {
		t.Fatalf("expected unavailable sentinel, got %q", items[0].PriceMovePct)
	}
}
