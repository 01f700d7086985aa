package news

import (
	"fmt"

	"SignalDesk/internal/domain/models"
)

// fallbackAsset backs every category without a dedicated proxy asset and any
// asset missing from the quote snapshot.
const fallbackAsset = "bitcoin"

var defaultCategoryAssets = map[models.Category]string{
	models.CategoryAI:      "render-token",
	models.CategoryLayer2:  "arbitrum",
	models.CategoryLST:     "lido-dao",
	models.CategoryGaming:  "immutable-x",
	models.CategoryDeFi:    "uniswap",
	models.CategorySolana:  "solana",
	models.CategoryStable:  "tether",
	models.CategoryGeneral: fallbackAsset,
}

// Correlator annotates news items with the 24h change of the proxy asset for
// their category.
type Correlator struct {
	categoryAssets map[models.Category]string
}

// NewCorrelator builds a correlator from the default category-to-asset table,
// with overrides layered on top. Override keys must be known categories;
// unknown keys are ignored.
func NewCorrelator(overrides map[string]string) *Correlator {
	table := make(map[models.Category]string, len(defaultCategoryAssets))
	for cat, asset := range defaultCategoryAssets {
		table[cat] = asset
	}
	for key, asset := range overrides {
		cat := models.Category(key)
		if _, known := table[cat]; known && asset != "" {
			table[cat] = asset
		}
	}
	return &Correlator{categoryAssets: table}
}

// AssetIDs returns the deduplicated set of asset identifiers the correlator
// needs quoted, always including the fallback asset.
func (c *Correlator) AssetIDs() []string {
	seen := make(map[string]bool, len(c.categoryAssets)+1)
	ids := make([]string, 0, len(c.categoryAssets)+1)
	for _, asset := range c.categoryAssets {
		if !seen[asset] {
			seen[asset] = true
			ids = append(ids, asset)
		}
	}
	if !seen[fallbackAsset] {
		ids = append(ids, fallbackAsset)
	}
	return ids
}

// AssetFor resolves the proxy asset for a category.
func (c *Correlator) AssetFor(category models.Category) string {
	if asset, ok := c.categoryAssets[category]; ok {
		return asset
	}
	return fallbackAsset
}

// Enrich fills PriceMovePct on each item from the snapshot. Items whose proxy
// asset has no quote keep the unavailable sentinel. The input slice is
// mutated and returned for chaining.
func (c *Correlator) Enrich(items []models.NewsItem, snapshot models.PriceSnapshot) []models.NewsItem {
	for i := range items {
		asset := c.AssetFor(items[i].Category)
		quote, ok := snapshot[asset]
		if !ok {
			quote, ok = snapshot[fallbackAsset]
		}
		if !ok {
			items[i].PriceMovePct = models.PriceMoveUnavailable
			continue
		}
		items[i].PriceMovePct = fmt.Sprintf("%+.2f%%", quote.Change24hPct)
	}
	return items
}
