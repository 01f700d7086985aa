package text

import (
	"regexp"
	"strings"

	"SignalDesk/internal/domain/models"
)

// categoryRule maps a keyword set to a category. Rules are tested in order
// and the first match wins; there is no scoring or weighting. Keywords match
// on word boundaries so "ai" does not fire on "chain".
type categoryRule struct {
	category models.Category
	pattern  *regexp.Regexp
}

func rule(category models.Category, keywords ...string) categoryRule {
	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	return categoryRule{
		category: category,
		pattern:  regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`),
	}
}

var categoryRules = []categoryRule{
	rule(models.CategoryAI, "ai", "artificial intelligence", "gpt", "machine learning", "neural", "llm", "agent"),
	rule(models.CategoryLayer2, "layer 2", "layer2", "l2", "rollup", "rollups", "scaling", "optimism", "arbitrum", "zk", "zksync"),
	rule(models.CategoryLST, "staking", "restaking", "liquid staking", "lst", "lido", "eigenlayer", "stake"),
	rule(models.CategoryGaming, "nft", "nfts", "gaming", "game", "metaverse", "play-to-earn", "p2e"),
	rule(models.CategoryDeFi, "defi", "dex", "lending", "yield", "amm", "liquidity pool", "uniswap"),
	rule(models.CategorySolana, "solana", "sol", "phantom", "jupiter"),
	rule(models.CategoryStable, "stablecoin", "stablecoins", "usdt", "usdc", "dai", "tether", "peg", "depeg"),
}

// Classify maps text to exactly one category via case-insensitive keyword
// matching in fixed priority order. Empty text classifies as General.
func Classify(text string) models.Category {
	if text == "" {
		return models.CategoryGeneral
	}
	lower := strings.ToLower(text)

	for _, rule := range categoryRules {
		if rule.pattern.MatchString(lower) {
			return rule.category
		}
	}
	return models.CategoryGeneral
}
