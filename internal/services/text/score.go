package text

import (
	"math/rand"
	"regexp"
	"strings"

	"SignalDesk/internal/domain/models"
)

var bullishPattern = wordSet(
	"surge", "surges", "rally", "rallies", "breaks", "breakout", "record",
	"all-time high", "ath", "lists", "listing", "launch", "launches",
	"partnership", "adoption", "approval", "approves", "etf", "upgrade",
	"integration", "expands", "bullish", "gains", "soars", "inflows",
)

var bearishPattern = wordSet(
	"hack", "hacked", "exploit", "exploited", "breach", "crash", "plunge",
	"plunges", "dump", "lawsuit", "sec charges", "ban", "bans", "halt",
	"halts", "delist", "delisting", "outage", "liquidation", "liquidations",
	"bearish", "selloff", "sell-off", "depeg", "insolvency", "outflows",
)

var cautiousPattern = wordSet(
	"warns", "warning", "risk", "risks", "concern", "concerns", "probe",
	"investigation", "uncertainty", "volatile", "volatility", "delay",
	"delays", "postponed",
)

var highImpactPattern = wordSet(
	"etf", "sec", "fed", "hack", "hacked", "exploit", "halt", "halts",
	"lists", "listing", "delist", "delisting", "all-time high", "ath",
	"crash", "approval", "approves", "lawsuit", "insolvency", "depeg",
)

func wordSet(words ...string) *regexp.Regexp {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`)
}

// LexiconScorer derives sentiment and impact from the item text itself:
// term counts for direction, source authority plus keyword salience for
// impact. Same text always scores the same.
type LexiconScorer struct{}

func NewLexiconScorer() *LexiconScorer { return &LexiconScorer{} }

func (s *LexiconScorer) Score(title, summary string, exchangeSource bool) (models.Sentiment, models.ImpactLevel) {
	lower := strings.ToLower(title + " " + summary)

	bull := len(bullishPattern.FindAllString(lower, -1))
	bear := len(bearishPattern.FindAllString(lower, -1))
	caution := len(cautiousPattern.FindAllString(lower, -1))

	var sentiment models.Sentiment
	switch {
	case bull > bear && bull > 0:
		sentiment = models.SentimentBullish
	case bear > bull && bear > 0:
		sentiment = models.SentimentBearish
	case caution > 0:
		sentiment = models.SentimentCautious
	default:
		sentiment = models.SentimentNeutral
	}

	salience := len(highImpactPattern.FindAllString(lower, -1))
	if exchangeSource {
		salience++
	}

	var impact models.ImpactLevel
	switch {
	case salience >= 2:
		impact = models.ImpactHigh
	case salience == 1:
		impact = models.ImpactMedium
	default:
		impact = models.ImpactLow
	}

	return sentiment, impact
}

// RandomScorer draws sentiment and impact uniformly at random. Kept for dev
// parity with the original heuristic dashboard behavior; the pipeline wires
// the lexicon scorer by default.
type RandomScorer struct {
	rng *rand.Rand
}

func NewRandomScorer(seed int64) *RandomScorer {
	return &RandomScorer{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomScorer) Score(string, string, bool) (models.Sentiment, models.ImpactLevel) {
	sentiments := []models.Sentiment{
		models.SentimentBullish, models.SentimentBearish,
		models.SentimentNeutral, models.SentimentCautious,
	}
	impacts := []models.ImpactLevel{
		models.ImpactHigh, models.ImpactMedium, models.ImpactLow,
	}
	return sentiments[s.rng.Intn(len(sentiments))], impacts[s.rng.Intn(len(impacts))]
}
