package text

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"SignalDesk/internal/domain/models"
)

var fragmentURL, _ = url.Parse("https://feed.local/item")

// Descriptions longer than this with embedded markup go through the DOM
// parser. Short fragments stay on the regex path, which readability tends to
// over-trim.
const domThreshold = 512

// Summarize picks the normalization path by input shape.
func Summarize(raw string) string {
	if len(raw) > domThreshold && strings.Contains(raw, "<") {
		return NormalizeDOM(raw)
	}
	return Normalize(raw)
}

// NormalizeDOM strips markup with a real HTML parser instead of regexes.
// It agrees with Normalize on plain inputs and falls back to the regex path
// when the parser rejects the fragment.
func NormalizeDOM(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return models.FallbackSummary
	}

	article, err := readability.FromReader(strings.NewReader("<html><body>"+raw+"</body></html>"), fragmentURL)
	if err != nil {
		return Normalize(raw)
	}

	out := urlPattern.ReplaceAllString(article.TextContent, "")
	out = whitespacePattern.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)

	if out == "" {
		return models.FallbackSummary
	}
	return out
}
