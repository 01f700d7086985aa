package text

import (
	"regexp"
	"strings"

	"SignalDesk/internal/domain/models"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	entityPattern     = regexp.MustCompile(`&[a-zA-Z#0-9]+;`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "",
	"&gt;", "",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
)

// Normalize reduces a raw HTML or text description to plain text: markup and
// http(s) URLs are removed and whitespace runs collapse to single spaces.
// It never fails; empty or unusable input yields the fallback summary.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return models.FallbackSummary
	}

	out := tagPattern.ReplaceAllString(raw, " ")
	out = urlPattern.ReplaceAllString(out, "")
	out = entityReplacer.Replace(out)
	out = entityPattern.ReplaceAllString(out, " ")
	out = whitespacePattern.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)

	if out == "" {
		return models.FallbackSummary
	}
	return out
}
