package text

import (
	"regexp"
	"strings"
	"testing"

	"SignalDesk/internal/domain/models"
)

var urlCheck = regexp.MustCompile(`https?://`)

func TestNormalizeStripsMarkupAndURLs(t *testing.T) {
	cases := []string{
		`<p>Bitcoin <b>surges</b> past resistance</p>`,
		`Read more at https://example.com/article?id=1 now`,
		`<a href="https://x.io">link</a> text &amp; more`,
		`<div><span>nested</span> markup</div>`,
	}
	for _, raw := range cases {
		got := Normalize(raw)
		if strings.ContainsAny(got, "<>") {
			t.Fatalf("markup survived in %q", got)
		}
		if urlCheck.MatchString(got) {
			t.Fatalf("url survived in %q", got)
		}
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("too   many \n\n spaces\t here")
	if got != "too many spaces here" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestNormalizeFallback(t *testing.T) {
	for _, raw := range []string{"", "   ", "<p></p>", "https://only-a-url.com"} {
		if got := Normalize(raw); got != models.FallbackSummary {
			t.Fatalf("expected fallback for %q, got %q", raw, got)
		}
	}
}

func TestNormalizePlainTextPassthrough(t *testing.T) {
	in := "Ethereum upgrade ships next month"
	if got := Normalize(in); got != in {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestNormalizeDOMAgreesOnPlainText(t *testing.T) {
	in := "Ethereum upgrade ships next month"
	if got, want := NormalizeDOM(in), Normalize(in); got != want {
		t.Fatalf("dom path %q differs from regex path %q", got, want)
	}
}

func TestSummarizeDispatch(t *testing.T) {
	short := "<b>short</b> markup"
	if got := Summarize(short); got != "short markup" {
		t.Fatalf("unexpected short-path output %q", got)
	}

	long := "<div><p>" + strings.Repeat("Liquid staking flows keep climbing. ", 20) + "</p></div>"
	got := Summarize(long)
	if got == models.FallbackSummary {
		t.Fatal("long markup input should still produce a summary")
	}
	if strings.ContainsAny(got, "<>") {
		t.Fatalf("markup survived summarization: %q", got)
	}
}
