package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"SignalDesk/internal/domain/models"
	"SignalDesk/internal/domain/service"
	"SignalDesk/internal/repository"
	"SignalDesk/internal/services/ideas"
	"SignalDesk/internal/services/macro"
	"SignalDesk/internal/services/news"
	"SignalDesk/internal/services/text"
	"SignalDesk/pkg/logger"
)

type fakeFeed struct {
	name    string
	payload *models.RawFeedPayload
	err     error
}

func (f *fakeFeed) Name() string { return f.name }

func (f *fakeFeed) Fetch(ctx context.Context) (*models.RawFeedPayload, error) {
	return f.payload, f.err
}

type fakePrices struct {
	snapshot models.PriceSnapshot
	err      error
	gotIDs   []string
}

func (f *fakePrices) Quotes(ctx context.Context, assetIDs []string) (models.PriceSnapshot, error) {
	f.gotIDs = assetIDs
	return f.snapshot, f.err
}

type nopMetrics struct{}

func (nopMetrics) RecordFeedItems(string, int)       {}
func (nopMetrics) RecordError(string)                {}
func (nopMetrics) RecordAssetChange(string, float64) {}
func (nopMetrics) RecordSnapshotSize(string, int)    {}
func (nopMetrics) RecordLatency(string, float64)     {}

func feedSources(feeds []*fakeFeed) []service.FeedSource {
	out := make([]service.FeedSource, len(feeds))
	for i, f := range feeds {
		out[i] = f
	}
	return out
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func newTestPipeline(t *testing.T, feeds []*fakeFeed, prices *fakePrices) (*Pipeline, *repository.MemorySnapshotStore) {
	t.Helper()

	store := repository.NewMemorySnapshotStore()
	pipeline := NewPipeline(
		feedSources(feeds),
		prices,
		news.NewNormalizer(text.NewLexiconScorer(), 0),
		news.NewCorrelator(nil),
		macro.NewEstimator(nil),
		ideas.NewGenerator(rand.New(rand.NewSource(1))),
		store,
		nopMetrics{},
		testLogger(t),
		time.Second,
		Options{},
	)
	return pipeline, store
}

func TestRefreshNewsIsolatesFailingSources(t *testing.T) {
	feeds := []*fakeFeed{
		{name: "down", err: errors.New("connection refused")},
		{name: "coindesk", payload: &models.RawFeedPayload{
			Provider: "coindesk",
			Items: []models.RawFeedItem{
				{Title: "Bitcoin ETF approval lifts market", Description: "desc", GUID: "g1"},
			},
		}},
	}
	pipeline, store := newTestPipeline(t, feeds, &fakePrices{})

	pipeline.RefreshNews(context.Background())

	snap := store.Latest()
	if snap == nil {
		t.Fatal("expected a published snapshot")
	}
	if len(snap.News) != 1 || snap.News[0].Source != "coindesk" {
		t.Fatalf("expected the healthy source's item, got %+v", snap.News)
	}
	if len(snap.Ideas) == 0 {
		t.Fatal("snapshot must always carry at least one idea")
	}
}

func TestRefreshNewsNilPayloadSource(t *testing.T) {
	feeds := []*fakeFeed{
		{name: "empty"}, // returns (nil, nil)
		{name: "coindesk", payload: &models.RawFeedPayload{
			Provider: "coindesk",
			Items:    []models.RawFeedItem{{Title: "Headline", GUID: "g1"}},
		}},
	}
	pipeline, store := newTestPipeline(t, feeds, &fakePrices{})

	pipeline.RefreshNews(context.Background())

	snap := store.Latest()
	if snap == nil {
		t.Fatal("expected a published snapshot")
	}
	if len(snap.News) != 1 || snap.News[0].Source != "coindesk" {
		t.Fatalf("nil payload must be skipped, got %+v", snap.News)
	}
}

func TestRefreshNewsAllSourcesFail(t *testing.T) {
	feeds := []*fakeFeed{
		{name: "a", err: errors.New("timeout")},
		{name: "b", err: errors.New("timeout")},
	}
	pipeline, store := newTestPipeline(t, feeds, &fakePrices{})

	pipeline.RefreshNews(context.Background())

	snap := store.Latest()
	if snap == nil {
		t.Fatal("expected a published snapshot even with no sources healthy")
	}
	if len(snap.News) != 0 {
		t.Fatalf("expected empty news, got %d items", len(snap.News))
	}
	if snap.Macro.TrendLabel != models.TrendSideways {
		t.Fatalf("expected Sideways default, got %q", snap.Macro.TrendLabel)
	}
	if len(snap.Ideas) != 1 || snap.Ideas[0].Category != models.IdeaNeutral {
		t.Fatalf("expected single neutral fallback idea, got %+v", snap.Ideas)
	}
}

func TestRefreshPricesRecomputesDerivedState(t *testing.T) {
	feeds := []*fakeFeed{
		{name: "coindesk", payload: &models.RawFeedPayload{
			Provider: "coindesk",
			Items: []models.RawFeedItem{
				{Title: "Solana validators ship upgrade", Description: "desc", GUID: "g1"},
			},
		}},
	}
	prices := &fakePrices{snapshot: models.PriceSnapshot{
		"bitcoin":  {Change24hPct: 4.0, Volume24hUSD: 40e9},
		"ethereum": {Change24hPct: 3.0, Volume24hUSD: 20e9},
		"solana":   {Change24hPct: 6.25, Volume24hUSD: 3e9},
	}}
	pipeline, store := newTestPipeline(t, feeds, prices)

	pipeline.RefreshNews(context.Background())
	pipeline.RefreshPrices(context.Background())

	snap := store.Latest()
	if snap.Macro.TrendLabel != models.TrendStrongBull {
		t.Fatalf("expected Strong Bull, got %q", snap.Macro.TrendLabel)
	}
	if snap.Macro.LiquidityLabel != models.LiqDeep {
		t.Fatalf("expected Deep liquidity, got %q", snap.Macro.LiquidityLabel)
	}
	if len(snap.News) != 1 {
		t.Fatalf("expected 1 news item, got %d", len(snap.News))
	}
	if snap.News[0].PriceMovePct != "+6.25%" {
		t.Fatalf("expected solana enrichment, got %q", snap.News[0].PriceMovePct)
	}

	seen := make(map[string]bool)
	for _, id := range prices.gotIDs {
		if seen[id] {
			t.Fatalf("duplicate asset id requested: %q", id)
		}
		seen[id] = true
	}
	for _, required := range []string{"bitcoin", "ethereum", "solana"} {
		if !seen[required] {
			t.Fatalf("expected %q in requested asset ids %v", required, prices.gotIDs)
		}
	}
}

func TestRefreshPricesFailureKeepsPreviousSnapshot(t *testing.T) {
	feeds := []*fakeFeed{
		{name: "coindesk", payload: &models.RawFeedPayload{
			Provider: "coindesk",
			Items:    []models.RawFeedItem{{Title: "Quiet tape", GUID: "g1"}},
		}},
	}
	prices := &fakePrices{err: errors.New("rate limited")}
	pipeline, store := newTestPipeline(t, feeds, prices)

	pipeline.RefreshNews(context.Background())
	before := store.Latest()

	pipeline.RefreshPrices(context.Background())

	after := store.Latest()
	if after != before {
		t.Fatal("failed price refresh must not publish a new snapshot")
	}
	if after.News[0].PriceMovePct != models.PriceMoveUnavailable {
		t.Fatalf("expected unavailable sentinel, got %q", after.News[0].PriceMovePct)
	}
}

type captureBroadcaster struct {
	snaps []*models.PipelineSnapshot
}

func (c *captureBroadcaster) Broadcast(snap *models.PipelineSnapshot) {
	c.snaps = append(c.snaps, snap)
}

func TestPublishFansOutToBroadcaster(t *testing.T) {
	feeds := []*fakeFeed{
		{name: "coindesk", payload: &models.RawFeedPayload{
			Provider: "coindesk",
			Items:    []models.RawFeedItem{{Title: "Headline", GUID: "g1"}},
		}},
	}
	store := repository.NewMemorySnapshotStore()
	bc := &captureBroadcaster{}

	pipeline := NewPipeline(
		feedSources(feeds),
		&fakePrices{},
		news.NewNormalizer(text.NewLexiconScorer(), 0),
		news.NewCorrelator(nil),
		macro.NewEstimator(nil),
		ideas.NewGenerator(rand.New(rand.NewSource(1))),
		store,
		nopMetrics{},
		testLogger(t),
		time.Second,
		Options{Broadcaster: bc},
	)

	pipeline.RefreshNews(context.Background())

	if len(bc.snaps) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(bc.snaps))
	}
	if bc.snaps[0] != store.Latest() {
		t.Fatal("broadcast snapshot should match the stored one")
	}
}
