package usecase

import (
	"context"
	"sync"
	"time"

	"SignalDesk/internal/domain/models"
	domrepo "SignalDesk/internal/domain/repository"
	"SignalDesk/internal/domain/service"
	"SignalDesk/internal/services/ideas"
	"SignalDesk/internal/services/macro"
	"SignalDesk/internal/services/news"
	"SignalDesk/pkg/logger"
)

// Broadcaster pushes fresh snapshots to streaming clients.
type Broadcaster interface {
	Broadcast(snap *models.PipelineSnapshot)
}

// Options carries the optional outbound edges of the pipeline. Nil fields
// disable the corresponding surface.
type Options struct {
	Broadcaster Broadcaster
	Publisher   domrepo.Publisher
	Notifier    service.Notifier
}

// Pipeline is the derivation core: it pulls feeds and prices, recomputes the
// news/macro/ideas triple wholesale and fans the snapshot out. All derived
// state lives behind one lock; refresh methods recompute from the latest
// cached inputs so news and price cycles can interleave freely.
type Pipeline struct {
	sources     []service.FeedSource
	priceSource service.PriceSource
	normalizer  *news.Normalizer
	correlator  *news.Correlator
	estimator   *macro.Estimator
	generator   *ideas.Generator
	store       domrepo.SnapshotStore
	metrics     domrepo.Metrics
	logger      *logger.Logger
	opts        Options

	fetchTimeout time.Duration

	mu       sync.RWMutex
	items    []models.NewsItem
	quotes   models.PriceSnapshot
	macro    models.MacroSnapshot
	ideaList []models.TradeIdea
}

// NewPipeline wires the derivation core.
func NewPipeline(
	sources []service.FeedSource,
	priceSource service.PriceSource,
	normalizer *news.Normalizer,
	correlator *news.Correlator,
	estimator *macro.Estimator,
	generator *ideas.Generator,
	store domrepo.SnapshotStore,
	metrics domrepo.Metrics,
	log *logger.Logger,
	fetchTimeout time.Duration,
	opts Options,
) *Pipeline {
	if fetchTimeout <= 0 {
		fetchTimeout = 15 * time.Second
	}
	return &Pipeline{
		sources:      sources,
		priceSource:  priceSource,
		normalizer:   normalizer,
		correlator:   correlator,
		estimator:    estimator,
		generator:    generator,
		store:        store,
		metrics:      metrics,
		logger:       log,
		fetchTimeout: fetchTimeout,
		opts:         opts,
		macro:        estimator.Estimate(models.PriceSnapshot{}),
	}
}

// RefreshNews fetches every feed source concurrently and rebuilds the news
// list. A failing source contributes nothing; the cycle always completes.
func (p *Pipeline) RefreshNews(ctx context.Context) {
	start := time.Now()

	payloads := make([]*models.RawFeedPayload, len(p.sources))
	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src service.FeedSource) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
			defer cancel()

			payload, err := src.Fetch(fetchCtx)
			if err != nil {
				p.logger.Warn("feed fetch failed",
					logger.String("provider", src.Name()),
					logger.Error(err))
				p.metrics.RecordError("feed_fetch")
				return
			}
			if payload == nil {
				return
			}
			payloads[i] = payload
			p.metrics.RecordFeedItems(src.Name(), len(payload.Items))
		}(i, src)
	}
	wg.Wait()

	merged := p.normalizer.Merge(payloads)

	p.mu.Lock()
	p.items = merged
	p.recomputeLocked()
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.metrics.RecordLatency("news_refresh", time.Since(start).Seconds())
	p.logger.Info("news refreshed",
		logger.Int("items", len(merged)),
		logger.Int("ideas", len(snap.Ideas)))

	p.publish(ctx, snap)
}

// RefreshPrices fetches quotes for every asset the correlator and estimator
// need, then recomputes macro, enrichment and ideas. A failed fetch keeps the
// previous quotes in place.
func (p *Pipeline) RefreshPrices(ctx context.Context) {
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	quotes, err := p.priceSource.Quotes(fetchCtx, p.neededAssetIDs())
	if err != nil {
		p.logger.Warn("price fetch failed", logger.Error(err))
		p.metrics.RecordError("price_fetch")
		return
	}
	for asset, quote := range quotes {
		p.metrics.RecordAssetChange(asset, quote.Change24hPct)
	}

	p.mu.Lock()
	p.quotes = quotes
	p.recomputeLocked()
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.metrics.RecordLatency("price_refresh", time.Since(start).Seconds())
	p.logger.Info("prices refreshed",
		logger.Int("assets", len(quotes)),
		logger.String("trend", snap.Macro.TrendLabel))

	p.publish(ctx, snap)
}

// Snapshot returns the latest published snapshot, nil before the first cycle.
func (p *Pipeline) Snapshot() *models.PipelineSnapshot {
	return p.store.Latest()
}

func (p *Pipeline) neededAssetIDs() []string {
	ids := p.correlator.AssetIDs()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, ref := range p.estimator.ReferenceAssets() {
		if !seen[ref] {
			seen[ref] = true
			ids = append(ids, ref)
		}
	}
	return ids
}

// recomputeLocked rebuilds the derived state from the cached inputs. Caller
// holds the write lock.
func (p *Pipeline) recomputeLocked() {
	p.macro = p.estimator.Estimate(p.quotes)
	if len(p.quotes) > 0 {
		p.items = p.correlator.Enrich(p.items, p.quotes)
	}
	p.ideaList = p.generator.Generate(p.macro, p.items)

	p.metrics.RecordSnapshotSize("news", len(p.items))
	p.metrics.RecordSnapshotSize("ideas", len(p.ideaList))
}

func (p *Pipeline) snapshotLocked() *models.PipelineSnapshot {
	items := make([]models.NewsItem, len(p.items))
	copy(items, p.items)
	ideaList := make([]models.TradeIdea, len(p.ideaList))
	copy(ideaList, p.ideaList)

	return &models.PipelineSnapshot{
		News:      items,
		Macro:     p.macro,
		Ideas:     ideaList,
		UpdatedAt: time.Now().UTC(),
	}
}

// publish fans the snapshot out to every configured surface. Failures are
// logged and never propagate back into the derivation cycle.
func (p *Pipeline) publish(ctx context.Context, snap *models.PipelineSnapshot) {
	p.store.Publish(snap)

	if p.opts.Broadcaster != nil {
		p.opts.Broadcaster.Broadcast(snap)
	}
	if p.opts.Publisher != nil {
		if err := p.opts.Publisher.PublishSnapshot(ctx, snap); err != nil {
			p.logger.Warn("snapshot publish failed", logger.Error(err))
			p.metrics.RecordError("kafka_publish")
		}
	}
	if p.opts.Notifier != nil {
		if err := p.opts.Notifier.NotifyIdeas(ctx, snap.Ideas); err != nil {
			p.logger.Warn("idea notification failed", logger.Error(err))
			p.metrics.RecordError("notify")
		}
	}
}
