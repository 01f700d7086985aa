package di

import (
	"fmt"

	"SignalDesk/internal/domain/repository"
	"SignalDesk/internal/domain/service"
	"SignalDesk/internal/handler/api"
	"SignalDesk/internal/handler/stream"
	internalrepo "SignalDesk/internal/repository"
	"SignalDesk/internal/services/feeds"
	"SignalDesk/internal/services/ideas"
	"SignalDesk/internal/services/macro"
	"SignalDesk/internal/services/news"
	"SignalDesk/internal/services/notify"
	"SignalDesk/internal/services/prices"
	"SignalDesk/internal/services/text"
	"SignalDesk/internal/usecase"
	"SignalDesk/pkg/cache"
	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	pkgkafka "SignalDesk/pkg/kafka"
	"SignalDesk/pkg/logger"
	"SignalDesk/pkg/metrics"
	"SignalDesk/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideHTTPClient creates the outbound HTTP client for feed and price calls.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		xhttp.WithTimeout(cfg.Prices.Timeout),
		xhttp.WithUserAgent("signaldesk/1.0"),
	)
}

// ProvideCache creates the price cache: redis-layered when configured, plain
// in-memory otherwise.
func ProvideCache(cfg *config.Config, log *logger.Logger) cache.Service {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache()
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		log.Warn("redis unavailable, falling back to memory cache", logger.Error(err))
		return cache.NewMemoryCache()
	}
	return cache.NewLayeredCache(redisCache)
}

// ProvideFeedSources builds one feed source per configured provider.
func ProvideFeedSources(cfg *config.Config, client *xhttp.Client, log *logger.Logger) []service.FeedSource {
	sources := make([]service.FeedSource, 0, len(cfg.Feeds))
	for _, provider := range cfg.Feeds {
		switch provider.Kind {
		case "rss":
			sources = append(sources, feeds.NewRSSFeed(provider.Name, provider.URL, provider.Exchange))
		default:
			sources = append(sources, feeds.NewJSONFeed(provider.Name, provider.URL, provider.Exchange, client, log))
		}
	}
	return sources
}

// ProvidePriceSource creates the cached quote client.
func ProvidePriceSource(cfg *config.Config, client *xhttp.Client, cacheSvc cache.Service, log *logger.Logger) service.PriceSource {
	return prices.NewCoinGecko(cfg.Prices.BaseURL, client, cacheSvc, cfg.Prices.CacheTTL, log)
}

// ProvideScorer creates the deterministic item scorer.
func ProvideScorer() service.ItemScorer {
	return text.NewLexiconScorer()
}

// ProvideNormalizer creates the news normalizer.
func ProvideNormalizer(scorer service.ItemScorer, cfg *config.Config) *news.Normalizer {
	return news.NewNormalizer(scorer, cfg.Pipeline.MaxItems)
}

// ProvideCorrelator creates the category-to-asset correlator with config
// overrides applied.
func ProvideCorrelator(cfg *config.Config) *news.Correlator {
	return news.NewCorrelator(cfg.Assets)
}

// ProvideEstimator creates the macro regime estimator.
func ProvideEstimator(cfg *config.Config) *macro.Estimator {
	return macro.NewEstimator(cfg.Macro.ReferenceAssets)
}

// ProvideIdeaGenerator creates the trade idea generator.
func ProvideIdeaGenerator() *ideas.Generator {
	return ideas.NewGenerator(nil)
}

// ProvideSnapshotStore creates the in-memory snapshot store.
func ProvideSnapshotStore() repository.SnapshotStore {
	return internalrepo.NewMemorySnapshotStore()
}

// ProvideStreamHub creates the WebSocket broadcast hub.
func ProvideStreamHub(log *logger.Logger) *stream.Hub {
	return stream.NewHub(log)
}

// ProvidePublisher creates the optional Kafka snapshot publisher. Returns nil
// when Kafka is disabled.
func ProvidePublisher(cfg *config.Config) (repository.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideNotifier creates the optional Telegram notifier. Returns nil when
// Telegram is disabled.
func ProvideNotifier(cfg *config.Config, log *logger.Logger) (service.Notifier, error) {
	if !cfg.Telegram.Enabled {
		return nil, nil
	}

	notifier, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
	if err != nil {
		return nil, fmt.Errorf("telegram notifier: %w", err)
	}
	return notifier, nil
}

// ProvidePipeline wires the derivation core with its outbound edges.
func ProvidePipeline(
	sources []service.FeedSource,
	priceSource service.PriceSource,
	normalizer *news.Normalizer,
	correlator *news.Correlator,
	estimator *macro.Estimator,
	generator *ideas.Generator,
	store repository.SnapshotStore,
	hub *stream.Hub,
	publisher repository.Publisher,
	notifier service.Notifier,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.Pipeline {
	return usecase.NewPipeline(
		sources,
		priceSource,
		normalizer,
		correlator,
		estimator,
		generator,
		store,
		m,
		log,
		cfg.Pipeline.FetchTimeout,
		usecase.Options{
			Broadcaster: hub,
			Publisher:   publisher,
			Notifier:    notifier,
		},
	)
}

// ProvideHTTPHandler combines the API handler and the stream hub into one
// route registrar.
func ProvideHTTPHandler(store repository.SnapshotStore, hub *stream.Hub) xhttp.Handler {
	return xhttp.CompositeHandler{
		api.NewSignalHandler(store),
		hub,
	}
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	handler xhttp.Handler,
	hub *stream.Hub,
	publisher repository.Publisher,
	log *logger.Logger,
) (*server.App, error) {
	return server.New(cfg, pipeline, handler, hub, publisher, log)
}
