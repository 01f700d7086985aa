package prices

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"SignalDesk/internal/domain/models"
	"SignalDesk/pkg/cache"
	"SignalDesk/pkg/http"
	"SignalDesk/pkg/logger"
)

// DefaultBaseURL is the public CoinGecko API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// CoinGecko fetches simple spot quotes, fronted by a short-TTL cache to keep
// refresh cycles inside the public rate limit.
type CoinGecko struct {
	baseURL  string
	client   *http.Client
	cache    cache.Service
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewCoinGecko creates a price source. baseURL may be empty to use the public
// API; cache may be nil to disable caching.
func NewCoinGecko(baseURL string, client *http.Client, cacheSvc cache.Service, cacheTTL time.Duration, log *logger.Logger) *CoinGecko {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &CoinGecko{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   client,
		cache:    cacheSvc,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

// Quotes returns USD price, 24h change and 24h volume for each asset id.
// Assets the API does not know are simply absent from the snapshot.
func (c *CoinGecko) Quotes(ctx context.Context, assetIDs []string) (models.PriceSnapshot, error) {
	if len(assetIDs) == 0 {
		return models.PriceSnapshot{}, nil
	}

	ids := make([]string, len(assetIDs))
	copy(ids, assetIDs)
	sort.Strings(ids)
	cacheKey := cache.GenerateKeyWithParams("prices", strings.Join(ids, ","))

	if c.cache != nil {
		var cached models.PriceSnapshot
		if err := c.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			c.logger.Warn("price cache read failed", logger.Error(err))
		}
	}

	var snapshot models.PriceSnapshot
	err := c.client.GetJSON(ctx, c.baseURL+"/simple/price", map[string][]string{
		"ids":                 {strings.Join(ids, ",")},
		"vs_currencies":       {"usd"},
		"include_24hr_change": {"true"},
		"include_24hr_vol":    {"true"},
	}, &snapshot)
	if err != nil {
		return nil, fmt.Errorf("coingecko quotes: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, snapshot, c.cacheTTL); err != nil {
			c.logger.Warn("price cache write failed", logger.Error(err))
		}
	}

	return snapshot, nil
}
