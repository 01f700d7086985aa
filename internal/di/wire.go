//go:build wireinject
// +build wireinject

package di

import (
	"SignalDesk/pkg/config"
	"SignalDesk/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideHTTPClient,
		ProvideCache,
		ProvidePublisher,
		ProvideNotifier,

		// Domain services
		ProvideFeedSources,
		ProvidePriceSource,
		ProvideScorer,
		ProvideNormalizer,
		ProvideCorrelator,
		ProvideEstimator,
		ProvideIdeaGenerator,

		// Outbound surfaces
		ProvideSnapshotStore,
		ProvideStreamHub,
		ProvideHTTPHandler,

		// Orchestration
		ProvidePipeline,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
