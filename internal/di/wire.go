//go:build wireinject
// +build wireinject

package di

import (
	"github.com/nadajinny/AI-Challenge-MVP/pkg/config"
	"github.com/nadajinny/AI-Challenge-MVP/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideRules,
		ProvideMetrics,
		ProvideCache,

		// Scoring services
		ProvideStressScorer,
		ProvideFinanceAdvisor,
		ProvideJobMatcher,
		ProvideChatResolver,

		// Use cases and transport
		ProvideAggregator,
		ProvideLimiter,
		ProvideChatSocket,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
