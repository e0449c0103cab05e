package di

import (
	"fmt"

	domsvc "github.com/nadajinny/AI-Challenge-MVP/internal/domain/service"
	"github.com/nadajinny/AI-Challenge-MVP/internal/handler/api"
	"github.com/nadajinny/AI-Challenge-MVP/internal/handler/ws"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
	"github.com/nadajinny/AI-Challenge-MVP/internal/service/ratelimit"
	"github.com/nadajinny/AI-Challenge-MVP/internal/services/scoring"
	"github.com/nadajinny/AI-Challenge-MVP/internal/usecase"
	"github.com/nadajinny/AI-Challenge-MVP/pkg/cache"
	"github.com/nadajinny/AI-Challenge-MVP/pkg/config"
	xhttp "github.com/nadajinny/AI-Challenge-MVP/pkg/http"
	applogger "github.com/nadajinny/AI-Challenge-MVP/pkg/logger"
	"github.com/nadajinny/AI-Challenge-MVP/pkg/metrics"
	"github.com/nadajinny/AI-Challenge-MVP/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	l, err := applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideRules loads the rule tables, applying the configured override.
func ProvideRules(cfg *config.Config) (*rules.Set, error) {
	rs, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	return rs, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domsvc.Metrics {
	return metrics.New()
}

// ProvideCache creates the rank-result cache: layered memory+Redis when
// Redis is configured, in-process memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Cache.Redis.Addr),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix("advisor"),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideStressScorer creates the stress scoring service.
func ProvideStressScorer(rs *rules.Set) domsvc.StressScorer {
	return scoring.NewStressScorer(rs)
}

// ProvideFinanceAdvisor creates the finance advice service.
func ProvideFinanceAdvisor(rs *rules.Set) domsvc.FinanceAdvisor {
	return scoring.NewFinanceAdvisor(rs)
}

// ProvideJobMatcher creates the job matching service.
func ProvideJobMatcher(rs *rules.Set) domsvc.JobMatcher {
	return scoring.NewJobMatcher(rs)
}

// ProvideChatResolver creates the chat intent resolver.
func ProvideChatResolver(rs *rules.Set) domsvc.ChatResolver {
	return scoring.NewChatResolver(rs)
}

// ProvideAggregator creates the advisor aggregator use case.
func ProvideAggregator(
	stress domsvc.StressScorer,
	finance domsvc.FinanceAdvisor,
	jobs domsvc.JobMatcher,
	chat domsvc.ChatResolver,
	m domsvc.Metrics,
	c cache.Service,
	cfg *config.Config,
) *usecase.AdvisorAggregator {
	return usecase.NewAdvisorAggregator(stress, finance, jobs, chat, m, c, cfg.Cache.RankTTL, cfg.Chat.TypingDelay)
}

// ProvideLimiter creates the chat socket rate limiter.
func ProvideLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideChatSocket creates the chat WebSocket handler.
func ProvideChatSocket(l *applogger.Logger, agg *usecase.AdvisorAggregator, limiter *ratelimit.Limiter, cfg *config.Config) *ws.ChatSocket {
	return ws.NewChatSocket(l, agg, limiter, cfg.Chat.RateBurst, cfg.Chat.RatePerSec)
}

// ProvideHandler creates the HTTP route handler.
func ProvideHandler(l *applogger.Logger, agg *usecase.AdvisorAggregator, chatWS *ws.ChatSocket) xhttp.Handler {
	return api.NewAdvisorEchoHandler(l, agg, chatWS)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, l, handler, c)
}
