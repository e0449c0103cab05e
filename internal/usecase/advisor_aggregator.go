package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	domsvc "github.com/nadajinny/AI-Challenge-MVP/internal/domain/service"
	"github.com/nadajinny/AI-Challenge-MVP/internal/fixtures"
	"github.com/nadajinny/AI-Challenge-MVP/pkg/cache"
)

// AdvisorAggregator fronts the four scoring components for the transport
// layer: it fills in fixture data, records metrics, and caches job
// rankings. All computation underneath is pure.
type AdvisorAggregator struct {
	stress  domsvc.StressScorer
	finance domsvc.FinanceAdvisor
	jobs    domsvc.JobMatcher
	chat    domsvc.ChatResolver
	metrics domsvc.Metrics

	cache       cache.Service // optional
	rankTTL     time.Duration
	typingDelay time.Duration
}

func NewAdvisorAggregator(
	stress domsvc.StressScorer,
	finance domsvc.FinanceAdvisor,
	jobs domsvc.JobMatcher,
	chat domsvc.ChatResolver,
	metrics domsvc.Metrics,
	c cache.Service,
	rankTTL time.Duration,
	typingDelay time.Duration,
) *AdvisorAggregator {
	return &AdvisorAggregator{
		stress:      stress,
		finance:     finance,
		jobs:        jobs,
		chat:        chat,
		metrics:     metrics,
		cache:       c,
		rankTTL:     rankTTL,
		typingDelay: typingDelay,
	}
}

// StressScore evaluates one entry and bundles the matching tip list.
func (a *AdvisorAggregator) StressScore(_ context.Context, text string, negatives, positives []string) models.StressReport {
	start := time.Now()
	res := a.stress.Compute(text, negatives, positives)

	a.metrics.RecordEvaluation("stress")
	a.metrics.RecordStressScore(res.Score)
	a.metrics.RecordLatency("stress_score", time.Since(start).Seconds())

	return models.StressReport{Result: res, Tips: a.stress.Tips(res.Score)}
}

// StressTips returns the tip list for a score band.
func (a *AdvisorAggregator) StressTips(score int) []string {
	return a.stress.Tips(score)
}

// FinanceOverview summarizes a ledger and evaluates the advice rules. An
// empty ledger means the built-in monthly fixture.
func (a *AdvisorAggregator) FinanceOverview(_ context.Context, txs []models.Transaction) models.FinanceOverview {
	start := time.Now()
	if len(txs) == 0 {
		txs = fixtures.Transactions()
	}

	summary := a.finance.Summarize(txs)
	tips := a.finance.Tips(txs, summary.CategoryTotals, summary.SavingsRate)

	a.metrics.RecordEvaluation("finance")
	a.metrics.RecordLatency("finance_overview", time.Since(start).Seconds())

	return models.FinanceOverview{Summary: summary, Tips: tips}
}

// RankJobs ranks listings for a profile. Results are cached by input hash
// because ranking is referentially transparent; identical inputs always
// produce the identical ordered list.
func (a *AdvisorAggregator) RankJobs(ctx context.Context, jobs []models.JobListing, profile models.JobProfile, priorities []string) []models.RankedJob {
	start := time.Now()
	if len(jobs) == 0 {
		jobs = fixtures.Jobs()
	}

	key := rankCacheKey(jobs, profile, priorities)
	if a.cache != nil {
		var cached []models.RankedJob
		if ok, err := cache.GetJSON(ctx, a.cache, key, &cached); err == nil && ok {
			a.metrics.RecordEvaluation("jobs_cached")
			return cached
		}
	}

	ranked := a.jobs.Rank(jobs, profile, priorities)

	if a.cache != nil {
		if err := cache.SetJSON(ctx, a.cache, key, ranked, a.rankTTL); err != nil {
			a.metrics.RecordError("rank_cache_set")
		}
	}

	a.metrics.RecordEvaluation("jobs")
	a.metrics.RecordLatency("rank_jobs", time.Since(start).Seconds())
	return ranked
}

// ChatReply resolves one bot reply. The caller supplies the last stress
// result; the aggregator holds no conversation state.
func (a *AdvisorAggregator) ChatReply(_ context.Context, text string, last *models.StressResult) models.ChatReply {
	reply := a.chat.Reply(text, last)
	a.metrics.RecordEvaluation("chat")
	return models.ChatReply{
		Reply:         reply,
		TypingDelayMs: int(a.typingDelay / time.Millisecond),
	}
}

// TypingDelay is the presentation delay before a bot reply is surfaced.
func (a *AdvisorAggregator) TypingDelay() time.Duration {
	return a.typingDelay
}

func rankCacheKey(jobs []models.JobListing, profile models.JobProfile, priorities []string) string {
	prios := make([]string, len(priorities))
	copy(prios, priorities)
	sort.Strings(prios)

	raw, _ := json.Marshal(struct {
		Jobs       []models.JobListing `json:"jobs"`
		Profile    models.JobProfile   `json:"profile"`
		Priorities []string            `json:"priorities"`
	}{jobs, profile, prios})

	return cache.GenerateKeyWithParams("rank", cache.HashKey(string(raw)))
}
