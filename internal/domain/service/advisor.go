package service

import (
	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
)

// StressScorer turns free text and selected factor tags into a stress result.
type StressScorer interface {
	Compute(text string, negatives, positives []string) models.StressResult
	Tips(score int) []string
}

// FinanceAdvisor aggregates a ledger and produces rule-based advice.
type FinanceAdvisor interface {
	Summarize(txs []models.Transaction) models.FinanceSummary
	Tips(txs []models.Transaction, categoryTotals map[models.SpendCategory]int64, savingsRate int) []string
}

// JobMatcher ranks job listings against a user profile and priorities.
type JobMatcher interface {
	Score(job models.JobListing, profile models.JobProfile, priorities []string) int
	Explain(job models.JobListing, profile models.JobProfile) []string
	Rank(jobs []models.JobListing, profile models.JobProfile, priorities []string) []models.RankedJob
}

// ChatResolver maps free chat text to one canned reply. The last stress
// result is explicit caller context, never held by the resolver.
type ChatResolver interface {
	Reply(text string, last *models.StressResult) string
}
