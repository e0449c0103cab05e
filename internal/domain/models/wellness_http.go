package models

// Requests for advisor HTTP endpoints. Defined in domain for consistency and reuse.

type StressScoreRequest struct {
	Text      string   `json:"text" validate:"omitempty,max=4000"`
	Negatives []string `json:"negatives" validate:"omitempty,dive,min=1"`
	Positives []string `json:"positives" validate:"omitempty,dive,min=1"`
}

type FinanceOverviewRequest struct {
	// Empty means: use the built-in monthly fixture ledger.
	Transactions []Transaction `json:"transactions" validate:"omitempty,dive"`
}

type RankJobsRequest struct {
	// Empty means: rank the built-in job board fixtures.
	Jobs       []JobListing `json:"jobs" validate:"omitempty,dive"`
	Profile    JobProfile   `json:"profile" validate:"required"`
	Priorities []string     `json:"priorities" validate:"omitempty,dive,oneof=wage close morning afternoon night"`
}

type ChatReplyRequest struct {
	Text       string        `json:"text" validate:"required,max=2000"`
	LastResult *StressResult `json:"last_result" validate:"omitempty"`
}
