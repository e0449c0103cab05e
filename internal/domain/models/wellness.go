package models

import "time"

// StressCategory is the ordinal severity label derived from a stress score.
type StressCategory string

const (
	CategoryLow      StressCategory = "LOW"
	CategoryMedium   StressCategory = "MEDIUM"
	CategoryHigh     StressCategory = "HIGH"
	CategoryVeryHigh StressCategory = "VERY_HIGH"
)

// StressResult is the outcome of one stress evaluation. It is derived on
// demand and never stored by the core; callers hold it in screen state and
// pass it back where needed (chat, feedback view).
type StressResult struct {
	Score    int            `json:"score"`
	Category StressCategory `json:"category"`
	Message  string         `json:"message"`
	Guidance string         `json:"guidance"`
}

// StressReport bundles a result with the tip list for its score band.
type StressReport struct {
	Result StressResult `json:"result"`
	Tips   []string     `json:"tips"`
}

// PayMethod is how a transaction was paid.
type PayMethod string

const (
	MethodCard     PayMethod = "CARD"
	MethodCash     PayMethod = "CASH"
	MethodTransfer PayMethod = "TRANSFER"
)

// SpendCategory is one of the fixed ledger categories.
type SpendCategory string

const (
	CategorySalary       SpendCategory = "급여"
	CategoryAllowance    SpendCategory = "용돈"
	CategoryFood         SpendCategory = "식비"
	CategoryCafe         SpendCategory = "카페/간식"
	CategoryTransport    SpendCategory = "교통"
	CategorySubscription SpendCategory = "구독"
	CategoryShopping     SpendCategory = "쇼핑"
	CategoryHealth       SpendCategory = "의료/건강"
	CategoryLeisure      SpendCategory = "문화/여가"
	CategoryEtc          SpendCategory = "기타"
)

// SpendCategories lists every category in its canonical enumeration order.
// Summary maps are zero-filled over this list and ties in ranking break by
// this order.
var SpendCategories = []SpendCategory{
	CategorySalary,
	CategoryAllowance,
	CategoryFood,
	CategoryCafe,
	CategoryTransport,
	CategorySubscription,
	CategoryShopping,
	CategoryHealth,
	CategoryLeisure,
	CategoryEtc,
}

// IncomeCategories are excluded from top-spend ranking.
var IncomeCategories = []SpendCategory{CategorySalary, CategoryAllowance}

// Transaction is one ledger entry. Amount is in won (minor unit): positive
// for income, negative for expense.
type Transaction struct {
	ID          string        `json:"id"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Amount      int64         `json:"amount"`
	Category    SpendCategory `json:"category"`
	Method      PayMethod     `json:"method"`
}

// CategoryTotal pairs a category with its absolute spend total.
type CategoryTotal struct {
	Category SpendCategory `json:"category"`
	Total    int64         `json:"total"`
}

// FinanceSummary is the rollup of one month's ledger.
type FinanceSummary struct {
	Income         int64                   `json:"income"`
	Expense        int64                   `json:"expense"`
	Net            int64                   `json:"net"`
	TaxEstimate    int64                   `json:"tax_estimate"`
	SavingsRate    int                     `json:"savings_rate"`
	CategoryTotals map[SpendCategory]int64 `json:"category_totals"`
	TopCategories  []CategoryTotal         `json:"top_categories"`
	BudgetUsagePct int                     `json:"budget_usage_pct"`
}

// FinanceOverview bundles the summary with its advice tips.
type FinanceOverview struct {
	Summary FinanceSummary `json:"summary"`
	Tips    []string       `json:"tips"`
}

// Shift is a work time slot.
type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
	ShiftNight     Shift = "NIGHT"
)

// Job ranking priority tags a user can toggle.
const (
	PriorityWage      = "wage"
	PriorityClose     = "close"
	PriorityMorning   = "morning"
	PriorityAfternoon = "afternoon"
	PriorityNight     = "night"
)

// JobListing is one posting from the static job board.
type JobListing struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	HourlyWage     int      `json:"hourly_wage"`
	DistanceKm     float64  `json:"distance_km"`
	Shifts         []Shift  `json:"shifts"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location"`
}

// JobProfile is the user side of job matching.
type JobProfile struct {
	Age             int      `json:"age"`
	HomeLocation    string   `json:"home_location"`
	Skills          []string `json:"skills"`
	AvailableShifts []Shift  `json:"available_shifts"`
}

// RankedJob is one entry of a ranked job list.
type RankedJob struct {
	Job     JobListing `json:"job"`
	Score   int        `json:"score"`
	Reasons []string   `json:"reasons"`
}

// ChatSender identifies who wrote a chat message.
type ChatSender string

const (
	SenderUser ChatSender = "USER"
	SenderBot  ChatSender = "BOT"
)

// ChatMessage is one bubble of the bot conversation. The message log is
// owned by the caller; the core only produces the bot reply text.
type ChatMessage struct {
	ID        string     `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
}

// ChatReply is the computed bot answer plus the presentation typing delay.
type ChatReply struct {
	Reply         string `json:"reply"`
	TypingDelayMs int    `json:"typing_delay_ms"`
}
