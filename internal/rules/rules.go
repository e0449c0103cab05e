// Package rules holds every tunable table the scoring engines apply:
// factor weights, keyword deltas, advice strings, finance thresholds, job
// weights and chat intent patterns. Engines receive a *Set and never read
// globals, so tables can be tuned and tested apart from the algorithms.
package rules

import (
	"fmt"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
)

// Factor is a selectable tag with a fixed score contribution.
type Factor struct {
	Key    string `yaml:"key"`
	Weight int    `yaml:"weight"`
}

// KeywordRule adds Delta when Keyword is a case-insensitive substring of
// the input text.
type KeywordRule struct {
	Keyword string `yaml:"keyword"`
	Delta   int    `yaml:"delta"`
}

// StressRules drives the stress score computation and its display strings.
type StressRules struct {
	Baseline      int           `yaml:"baseline"`
	Negatives     []Factor      `yaml:"negatives"`
	Positives     []Factor      `yaml:"positives"`
	Bonus         []KeywordRule `yaml:"bonus"`
	Relief        []KeywordRule `yaml:"relief"`
	LengthDivisor int           `yaml:"length_divisor"`
	LengthCap     int           `yaml:"length_cap"`

	Messages map[models.StressCategory]string `yaml:"messages"`
	// Short-term guidance is two-tier: >=60 and below.
	GuidanceHigh string `yaml:"guidance_high"`
	GuidanceLow  string `yaml:"guidance_low"`

	// Tip lists by score band: >=75, 60..74, <60.
	TipsHigh   []string `yaml:"tips_high"`
	TipsMedium []string `yaml:"tips_medium"`
	TipsLow    []string `yaml:"tips_low"`
}

// FinanceRules drives the ledger rollup and the advice rule list.
type FinanceRules struct {
	TaxRate       float64 `yaml:"tax_rate"`
	MonthlyBudget int64   `yaml:"monthly_budget"`

	FoodLimit         int64 `yaml:"food_limit"`
	SubscriptionLimit int64 `yaml:"subscription_limit"`
	SavingsRateFloor  int   `yaml:"savings_rate_floor"`
	ShoppingLimit     int64 `yaml:"shopping_limit"`
	TransportLimit    int64 `yaml:"transport_limit"`

	FoodTip         string `yaml:"food_tip"`
	SubscriptionTip string `yaml:"subscription_tip"`
	AutoSaveTip     string `yaml:"auto_save_tip"`
	ShoppingTip     string `yaml:"shopping_tip"`
	CashTip         string `yaml:"cash_tip"`
	TransportTip    string `yaml:"transport_tip"`
	PositiveTip     string `yaml:"positive_tip"`
}

// DistanceTier maps a commute distance ceiling to a score bonus. Tiers are
// exclusive and evaluated in order; the first match wins.
type DistanceTier struct {
	MaxKm float64 `yaml:"max_km"`
	Bonus int     `yaml:"bonus"`
}

// JobRules drives job match scoring and explanation.
type JobRules struct {
	Base          int            `yaml:"base"`
	DistanceTiers []DistanceTier `yaml:"distance_tiers"`
	FarPenalty    int            `yaml:"far_penalty"`
	SkillBonus    int            `yaml:"skill_bonus"`
	ShiftBonus    int            `yaml:"shift_bonus"`

	WageFloor    int `yaml:"wage_floor"`
	WageStep     int `yaml:"wage_step"`
	WageCap      int `yaml:"wage_cap"`
	CloseBonus   int `yaml:"close_bonus"`
	ShiftPrefVal int `yaml:"shift_pref_bonus"`

	CloseKm      float64 `yaml:"close_km"`
	HighWageMark int     `yaml:"high_wage_mark"`

	CloseReason    string `yaml:"close_reason"`
	ShiftReason    string `yaml:"shift_reason"`
	SkillReason    string `yaml:"skill_reason"` // fmt verb for comma-joined skills
	HighWageReason string `yaml:"high_wage_reason"`
	FallbackReason string `yaml:"fallback_reason"`
}

// IntentRule names an intent and the substrings that trigger it. Matching
// is first-rule-wins in list order; reply producers are keyed by Name in
// the chat resolver, so new intents are data additions.
type IntentRule struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// ChatRules drives intent matching and carries every canned reply text, so
// bot copy is tunable like the rest of the advice strings. Replies maps an
// intent name to its fixed reply; the tip and score intents use the template
// fields instead because their replies depend on the last stress result.
type ChatRules struct {
	Intents []IntentRule      `yaml:"intents"`
	Replies map[string]string `yaml:"replies"`

	TipNoResult string `yaml:"tip_no_result"`
	TipVeryHigh string `yaml:"tip_very_high"`
	TipHigh     string `yaml:"tip_high"`
	TipTemplate string `yaml:"tip_template"` // fmt verb for the category

	ScoreNoResult string `yaml:"score_no_result"`
	ScoreTemplate string `yaml:"score_template"` // fmt verbs: score, category, message

	Fallback string `yaml:"fallback"`
}

// Set is the complete immutable rule table bundle.
type Set struct {
	Stress  StressRules  `yaml:"stress"`
	Finance FinanceRules `yaml:"finance"`
	Jobs    JobRules     `yaml:"jobs"`
	Chat    ChatRules    `yaml:"chat"`
}

// Validate checks structural invariants the engines rely on.
func (s *Set) Validate() error {
	if s.Stress.Baseline < 0 || s.Stress.Baseline > 100 {
		return fmt.Errorf("stress.baseline must be within [0,100], got %d", s.Stress.Baseline)
	}
	if s.Stress.LengthDivisor <= 0 {
		return fmt.Errorf("stress.length_divisor must be positive")
	}
	for _, f := range s.Stress.Negatives {
		if f.Weight <= 0 {
			return fmt.Errorf("negative factor %q must carry a positive weight", f.Key)
		}
	}
	for _, f := range s.Stress.Positives {
		if f.Weight >= 0 {
			return fmt.Errorf("positive factor %q must carry a negative weight", f.Key)
		}
	}
	for _, c := range []models.StressCategory{
		models.CategoryLow, models.CategoryMedium, models.CategoryHigh, models.CategoryVeryHigh,
	} {
		if s.Stress.Messages[c] == "" {
			return fmt.Errorf("stress.messages missing category %s", c)
		}
	}
	if s.Finance.TaxRate < 0 || s.Finance.TaxRate >= 1 {
		return fmt.Errorf("finance.tax_rate must be within [0,1)")
	}
	if s.Finance.MonthlyBudget <= 0 {
		return fmt.Errorf("finance.monthly_budget must be positive")
	}
	if len(s.Jobs.DistanceTiers) == 0 {
		return fmt.Errorf("jobs.distance_tiers cannot be empty")
	}
	prev := 0.0
	for _, t := range s.Jobs.DistanceTiers {
		if t.MaxKm <= prev {
			return fmt.Errorf("jobs.distance_tiers must be strictly increasing by max_km")
		}
		prev = t.MaxKm
	}
	if s.Jobs.WageStep <= 0 {
		return fmt.Errorf("jobs.wage_step must be positive")
	}
	if len(s.Chat.Intents) == 0 {
		return fmt.Errorf("chat.intents cannot be empty")
	}
	for _, intent := range s.Chat.Intents {
		if intent.Name == IntentTip || intent.Name == IntentScore {
			continue
		}
		if s.Chat.Replies[intent.Name] == "" {
			return fmt.Errorf("chat.replies missing intent %q", intent.Name)
		}
	}
	if s.Chat.TipTemplate == "" || s.Chat.ScoreTemplate == "" {
		return fmt.Errorf("chat tip/score templates are required")
	}
	if s.Chat.Fallback == "" {
		return fmt.Errorf("chat.fallback is required")
	}
	return nil
}
