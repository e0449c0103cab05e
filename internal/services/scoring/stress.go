package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	domsvc "github.com/nadajinny/AI-Challenge-MVP/internal/domain/service"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
)

// Category boundaries, closed on the lower end.
const (
	veryHighFloor = 75
	highFloor     = 60
	mediumFloor   = 40
)

// StressScorer computes a 0..100 stress score from free text and selected
// factor tags, per the rule tables it was built with.
type StressScorer struct {
	rules *rules.Set
}

func NewStressScorer(rs *rules.Set) *StressScorer {
	return &StressScorer{rules: rs}
}

// Compute evaluates one entry. Empty text and empty selections yield the
// baseline score; the function is total and never fails.
func (s *StressScorer) Compute(text string, negatives, positives []string) models.StressResult {
	r := s.rules.Stress
	score := r.Baseline

	negSel := toSet(negatives)
	posSel := toSet(positives)
	for _, f := range r.Negatives {
		if negSel[f.Key] {
			score += f.Weight
		}
	}
	for _, f := range r.Positives {
		if posSel[f.Key] {
			score += f.Weight
		}
	}

	// Keyword deltas accumulate; overlapping matches are not deduplicated.
	lowered := strings.ToLower(text)
	for _, k := range r.Bonus {
		if k.Keyword != "" && strings.Contains(lowered, strings.ToLower(k.Keyword)) {
			score += k.Delta
		}
	}
	for _, k := range r.Relief {
		if k.Keyword != "" && strings.Contains(lowered, strings.ToLower(k.Keyword)) {
			score += k.Delta
		}
	}

	// Longer reflective entries earn a capped bonus. Counted in runes so
	// Korean text is not inflated by its UTF-8 byte width.
	trimmed := strings.TrimSpace(text)
	lengthBonus := utf8.RuneCountInString(trimmed) / r.LengthDivisor
	if lengthBonus > r.LengthCap {
		lengthBonus = r.LengthCap
	}
	score += lengthBonus

	score = clamp(score, 0, 100)
	cat := Categorize(score)

	guidance := r.GuidanceLow
	if score >= highFloor {
		guidance = r.GuidanceHigh
	}

	return models.StressResult{
		Score:    score,
		Category: cat,
		Message:  r.Messages[cat],
		Guidance: guidance,
	}
}

// Tips returns the fixed tip list for a score band: >=75, 60..74, <60.
func (s *StressScorer) Tips(score int) []string {
	r := s.rules.Stress
	switch {
	case score >= veryHighFloor:
		return r.TipsHigh
	case score >= highFloor:
		return r.TipsMedium
	default:
		return r.TipsLow
	}
}

// Categorize maps a score to its severity label.
func Categorize(score int) models.StressCategory {
	switch {
	case score >= veryHighFloor:
		return models.CategoryVeryHigh
	case score >= highFloor:
		return models.CategoryHigh
	case score >= mediumFloor:
		return models.CategoryMedium
	default:
		return models.CategoryLow
	}
}

var _ domsvc.StressScorer = (*StressScorer)(nil)
