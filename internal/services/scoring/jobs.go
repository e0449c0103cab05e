package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	domsvc "github.com/nadajinny/AI-Challenge-MVP/internal/domain/service"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
)

// JobMatcher scores and ranks job listings for a user profile.
type JobMatcher struct {
	rules *rules.Set
}

func NewJobMatcher(rs *rules.Set) *JobMatcher {
	return &JobMatcher{rules: rs}
}

var priorityShifts = map[string]models.Shift{
	models.PriorityMorning:   models.ShiftMorning,
	models.PriorityAfternoon: models.ShiftAfternoon,
	models.PriorityNight:     models.ShiftNight,
}

// Score blends distance, skill overlap, shift overlap and the user's
// stated priorities into a 0..100 match score.
func (m *JobMatcher) Score(job models.JobListing, profile models.JobProfile, priorities []string) int {
	r := m.rules.Jobs
	score := r.Base

	score += m.distanceBonus(job.DistanceKm)
	score += len(matchedSkills(job, profile)) * r.SkillBonus
	score += countShiftOverlap(job.Shifts, profile.AvailableShifts) * r.ShiftBonus

	prio := toSet(priorities)
	if prio[models.PriorityWage] {
		// Below the wage floor this contributes negatively on purpose;
		// only the final clamp bounds it. Flagged for product review.
		wb := floorDiv(job.HourlyWage-r.WageFloor, r.WageStep)
		if wb > r.WageCap {
			wb = r.WageCap
		}
		score += wb
	}
	if prio[models.PriorityClose] && job.DistanceKm <= r.CloseKm {
		score += r.CloseBonus
	}
	for tag, shift := range priorityShifts {
		if prio[tag] && offersShift(job.Shifts, shift) {
			score += r.ShiftPrefVal
		}
	}

	return clamp(score, 0, 100)
}

// distanceBonus applies the exclusive tiers in order; first match wins.
func (m *JobMatcher) distanceBonus(km float64) int {
	r := m.rules.Jobs
	for _, t := range r.DistanceTiers {
		if km <= t.MaxKm {
			return t.Bonus
		}
	}
	return r.FarPenalty
}

// Explain produces ordered human-readable reasons. The list is never
// empty: a fallback reason covers listings with no direct match.
func (m *JobMatcher) Explain(job models.JobListing, profile models.JobProfile) []string {
	r := m.rules.Jobs
	var reasons []string

	if job.DistanceKm <= r.CloseKm {
		reasons = append(reasons, r.CloseReason)
	}
	if countShiftOverlap(job.Shifts, profile.AvailableShifts) > 0 {
		reasons = append(reasons, r.ShiftReason)
	}
	if skills := matchedSkills(job, profile); len(skills) > 0 {
		reasons = append(reasons, fmt.Sprintf(r.SkillReason, strings.Join(skills, ", ")))
	}
	if job.HourlyWage >= r.HighWageMark {
		reasons = append(reasons, r.HighWageReason)
	}

	if len(reasons) == 0 {
		return []string{r.FallbackReason}
	}
	return reasons
}

// Rank sorts by score descending; ties keep the input order, so repeated
// calls over the fixture list are byte-for-byte identical.
func (m *JobMatcher) Rank(jobs []models.JobListing, profile models.JobProfile, priorities []string) []models.RankedJob {
	ranked := make([]models.RankedJob, 0, len(jobs))
	for _, j := range jobs {
		ranked = append(ranked, models.RankedJob{
			Job:     j,
			Score:   m.Score(j, profile, priorities),
			Reasons: m.Explain(j, profile),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// matchedSkills returns the overlap in the job's own skill-list order.
func matchedSkills(job models.JobListing, profile models.JobProfile) []string {
	have := toSet(profile.Skills)
	var out []string
	for _, s := range job.RequiredSkills {
		if have[s] {
			out = append(out, s)
		}
	}
	return out
}

func countShiftOverlap(offered, available []models.Shift) int {
	avail := make(map[models.Shift]bool, len(available))
	for _, s := range available {
		avail[s] = true
	}
	n := 0
	for _, s := range offered {
		if avail[s] {
			n++
		}
	}
	return n
}

func offersShift(offered []models.Shift, want models.Shift) bool {
	for _, s := range offered {
		if s == want {
			return true
		}
	}
	return false
}

var _ domsvc.JobMatcher = (*JobMatcher)(nil)
