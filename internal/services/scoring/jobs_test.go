package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	"github.com/nadajinny/AI-Challenge-MVP/internal/fixtures"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
)

func newMatcher(t *testing.T) *JobMatcher {
	t.Helper()
	rs := rules.Default()
	require.NoError(t, rs.Validate())
	return NewJobMatcher(rs)
}

func TestJobScore_DistanceTiers(t *testing.T) {
	m := newMatcher(t)
	profile := models.JobProfile{}

	tests := []struct {
		km   float64
		want int
	}{
		{0.2, 70},  // 50 + 20
		{1.0, 70},  // boundary inclusive
		{1.1, 62},  // 50 + 12
		{3.0, 62},
		{5.0, 55}, // 50 + 5
		{6.0, 55},
		{6.1, 45}, // 50 - 5
		{9.5, 45},
	}

	for _, tt := range tests {
		job := models.JobListing{DistanceKm: tt.km, HourlyWage: 10_000}
		assert.Equal(t, tt.want, m.Score(job, profile, nil), "distance %.1fkm", tt.km)
	}
}

func TestJobScore_CloserWinsAllElseEqual(t *testing.T) {
	m := newMatcher(t)
	profile := models.JobProfile{AvailableShifts: []models.Shift{models.ShiftNight}}

	near := models.JobListing{ID: "a", DistanceKm: 0.2, HourlyWage: 11_000, Shifts: []models.Shift{models.ShiftNight}}
	far := near
	far.ID = "b"
	far.DistanceKm = 9.5

	assert.Greater(t, m.Score(near, profile, nil), m.Score(far, profile, nil))

	ranked := m.Rank([]models.JobListing{far, near}, profile, nil)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Job.ID)
	assert.Equal(t, "b", ranked[1].Job.ID)
}

func TestJobScore_SkillAndShiftOverlap(t *testing.T) {
	m := newMatcher(t)

	job := models.JobListing{
		DistanceKm:     2.0,
		HourlyWage:     10_000,
		Shifts:         []models.Shift{models.ShiftMorning, models.ShiftNight},
		RequiredSkills: []string{"포스기", "재고 정리", "고객 응대"},
	}
	profile := models.JobProfile{
		Skills:          []string{"고객 응대", "포스기"},
		AvailableShifts: []models.Shift{models.ShiftNight},
	}

	// 50 + 12 (distance) + 2*10 (skills) + 1*8 (shift) = 90
	assert.Equal(t, 90, m.Score(job, profile, nil))
}

func TestJobScore_WagePriority(t *testing.T) {
	m := newMatcher(t)
	profile := models.JobProfile{}

	tests := []struct {
		wage int
		want int
	}{
		{10_000, 62},  // 50 + 12 + 0
		{10_200, 63},  // +1 per 200 won above the floor
		{14_000, 82},  // +20, at the cap
		{16_000, 82},  // still capped
		{9_900, 61},   // below the floor: -1
		{9_000, 57},   // -5
	}

	for _, tt := range tests {
		job := models.JobListing{DistanceKm: 2.0, HourlyWage: tt.wage}
		got := m.Score(job, profile, []string{models.PriorityWage})
		assert.Equal(t, tt.want, got, "wage %d", tt.wage)
	}
}

func TestJobScore_ClosePriorityStacks(t *testing.T) {
	m := newMatcher(t)
	profile := models.JobProfile{}

	near := models.JobListing{DistanceKm: 0.8, HourlyWage: 10_000}
	// 50 + 20 (tier) + 10 (close priority) = 80
	assert.Equal(t, 80, m.Score(near, profile, []string{models.PriorityClose}))

	// close priority does not apply past the cutoff
	mid := models.JobListing{DistanceKm: 1.5, HourlyWage: 10_000}
	assert.Equal(t, 62, m.Score(mid, profile, []string{models.PriorityClose}))
}

func TestJobScore_ShiftPriorities(t *testing.T) {
	m := newMatcher(t)
	profile := models.JobProfile{}

	job := models.JobListing{
		DistanceKm: 2.0,
		HourlyWage: 10_000,
		Shifts:     []models.Shift{models.ShiftNight, models.ShiftAfternoon},
	}

	// 50 + 12 + 6 (night offered)
	assert.Equal(t, 68, m.Score(job, profile, []string{models.PriorityNight}))
	// both offered shift priorities apply, morning does not
	assert.Equal(t, 74, m.Score(job, profile, []string{
		models.PriorityNight, models.PriorityAfternoon, models.PriorityMorning,
	}))
	// duplicate priorities count once
	assert.Equal(t, 68, m.Score(job, profile, []string{models.PriorityNight, models.PriorityNight}))
}

func TestJobScore_Clamped(t *testing.T) {
	m := newMatcher(t)

	job := models.JobListing{
		DistanceKm:     0.3,
		HourlyWage:     20_000,
		Shifts:         []models.Shift{models.ShiftMorning, models.ShiftAfternoon, models.ShiftNight},
		RequiredSkills: []string{"a", "b", "c", "d"},
	}
	profile := models.JobProfile{
		Skills:          []string{"a", "b", "c", "d"},
		AvailableShifts: []models.Shift{models.ShiftMorning, models.ShiftAfternoon, models.ShiftNight},
	}

	got := m.Score(job, profile, []string{models.PriorityWage, models.PriorityClose, models.PriorityNight})
	assert.Equal(t, 100, got)
}

func TestJobScore_Deterministic(t *testing.T) {
	m := newMatcher(t)
	profile := models.JobProfile{Skills: []string{"포스기"}, AvailableShifts: []models.Shift{models.ShiftNight}}
	prios := []string{models.PriorityWage, models.PriorityNight}

	a := m.Rank(fixtures.Jobs(), profile, prios)
	b := m.Rank(fixtures.Jobs(), profile, prios)
	assert.Equal(t, a, b)
}

func TestExplain(t *testing.T) {
	m := newMatcher(t)
	rs := rules.Default()

	t.Run("all reasons in order", func(t *testing.T) {
		job := models.JobListing{
			DistanceKm:     0.5,
			HourlyWage:     13_000,
			Shifts:         []models.Shift{models.ShiftNight},
			RequiredSkills: []string{"포스기", "재고 정리"},
		}
		profile := models.JobProfile{
			Skills:          []string{"재고 정리", "포스기"},
			AvailableShifts: []models.Shift{models.ShiftNight},
		}

		reasons := m.Explain(job, profile)
		require.Len(t, reasons, 4)
		assert.Equal(t, rs.Jobs.CloseReason, reasons[0])
		assert.Equal(t, rs.Jobs.ShiftReason, reasons[1])
		// matched skills listed in the job's own order
		assert.Equal(t, fmt.Sprintf(rs.Jobs.SkillReason, "포스기, 재고 정리"), reasons[2])
		assert.Equal(t, rs.Jobs.HighWageReason, reasons[3])
	})

	t.Run("fallback when nothing matches", func(t *testing.T) {
		job := models.JobListing{DistanceKm: 7.0, HourlyWage: 9_500, Shifts: []models.Shift{models.ShiftMorning}}
		reasons := m.Explain(job, models.JobProfile{AvailableShifts: []models.Shift{models.ShiftNight}})
		assert.Equal(t, []string{rs.Jobs.FallbackReason}, reasons)
	})

	t.Run("high wage boundary is inclusive", func(t *testing.T) {
		job := models.JobListing{DistanceKm: 7.0, HourlyWage: rs.Jobs.HighWageMark}
		reasons := m.Explain(job, models.JobProfile{})
		assert.Contains(t, reasons, rs.Jobs.HighWageReason)
	})
}

func TestRank_StableOnTies(t *testing.T) {
	m := newMatcher(t)
	profile := models.JobProfile{}

	a := models.JobListing{ID: "a", DistanceKm: 2.0, HourlyWage: 10_000}
	b := models.JobListing{ID: "b", DistanceKm: 2.5, HourlyWage: 10_000}

	ranked := m.Rank([]models.JobListing{a, b}, profile, nil)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "a", ranked[0].Job.ID)
	assert.Equal(t, "b", ranked[1].Job.ID)
}

func TestRank_Fixtures(t *testing.T) {
	m := newMatcher(t)

	profile := models.JobProfile{
		Skills:          []string{"포스기", "고객 응대"},
		AvailableShifts: []models.Shift{models.ShiftNight},
	}
	ranked := m.Rank(fixtures.Jobs(), profile, []string{models.PriorityClose, models.PriorityNight})

	require.Len(t, ranked, 6)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	for _, r := range ranked {
		assert.NotEmpty(t, r.Reasons, "job %s must have reasons", r.Job.ID)
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
	}
	// the nearby night-shift convenience store should lead this profile
	assert.Equal(t, "j01", ranked[0].Job.ID)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{4000, 200, 20},
		{-1000, 200, -5},
		{-100, 200, -1},
		{100, 200, 0},
		{0, 200, 0},
		{-201, 200, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
	}
}

func TestExplain_SkillJoinUsesJobOrder(t *testing.T) {
	m := newMatcher(t)

	job := models.JobListing{
		DistanceKm:     7.0,
		HourlyWage:     9_000,
		RequiredSkills: []string{"수학", "고객 응대", "문서 정리"},
	}
	profile := models.JobProfile{Skills: []string{"문서 정리", "수학"}}

	reasons := m.Explain(job, profile)
	require.Len(t, reasons, 1)
	assert.True(t, strings.Contains(reasons[0], "수학, 문서 정리"), "got %q", reasons[0])
}
