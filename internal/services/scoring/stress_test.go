package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
)

func newStress(t *testing.T) *StressScorer {
	t.Helper()
	rs := rules.Default()
	require.NoError(t, rs.Validate())
	return NewStressScorer(rs)
}

func TestComputeStress_Baseline(t *testing.T) {
	s := newStress(t)

	res := s.Compute("", nil, nil)

	assert.Equal(t, 50, res.Score)
	assert.Equal(t, models.CategoryMedium, res.Category)
	assert.NotEmpty(t, res.Message)
	assert.NotEmpty(t, res.Guidance)
}

func TestComputeStress_Scenarios(t *testing.T) {
	s := newStress(t)

	tests := []struct {
		name         string
		text         string
		negatives    []string
		positives    []string
		wantScore    int
		wantCategory models.StressCategory
	}{
		{
			name:         "conflict factor plus conflict keyword",
			text:         "팀원과의 갈등 때문에 너무 힘들었다",
			negatives:    []string{"갈등"},
			wantScore:    85, // 50 + 25 + 10
			wantCategory: models.CategoryVeryHigh,
		},
		{
			name:         "two buffering factors",
			positives:    []string{"운동함", "명상/호흡"},
			wantScore:    17, // 50 - 18 - 15
			wantCategory: models.CategoryLow,
		},
		{
			name:         "bonus and relief keywords both apply",
			text:         "피곤하지만 운동으로 풀었다",
			wantScore:    50, // +8 - 8
			wantCategory: models.CategoryMedium,
		},
		{
			name:         "unknown factor keys contribute nothing",
			negatives:    []string{"없는키"},
			positives:    []string{"역시없음"},
			wantScore:    50,
			wantCategory: models.CategoryMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Compute(tt.text, tt.negatives, tt.positives)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantCategory, res.Category)
		})
	}
}

func TestComputeStress_Deterministic(t *testing.T) {
	s := newStress(t)

	a := s.Compute("야근 때문에 피곤하다", []string{"야근"}, []string{"산책"})
	b := s.Compute("야근 때문에 피곤하다", []string{"야근"}, []string{"산책"})

	assert.Equal(t, a, b)
}

func TestComputeStress_Bounds(t *testing.T) {
	s := newStress(t)
	rs := rules.Default()

	var allNeg, allPos []string
	for _, f := range rs.Stress.Negatives {
		allNeg = append(allNeg, f.Key)
	}
	for _, f := range rs.Stress.Positives {
		allPos = append(allPos, f.Key)
	}

	high := s.Compute("갈등 피곤 불안 야근 짜증 걱정", allNeg, nil)
	assert.Equal(t, 100, high.Score)
	assert.Equal(t, models.CategoryVeryHigh, high.Category)

	low := s.Compute("운동 명상 휴식 산책 감사", nil, allPos)
	assert.Equal(t, 0, low.Score)
	assert.Equal(t, models.CategoryLow, low.Category)
}

func TestComputeStress_Monotonicity(t *testing.T) {
	s := newStress(t)

	base := s.Compute("오늘 하루 기록", []string{"야근"}, nil)
	more := s.Compute("오늘 하루 기록", []string{"야근", "수면 부족"}, nil)
	assert.GreaterOrEqual(t, more.Score, base.Score)

	buffered := s.Compute("오늘 하루 기록", []string{"야근"}, []string{"산책"})
	assert.LessOrEqual(t, buffered.Score, base.Score)
}

func TestComputeStress_LengthBonus(t *testing.T) {
	s := newStress(t)

	// 160 runes of neutral text: +2
	res := s.Compute(strings.Repeat("가", 160), nil, nil)
	assert.Equal(t, 52, res.Score)

	// bonus caps at +10 regardless of length
	long := s.Compute(strings.Repeat("가", 5000), nil, nil)
	assert.Equal(t, 60, long.Score)
	assert.Equal(t, models.CategoryHigh, long.Category)

	// whitespace-only input stays at baseline
	blank := s.Compute("   \n\t  ", nil, nil)
	assert.Equal(t, 50, blank.Score)
}

func TestCategorize_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  models.StressCategory
	}{
		{0, models.CategoryLow},
		{39, models.CategoryLow},
		{40, models.CategoryMedium},
		{59, models.CategoryMedium},
		{60, models.CategoryHigh},
		{74, models.CategoryHigh},
		{75, models.CategoryVeryHigh},
		{100, models.CategoryVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.score), "score %d", tt.score)
	}
}

func TestStressTips_Bands(t *testing.T) {
	s := newStress(t)
	rs := rules.Default()

	assert.Equal(t, rs.Stress.TipsHigh, s.Tips(75))
	assert.Equal(t, rs.Stress.TipsHigh, s.Tips(100))
	assert.Equal(t, rs.Stress.TipsMedium, s.Tips(60))
	assert.Equal(t, rs.Stress.TipsMedium, s.Tips(74))
	assert.Equal(t, rs.Stress.TipsLow, s.Tips(59))
	assert.Equal(t, rs.Stress.TipsLow, s.Tips(0))
}

func TestComputeStress_GuidanceTiers(t *testing.T) {
	s := newStress(t)
	rs := rules.Default()

	high := s.Compute("", []string{"갈등"}, nil) // 75
	assert.Equal(t, rs.Stress.GuidanceHigh, high.Guidance)

	low := s.Compute("", nil, []string{"산책"}) // 38
	assert.Equal(t, rs.Stress.GuidanceLow, low.Guidance)
}
