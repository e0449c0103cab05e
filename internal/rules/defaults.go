package rules

import "github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"

// Intent names referenced by the chat resolver's reply producers.
const (
	IntentGreeting  = "greeting"
	IntentBreathing = "breathing"
	IntentTip       = "tip"
	IntentCommunity = "community"
	IntentScore     = "score"
	IntentFinance   = "finance"
	IntentJob       = "job"
)

// Default returns the compiled-in rule tables, matching the app's shipped
// catalogs. Callers must treat the returned set as read-only.
func Default() *Set {
	return &Set{
		Stress: StressRules{
			Baseline: 50,
			Negatives: []Factor{
				{Key: "갈등", Weight: 25},
				{Key: "야근", Weight: 20},
				{Key: "마감 압박", Weight: 18},
				{Key: "수면 부족", Weight: 16},
				{Key: "시험/발표", Weight: 14},
				{Key: "출퇴근 지옥", Weight: 12},
			},
			Positives: []Factor{
				{Key: "운동함", Weight: -18},
				{Key: "명상/호흡", Weight: -15},
				{Key: "산책", Weight: -12},
				{Key: "친구와 수다", Weight: -11},
				{Key: "충분한 수면", Weight: -10},
			},
			Bonus: []KeywordRule{
				{Keyword: "갈등", Delta: 10},
				{Keyword: "피곤", Delta: 8},
				{Keyword: "불안", Delta: 8},
				{Keyword: "야근", Delta: 7},
				{Keyword: "짜증", Delta: 6},
				{Keyword: "걱정", Delta: 5},
			},
			Relief: []KeywordRule{
				{Keyword: "운동", Delta: -8},
				{Keyword: "명상", Delta: -7},
				{Keyword: "휴식", Delta: -6},
				{Keyword: "산책", Delta: -5},
				{Keyword: "감사", Delta: -4},
			},
			LengthDivisor: 80,
			LengthCap:     10,
			Messages: map[models.StressCategory]string{
				models.CategoryVeryHigh: "지금은 꼭 쉬어야 해요. 오늘만큼은 나를 먼저 챙기세요.",
				models.CategoryHigh:     "피로가 쌓이고 있어요. 잠깐 멈추고 호흡을 가다듬어 보세요.",
				models.CategoryMedium:   "아직은 괜찮지만 긴장을 늦추지 마세요.",
				models.CategoryLow:      "좋은 흐름이에요. 지금 페이스를 유지해 보세요.",
			},
			GuidanceHigh: "오늘은 해야 할 일을 줄이고 회복에 집중해 보세요.",
			GuidanceLow:  "가벼운 스트레칭으로 지금 컨디션을 이어가 보세요.",
			TipsHigh: []string{
				"지금 하던 일을 멈추고 10분간 눈을 감고 쉬어 보세요.",
				"오늘 일정 중 미룰 수 있는 것은 과감히 미루세요.",
				"믿을 수 있는 사람에게 지금 상태를 이야기해 보세요.",
			},
			TipsMedium: []string{
				"4초 들이쉬고 6초 내쉬는 호흡을 5번 반복해 보세요.",
				"따뜻한 물 한 잔과 함께 짧은 휴식을 가져 보세요.",
				"퇴근 후 30분은 화면 없이 보내 보세요.",
			},
			TipsLow: []string{
				"좋은 컨디션이에요. 가벼운 산책으로 기분을 유지해 보세요.",
				"오늘 잘한 일 하나를 기록해 두면 내일이 편해져요.",
				"자기 전 스트레칭으로 수면의 질을 올려 보세요.",
			},
		},
		Finance: FinanceRules{
			TaxRate:           0.033,
			MonthlyBudget:     900_000,
			FoodLimit:         200_000,
			SubscriptionLimit: 10_000,
			SavingsRateFloor:  20,
			ShoppingLimit:     70_000,
			TransportLimit:    40_000,
			FoodTip:           "이번 달 식비가 높아요. 일주일에 두 번은 집밥으로 바꿔 보세요.",
			SubscriptionTip:   "구독 서비스를 점검해 보세요. 안 쓰는 구독 하나면 한 달 커피값이에요.",
			AutoSaveTip:       "저축률이 20%를 밑돌아요. 월급날 자동이체 저축을 걸어 두세요.",
			ShoppingTip:       "쇼핑 지출이 많아요. 장바구니에 하루 묵혔다가 결제해 보세요.",
			CashTip:           "현금 결제 내역이 있어요. 현금 지출도 기록해야 새는 돈이 보여요.",
			TransportTip:      "교통비가 부담되는 수준이에요. 정기권이나 환승 할인을 확인해 보세요.",
			PositiveTip:       "소비 습관이 아주 좋아요! 지금처럼만 유지해 보세요.",
		},
		Jobs: JobRules{
			Base: 50,
			DistanceTiers: []DistanceTier{
				{MaxKm: 1, Bonus: 20},
				{MaxKm: 3, Bonus: 12},
				{MaxKm: 6, Bonus: 5},
			},
			FarPenalty:   -5,
			SkillBonus:   10,
			ShiftBonus:   8,
			WageFloor:    10_000,
			WageStep:     200,
			WageCap:      20,
			CloseBonus:   10,
			ShiftPrefVal: 6,
			CloseKm:      1,
			HighWageMark: 12_000,

			CloseReason:    "집에서 아주 가까워요 (1km 이내)",
			ShiftReason:    "가능한 시간대와 근무 시간이 겹쳐요",
			SkillReason:    "보유 스킬과 맞아요: %s",
			HighWageReason: "시급이 높은 편이에요",
			FallbackReason: "새로운 경험을 넓힐 수 있는 자리예요",
		},
		Chat: ChatRules{
			Intents: []IntentRule{
				{Name: IntentGreeting, Patterns: []string{"안녕", "하이", "hello", "hi"}},
				{Name: IntentBreathing, Patterns: []string{"호흡", "명상", "숨쉬"}},
				{Name: IntentTip, Patterns: []string{"팁", "조언", "tip"}},
				{Name: IntentCommunity, Patterns: []string{"커뮤니티", "게시판", "다른 사람"}},
				{Name: IntentScore, Patterns: []string{"점수", "지수", "score"}},
				{Name: IntentFinance, Patterns: []string{"돈", "소비", "지출", "가계부"}},
				{Name: IntentJob, Patterns: []string{"알바", "일자리", "채용", "구직"}},
			},
			Replies: map[string]string{
				IntentGreeting:  "안녕하세요! 오늘 하루는 어땠어요? 편하게 이야기해 주세요.",
				IntentBreathing: "좋아요. 4초 들이쉬고, 6초 천천히 내쉬어 보세요. 다섯 번만 반복해도 몸이 한결 풀려요.",
				IntentCommunity: "커뮤니티 탭에서 비슷한 고민을 가진 분들의 이야기를 읽어 보세요. 혼자가 아니라는 것만으로도 힘이 돼요.",
				IntentFinance:   "소비가 걱정될 땐 가계부 탭을 열어 보세요. 이번 달 지출 요약과 맞춤 절약 팁을 보여 드려요.",
				IntentJob:       "일자리 탭에서 거리·시급·시간대 기준으로 맞는 알바를 추천받을 수 있어요. 우선순위를 골라 보세요.",
			},
			TipNoResult:   "지금 할 수 있는 가장 쉬운 팁: 물 한 잔 마시고 어깨를 크게 한 번 돌려 보세요.",
			TipVeryHigh:   "지금은 팁보다 휴식이 먼저예요. 모든 걸 잠시 내려놓고 10분만 쉬어 주세요.",
			TipHigh:       "머리가 복잡할 땐 리셋이 필요해요. 자리에서 일어나 창밖을 보며 호흡을 가다듬어 보세요.",
			TipTemplate:   "현재 %s 단계네요. 가벼운 산책이나 좋아하는 음악 한 곡이 좋은 유지 비결이에요.",
			ScoreNoResult: "아직 측정한 점수가 없어요. 홈 탭에서 오늘의 스트레스를 먼저 기록해 볼까요?",
			ScoreTemplate: "최근 스트레스 점수는 %d점, %s 단계예요. %s",
			Fallback:      "음, 잘 이해하지 못했어요. 오늘 기분이나 스트레스에 대해 이야기해 볼까요?",
		},
	}
}
