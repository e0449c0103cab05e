// Package fixtures holds the static demo data the app ships with: one
// calendar month of ledger entries and the job board listings. Accessors
// return copies so callers cannot mutate the originals.
package fixtures

import (
	"time"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
)

func day(d int) time.Time {
	return time.Date(2025, time.August, d, 0, 0, 0, 0, time.UTC)
}

var transactions = []models.Transaction{
	{ID: "t01", Date: day(1), Description: "8월 급여", Amount: 2_000_000, Category: models.CategorySalary, Method: models.MethodTransfer},
	{ID: "t02", Date: day(2), Description: "용돈", Amount: 100_000, Category: models.CategoryAllowance, Method: models.MethodTransfer},
	{ID: "t03", Date: day(2), Description: "김밥천국 점심", Amount: -12_000, Category: models.CategoryFood, Method: models.MethodCard},
	{ID: "t04", Date: day(3), Description: "편의점 저녁", Amount: -15_500, Category: models.CategoryFood, Method: models.MethodCard},
	{ID: "t05", Date: day(4), Description: "넷플릭스", Amount: -9_900, Category: models.CategorySubscription, Method: models.MethodCard},
	{ID: "t06", Date: day(5), Description: "아메리카노", Amount: -4_500, Category: models.CategoryCafe, Method: models.MethodCard},
	{ID: "t07", Date: day(6), Description: "치킨 배달", Amount: -28_000, Category: models.CategoryFood, Method: models.MethodCard},
	{ID: "t08", Date: day(7), Description: "지하철 정기권", Amount: -38_000, Category: models.CategoryTransport, Method: models.MethodCard},
	{ID: "t09", Date: day(8), Description: "유튜브 뮤직", Amount: -3_600, Category: models.CategorySubscription, Method: models.MethodCard},
	{ID: "t10", Date: day(9), Description: "분식집", Amount: -9_800, Category: models.CategoryFood, Method: models.MethodCash},
	{ID: "t11", Date: day(10), Description: "온라인 쇼핑 티셔츠", Amount: -49_000, Category: models.CategoryShopping, Method: models.MethodCard},
	{ID: "t12", Date: day(12), Description: "회식 2차", Amount: -32_000, Category: models.CategoryFood, Method: models.MethodCard},
	{ID: "t13", Date: day(14), Description: "카페 디저트", Amount: -6_300, Category: models.CategoryCafe, Method: models.MethodCard},
	{ID: "t14", Date: day(15), Description: "약국 감기약", Amount: -21_000, Category: models.CategoryHealth, Method: models.MethodCard},
	{ID: "t15", Date: day(17), Description: "주말 장보기", Amount: -45_000, Category: models.CategoryFood, Method: models.MethodCard},
	{ID: "t16", Date: day(19), Description: "영화 관람", Amount: -13_000, Category: models.CategoryLeisure, Method: models.MethodCash},
	{ID: "t17", Date: day(21), Description: "택시", Amount: -14_000, Category: models.CategoryTransport, Method: models.MethodCard},
	{ID: "t18", Date: day(23), Description: "운동화", Amount: -40_000, Category: models.CategoryShopping, Method: models.MethodCard},
	{ID: "t19", Date: day(25), Description: "배달 야식", Amount: -38_000, Category: models.CategoryFood, Method: models.MethodCard},
	{ID: "t20", Date: day(27), Description: "보드게임 카페", Amount: -15_000, Category: models.CategoryLeisure, Method: models.MethodCard},
	{ID: "t21", Date: day(28), Description: "경조사비", Amount: -10_000, Category: models.CategoryEtc, Method: models.MethodCash},
	{ID: "t22", Date: day(29), Description: "국밥", Amount: -24_700, Category: models.CategoryFood, Method: models.MethodCard},
	{ID: "t23", Date: day(30), Description: "커피", Amount: -5_800, Category: models.CategoryCafe, Method: models.MethodCard},
}

var jobs = []models.JobListing{
	{
		ID: "j01", Title: "편의점 야간 스태프", Company: "CU 한강점",
		HourlyWage: 11_000, DistanceKm: 0.4,
		Shifts:         []models.Shift{models.ShiftNight},
		RequiredSkills: []string{"포스기", "재고 정리"},
		Location:       "마포구 현석동",
	},
	{
		ID: "j02", Title: "카페 바리스타", Company: "커피빈 서교점",
		HourlyWage: 10_500, DistanceKm: 1.8,
		Shifts:         []models.Shift{models.ShiftMorning, models.ShiftAfternoon},
		RequiredSkills: []string{"바리스타", "고객 응대"},
		Location:       "마포구 서교동",
	},
	{
		ID: "j03", Title: "물류센터 분류", Company: "쿠팡 물류",
		HourlyWage: 13_500, DistanceKm: 8.2,
		Shifts:         []models.Shift{models.ShiftNight},
		RequiredSkills: []string{"체력"},
		Location:       "고양시 덕양구",
	},
	{
		ID: "j04", Title: "도서관 사서 보조", Company: "마포중앙도서관",
		HourlyWage: 9_860, DistanceKm: 2.4,
		Shifts:         []models.Shift{models.ShiftAfternoon},
		RequiredSkills: []string{"문서 정리"},
		Location:       "마포구 성산동",
	},
	{
		ID: "j05", Title: "배달 라이더", Company: "바로고",
		HourlyWage: 12_800, DistanceKm: 0.9,
		Shifts:         []models.Shift{models.ShiftAfternoon, models.ShiftNight},
		RequiredSkills: []string{"오토바이 면허"},
		Location:       "마포구 망원동",
	},
	{
		ID: "j06", Title: "학원 보조 강사", Company: "신촌 공단기",
		HourlyWage: 12_000, DistanceKm: 5.1,
		Shifts:         []models.Shift{models.ShiftMorning},
		RequiredSkills: []string{"수학", "고객 응대"},
		Location:       "서대문구 신촌동",
	},
}

// Transactions returns the August demo ledger.
func Transactions() []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)
	return out
}

// Jobs returns the job board listings in their fixture order.
func Jobs() []models.JobListing {
	out := make([]models.JobListing, len(jobs))
	copy(out, jobs)
	return out
}
