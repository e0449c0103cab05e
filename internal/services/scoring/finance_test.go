package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	"github.com/nadajinny/AI-Challenge-MVP/internal/fixtures"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
)

func newFinance(t *testing.T) *FinanceAdvisor {
	t.Helper()
	rs := rules.Default()
	require.NoError(t, rs.Validate())
	return NewFinanceAdvisor(rs)
}

func TestSummarize_DemoLedger(t *testing.T) {
	a := newFinance(t)

	sum := a.Summarize(fixtures.Transactions())

	assert.Equal(t, int64(2_100_000), sum.Income)
	assert.Equal(t, int64(435_100), sum.Expense)
	assert.Equal(t, int64(1_664_900), sum.Net)
	assert.Equal(t, int64(69_300), sum.TaxEstimate) // round(2,100,000 * 0.033)
	assert.Equal(t, 79, sum.SavingsRate)
	assert.Equal(t, 48, sum.BudgetUsagePct)

	assert.Equal(t, int64(205_000), sum.CategoryTotals[models.CategoryFood])
	assert.Equal(t, int64(13_500), sum.CategoryTotals[models.CategorySubscription])
	assert.Equal(t, int64(52_000), sum.CategoryTotals[models.CategoryTransport])
	assert.Equal(t, int64(89_000), sum.CategoryTotals[models.CategoryShopping])
	assert.Equal(t, int64(2_000_000), sum.CategoryTotals[models.CategorySalary])

	require.Len(t, sum.TopCategories, 4)
	assert.Equal(t, models.CategoryFood, sum.TopCategories[0].Category)
	assert.Equal(t, models.CategoryShopping, sum.TopCategories[1].Category)
	assert.Equal(t, models.CategoryTransport, sum.TopCategories[2].Category)
	assert.Equal(t, models.CategoryLeisure, sum.TopCategories[3].Category)
}

func TestSummarize_ZeroIncome(t *testing.T) {
	a := newFinance(t)

	sum := a.Summarize([]models.Transaction{
		{ID: "x1", Date: time.Now(), Amount: -30_000, Category: models.CategoryFood, Method: models.MethodCard},
	})

	assert.Equal(t, int64(0), sum.Income)
	assert.Equal(t, 0, sum.SavingsRate)
	assert.Equal(t, int64(0), sum.TaxEstimate)
	assert.Equal(t, int64(-30_000), sum.Net)
}

func TestSummarize_EmptyLedger(t *testing.T) {
	a := newFinance(t)

	sum := a.Summarize(nil)

	assert.Equal(t, int64(0), sum.Income)
	assert.Equal(t, int64(0), sum.Expense)
	assert.Equal(t, 0, sum.SavingsRate)
	assert.Equal(t, 0, sum.BudgetUsagePct)
	// every category present, zero-filled
	for _, c := range models.SpendCategories {
		total, ok := sum.CategoryTotals[c]
		assert.True(t, ok, "missing category %s", c)
		assert.Equal(t, int64(0), total)
	}
}

func TestSummarize_BudgetUsageClamped(t *testing.T) {
	a := newFinance(t)

	sum := a.Summarize([]models.Transaction{
		{ID: "x1", Amount: -5_000_000, Category: models.CategoryShopping, Method: models.MethodCard},
	})

	assert.Equal(t, 100, sum.BudgetUsagePct)
}

func TestSummarize_TopCategoriesExcludeIncome(t *testing.T) {
	a := newFinance(t)

	sum := a.Summarize(fixtures.Transactions())
	for _, ct := range sum.TopCategories {
		assert.NotEqual(t, models.CategorySalary, ct.Category)
		assert.NotEqual(t, models.CategoryAllowance, ct.Category)
	}
}

func TestSummarize_TopCategoriesTieOrder(t *testing.T) {
	a := newFinance(t)

	// equal totals keep the canonical category order
	sum := a.Summarize([]models.Transaction{
		{ID: "x1", Amount: -10_000, Category: models.CategoryTransport, Method: models.MethodCard},
		{ID: "x2", Amount: -10_000, Category: models.CategoryFood, Method: models.MethodCard},
	})

	require.NotEmpty(t, sum.TopCategories)
	assert.Equal(t, models.CategoryFood, sum.TopCategories[0].Category)
	assert.Equal(t, models.CategoryTransport, sum.TopCategories[1].Category)
}

func TestFinanceTips_DemoLedger(t *testing.T) {
	a := newFinance(t)
	rs := rules.Default()

	txs := fixtures.Transactions()
	sum := a.Summarize(txs)
	tips := a.Tips(txs, sum.CategoryTotals, sum.SavingsRate)

	// food, subscription, shopping, cash and transport rules fire, in order;
	// savings rate 79 keeps the auto-save tip out.
	assert.Equal(t, []string{
		rs.Finance.FoodTip,
		rs.Finance.SubscriptionTip,
		rs.Finance.ShoppingTip,
		rs.Finance.CashTip,
		rs.Finance.TransportTip,
	}, tips)
}

func TestFinanceTips_Boundaries(t *testing.T) {
	a := newFinance(t)
	rs := rules.Default()

	tests := []struct {
		name    string
		totals  map[models.SpendCategory]int64
		savings int
		want    []string
	}{
		{
			name:    "exactly at food limit does not fire",
			totals:  map[models.SpendCategory]int64{models.CategoryFood: rs.Finance.FoodLimit},
			savings: 50,
			want:    []string{rs.Finance.PositiveTip},
		},
		{
			name:    "one over food limit fires",
			totals:  map[models.SpendCategory]int64{models.CategoryFood: rs.Finance.FoodLimit + 1},
			savings: 50,
			want:    []string{rs.Finance.FoodTip},
		},
		{
			name:    "savings rate below floor fires auto save",
			totals:  map[models.SpendCategory]int64{},
			savings: rs.Finance.SavingsRateFloor - 1,
			want:    []string{rs.Finance.AutoSaveTip},
		},
		{
			name:    "savings rate at floor does not fire",
			totals:  map[models.SpendCategory]int64{},
			savings: rs.Finance.SavingsRateFloor,
			want:    []string{rs.Finance.PositiveTip},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Tips(nil, tt.totals, tt.savings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinanceTips_PositiveFallback(t *testing.T) {
	a := newFinance(t)
	rs := rules.Default()

	txs := []models.Transaction{
		{ID: "x1", Amount: 1_000_000, Category: models.CategorySalary, Method: models.MethodTransfer},
	}
	sum := a.Summarize(txs)
	tips := a.Tips(txs, sum.CategoryTotals, sum.SavingsRate)

	assert.Equal(t, []string{rs.Finance.PositiveTip}, tips)
}

func TestFinanceTips_CashDetection(t *testing.T) {
	a := newFinance(t)
	rs := rules.Default()

	txs := []models.Transaction{
		{ID: "x1", Amount: 1_000_000, Category: models.CategorySalary, Method: models.MethodTransfer},
		{ID: "x2", Amount: -2_000, Category: models.CategoryEtc, Method: models.MethodCash},
	}
	sum := a.Summarize(txs)
	tips := a.Tips(txs, sum.CategoryTotals, sum.SavingsRate)

	assert.Equal(t, []string{rs.Finance.CashTip}, tips)
}
