package scoring

import (
	"math"
	"sort"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	domsvc "github.com/nadajinny/AI-Challenge-MVP/internal/domain/service"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
)

// FinanceAdvisor rolls up a monthly ledger and produces rule-based tips.
type FinanceAdvisor struct {
	rules *rules.Set
}

func NewFinanceAdvisor(rs *rules.Set) *FinanceAdvisor {
	return &FinanceAdvisor{rules: rs}
}

// Summarize aggregates the ledger. Positive amounts are income, negative
// are expense. Zero income defines the savings rate as 0.
func (a *FinanceAdvisor) Summarize(txs []models.Transaction) models.FinanceSummary {
	r := a.rules.Finance

	var income, expense int64
	totals := make(map[models.SpendCategory]int64, len(models.SpendCategories))
	for _, c := range models.SpendCategories {
		totals[c] = 0
	}

	for _, t := range txs {
		if t.Amount > 0 {
			income += t.Amount
		} else {
			expense += -t.Amount
		}
		abs := t.Amount
		if abs < 0 {
			abs = -abs
		}
		totals[t.Category] += abs
	}

	savingsRate := 0
	if income > 0 {
		savingsRate = int(math.Round(float64(income-expense) / float64(income) * 100))
	}

	budgetPct := int(math.Round(float64(expense) / float64(r.MonthlyBudget) * 100))
	budgetPct = clamp(budgetPct, 0, 100)

	return models.FinanceSummary{
		Income:         income,
		Expense:        expense,
		Net:            income - expense,
		TaxEstimate:    int64(math.Round(float64(income) * r.TaxRate)),
		SavingsRate:    savingsRate,
		CategoryTotals: totals,
		TopCategories:  topSpendCategories(totals, 4),
		BudgetUsagePct: budgetPct,
	}
}

// topSpendCategories ranks non-income categories by total, descending.
// Ties keep the canonical enumeration order (stable sort over that order).
func topSpendCategories(totals map[models.SpendCategory]int64, n int) []models.CategoryTotal {
	income := toSetCategories(models.IncomeCategories)

	ranked := make([]models.CategoryTotal, 0, len(models.SpendCategories))
	for _, c := range models.SpendCategories {
		if income[c] {
			continue
		}
		ranked = append(ranked, models.CategoryTotal{Category: c, Total: totals[c]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func toSetCategories(cs []models.SpendCategory) map[models.SpendCategory]bool {
	s := make(map[models.SpendCategory]bool, len(cs))
	for _, c := range cs {
		s[c] = true
	}
	return s
}

// Tips evaluates the advice rules independently, in fixed order, and
// returns a single positive-reinforcement message when none fire.
func (a *FinanceAdvisor) Tips(txs []models.Transaction, categoryTotals map[models.SpendCategory]int64, savingsRate int) []string {
	r := a.rules.Finance
	var tips []string

	if categoryTotals[models.CategoryFood] > r.FoodLimit {
		tips = append(tips, r.FoodTip)
	}
	if categoryTotals[models.CategorySubscription] > r.SubscriptionLimit {
		tips = append(tips, r.SubscriptionTip)
	}
	if savingsRate < r.SavingsRateFloor {
		tips = append(tips, r.AutoSaveTip)
	}
	if categoryTotals[models.CategoryShopping] > r.ShoppingLimit {
		tips = append(tips, r.ShoppingTip)
	}
	if anyCash(txs) {
		tips = append(tips, r.CashTip)
	}
	if categoryTotals[models.CategoryTransport] > r.TransportLimit {
		tips = append(tips, r.TransportTip)
	}

	if len(tips) == 0 {
		return []string{r.PositiveTip}
	}
	return tips
}

func anyCash(txs []models.Transaction) bool {
	for _, t := range txs {
		if t.Method == models.MethodCash {
			return true
		}
	}
	return false
}

var _ domsvc.FinanceAdvisor = (*FinanceAdvisor)(nil)
