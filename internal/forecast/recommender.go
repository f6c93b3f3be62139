package forecast

import (
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Recommendation modes, selectable by the caller.
const (
	ModeCategoryBudget = "category_budget"
	ModeSurplus        = "surplus"
)

// overspendTrendFactor triggers the general advisory when the current
// month runs more than 10% over the previous one.
var overspendTrendFactor = decimal.NewFromFloat(1.1)

// generalAdvisoryMessage is the fixed text of the month-over-month
// overspend advisory.
const generalAdvisoryMessage = "Spending is up more than 10% from last month. Review recent purchases to stay on track."

// RecommendationInput carries everything a recommender may consume.
// Buckets should be the AggregateMonthly output for Transactions; when
// nil it is derived on the fly. Now anchors the current-month window.
//
// The two modes read different parts of the input: category-budget
// mode uses Budgets, surplus mode uses the single MonthlyBudget figure.
// They are deliberately separate strategies, not a merged rule set.
type RecommendationInput struct {
	Transactions  []models.Transaction
	Budgets       []models.Budget
	Buckets       map[string]*models.MonthBucket
	MonthlyBudget decimal.Decimal
	Now           time.Time
}

// Recommender turns a spending snapshot into prioritized advisory
// messages.
type Recommender interface {
	Mode() string
	Recommend(in RecommendationInput) []models.Recommendation
}

// CategoryBudgetRecommender compares current-month spending against
// per-category budgets, then against the previous month's total.
type CategoryBudgetRecommender struct{}

func (CategoryBudgetRecommender) Mode() string { return ModeCategoryBudget }

// Recommend emits one high-priority recommendation per overspent
// budget, in budget-list order, followed by at most one medium-priority
// general advisory when spending rose more than 10% month over month.
func (CategoryBudgetRecommender) Recommend(in RecommendationInput) []models.Recommendation {
	currentMonth := in.Now.Format("2006-01")
	recommendations := make([]models.Recommendation, 0)

	for _, budget := range in.Budgets {
		spent := decimal.Zero
		for i := range in.Transactions {
			txn := &in.Transactions[i]
			if txn.IsExpense() && txn.Category == budget.Category && txn.MonthKey() == currentMonth {
				spent = spent.Add(txn.Amount)
			}
		}

		if spent.GreaterThan(budget.Amount) {
			overspend := spent.Sub(budget.Amount)
			recommendations = append(recommendations, models.Recommendation{
				Category: budget.Category,
				Message:  fmt.Sprintf("Reduce spending in %s by $%s", budget.Category, overspend.StringFixed(2)),
				Priority: models.PriorityHigh,
			})
		}
	}

	buckets := in.Buckets
	if buckets == nil {
		buckets = AggregateMonthly(in.Transactions)
	}

	currentSpending := decimal.Zero
	if bucket, ok := buckets[currentMonth]; ok {
		currentSpending = bucket.Expenses
	}

	if prev, ok := previousMonth(buckets, currentMonth); ok {
		if currentSpending.GreaterThan(buckets[prev].Expenses.Mul(overspendTrendFactor)) {
			recommendations = append(recommendations, models.Recommendation{
				Category: models.GeneralCategory,
				Message:  generalAdvisoryMessage,
				Priority: models.PriorityMedium,
			})
		}
	}

	return recommendations
}

// previousMonth finds the chronologically closest bucket key before
// currentMonth, if any month precedes it in the data.
func previousMonth(buckets map[string]*models.MonthBucket, currentMonth string) (string, bool) {
	prev := ""
	for month := range buckets {
		if month < currentMonth && month > prev {
			prev = month
		}
	}
	return prev, prev != ""
}

// SurplusRecommender works from one aggregate monthly budget figure
// instead of a budget list: it either proposes a savings split for the
// surplus or flags the heaviest spending category.
type SurplusRecommender struct{}

func (SurplusRecommender) Mode() string { return ModeSurplus }

// Recommend emits exactly one recommendation. A positive surplus
// suggests a 70/30 save-versus-spend split; otherwise the warning names
// the category with the highest total expense, ties broken by first
// appearance in the transaction list.
func (SurplusRecommender) Recommend(in RecommendationInput) []models.Recommendation {
	totalExpenses := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	categoryOrder := make([]string, 0)

	for i := range in.Transactions {
		txn := &in.Transactions[i]
		if !txn.IsExpense() {
			continue
		}

		totalExpenses = totalExpenses.Add(txn.Amount)
		if _, seen := categoryTotals[txn.Category]; !seen {
			categoryOrder = append(categoryOrder, txn.Category)
		}
		categoryTotals[txn.Category] = categoryTotals[txn.Category].Add(txn.Amount)
	}

	surplus := in.MonthlyBudget.Sub(totalExpenses)

	if surplus.GreaterThan(decimal.Zero) {
		savings := surplus.Mul(decimal.NewFromFloat(0.7)).Round(2)
		flexible := surplus.Sub(savings)
		return []models.Recommendation{{
			Category: models.GeneralCategory,
			Message: fmt.Sprintf("You are $%s under budget. Consider saving $%s and keeping $%s for flexible spending.",
				surplus.StringFixed(2), savings.StringFixed(2), flexible.StringFixed(2)),
			Priority: models.PriorityMedium,
		}}
	}

	overspend := totalExpenses.Sub(in.MonthlyBudget)
	topCategory := ""
	topAmount := decimal.Zero
	for _, category := range categoryOrder {
		if categoryTotals[category].GreaterThan(topAmount) {
			topCategory = category
			topAmount = categoryTotals[category]
		}
	}

	return []models.Recommendation{{
		Category: topCategory,
		Message: fmt.Sprintf("Over budget by $%s. Your highest spending category is %s at $%s.",
			overspend.StringFixed(2), topCategory, topAmount.StringFixed(2)),
		Priority: models.PriorityHigh,
	}}
}

// RecommenderFor maps a mode name to its implementation, defaulting to
// the per-category budget mode.
func RecommenderFor(mode string) Recommender {
	if mode == ModeSurplus {
		return SurplusRecommender{}
	}
	return CategoryBudgetRecommender{}
}
