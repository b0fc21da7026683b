package derive

import (
	"math"
	"testing"

	"github.com/ami-friedman/budget-compass/internal/models"
)

func TestSummary(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Salary", Type: models.CategoryIncome, Active: true},
		{ID: 2, Name: "Rent", Type: models.CategoryMonthly, Active: true},
		{ID: 3, Name: "Vacation", Type: models.CategorySavings, Active: true},
		{ID: 4, Name: "Groceries", Type: models.CategoryCash, Active: true},
	}

	tests := []struct {
		name  string
		items []models.BudgetItem
		want  models.BudgetSummary
	}{
		{
			name: "empty budget",
			want: models.BudgetSummary{},
		},
		{
			name: "income minus expenses",
			items: []models.BudgetItem{
				{ID: 1, CategoryID: 1, CategoryType: models.CategoryIncome, Amount: 5000},
				{ID: 2, CategoryID: 2, CategoryType: models.CategoryMonthly, Amount: 1200},
				{ID: 3, CategoryID: 3, CategoryType: models.CategorySavings, Amount: 300},
			},
			want: models.BudgetSummary{
				TotalIncome:   5000,
				TotalExpenses: 1500,
				Balance:       3500,
				SavingsAmount: 300,
				MonthlyAmount: 1200,
			},
		},
		{
			name: "missing type resolved through categories",
			items: []models.BudgetItem{
				{ID: 1, CategoryID: 1, Amount: 4000},
				{ID: 2, CategoryID: 4, Amount: 600},
			},
			want: models.BudgetSummary{
				TotalIncome:   4000,
				TotalExpenses: 600,
				Balance:       3400,
				CashAmount:    600,
			},
		},
		{
			name: "unresolvable item skipped",
			items: []models.BudgetItem{
				{ID: 1, CategoryID: 1, CategoryType: models.CategoryIncome, Amount: 1000},
				{ID: 2, CategoryID: 99, Amount: 250},
			},
			want: models.BudgetSummary{
				TotalIncome: 1000,
				Balance:     1000,
			},
		},
		{
			name: "overspent budget goes negative",
			items: []models.BudgetItem{
				{ID: 1, CategoryID: 1, CategoryType: models.CategoryIncome, Amount: 1000},
				{ID: 2, CategoryID: 2, CategoryType: models.CategoryMonthly, Amount: 1500},
			},
			want: models.BudgetSummary{
				TotalIncome:   1000,
				TotalExpenses: 1500,
				Balance:       -500,
				MonthlyAmount: 1500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summary(tt.items, categories)
			assertAmount(t, "TotalIncome", got.TotalIncome, tt.want.TotalIncome)
			assertAmount(t, "TotalExpenses", got.TotalExpenses, tt.want.TotalExpenses)
			assertAmount(t, "Balance", got.Balance, tt.want.Balance)
			assertAmount(t, "SavingsAmount", got.SavingsAmount, tt.want.SavingsAmount)
			assertAmount(t, "CashAmount", got.CashAmount, tt.want.CashAmount)
			assertAmount(t, "MonthlyAmount", got.MonthlyAmount, tt.want.MonthlyAmount)
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Salary", Type: models.CategoryIncome, Active: true},
		{ID: 2, Name: "Rent", Type: models.CategoryMonthly, Active: false},
	}

	if got := CategoryLabel(categories, 1); got != "Salary" {
		t.Errorf("expected Salary, got %q", got)
	}
	// Archived categories still resolve while loaded; only missing IDs
	// fall back.
	if got := CategoryLabel(categories, 2); got != "Rent" {
		t.Errorf("expected Rent, got %q", got)
	}
	if got := CategoryLabel(categories, 42); got != UnknownCategory {
		t.Errorf("expected %q, got %q", UnknownCategory, got)
	}
}

func assertAmount(t *testing.T, field string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s: expected %.2f, got %.2f", field, want, got)
	}
}
