package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary aggregates category totals into income, expense and net
type Summary struct {
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	Categories []CategoryTotal
}

// Summarize folds category totals into a Summary. Categories are ordered by
// type then by descending total.
func Summarize(totals []CategoryTotal) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range totals {
		switch t.Type {
		case TransactionTypeIncome:
			s.Income = s.Income.Add(t.Total)
		case TransactionTypeExpense:
			s.Expense = s.Expense.Add(t.Total)
		}
	}
	s.Net = s.Income.Sub(s.Expense)

	s.Categories = append([]CategoryTotal(nil), totals...)
	sort.SliceStable(s.Categories, func(i, j int) bool {
		a, b := s.Categories[i], s.Categories[j]
		if a.Type != b.Type {
			return a.Type == TransactionTypeIncome
		}
		return a.Total.GreaterThan(b.Total)
	})
	return s
}
