// Package aggregate derives summary values from a snapshot of transactions.
// Every function is pure: it reads the slice it is given, never mutates it,
// and takes the current time explicitly.
package aggregate

import (
	"sort"
	"time"

	"aek/wallet/internal/dateutils"
	"aek/wallet/internal/models"

	"github.com/shopspring/decimal"
)

// Defaults used by the dashboard.
const (
	DefaultRecentLimit = 10
	DefaultMonthCount  = 12
)

var hundred = decimal.NewFromInt(100)

// Totals is the all-time position over active transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income" yaml:"income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// PeriodTotals is income, expense and their difference within a period.
type PeriodTotals struct {
	Income  decimal.Decimal `json:"income" yaml:"income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense"`
	Profit  decimal.Decimal `json:"profit" yaml:"profit"`
}

// MonthPoint is one bucket of the monthly series.
type MonthPoint struct {
	Key     string          `json:"key" yaml:"key"`
	Label   string          `json:"label" yaml:"label"`
	Income  decimal.Decimal `json:"income" yaml:"income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense"`
}

// CategoryShare is one category's sum and its share of the type total.
type CategoryShare struct {
	Category   string          `json:"category" yaml:"category"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
	Percentage decimal.Decimal `json:"percentage" yaml:"percentage"`
}

// Active returns the active transactions of txs in collection order.
func Active(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsActive() {
			out = append(out, tx)
		}
	}
	return out
}

// ComputeTotals sums active income and expense and derives the balance.
func ComputeTotals(txs []models.Transaction) Totals {
	income, expense := sumByType(txs, func(models.Transaction) bool { return true })
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// Today returns the totals of active transactions dated on now's calendar
// day, as observed in now's location.
func Today(txs []models.Transaction, now time.Time) PeriodTotals {
	today := models.DateOf(now)
	return periodTotals(txs, func(tx models.Transaction) bool {
		return tx.Date.Equal(today)
	})
}

// ThisMonth returns the totals of active transactions dated on or after the
// first day of now's month. There is no upper bound, so future-dated entries
// are included.
func ThisMonth(txs []models.Transaction, now time.Time) PeriodTotals {
	first := models.NewDate(now.Year(), now.Month(), 1)
	return periodTotals(txs, func(tx models.Transaction) bool {
		return !tx.Date.Before(first)
	})
}

func periodTotals(txs []models.Transaction, include func(models.Transaction) bool) PeriodTotals {
	income, expense := sumByType(txs, include)
	return PeriodTotals{
		Income:  income,
		Expense: expense,
		Profit:  income.Sub(expense),
	}
}

func sumByType(txs []models.Transaction, include func(models.Transaction) bool) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if !tx.IsActive() || !include(tx) {
			continue
		}
		switch tx.Type {
		case models.TypeIncome:
			income = income.Add(tx.Amount)
		case models.TypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}

// Recent returns up to limit active transactions, newest created_at first.
// Equal timestamps keep collection order.
func Recent(txs []models.Transaction, limit int) []models.Transaction {
	active := Active(txs)
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	if limit >= 0 && len(active) > limit {
		active = active[:limit]
	}
	return active
}

// MonthlySeries buckets active transactions into the months calendar months
// ending with now's month, oldest first. Months without entries are zero.
// Labels are short month names in the given locale.
func MonthlySeries(txs []models.Transaction, now time.Time, months int, locale string) []MonthPoint {
	starts := dateutils.TrailingMonths(now, months)
	points := make([]MonthPoint, len(starts))
	index := make(map[string]int, len(starts))
	for i, start := range starts {
		key := start.Format(dateutils.MonthKeyLayout)
		points[i] = MonthPoint{
			Key:     key,
			Label:   dateutils.ShortMonthLabel(start.Month(), locale),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[key] = i
	}

	for _, tx := range txs {
		if !tx.IsActive() {
			continue
		}
		i, ok := index[tx.Date.MonthKey()]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TypeIncome:
			points[i].Income = points[i].Income.Add(tx.Amount)
		case models.TypeExpense:
			points[i].Expense = points[i].Expense.Add(tx.Amount)
		}
	}
	return points
}

// CategoryBreakdown groups active transactions of typ by category, largest
// sum first. Ties keep the order in which categories first appear. When the
// type total is zero every percentage is zero.
func CategoryBreakdown(txs []models.Transaction, typ models.TransactionType) []CategoryShare {
	var shares []CategoryShare
	index := make(map[string]int)
	total := decimal.Zero

	for _, tx := range txs {
		if !tx.IsActive() || tx.Type != typ {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(shares)
			index[tx.Category] = i
			shares = append(shares, CategoryShare{Category: tx.Category, Amount: decimal.Zero})
		}
		shares[i].Amount = shares[i].Amount.Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	for i := range shares {
		if total.IsZero() {
			shares[i].Percentage = decimal.Zero
			continue
		}
		shares[i].Percentage = shares[i].Amount.Div(total).Mul(hundred)
	}
	if shares == nil {
		shares = []CategoryShare{}
	}
	return shares
}

// Listing returns the active transactions of typ, latest date first. Entries
// on the same date keep collection order.
func Listing(txs []models.Transaction, typ models.TransactionType) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, tx := range txs {
		if tx.IsActive() && tx.Type == typ {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
