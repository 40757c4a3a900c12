package aggregate

import (
	"time"

	"aek/wallet/internal/models"
)

// Options tunes the composite views.
type Options struct {
	RecentLimit int
	MonthCount  int
	Locale      string
}

func (o Options) withDefaults() Options {
	if o.RecentLimit <= 0 {
		o.RecentLimit = DefaultRecentLimit
	}
	if o.MonthCount <= 0 {
		o.MonthCount = DefaultMonthCount
	}
	return o
}

// Dashboard bundles everything the dashboard view shows.
type Dashboard struct {
	GeneratedAt time.Time            `json:"generated_at" yaml:"generated_at"`
	Totals      Totals               `json:"totals" yaml:"totals"`
	Today       PeriodTotals         `json:"today" yaml:"today"`
	ThisMonth   PeriodTotals         `json:"this_month" yaml:"this_month"`
	Monthly     []MonthPoint         `json:"monthly" yaml:"monthly"`
	Recent      []models.Transaction `json:"recent" yaml:"recent"`
	ActiveCount int                  `json:"active_count" yaml:"active_count"`
}

// BuildDashboard computes the dashboard from a snapshot.
func BuildDashboard(txs []models.Transaction, now time.Time, opts Options) Dashboard {
	opts = opts.withDefaults()
	return Dashboard{
		GeneratedAt: now,
		Totals:      ComputeTotals(txs),
		Today:       Today(txs, now),
		ThisMonth:   ThisMonth(txs, now),
		Monthly:     MonthlySeries(txs, now, opts.MonthCount, opts.Locale),
		Recent:      Recent(txs, opts.RecentLimit),
		ActiveCount: len(Active(txs)),
	}
}

// Report bundles the totals and per-type category breakdowns.
type Report struct {
	GeneratedAt       time.Time       `json:"generated_at" yaml:"generated_at"`
	Totals            Totals          `json:"totals" yaml:"totals"`
	IncomeCount       int             `json:"income_count" yaml:"income_count"`
	ExpenseCount      int             `json:"expense_count" yaml:"expense_count"`
	IncomeByCategory  []CategoryShare `json:"income_by_category" yaml:"income_by_category"`
	ExpenseByCategory []CategoryShare `json:"expense_by_category" yaml:"expense_by_category"`
}

// BuildReport computes the category report from a snapshot.
func BuildReport(txs []models.Transaction, now time.Time) Report {
	r := Report{
		GeneratedAt:       now,
		Totals:            ComputeTotals(txs),
		IncomeByCategory:  CategoryBreakdown(txs, models.TypeIncome),
		ExpenseByCategory: CategoryBreakdown(txs, models.TypeExpense),
	}
	for _, tx := range Active(txs) {
		switch tx.Type {
		case models.TypeIncome:
			r.IncomeCount++
		case models.TypeExpense:
			r.ExpenseCount++
		}
	}
	return r
}
