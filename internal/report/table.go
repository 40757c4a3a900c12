package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/currencyutils"
	"aek/wallet/internal/dateutils"
	"aek/wallet/internal/models"

	"github.com/shopspring/decimal"
)

// tableWriter aligns tab-separated cells into columns. Write errors are
// remembered and reported once by Flush.
type tableWriter struct {
	tw  *tabwriter.Writer
	err error
}

func newTableWriter(w io.Writer) *tableWriter {
	return &tableWriter{tw: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
}

func (t *tableWriter) row(cells ...string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *tableWriter) blank() {
	t.row()
}

func (t *tableWriter) Flush() error {
	if t.err != nil {
		return t.err
	}
	return t.tw.Flush()
}

func (g *ReportGenerator) header(t *tableWriter, subtitle string) {
	title := g.meta.DashboardTitle
	if g.meta.CompanyName != "" {
		title = fmt.Sprintf("%s (%s)", title, g.meta.CompanyName)
	}
	t.row(strings.TrimSpace(title))
	if subtitle != "" {
		t.row(subtitle)
	}
	t.blank()
}

func (g *ReportGenerator) dashboardTable(t *tableWriter, d aggregate.Dashboard) {
	g.header(t, "Dashboard "+dateutils.FormatDisplay(d.GeneratedAt))

	t.row("SUMMARY", "AMOUNT")
	t.row("Income", g.formatter.Amount(d.Totals.Income))
	t.row("Expense", g.formatter.Amount(d.Totals.Expense))
	t.row("Balance", g.formatter.Amount(d.Totals.Balance))
	t.row("Active entries", fmt.Sprint(d.ActiveCount))
	t.blank()

	t.row("PERIOD", "INCOME", "EXPENSE", "PROFIT")
	g.periodRow(t, "Today", d.Today)
	g.periodRow(t, "This month", d.ThisMonth)
	t.blank()

	t.row("MONTH", "LABEL", "INCOME", "EXPENSE")
	for _, p := range d.Monthly {
		t.row(p.Key, p.Label, g.formatter.Number(p.Income), g.formatter.Number(p.Expense))
	}
	t.blank()

	t.row("RECENT", "TYPE", "NAME", "CATEGORY", "AMOUNT")
	if len(d.Recent) == 0 {
		t.row("(no transactions)")
	}
	for _, tx := range d.Recent {
		t.row(dateutils.FormatDisplay(tx.Date.Time), string(tx.Type), tx.Name, tx.Category,
			g.formatter.Signed(tx.Amount, tx.IsIncome()))
	}
}

func (g *ReportGenerator) periodRow(t *tableWriter, label string, p aggregate.PeriodTotals) {
	t.row(label, g.formatter.Number(p.Income), g.formatter.Number(p.Expense), g.formatter.Number(p.Profit))
}

func (g *ReportGenerator) reportTable(t *tableWriter, r aggregate.Report) {
	g.header(t, "Report "+dateutils.FormatDisplay(r.GeneratedAt))

	t.row("SUMMARY", "AMOUNT", "ENTRIES")
	t.row("Income", g.formatter.Amount(r.Totals.Income), fmt.Sprint(r.IncomeCount))
	t.row("Expense", g.formatter.Amount(r.Totals.Expense), fmt.Sprint(r.ExpenseCount))
	t.row("Balance", g.formatter.Amount(r.Totals.Balance), "")
	t.blank()

	g.breakdownTable(t, "INCOME BY CATEGORY", r.IncomeByCategory)
	t.blank()
	g.breakdownTable(t, "EXPENSE BY CATEGORY", r.ExpenseByCategory)
}

func (g *ReportGenerator) breakdownTable(t *tableWriter, title string, shares []aggregate.CategoryShare) {
	t.row(title, "AMOUNT", "SHARE")
	if len(shares) == 0 {
		t.row("(none)")
		return
	}
	for _, s := range shares {
		t.row(s.Category, g.formatter.Number(s.Amount), currencyutils.Percent(s.Percentage))
	}
}

func (g *ReportGenerator) listingTable(t *tableWriter, l Listing) {
	g.header(t, typeLabel(l.Type)+" transactions")

	t.row("DATE", "NAME", "CATEGORY", "PAYMENT", "REFERENCE", "AMOUNT", "ID")
	total := decimal.Zero
	for _, tx := range l.Transactions {
		t.row(dateutils.FormatDisplay(tx.Date.Time), tx.Name, tx.Category, tx.PaymentMethod,
			tx.Reference, g.formatter.Number(tx.Amount), tx.ID)
		total = total.Add(tx.Amount)
	}
	if len(l.Transactions) == 0 {
		t.row("(no transactions)")
		return
	}
	t.row("TOTAL", "", "", "", "", g.formatter.Number(total), "")
}

func (g *ReportGenerator) transactionTable(t *tableWriter, tx models.Transaction) {
	t.row("ID", tx.ID)
	t.row("Type", string(tx.Type))
	t.row("Status", string(tx.Status))
	t.row("Date", dateutils.FormatDisplay(tx.Date.Time))
	t.row("Amount", g.formatter.Amount(tx.Amount))
	t.row("Name", tx.Name)
	t.row("Category", tx.Category)
	t.row("Payment", tx.PaymentMethod)
	if tx.Reference != "" {
		t.row("Reference", tx.Reference)
	}
	if tx.Note != "" {
		t.row("Note", tx.Note)
	}
	t.row("Created", tx.CreatedAt.Local().Format("02/01/2006 15:04"))
	t.row("Created by", tx.CreatedBy)
}

func (g *ReportGenerator) suggestionsTable(t *tableWriter, s Suggestions) {
	list := func(title string, items []string) {
		t.row(title)
		for i, item := range items {
			t.row(fmt.Sprintf("  %d.", i+1), item)
		}
	}
	list("Income categories", s.Income)
	t.blank()
	list("Expense categories", s.Expense)
	t.blank()
	list("Payment methods", s.PaymentMethods)
}

func typeLabel(t models.TransactionType) string {
	switch t {
	case models.TypeIncome:
		return "Income"
	case models.TypeExpense:
		return "Expense"
	default:
		return string(t)
	}
}
