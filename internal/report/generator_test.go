package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var now = time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)

func testGenerator() *ReportGenerator {
	return NewReportGenerator(Metadata{
		CompanyName:    "AEK",
		DashboardTitle: "Wallet",
		Currency:       "LAK",
		Locale:         "en-US",
	}, logging.NewMockLogger())
}

func sample() []models.Transaction {
	return []models.Transaction{
		{
			ID: "a", Type: models.TypeIncome, Date: models.NewDate(2024, 3, 15),
			Amount: decimal.NewFromInt(1234567), Name: "Sale", Category: "ຂາຍສິນຄ້າ",
			PaymentMethod: "BCEL QR", Status: models.StatusActive,
			CreatedAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), CreatedBy: "admin",
		},
		{
			ID: "b", Type: models.TypeExpense, Date: models.NewDate(2024, 3, 15),
			Amount: decimal.RequireFromString("40.5"), Name: "Lunch", Category: "ຄ່າໃຊ້ຈ່າຍອື່ນໆ",
			PaymentMethod: "ເງິນສົດ", Status: models.StatusActive,
			CreatedAt: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), CreatedBy: "admin",
		},
	}
}

func TestReportGenerator_UnsupportedFormat(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer

	err := g.Dashboard(&buf, "xml", aggregate.BuildDashboard(nil, now, aggregate.Options{}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.Zero(t, buf.Len())
}

func TestReportGenerator_DashboardJSON(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer

	require.NoError(t, g.Dashboard(&buf, "json", aggregate.BuildDashboard(sample(), now, aggregate.Options{})))

	var doc struct {
		Meta Metadata `json:"meta"`
		Data struct {
			Totals struct {
				Balance string `json:"balance"`
			} `json:"totals"`
			Monthly []aggregate.MonthPoint `json:"monthly"`
			Recent  []models.Transaction   `json:"recent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "AEK", doc.Meta.CompanyName)
	assert.Equal(t, "1234526.5", doc.Data.Totals.Balance)
	assert.Len(t, doc.Data.Monthly, 12)
	require.Len(t, doc.Data.Recent, 2)
	assert.Equal(t, "b", doc.Data.Recent[0].ID)
}

func TestReportGenerator_ReportYAML(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer

	require.NoError(t, g.Report(&buf, "yaml", aggregate.BuildReport(sample(), now)))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Contains(t, doc, "meta")
	require.Contains(t, doc, "data")
	data := doc["data"].(map[string]interface{})
	assert.Equal(t, 1, data["income_count"])
	income := data["income_by_category"].([]interface{})
	require.Len(t, income, 1)
	assert.Equal(t, "ຂາຍສິນຄ້າ", income[0].(map[string]interface{})["category"])
}

func TestReportGenerator_DashboardTable(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer

	require.NoError(t, g.Dashboard(&buf, "table", aggregate.BuildDashboard(sample(), now, aggregate.Options{Locale: "en"})))

	out := buf.String()
	assert.Contains(t, out, "Wallet (AEK)")
	assert.Contains(t, out, "Dashboard 15/03/2024")
	assert.Contains(t, out, "1,234,567.00 LAK")
	assert.Contains(t, out, "1,234,526.50 LAK")
	assert.Contains(t, out, "2024-03")
	assert.Contains(t, out, "Mar")
	assert.Contains(t, out, "+1,234,567.00")
	assert.Contains(t, out, "-40.50")
}

func TestReportGenerator_ReportTable(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer

	require.NoError(t, g.Report(&buf, "table", aggregate.BuildReport(sample(), now)))

	out := buf.String()
	assert.Contains(t, out, "INCOME BY CATEGORY")
	assert.Contains(t, out, "EXPENSE BY CATEGORY")
	assert.Contains(t, out, "100.0%")
}

func TestReportGenerator_ReportTableEmpty(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer

	require.NoError(t, g.Report(&buf, "table", aggregate.BuildReport(nil, now)))

	assert.Contains(t, buf.String(), "(none)")
}

func TestReportGenerator_ListingTable(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer
	l := Listing{Type: models.TypeExpense, Transactions: aggregate.Listing(sample(), models.TypeExpense)}

	require.NoError(t, g.Listing(&buf, "table", l))

	out := buf.String()
	assert.Contains(t, out, "Expense transactions")
	assert.Contains(t, out, "15/03/2024")
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "TOTAL")
	assert.NotContains(t, out, "Sale")
}

func TestReportGenerator_ListingJSONKeepsNumericAmounts(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer
	l := Listing{Type: models.TypeIncome, Transactions: aggregate.Listing(sample(), models.TypeIncome)}

	require.NoError(t, g.Listing(&buf, "json", l))

	assert.Contains(t, buf.String(), `"amount": 1234567`)
}

func TestReportGenerator_TransactionTable(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer
	tx := sample()[1]
	tx.Note = "team lunch"

	require.NoError(t, g.Transaction(&buf, "table", tx))

	out := buf.String()
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "40.50 LAK")
	assert.Contains(t, out, "team lunch")
	assert.NotContains(t, out, "Reference")
}

func TestReportGenerator_Suggestions(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer

	require.NoError(t, g.Suggestions(&buf, "table", Suggestions{
		Income:         models.IncomeCategories,
		Expense:        models.ExpenseCategories,
		PaymentMethods: models.PaymentMethods,
	}))

	out := buf.String()
	assert.Contains(t, out, "Payment methods")
	assert.Contains(t, out, "BCEL QR")
	assert.Contains(t, out, "ຄ່າເຊົ່າ")
}

func TestReportGenerator_FormatsWithLocale(t *testing.T) {
	g := NewReportGenerator(Metadata{Currency: "EUR", Locale: "de-DE"}, logging.NewMockLogger())
	var buf bytes.Buffer

	require.NoError(t, g.Transaction(&buf, "table", sample()[0]))

	assert.Contains(t, buf.String(), "1.234.567,00 EUR")
}
