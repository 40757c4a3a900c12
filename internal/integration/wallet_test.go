package integration

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/config"
	"aek/wallet/internal/container"
	"aek/wallet/internal/kvstore"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func draft(t models.TransactionType, day int, amount, name, category string) models.Draft {
	return models.Draft{
		Type:          t,
		Date:          models.NewDate(2024, time.March, day),
		Amount:        decimal.RequireFromString(amount),
		Name:          name,
		Category:      category,
		PaymentMethod: "ເງິນສົດ",
	}
}

func configFor(t *testing.T, backend kvstore.Backend) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = string(backend)
	cfg.Storage.Directory = filepath.Join(t.TempDir(), "data")
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "wallet.db")
	return cfg
}

func open(t *testing.T, cfg *config.Config) *container.Container {
	t.Helper()
	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return c
}

// TestLedgerSurvivesRestart drives a full add/edit/cancel session, reopens
// the storage and checks that every derived view matches on each backend.
func TestLedgerSurvivesRestart(t *testing.T) {
	for _, backend := range []kvstore.Backend{kvstore.BackendFile, kvstore.BackendSQLite} {
		t.Run(string(backend), func(t *testing.T) {
			cfg := configFor(t, backend)

			c := open(t, cfg)
			s := c.GetStore()
			txs, err := s.Add(draft(models.TypeIncome, 1, "1000", "Sales", "ຂາຍສິນຄ້າ"))
			require.NoError(t, err)
			salesID := txs[0].ID
			_, err = s.Add(draft(models.TypeExpense, 15, "300", "Rent", "ຄ່າເຊົ່າ"))
			require.NoError(t, err)
			txs, err = s.Add(draft(models.TypeExpense, 15, "50", "Lunch", "ອາຫານ"))
			require.NoError(t, err)
			lunchID := txs[2].ID

			edited := txs[0].Draft()
			edited.Amount = decimal.NewFromInt(1200)
			_, found, err := s.Edit(salesID, edited)
			require.NoError(t, err)
			require.True(t, found)
			_, found = s.Cancel(lunchID)
			require.True(t, found)
			require.NoError(t, c.Close())

			reopened := open(t, cfg)
			defer func() { assert.NoError(t, reopened.Close()) }()
			snapshot := reopened.GetStore().Snapshot()
			require.Len(t, snapshot, 3)
			assert.Equal(t, salesID, snapshot[0].ID)
			assert.Equal(t, models.StatusCancelled, snapshot[2].Status)

			dash := aggregate.BuildDashboard(snapshot, fixedNow, reopened.AggregateOptions())
			assert.True(t, decimal.NewFromInt(1200).Equal(dash.Totals.Income))
			assert.True(t, decimal.NewFromInt(300).Equal(dash.Totals.Expense))
			assert.True(t, decimal.NewFromInt(900).Equal(dash.Totals.Balance))
			assert.True(t, decimal.NewFromInt(300).Equal(dash.Today.Expense))
			assert.True(t, decimal.NewFromInt(900).Equal(dash.ThisMonth.Profit))
			assert.Len(t, dash.Monthly, aggregate.DefaultMonthCount)
			assert.Equal(t, "2024-03", dash.Monthly[len(dash.Monthly)-1].Key)
			assert.Len(t, dash.Recent, 2)
			assert.Equal(t, 2, dash.ActiveCount)

			rep := aggregate.BuildReport(snapshot, fixedNow)
			require.Len(t, rep.ExpenseByCategory, 1)
			assert.Equal(t, "ຄ່າເຊົ່າ", rep.ExpenseByCategory[0].Category)
			assert.True(t, decimal.NewFromInt(100).Equal(rep.ExpenseByCategory[0].Percentage))
		})
	}
}

// TestExportImportAcrossBackends exports a sqlite ledger to CSV and imports
// it into a file ledger.
func TestExportImportAcrossBackends(t *testing.T) {
	src := open(t, configFor(t, kvstore.BackendSQLite))
	defer func() { assert.NoError(t, src.Close()) }()
	_, err := src.GetStore().Add(draft(models.TypeIncome, 2, "1234.567", "Consulting", "ບໍລິການ"))
	require.NoError(t, err)
	txs, err := src.GetStore().Add(draft(models.TypeExpense, 3, "80", "Fuel", "ຄ່າຂົນສົ່ງ"))
	require.NoError(t, err)
	src.GetStore().Cancel(txs[1].ID)

	csvPath := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, src.GetCSVCodec().WriteFile(csvPath, src.GetStore().Snapshot()))

	dst := open(t, configFor(t, kvstore.BackendFile))
	defer func() { assert.NoError(t, dst.Close()) }()
	rows, err := dst.GetCSVCodec().ReadFile(csvPath)
	require.NoError(t, err)
	for _, row := range rows {
		txs, err := dst.GetStore().Add(row.Draft)
		require.NoError(t, err)
		if row.Cancelled {
			dst.GetStore().Cancel(txs[len(txs)-1].ID)
		}
	}

	want := aggregate.ComputeTotals(src.GetStore().Snapshot())
	got := aggregate.ComputeTotals(dst.GetStore().Snapshot())
	assert.True(t, want.Income.Equal(got.Income))
	assert.True(t, want.Expense.Equal(got.Expense))
	assert.True(t, decimal.RequireFromString("1234.567").Equal(got.Balance))

	imported := dst.GetStore().Snapshot()
	require.Len(t, imported, 2)
	assert.NotEqual(t, txs[0].ID, imported[0].ID)
	assert.Equal(t, models.StatusCancelled, imported[1].Status)
}

// TestDashboardDocumentIsStable renders the dashboard through the report
// generator and checks the envelope survives a JSON round trip.
func TestDashboardDocumentIsStable(t *testing.T) {
	c := open(t, configFor(t, kvstore.BackendFile))
	defer func() { assert.NoError(t, c.Close()) }()
	_, err := c.GetStore().Add(draft(models.TypeIncome, 15, "42", "Tip", "ລາຍຮັບອື່ນໆ"))
	require.NoError(t, err)

	dash := aggregate.BuildDashboard(c.GetStore().Snapshot(), c.Now(), c.AggregateOptions())
	var buf bytes.Buffer
	require.NoError(t, c.GetReportGenerator().Dashboard(&buf, "json", dash))

	var doc struct {
		Meta map[string]any `json:"meta"`
		Data struct {
			Totals struct {
				Balance string `json:"balance"`
			} `json:"totals"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "42", doc.Data.Totals.Balance)
	assert.NotEmpty(t, doc.Meta)
}
