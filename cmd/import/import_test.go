package importcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

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

const sampleCSV = `Type,Date,Amount,Name,Category,PaymentMethod,Status
income,2024-03-01,1000,Sale,ຂາຍສິນຄ້າ,BCEL QR,active
expense,02/03/2024,250,Rent,ຄ່າເຊົ່າ,ເງິນສົດ,active
expense,2024-03-03,75,Duplicate,ຄ່າເຊົ່າ,ເງິນສົດ,cancelled
`

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainer(config.Default(),
		container.WithLogger(logging.NewMockLogger()),
		container.WithBlobStore(kvstore.NewMemoryStore()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_ImportsRowsAndCancelledStatus(t *testing.T) {
	c := newContainer(t)
	var buf bytes.Buffer

	require.NoError(t, Run(c, &buf, writeCSV(t, sampleCSV), false))

	snap := c.GetStore().Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "Sale", snap[0].Name)
	assert.Equal(t, models.NewDate(2024, 3, 2), snap[1].Date)
	assert.Equal(t, models.StatusCancelled, snap[2].Status)

	totals := aggregate.ComputeTotals(snap)
	assert.True(t, decimal.NewFromInt(750).Equal(totals.Balance))
	assert.Contains(t, buf.String(), "Imported 3 transactions (1 cancelled)")
}

func TestRun_DryRunAddsNothing(t *testing.T) {
	c := newContainer(t)
	var buf bytes.Buffer

	require.NoError(t, Run(c, &buf, writeCSV(t, sampleCSV), true))

	assert.Empty(t, c.GetStore().Snapshot())
	assert.Contains(t, buf.String(), "3 rows are valid")
}

func TestRun_BadRowAddsNothing(t *testing.T) {
	c := newContainer(t)
	bad := sampleCSV + "expense,not-a-date,1,x,c,p,active\n"

	err := Run(c, &bytes.Buffer{}, writeCSV(t, bad), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
	assert.Empty(t, c.GetStore().Snapshot())
}

func TestRun_MissingFile(t *testing.T) {
	c := newContainer(t)
	err := Run(c, &bytes.Buffer{}, filepath.Join(t.TempDir(), "none.csv"), false)
	assert.Error(t, err)
}
