package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/exptrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []model.Expense {
	return []model.Expense{
		{ID: 1, Amount: decimal.RequireFromString("12.5"), Category: "Transport", Date: "2024-01-10 08:00:00"},
		{ID: 2, Amount: decimal.RequireFromString("3"), Category: "Food, drinks", Date: "2024-01-11 12:30:00"},
	}
}

func TestWriteCSV_EmptyIsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "ID,Amount,Category,Date\n", buf.String())
}

func TestWriteCSV_Rows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records()))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"1", "12.5", "Transport", "2024-01-10 08:00:00"}, rows[1])
	assert.Equal(t, []string{"2", "3", "Food, drinks", "2024-01-11 12:30:00"}, rows[2])
}

func TestToFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export\n\n\n"), 0o600))

	require.NoError(t, ToFile(path, nil, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Amount,Category,Date\n", string(data))
}

func TestToFile_UnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "expenses.csv")
	err := ToFile(path, records(), FormatCSV)
	require.ErrorIs(t, err, ErrIO)
}

func TestToFile_PDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ToFile(path, records(), ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "missing PDF magic")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatPDF, FormatFromPath("out/Report.PDF"))
	assert.Equal(t, FormatCSV, FormatFromPath("expenses.csv"))
	assert.Equal(t, FormatCSV, FormatFromPath("expenses"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("xlsx")
	require.ErrorIs(t, err, model.ErrInput)
}
