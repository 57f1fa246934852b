package workbook_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bberka/xlsync/pkg/xlsync/workbook"
)

// writeTestFile creates an xlsx file with one sheet holding the given rows.
func writeTestFile(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenMissingFile(t *testing.T) {
	_, err := workbook.Open(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestHeaderAndReadRow(t *testing.T) {
	path := writeTestFile(t, [][]string{
		{"Name", "Age", "City"},
		{"Alice", "30", "Oslo"},
	})

	w, err := workbook.Open(path)
	require.NoError(t, err)
	defer w.Close()

	header, err := w.Header("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "City"}, header)

	row, err := w.ReadRow("Sheet1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "30", "Oslo"}, row)

	// Past the last row.
	row, err = w.ReadRow("Sheet1", 10)
	require.NoError(t, err)
	assert.Empty(t, row)

	_, err = w.ReadRow("Sheet1", 0)
	assert.Error(t, err)

	_, err = w.Header("NoSuchSheet")
	assert.Error(t, err)
}

func TestHasSheetAndNames(t *testing.T) {
	path := writeTestFile(t, [][]string{{"A"}})

	w, err := workbook.Open(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, []string{"Sheet1"}, w.SheetNames())
	assert.True(t, w.HasSheet("Sheet1"))
	assert.False(t, w.HasSheet("Sheet2"))
}

func TestInsertColumnShiftsData(t *testing.T) {
	path := writeTestFile(t, [][]string{
		{"A", "C"},
		{"a1", "c1"},
	})

	w, err := workbook.Open(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.InsertColumn("Sheet1", 2))
	require.NoError(t, w.SetCell("Sheet1", 1, 2, "B"))

	header, err := w.Header("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, header)

	row, err := w.ReadRow("Sheet1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "", "c1"}, row)
}

func TestDeleteColumnRemovesData(t *testing.T) {
	path := writeTestFile(t, [][]string{
		{"A", "B", "C"},
		{"a1", "b1", "c1"},
	})

	w, err := workbook.Open(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.DeleteColumn("Sheet1", 2))

	header, err := w.Header("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, header)

	row, err := w.ReadRow("Sheet1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "c1"}, row)
}

func TestSavePersists(t *testing.T) {
	path := writeTestFile(t, [][]string{{"A"}})

	w, err := workbook.Open(path)
	require.NoError(t, err)
	require.NoError(t, w.SetCell("Sheet1", 1, 2, "B"))
	require.NoError(t, w.Save())
	require.NoError(t, w.Close())

	reopened, err := workbook.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	header, err := reopened.Header("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, header)
	assert.Equal(t, path, reopened.Path())
}
