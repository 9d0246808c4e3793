package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	t.Run("header and typed cells", func(t *testing.T) {
		data := buildWorkbook(t, [][]any{
			{"name", "age", "score"},
			{"alice", 30, 9.5},
			{"bob", 25, "n/a"},
		})

		columns, rows, err := Parse(data)
		require.NoError(t, err)
		require.Equal(t, []string{"name", "age", "score"}, columns)
		require.Len(t, rows, 2)
		require.Equal(t, "alice", rows[0]["name"])
		require.Equal(t, int64(30), rows[0]["age"])
		require.Equal(t, 9.5, rows[0]["score"])
		require.Equal(t, "n/a", rows[1]["score"])
	})

	t.Run("short rows padded with empty string", func(t *testing.T) {
		data := buildWorkbook(t, [][]any{
			{"a", "b", "c"},
			{"1"},
		})

		_, rows, err := Parse(data)
		require.NoError(t, err)
		require.Equal(t, int64(1), rows[0]["a"])
		require.Equal(t, "", rows[0]["b"])
		require.Equal(t, "", rows[0]["c"])
	})

	t.Run("empty header cells skipped", func(t *testing.T) {
		data := buildWorkbook(t, [][]any{
			{"a", "", "c"},
			{"1", "2", "3"},
		})

		columns, rows, err := Parse(data)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "c"}, columns)
		require.Equal(t, int64(1), rows[0]["a"])
		require.Equal(t, int64(3), rows[0]["c"])
		_, ok := rows[0][""]
		require.False(t, ok)
	})

	t.Run("header only sheet", func(t *testing.T) {
		data := buildWorkbook(t, [][]any{{"a", "b"}})
		_, _, err := Parse(data)
		require.ErrorIs(t, err, ErrEmptySheet)
	})

	t.Run("empty sheet", func(t *testing.T) {
		data := buildWorkbook(t, nil)
		_, _, err := Parse(data)
		require.ErrorIs(t, err, ErrEmptySheet)
	})

	t.Run("unreadable buffer", func(t *testing.T) {
		_, _, err := Parse([]byte("not a workbook"))
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrEmptySheet)
	})
}

func TestParseValue(t *testing.T) {
	require.Equal(t, int64(42), parseValue("42"))
	require.Equal(t, 3.14, parseValue("3.14"))
	require.Equal(t, "hello", parseValue("hello"))
	require.Equal(t, "", parseValue(""))
	require.Equal(t, int64(-7), parseValue("-7"))
}
