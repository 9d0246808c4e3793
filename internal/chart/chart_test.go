package chart

import (
	"testing"

	"excelytics/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleDataset(rows []model.Row, columns ...string) *model.Dataset {
	return &model.Dataset{
		ID:       uuid.New(),
		UserID:   1,
		Filename: "sales.xlsx",
		Columns:  columns,
		Rows:     rows,
	}
}

func TestBuild(t *testing.T) {
	t.Run("projects valid rows", func(t *testing.T) {
		ds := sampleDataset([]model.Row{
			{"month": "Jan", "revenue": int64(100)},
			{"month": "Feb", "revenue": "200.5"},
		}, "month", "revenue")

		res, err := Build(ds, "month", "revenue", TypeBar, "")
		require.NoError(t, err)
		require.Equal(t, "revenue vs month", res.Title)
		require.Equal(t, TypeBar, res.ChartType)
		require.Equal(t, 2, res.DataPoints)
		require.Equal(t, Point{X: "Jan", Y: 100}, res.Data[0])
		require.Equal(t, Point{X: "Feb", Y: 200.5}, res.Data[1])
		require.False(t, res.GeneratedAt.IsZero())
	})

	t.Run("keeps custom title", func(t *testing.T) {
		ds := sampleDataset([]model.Row{{"a": "x", "b": int64(1)}}, "a", "b")
		res, err := Build(ds, "a", "b", TypeLine, "My Chart")
		require.NoError(t, err)
		require.Equal(t, "My Chart", res.Title)
	})

	t.Run("drops rows with non numeric y", func(t *testing.T) {
		ds := sampleDataset([]model.Row{
			{"a": "one", "b": "abc"},
			{"a": "two", "b": int64(5)},
			{"a": "three", "b": nil},
		}, "a", "b")

		res, err := Build(ds, "a", "b", TypeBar, "")
		require.NoError(t, err)
		require.Equal(t, 1, res.DataPoints)
		require.Equal(t, "two", res.Data[0].X)
	})

	t.Run("drops rows with falsy x including numeric zero", func(t *testing.T) {
		ds := sampleDataset([]model.Row{
			{"a": int64(0), "b": int64(1)},
			{"a": "", "b": int64(2)},
			{"a": nil, "b": int64(3)},
			{"a": float64(0), "b": int64(4)},
			{"a": "0", "b": int64(5)},
			{"a": int64(7), "b": int64(6)},
		}, "a", "b")

		res, err := Build(ds, "a", "b", TypeScatter, "")
		require.NoError(t, err)
		// 數字 0 被當作 falsy 丟棄，字串 "0" 則保留
		require.Equal(t, 2, res.DataPoints)
		require.Equal(t, "0", res.Data[0].X)
		require.Equal(t, int64(7), res.Data[1].X)
	})

	t.Run("single surviving point", func(t *testing.T) {
		ds := sampleDataset([]model.Row{
			{"x": "a", "y": "1"},
			{"x": "b", "y": "not a number at all"},
		}, "x", "y")

		res, err := Build(ds, "x", "y", TypeBar, "")
		require.NoError(t, err)
		require.Equal(t, 1, res.DataPoints)
		require.Equal(t, Point{X: "a", Y: 1}, res.Data[0])
	})

	t.Run("y zero is kept when x is truthy", func(t *testing.T) {
		ds := sampleDataset([]model.Row{{"x": "c", "y": "0"}}, "x", "y")
		res, err := Build(ds, "x", "y", TypeBar, "")
		require.NoError(t, err)
		require.Equal(t, 1, res.DataPoints)
		require.Equal(t, float64(0), res.Data[0].Y)
	})

	t.Run("invalid chart type", func(t *testing.T) {
		ds := sampleDataset([]model.Row{{"a": "x", "b": int64(1)}}, "a", "b")
		_, err := Build(ds, "a", "b", Type("donut"), "")
		require.ErrorIs(t, err, ErrInvalidChartType)
	})

	t.Run("no data", func(t *testing.T) {
		ds := sampleDataset(nil, "a", "b")
		_, err := Build(ds, "a", "b", TypeBar, "")
		require.ErrorIs(t, err, ErrNoData)
	})

	t.Run("invalid axis", func(t *testing.T) {
		ds := sampleDataset([]model.Row{{"a": "x", "b": int64(1)}}, "a", "b")
		_, err := Build(ds, "missing", "b", TypeBar, "")
		require.ErrorIs(t, err, ErrInvalidAxis)
		_, err = Build(ds, "a", "missing", TypeBar, "")
		require.ErrorIs(t, err, ErrInvalidAxis)
	})
}

func TestParseFloatPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"12abc", 12, true},
		{"  3.5x", 3.5, true},
		{"-2.5", -2.5, true},
		{"1e3kg", 1000, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parseFloatPrefix(c.in)
		require.Equal(t, c.ok, ok, c.in)
		if ok {
			require.Equal(t, c.want, got, c.in)
		}
	}
}

func TestClassifyColumns(t *testing.T) {
	makeRows := func(col string, values []any) []model.Row {
		rows := make([]model.Row, 0, len(values))
		for _, v := range values {
			rows = append(rows, model.Row{col: v})
		}
		return rows
	}

	t.Run("seven of ten is categorical", func(t *testing.T) {
		values := []any{"1", "2", "3", "4", "5", "6", "7", "a", "b", "c"}
		numeric, text := ClassifyColumns(makeRows("v", values), []string{"v"}, 10)
		require.Empty(t, numeric)
		require.Equal(t, []string{"v"}, text)
	})

	t.Run("eight of ten is numeric", func(t *testing.T) {
		values := []any{"1", "2", "3", "4", "5", "6", "7", "8", "b", "c"}
		numeric, text := ClassifyColumns(makeRows("v", values), []string{"v"}, 10)
		require.Equal(t, []string{"v"}, numeric)
		require.Empty(t, text)
	})

	t.Run("samples only the first rows", func(t *testing.T) {
		// 取樣之外的數字不影響分類
		values := []any{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "1", "2", "3"}
		numeric, text := ClassifyColumns(makeRows("v", values), []string{"v"}, 10)
		require.Empty(t, numeric)
		require.Equal(t, []string{"v"}, text)
	})

	t.Run("missing values excluded from denominator", func(t *testing.T) {
		rows := []model.Row{
			{"v": "1"},
			{"v": nil},
			{},
			{"v": "2"},
		}
		numeric, _ := ClassifyColumns(rows, []string{"v"}, 10)
		require.Equal(t, []string{"v"}, numeric)
	})
}

func TestSuggest(t *testing.T) {
	t.Run("two numeric columns yield scatter", func(t *testing.T) {
		ds := sampleDataset([]model.Row{
			{"height": "170", "weight": "65", "name": "a"},
			{"height": "180", "weight": "80", "name": "b"},
		}, "height", "weight", "name")

		s := Suggest(ds)
		require.Equal(t, []string{"height", "weight"}, s.NumericColumns)
		require.Equal(t, []string{"name"}, s.TextColumns)
		require.Equal(t, 2, s.TotalRows)
		require.Len(t, s.Suggestions, 3)
		require.Equal(t, TypeScatter, s.Suggestions[0].Type)
		require.Equal(t, "height", s.Suggestions[0].XAxis)
		require.Equal(t, "weight", s.Suggestions[0].YAxis)
		require.Equal(t, "weight vs height", s.Suggestions[0].Title)
		require.Equal(t, TypeBar, s.Suggestions[1].Type)
		require.Equal(t, TypePie, s.Suggestions[2].Type)
	})

	t.Run("text plus numeric yields bar and pie", func(t *testing.T) {
		ds := sampleDataset([]model.Row{
			{"city": "Taipei", "sales": "100"},
			{"city": "Tainan", "sales": "50"},
		}, "city", "sales")

		s := Suggest(ds)
		require.Len(t, s.Suggestions, 2)
		require.Equal(t, TypeBar, s.Suggestions[0].Type)
		require.Equal(t, "sales by city", s.Suggestions[0].Title)
		require.Equal(t, TypePie, s.Suggestions[1].Type)
		require.Equal(t, "Distribution of sales", s.Suggestions[1].Title)
	})

	t.Run("no pairing yields empty suggestions", func(t *testing.T) {
		ds := sampleDataset([]model.Row{
			{"name": "a"},
			{"name": "b"},
		}, "name")

		s := Suggest(ds)
		require.Empty(t, s.Suggestions)
		require.Equal(t, []string{"name"}, s.TextColumns)
	})
}

func TestExport(t *testing.T) {
	ds := sampleDataset([]model.Row{
		{"item": "apple, red", "price": "3"},
		{"item": "banana", "price": "2.5"},
		{"item": "", "price": "9"},
	}, "item", "price")

	t.Run("json", func(t *testing.T) {
		payload, contentType, err := Export(ds, "item", "price", FormatJSON)
		require.NoError(t, err)
		require.Equal(t, "application/json", contentType)
		require.JSONEq(t, `[{"item":"apple, red","price":3},{"item":"banana","price":2.5}]`, string(payload))
	})

	t.Run("csv leaves commas unescaped", func(t *testing.T) {
		payload, contentType, err := Export(ds, "item", "price", FormatCSV)
		require.NoError(t, err)
		require.Equal(t, "text/csv", contentType)
		// 內嵌逗號不跳脫，已知限制
		require.Equal(t, "item,price\napple, red,3\nbanana,2.5", string(payload))
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		payload, contentType, err := Export(ds, "item", "price", Format("xml"))
		require.NoError(t, err)
		require.Equal(t, "application/json", contentType)
		require.Contains(t, string(payload), "banana")
	})
}
