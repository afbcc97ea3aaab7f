package table_test

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap/zaptest"

	"aippt/slides"
	"aippt/table"
)

// checkGrid verifies that grid is rectangular and spans of real cells do not
// overlap. Real cells are the ones with text or span bigger than one.
func checkGrid(t *testing.T, el *slides.TableElement, disjoint bool) {
	t.Helper()
	cols := el.Columns()
	for r, row := range el.Data {
		if len(row) != cols {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), cols)
		}
	}
	if len(el.ColWidths) != cols {
		t.Fatalf("%d column widths for %d columns", len(el.ColWidths), cols)
	}
	var sum float64
	for _, w := range el.ColWidths {
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("column widths sum to %v", sum)
	}
	if !disjoint {
		return
	}

	owner := make([][]string, el.Rows())
	for r := range owner {
		owner[r] = make([]string, cols)
	}
	for r, row := range el.Data {
		for c, cell := range row {
			if cell.Text == "" && cell.Colspan == 1 && cell.Rowspan == 1 {
				continue
			}
			for rr := r; rr < min(r+cell.Rowspan, el.Rows()); rr++ {
				for cc := c; cc < min(c+cell.Colspan, cols); cc++ {
					if owner[rr][cc] != "" {
						t.Fatalf("cell (%d,%d) covered by %s and %s", rr, cc, owner[rr][cc], cell.ID)
					}
					owner[rr][cc] = cell.ID
				}
			}
		}
	}
}

func TestBuildSpans(t *testing.T) {
	b := table.NewBuilder(nil, zaptest.NewLogger(t))
	markup := `<table style="--themeColor: #4472c4; width: 100%">
<thead><tr><th style="background-color: #4472c4; color: #fff; font-weight: bold">Name</th><th colspan="2">Quarter</th></tr></thead>
<tbody>
<tr><td rowspan="2">A</td><td>1</td><td>2</td></tr>
<tr><td>3</td><td>4</td></tr>
</tbody></table>`

	el := b.Build(markup)
	if el == nil {
		t.Fatal("Build() returned nil")
	}
	checkGrid(t, el, true)

	if el.Rows() != 3 || el.Columns() != 3 {
		t.Fatalf("grid %dx%d, want 3x3\n%s", el.Rows(), el.Columns(), table.Describe(el))
	}
	want := [][]string{
		{"Name", "Quarter", ""},
		{"A", "1", "2"},
		{"", "3", "4"},
	}
	for r := range want {
		for c := range want[r] {
			if got := el.Data[r][c].Text; got != want[r][c] {
				t.Errorf("cell (%d,%d) = %q, want %q", r, c, got, want[r][c])
			}
		}
	}
	if el.Data[0][1].Colspan != 2 || el.Data[1][0].Rowspan != 2 {
		t.Errorf("spans lost:\n%s", table.Describe(el))
	}
	if el.Width != 500 || el.Height != 108 || el.Left != table.DefaultLeft || el.Top != table.DefaultTop {
		t.Errorf("geometry %+v", el.Base)
	}
	if el.CellMinHeight != table.DefaultRowHeight {
		t.Errorf("cellMinHeight = %v", el.CellMinHeight)
	}
	if el.Theme.Color != "#4472c4" || !el.Theme.ColHeader || !el.Theme.RowHeader || el.Theme.RowFooter || el.Theme.ColFooter {
		t.Errorf("theme %+v", el.Theme)
	}
	if el.Outline.Width != 1 || el.Outline.Style != "solid" || el.Outline.Color != "#cccccc" {
		t.Errorf("outline %+v", el.Outline)
	}
	// placeholders keep only column alignment
	ph := el.Data[2][0]
	if ph.Text != "" || ph.Style == nil || ph.Style.Align != "left" || ph.Style.Bold {
		t.Errorf("placeholder %+v %+v", ph, ph.Style)
	}
}

func TestBuildGridCompleteness(t *testing.T) {
	b := table.NewBuilder(nil, zaptest.NewLogger(t))
	tests := []struct {
		name       string
		markup     string
		rows, cols int
		disjoint   bool
	}{
		{"ragged rows", `<table><tr><td>a</td></tr><tr><td>b</td><td>c</td><td>d</td></tr></table>`, 2, 3, true},
		{"rowspan past last row", `<table><tr><td rowspan="3">a</td><td>b</td></tr></table>`, 3, 2, true},
		{"wide colspan", `<table><tr><td colspan="4">title</td></tr><tr><td>x</td></tr></table>`, 2, 4, true},
		{"mixed spans", `<table><tr><td rowspan="2" colspan="2">big</td><td>r</td></tr><tr><td>s</td></tr><tr><td>t</td><td>u</td><td>v</td></tr></table>`, 3, 3, true},
		{"bad span values", `<table><tr><td colspan="0">a</td><td rowspan="x">b</td><td colspan="2px">c</td></tr></table>`, 1, 4, true},
		{"overlap last wins", `<table><tr><td>A</td><td rowspan="2">B</td></tr><tr><td colspan="3">C</td></tr></table>`, 2, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := b.Build(tt.markup)
			if el == nil {
				t.Fatal("Build() returned nil")
			}
			checkGrid(t, el, tt.disjoint)
			if el.Rows() != tt.rows || el.Columns() != tt.cols {
				t.Errorf("grid %dx%d, want %dx%d\n%s", el.Rows(), el.Columns(), tt.rows, tt.cols, table.Describe(el))
			}
		})
	}
}

func TestBuildOverlapLastWins(t *testing.T) {
	b := table.NewBuilder(nil, zaptest.NewLogger(t))
	el := b.Build(`<table><tr><td>A</td><td rowspan="2">B</td></tr><tr><td colspan="3">C</td></tr></table>`)
	if el == nil {
		t.Fatal("Build() returned nil")
	}
	if el.Data[1][0].Text != "C" || el.Data[1][1].Text != "" {
		t.Errorf("unexpected grid\n%s", table.Describe(el))
	}
}

func TestBuildCellStyles(t *testing.T) {
	b := table.NewBuilder(nil, zaptest.NewLogger(t))
	markup := `<table><tr>
<td style="border-width: 2px; border-style: dashed; border-color: #000000">plain</td>
<td style="font-size: 12pt; font-family: '微软雅黑'; font-weight: 700; font-style: italic; text-decoration: underline line-through; text-align: right">styled</td>
<td style="background-color: transparent; color: #333333; font-size: 14px; font-family: Arial">body</td>
<td data-value="42" style="background-color: rgba(0, 0, 0, 0); font-weight: 400">ignored</td>
<td><div class="cell-text extra"> </div></td>
<td style="color: rgb(68, 114, 196)">rgb</td>
</tr></table>`

	el := b.Build(markup)
	if el == nil {
		t.Fatal("Build() returned nil")
	}
	row := el.Data[0]

	if o := el.Outline; o.Width != 2 || o.Style != "dashed" || o.Color != "#000000" {
		t.Errorf("outline %+v", o)
	}
	if st := row[0].Style; st.Align != "left" || st.Bold || st.FontSize != "" {
		t.Errorf("plain cell style %+v", st)
	}

	st := row[1].Style
	want := slides.CellStyle{
		Bold: true, Em: true, Underline: true, Strikethrough: true,
		FontSize: "16px", FontName: "Microsoft YaHei", Align: "right",
	}
	if *st != want {
		t.Errorf("styled cell %+v, want %+v", *st, want)
	}

	st = row[2].Style
	if st.Backcolor != "" || st.Color != "#333333" || st.FontSize != "14px" || st.FontName != "Arial" || st.Align != "center" {
		t.Errorf("body cell style %+v", st)
	}

	if row[3].Text != "42" || row[3].Style.Backcolor != "" || row[3].Style.Bold {
		t.Errorf("data-value cell %+v %+v", row[3], row[3].Style)
	}
	if row[4].Text != "" {
		t.Errorf("empty cell text %q", row[4].Text)
	}
	if c := row[5].Style.Color; c != "rgb(68, 114, 196)" {
		t.Errorf("function color %q, want source text", c)
	}

	if el.Theme.Color != table.DefaultThemeColor {
		t.Errorf("theme color %q", el.Theme.Color)
	}
	// single row, first row emphasis only
	if !el.Theme.ColHeader || el.Theme.RowHeader {
		t.Errorf("theme %+v", el.Theme)
	}
	if el.Width != 600 {
		t.Errorf("width %v", el.Width)
	}
}

func TestBuildHeaders(t *testing.T) {
	b := table.NewBuilder(nil, zaptest.NewLogger(t))
	tests := []struct {
		name     string
		markup   string
		col, row bool
	}{
		{"none", `<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>`, false, false},
		{"body color is not a header", `<table><tr><td style="color: rgb(51, 51, 51)">a</td></tr><tr><td>c</td></tr></table>`, false, false},
		{"bold first column", `<table><tr><td>a</td><td>b</td></tr><tr><td style="font-weight: bold">c</td><td>d</td></tr></table>`, false, true},
		{"single first column cell", `<table><tr><td></td><td>b</td></tr><tr><td style="font-weight: bold">c</td><td>d</td></tr></table>`, false, false},
		{"empty highlighted cell", `<table><tr><td style="background-color: red"></td><td>b</td></tr></table>`, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := b.Build(tt.markup)
			if el == nil {
				t.Fatal("Build() returned nil")
			}
			if el.Theme.ColHeader != tt.col || el.Theme.RowHeader != tt.row {
				t.Errorf("colHeader=%v rowHeader=%v, want %v %v", el.Theme.ColHeader, el.Theme.RowHeader, tt.col, tt.row)
			}
		})
	}
}

func TestBuildWidthClamp(t *testing.T) {
	b := table.NewBuilder(nil, zaptest.NewLogger(t))
	if el := b.Build(`<table><tr><td colspan="7">x</td></tr></table>`); el == nil || el.Width != 700 {
		t.Errorf("7 columns: %+v", el)
	}
	if el := b.Build(`<table><tr><td colspan="12">x</td></tr></table>`); el == nil || el.Width != 900 {
		t.Errorf("12 columns: %+v", el)
	}
}

func TestBuildNoTable(t *testing.T) {
	b := table.NewBuilder(nil, zaptest.NewLogger(t))
	for _, markup := range []string{"", "<p>no table here</p>", "<table></table>", "<table><tr></tr></table>", "<table><tr></tr><tr></tr></table>"} {
		if el := b.Build(markup); el != nil {
			t.Errorf("Build(%q) = %+v, want nil", markup, el)
		}
	}
}

type scannerFunc func(string) (*table.RawTable, error)

func (f scannerFunc) Scan(markup string) (*table.RawTable, error) {
	return f(markup)
}

func TestBuildInjectedScanner(t *testing.T) {
	log := zaptest.NewLogger(t)

	fixed := scannerFunc(func(string) (*table.RawTable, error) {
		return &table.RawTable{Rows: [][]table.RawCell{
			{{Text: "h1"}, {Text: "h2"}},
			{{Text: "v1", Attrs: map[string]string{"colspan": "2"}}},
		}}, nil
	})
	el := table.NewBuilder(fixed, log).Build("anything")
	if el == nil || el.Rows() != 2 || el.Columns() != 2 || el.Data[1][0].Colspan != 2 {
		t.Fatalf("unexpected table from injected scanner: %+v", el)
	}

	failing := scannerFunc(func(string) (*table.RawTable, error) {
		return nil, errors.New("boom")
	})
	if el := table.NewBuilder(failing, log).Build("x"); el != nil {
		t.Error("scanner error must yield no table")
	}

	panicking := scannerFunc(func(string) (*table.RawTable, error) {
		panic("unexpected")
	})
	if el := table.NewBuilder(panicking, log).Build("x"); el != nil {
		t.Error("panic must yield no table")
	}
}

func TestHTMLScanner(t *testing.T) {
	raw, err := table.HTMLScanner{}.Scan(`<div><table STYLE="--themeColor:red"><tr><TD ColSpan="2" data-value="v">t <b>x</b></TD></tr></table></div>`)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if raw.Style != "--themeColor:red" || len(raw.Rows) != 1 || len(raw.Rows[0]) != 1 {
		t.Fatalf("unexpected raw table %+v", raw)
	}
	c := raw.Rows[0][0]
	if c.Attr("colspan") != "2" || c.Attr("data-value") != "v" || c.Text != "t x" {
		t.Errorf("unexpected cell %+v", c)
	}

	if _, err := (table.HTMLScanner{}).Scan("<p>x</p>"); !errors.Is(err, table.ErrNoTable) {
		t.Errorf("error = %v, want ErrNoTable", err)
	}
}

func TestFontName(t *testing.T) {
	tests := map[string]string{
		`"黑体"`:              "SimHei",
		`宋体`:                "SimSun",
		`'楷体'`:              "KaiTi",
		`Arial`:             "Arial",
		`"Times New Roman"`: "Times New Roman",
		`Ａｒｉａｌ`:             "Arial",
	}
	for in, want := range tests {
		if got := table.FontName(in); got != want {
			t.Errorf("FontName(%q) = %q, want %q", in, got, want)
		}
	}
}
