package table

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/width"

	"aippt/css"
	"aippt/slides"
)

const (
	DefaultLeft       = 100
	DefaultTop        = 150
	DefaultRowHeight  = 36
	DefaultThemeColor = "rgb(255, 255, 255)"

	minWidth       = 500
	maxWidth       = 900
	widthPerColumn = 100
	// spans above are clamped, model output sometimes has colspan="1000"
	maxSpan = 64
	// plain body text color, cells with it are not considered highlighted
	bodyTextColor = "rgb(51,51,51)"
	pt2px         = 1.33
)

var defaultOutline = slides.Outline{Width: 1, Style: "solid", Color: "#cccccc"}

var fontNames = map[string]string{
	"黑体":   "SimHei",
	"微软雅黑": "Microsoft YaHei",
	"宋体":   "SimSun",
	"楷体":   "KaiTi",
}

// Builder makes slide table elements from HTML markup.
type Builder struct {
	log     *zap.Logger
	scanner Scanner
	css     *css.Parser
}

// NewBuilder creates Builder, nil scanner selects HTMLScanner.
func NewBuilder(scanner Scanner, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	if scanner == nil {
		scanner = HTMLScanner{}
	}
	return &Builder{
		log:     log.Named("table"),
		scanner: scanner,
		css:     css.NewParser(log),
	}
}

// Build returns table element for the markup, or nil when markup does not
// describe a usable table. It never fails otherwise.
func (b *Builder) Build(markup string) (el *slides.TableElement) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("Unable to build table", zap.Any("panic", r))
			el = nil
		}
	}()

	raw, err := b.scanner.Scan(markup)
	if err != nil {
		b.log.Warn("Unable to parse table markup", zap.Error(err))
		return nil
	}
	if len(raw.Rows) == 0 {
		b.log.Warn("Table markup has no rows")
		return nil
	}
	if !slices.ContainsFunc(raw.Rows, func(row []RawCell) bool { return len(row) > 0 }) {
		b.log.Warn("Table markup has no cells")
		return nil
	}
	return b.build(raw)
}

func (b *Builder) build(raw *RawTable) *slides.TableElement {
	var grid [][]*slides.TableCell
	ensureRows := func(n int) {
		for len(grid) < n {
			grid = append(grid, nil)
		}
	}
	occupied := func(r, c int) bool {
		return c < len(grid[r]) && grid[r][c] != nil
	}
	place := func(r, c int, cell *slides.TableCell) {
		for len(grid[r]) <= c {
			grid[r] = append(grid[r], nil)
		}
		if grid[r][c] != nil {
			b.log.Debug("Overlapping table cells, last one wins", zap.Int("row", r), zap.Int("col", c))
		}
		grid[r][c] = cell
	}

	maxCols := 0
	for rowIndex, row := range raw.Rows {
		ensureRows(rowIndex + 1)
		colIndex := 0
		for _, rc := range row {
			for occupied(rowIndex, colIndex) {
				colIndex++
			}
			colspan, rowspan := span(rc.Attr("colspan")), span(rc.Attr("rowspan"))

			cell := &slides.TableCell{
				ID:      slides.NewID(),
				Colspan: colspan,
				Rowspan: rowspan,
				Text:    cellText(rc),
				Style:   b.cellStyle(rc.Attr("style"), colIndex),
			}

			ensureRows(rowIndex + rowspan)
			for r := rowIndex; r < rowIndex+rowspan; r++ {
				for c := colIndex; c < colIndex+colspan; c++ {
					if r == rowIndex && c == colIndex {
						place(r, c, cell)
					} else {
						place(r, c, placeholder(c))
					}
				}
			}
			maxCols = max(maxCols, colIndex+colspan)
		}
	}

	data := make([][]slides.TableCell, len(grid))
	for r := range grid {
		data[r] = make([]slides.TableCell, maxCols)
		for c := range maxCols {
			if occupied(r, c) {
				data[r][c] = *grid[r][c]
			} else {
				data[r][c] = *placeholder(c)
			}
		}
	}

	colWidths := make([]float64, maxCols)
	for i := range colWidths {
		colWidths[i] = 1 / float64(maxCols)
	}

	tableStyle := b.css.ParseInline(raw.Style)
	themeColor := DefaultThemeColor
	if v, ok := tableStyle.Get("--themeColor"); ok && cleanColor(v.Raw) != "" {
		themeColor = cleanColor(v.Raw)
	}

	el := &slides.TableElement{
		Base: slides.Base{
			ID:     slides.NewID(),
			Left:   DefaultLeft,
			Top:    DefaultTop,
			Width:  math.Max(minWidth, math.Min(maxWidth, float64(maxCols*widthPerColumn))),
			Height: float64(max(len(data), len(raw.Rows)) * DefaultRowHeight),
		},
		Data:          data,
		ColWidths:     colWidths,
		CellMinHeight: DefaultRowHeight,
		Outline:       b.outline(raw),
		Theme: &slides.TableTheme{
			Color:     themeColor,
			ColHeader: colHeader(data),
			RowHeader: rowHeader(data),
		},
	}

	b.log.Debug("Table built",
		zap.Int("rows", el.Rows()),
		zap.Int("cols", el.Columns()),
		zap.Bool("colHeader", el.Theme.ColHeader),
		zap.Bool("rowHeader", el.Theme.RowHeader),
		zap.Stringer("grid", describer{el}),
	)
	return el
}

func span(val string) int {
	n, err := strconv.Atoi(leadingDigits(val))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, maxSpan)
}

// leadingDigits mimics lenient integer parsing of browsers: "2px" is 2.
func leadingDigits(s string) string {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func cellText(rc RawCell) string {
	if v := rc.Attr("data-value"); v != "" {
		return v
	}
	if rc.Text != "" {
		return rc.Text
	}
	return rc.NestedText
}

func defaultAlign(col int) string {
	if col == 0 {
		return "left"
	}
	return "center"
}

func placeholder(col int) *slides.TableCell {
	return &slides.TableCell{
		ID:      slides.NewID(),
		Colspan: 1,
		Rowspan: 1,
		Style:   &slides.CellStyle{Align: defaultAlign(col)},
	}
}

func cleanColor(s string) string {
	for strings.Contains(s, ";;") {
		s = strings.ReplaceAll(s, ";;", ";")
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
}

func isTransparent(color string) bool {
	switch strings.ReplaceAll(strings.ToLower(color), " ", "") {
	case "transparent", "none", "rgba(0,0,0,0)":
		return true
	}
	return false
}

func (b *Builder) cellStyle(style string, col int) *slides.CellStyle {
	decls := b.css.ParseInline(style)
	st := &slides.CellStyle{}

	if v, ok := decls.Get("background-color"); ok {
		if c := cleanColor(v.Raw); c != "" && !isTransparent(c) {
			st.Backcolor = c
		}
	}
	if v, ok := decls.Get("color"); ok {
		if c := cleanColor(v.Raw); c != "" && !isTransparent(c) {
			st.Color = c
		}
	}
	if v, ok := decls.Get("font-size"); ok {
		if v.Unit == "pt" {
			st.FontSize = strconv.Itoa(int(math.Round(v.Value*pt2px))) + "px"
		} else {
			st.FontSize = v.Raw
		}
	}
	if v, ok := decls.Get("font-family"); ok {
		st.FontName = FontName(v.Raw)
	}
	if v, ok := decls.Get("font-weight"); ok {
		st.Bold = isBold(v)
	}
	if decls.Keyword("font-style") == "italic" {
		st.Em = true
	}
	if deco := decls.Keyword("text-decoration"); deco != "" {
		st.Underline = strings.Contains(deco, "underline")
		st.Strikethrough = strings.Contains(deco, "line-through")
	}
	if align := decls.Keyword("text-align"); align != "" {
		st.Align = align
	} else {
		st.Align = defaultAlign(col)
	}
	return st
}

func isBold(v css.Value) bool {
	if strings.EqualFold(v.Keyword, "bold") {
		return true
	}
	n, err := strconv.Atoi(leadingDigits(v.Raw))
	return err == nil && n >= 600
}

// FontName returns canonical family name for the font-family value: quotes
// are removed, full width forms folded and well known Chinese names
// translated.
func FontName(family string) string {
	family = strings.NewReplacer(`"`, "", `'`, "").Replace(family)
	family = strings.TrimSpace(width.Fold.String(family))
	if name, ok := fontNames[family]; ok {
		return name
	}
	return family
}

func highlighted(cell slides.TableCell) bool {
	if cell.Style == nil {
		return false
	}
	return cell.Style.Backcolor != "" || cell.Style.Bold ||
		(cell.Style.Color != "" && strings.ReplaceAll(cell.Style.Color, " ", "") != bodyTextColor)
}

func colHeader(data [][]slides.TableCell) bool {
	if len(data) == 0 {
		return false
	}
	for _, cell := range data[0] {
		if strings.TrimSpace(cell.Text) != "" && highlighted(cell) {
			return true
		}
	}
	return false
}

func rowHeader(data [][]slides.TableCell) bool {
	if len(data) < 2 {
		return false
	}
	var cells []slides.TableCell
	for _, row := range data {
		if len(row) > 0 && strings.TrimSpace(row[0].Text) != "" {
			cells = append(cells, row[0])
		}
	}
	if len(cells) < 2 {
		return false
	}
	for _, cell := range cells {
		if highlighted(cell) {
			return true
		}
	}
	return false
}

func (b *Builder) outline(raw *RawTable) slides.Outline {
	if len(raw.Rows[0]) == 0 {
		return defaultOutline
	}
	decls := b.css.ParseInline(raw.Rows[0][0].Attr("style"))
	o := defaultOutline
	if v, ok := decls.Get("border-width"); ok {
		if n, err := strconv.Atoi(leadingDigits(v.Raw)); err == nil {
			o.Width = n
		} else {
			b.log.Debug("Unsupported border width", zap.String("value", v.Raw))
		}
	}
	if v, ok := decls.Get("border-style"); ok {
		o.Style = strings.TrimSpace(v.Raw)
	}
	if v, ok := decls.Get("border-color"); ok {
		o.Color = cleanColor(v.Raw)
	}
	return o
}

type describer struct {
	el *slides.TableElement
}

func (d describer) String() string {
	return Describe(d.el)
}

// Describe returns compact description of the grid for debugging.
func Describe(el *slides.TableElement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d", el.Rows(), el.Columns())
	for r, row := range el.Data {
		fmt.Fprintf(&sb, "\n%d:", r)
		for _, cell := range row {
			text := cell.Text
			if text == "" {
				text = "-"
			}
			fmt.Fprintf(&sb, " [%s %dx%d]", text, cell.Rowspan, cell.Colspan)
		}
	}
	return sb.String()
}
