package table

// testPaginator is a small in-memory Paginator used across this package's
// tests: each page has a fixed number of columns, and advancing past the
// last column on a page starts a fresh one.
type testPaginator struct {
	columnsPerPage int
	columnWidth    Fl
	contentBottom  Fl
	marginTop      Fl

	current     *PageState
	colsOnPage  int
	pagesOpened int
	pages       []*Page
}

func newTestPaginator(columnsPerPage int, columnWidth, contentBottom, marginTop Fl) *testPaginator {
	return &testPaginator{
		columnsPerPage: columnsPerPage,
		columnWidth:    columnWidth,
		contentBottom:  contentBottom,
		marginTop:      marginTop,
	}
}

func (p *testPaginator) newPage() *PageState {
	p.pagesOpened++
	p.colsOnPage = 0
	page := &Page{Margins: Margins{Top: p.marginTop}}
	p.pages = append(p.pages, page)
	p.current = &PageState{
		Page:          page,
		CursorY:       p.marginTop,
		ContentBottom: p.contentBottom,
		ColumnIndex:   0,
	}
	return p.current
}

func (p *testPaginator) EnsurePage() *PageState {
	if p.current == nil {
		return p.newPage()
	}
	return p.current
}

func (p *testPaginator) AdvanceColumn(state *PageState) *PageState {
	p.colsOnPage++
	if p.colsOnPage < p.columnsPerPage {
		p.current = &PageState{
			Page:          state.Page,
			CursorY:       p.marginTop,
			ContentBottom: p.contentBottom,
			ColumnIndex:   state.ColumnIndex + 1,
		}
		return p.current
	}
	return p.newPage()
}

func (p *testPaginator) ColumnX(columnIndex int) Fl {
	return Fl(columnIndex) * p.columnWidth
}

func (p *testPaginator) ColumnWidth() Fl {
	return p.columnWidth
}

// line builds a []LineMeasure of n lines, each of height h.
func lines(n int, h Fl) []LineMeasure {
	out := make([]LineMeasure, n)
	var total Fl
	for i := range out {
		out[i] = LineMeasure{LineHeight: h}
		total += h
	}
	return out
}

// paragraphCell builds a one-paragraph-block TableCell/CellMeasure pair with
// n lines of height h and zero padding, which keeps line-height arithmetic
// exact in tests.
func paragraphCell(n int, h Fl) (TableCell, CellMeasure) {
	zero := Fl(0)
	cell := NewTableCell([]CellBlock{{Kind: BlockParagraph}}, false, CellAttrs{
		Padding: PaddingInput{Top: &zero, Left: &zero, Right: &zero, Bottom: &zero},
	})
	ls := lines(n, h)
	var total Fl
	for _, l := range ls {
		total += l.LineHeight
	}
	measure := CellMeasure{Blocks: []BlockMeasure{{Lines: ls, TotalHeight: total}}}
	return cell, measure
}

// uniformRow builds a row of numCells cells, each with the same line count
// and line height, and its matching RowMeasure. Row height is the sum of
// one cell's lines (all cells are given the same content in these tests).
func uniformRow(numCells, numLines int, lineHeight Fl, attrs RowAttrs) (TableRow, RowMeasure) {
	row := TableRow{Attrs: attrs}
	rm := RowMeasure{}
	for i := 0; i < numCells; i++ {
		cell, cm := paragraphCell(numLines, lineHeight)
		row.Cells = append(row.Cells, cell)
		rm.Cells = append(rm.Cells, cm)
	}
	rm.Height = Fl(numLines) * lineHeight
	return row, rm
}
