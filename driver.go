package table

import "github.com/HuyDuc111/SuperDoc/logger"

// LayoutTable is the entry point of this core: given a table block, its
// measurement, and a paginator, it emits an ordered sequence of
// TableFragment values into the current and subsequent pages.
//
// LayoutTable never returns a value; its only observable effect is the
// fragments it appends via the paginator and the cursor advances that
// come with them.
func LayoutTable(block TableBlock, measure TableMeasure, paginator Paginator) {
	if block.Attrs.Anchor.IsAnchored {
		// The float manager owns anchored tables; it will call
		// CreateAnchoredTableFragment once it has computed placement.
		return
	}

	if len(block.Rows) == 0 {
		layoutZeroRowTable(block, measure, paginator)
		return
	}

	if block.IsFloating() {
		logger.ProgressLogger.Printf("table %s: floating, monolithic layout", block.ID)
		monolithicPath(block, measure, paginator)
		return
	}

	state := paginator.EnsurePage()
	onePageContentHeight := state.ContentBottom - state.Page.Margins.Top
	if measure.TotalHeight <= onePageContentHeight {
		logger.ProgressLogger.Printf("table %s: fits in one page, monolithic layout", block.ID)
		monolithicPath(block, measure, paginator)
		return
	}

	splitPath(block, measure, paginator)
}

// layoutZeroRowTable handles the degenerate "zero rows but non-zero
// totalHeight" input: it emits one placeholder fragment rather than
// silently dropping the table.
func layoutZeroRowTable(block TableBlock, measure TableMeasure, paginator Paginator) {
	if measure.TotalHeight == 0 {
		return
	}
	state := paginator.EnsurePage()
	available := state.ContentBottom - state.CursorY
	height := minF(measure.TotalHeight, available)
	fragment := buildFragment(block, measure, paginator, state, 0, 0, height, 0, false, false, nil)
	emit(state, fragment)
}

// monolithicPath emits the whole table as a single fragment: used for
// floating/anchored-adjacent tables and for tables that fit on one page.
func monolithicPath(block TableBlock, measure TableMeasure, paginator Paginator) {
	state := paginator.EnsurePage()
	if state.CursorY+measure.TotalHeight > state.ContentBottom && len(state.Page.Fragments) > 0 {
		state = paginator.AdvanceColumn(state)
	}
	state = paginator.EnsurePage()
	height := minF(measure.TotalHeight, state.ContentBottom-state.CursorY)
	fragment := buildFragment(block, measure, paginator, state, 0, len(block.Rows), height, 0, false, false, nil)
	emit(state, fragment)
}

// splitPath is the main driver loop: it walks rows, finding a split point
// for each page/column and emitting a fragment for it, until every row
// and every pending partial row has been placed.
func splitPath(block TableBlock, measure TableMeasure, paginator Paginator) {
	headerCount := countHeaderRows(block)
	headerHeight := sumRowHeights(measure.Rows, 0, headerCount)

	state := preflightTableStart(block, measure, paginator)

	currentRow := 0
	isTableContinuation := false
	var pendingPartialRow *PartialRowInfo

	for currentRow < len(block.Rows) || pendingPartialRow != nil {
		state = paginator.EnsurePage()
		availableHeight := state.ContentBottom - state.CursorY

		repeatHeaderCount := 0
		isFirstFragment := currentRow == 0 && pendingPartialRow == nil
		if !isFirstFragment && headerHeight <= availableHeight {
			repeatHeaderCount = headerCount
		}
		availableForBody := availableHeight
		if repeatHeaderCount > 0 {
			availableForBody -= headerHeight
		}

		if pendingPartialRow != nil {
			newPartial, advanced := continuePartialRow(block, measure, paginator, state, pendingPartialRow, availableForBody, repeatHeaderCount, headerHeight)
			if !advanced {
				state = paginator.AdvanceColumn(state)
				continue
			}
			if newPartial.IsLastPart {
				currentRow = pendingPartialRow.RowIndex + 1
				pendingPartialRow = nil
			} else {
				pendingPartialRow = &newPartial
				currentRow = pendingPartialRow.RowIndex
			}
			isTableContinuation = true
			continue
		}

		res := findSplitPoint(block, measure, currentRow, availableForBody, state.ContentBottom, pendingPartialRow)
		if res.EndRow == currentRow && res.PartialRow == nil {
			if len(state.Page.Fragments) > 0 {
				state = paginator.AdvanceColumn(state)
				continue
			}
			logger.WarningLogger.Printf("table %s: row %d too tall for an empty page/column, forcing a split", block.ID, currentRow)
			forced := computePartialRow(currentRow, block.Rows[currentRow], measure, availableForBody, nil)
			res = splitResult{EndRow: currentRow + 1, PartialRow: &forced}
		}

		var fragHeight Fl
		if res.PartialRow != nil {
			fragHeight = sumRowHeights(measure.Rows, currentRow, res.EndRow-1) + res.PartialRow.PartialHeight
		} else {
			fragHeight = sumRowHeights(measure.Rows, currentRow, res.EndRow)
		}
		if repeatHeaderCount > 0 {
			fragHeight += headerHeight
		}

		continuesOnNext := res.EndRow < len(block.Rows) || (res.PartialRow != nil && !res.PartialRow.IsLastPart)
		fragment := buildFragment(block, measure, paginator, state, currentRow, res.EndRow, fragHeight, repeatHeaderCount, isTableContinuation, continuesOnNext, res.PartialRow)
		emit(state, fragment)

		if res.PartialRow != nil && !res.PartialRow.IsLastPart {
			pendingPartialRow = res.PartialRow
			currentRow = res.PartialRow.RowIndex
		} else {
			currentRow = res.EndRow
			pendingPartialRow = nil
		}
		isTableContinuation = true
	}
}

// preflightTableStart decides, when the current page already carries other
// content, whether row 0 can begin here or whether the table should start
// on the next column instead.
func preflightTableStart(block TableBlock, measure TableMeasure, paginator Paginator) *PageState {
	state := paginator.EnsurePage()
	if len(state.Page.Fragments) == 0 {
		return state
	}

	available := state.ContentBottom - state.CursorY

	if len(measure.Rows) == 0 {
		height := measure.TotalHeight
		if height > available {
			return paginator.AdvanceColumn(state)
		}
		return state
	}

	if block.Rows[0].Attrs.CantSplit {
		if measure.Rows[0].Height > available {
			return paginator.AdvanceColumn(state)
		}
		return state
	}

	partial := computePartialRow(0, block.Rows[0], measure, available, nil)
	if !partialMadeProgress(partial) && partial.PartialHeight == 0 {
		return paginator.AdvanceColumn(state)
	}
	return state
}

// continuePartialRow re-plans a pending partial row on the new page, and
// emits a fragment for it if any progress is possible. It reports whether
// it made progress; the caller advances the column and retries when it did
// not.
func continuePartialRow(block TableBlock, measure TableMeasure, paginator Paginator, state *PageState, pending *PartialRowInfo, availableForBody Fl, repeatHeaderCount int, headerHeight Fl) (PartialRowInfo, bool) {
	rowIndex := pending.RowIndex
	newPartial := computePartialRow(rowIndex, block.Rows[rowIndex], measure, availableForBody, pending.ToLineByCell)
	if !partialMadeProgress(newPartial) || newPartial.PartialHeight == 0 {
		// A single remaining line taller than a full, empty column makes no
		// progress no matter how many times the caller advances; force it
		// through rather than retrying AdvanceColumn forever.
		if len(state.Page.Fragments) == 0 {
			if forced := forceOneLineHeight(block.Rows[rowIndex], measure.Rows[rowIndex], pending.ToLineByCell); forced > availableForBody {
				logger.WarningLogger.Printf("table %s: row %d's next line too tall for an empty page/column, forcing it through", block.ID, rowIndex)
				newPartial = computePartialRow(rowIndex, block.Rows[rowIndex], measure, forced, pending.ToLineByCell)
			}
		}
		if !partialMadeProgress(newPartial) || newPartial.PartialHeight == 0 {
			return newPartial, false
		}
	}

	hasMore := !newPartial.IsLastPart
	continuesOnNext := hasMore || (rowIndex+1 < len(block.Rows))

	fragHeight := newPartial.PartialHeight
	if repeatHeaderCount > 0 {
		fragHeight += headerHeight
	}

	fragment := buildFragment(block, measure, paginator, state, rowIndex, rowIndex+1, fragHeight, repeatHeaderCount, true, continuesOnNext, &newPartial)
	emit(state, fragment)
	return newPartial, true
}

// forceOneLineHeight returns the smallest height that guarantees every cell
// still short of lines in row can advance by at least one, so a forced
// computePartialRow call at this height is guaranteed to make progress.
func forceOneLineHeight(row TableRow, rowMeasure RowMeasure, fromLineByCell []int) Fl {
	var need Fl
	for i, cell := range row.Cells {
		var cm CellMeasure
		if i < len(rowMeasure.Cells) {
			cm = rowMeasure.Cells[i]
		}
		lines := cellLines(cell, cm)
		from := 0
		if fromLineByCell != nil {
			from = fromLineByCell[i]
		}
		if from >= len(lines) {
			continue
		}
		padding := cell.Attrs.Padding.Resolve()
		if h := padding.Top + padding.Bottom + lines[from]; h > need {
			need = h
		}
	}
	return need
}

// buildFragment assembles a TableFragment's geometry and metadata; it never
// decides fragment height itself, since that varies with the caller's path.
func buildFragment(block TableBlock, measure TableMeasure, paginator Paginator, state *PageState, fromRow, toRow int, height Fl, repeatHeaderCount int, continuesFromPrev, continuesOnNext bool, partial *PartialRowInfo) TableFragment {
	indent := getTableIndentWidth(block.Attrs)
	columnWidth := paginator.ColumnWidth()
	width := columnWidth
	if measure.TotalWidth != 0 {
		width = minF(columnWidth, measure.TotalWidth)
	}
	x0 := paginator.ColumnX(state.ColumnIndex)
	x, width := applyTableIndent(x0, width, indent)

	return TableFragment{
		Kind:              "table",
		BlockID:           block.ID,
		FromRow:           fromRow,
		ToRow:             toRow,
		X:                 x,
		Y:                 state.CursorY,
		Width:             width,
		Height:            height,
		ContinuesFromPrev: continuesFromPrev,
		ContinuesOnNext:   continuesOnNext,
		RepeatHeaderCount: repeatHeaderCount,
		PartialRow:        partial,
		Metadata: FragmentMetadata{
			ColumnBoundaries: generateColumnBoundaries(measure, x),
			CoordinateSystem: "fragment",
		},
	}
}

// CreateAnchoredTableFragment is called by the float manager once it has
// computed a placement for an anchored table; this core never calls it
// itself.
func CreateAnchoredTableFragment(block TableBlock, measure TableMeasure, x, y Fl) TableFragment {
	indent := getTableIndentWidth(block.Attrs)
	width := measure.TotalWidth
	px, pwidth := applyTableIndent(x, width, indent)
	return TableFragment{
		Kind:    "table",
		BlockID: block.ID,
		FromRow: 0,
		ToRow:   len(block.Rows),
		X:       px,
		Y:       y,
		Width:   pwidth,
		Height:  measure.TotalHeight,
		Metadata: FragmentMetadata{
			ColumnBoundaries: generateColumnBoundaries(measure, px),
			CoordinateSystem: "fragment",
		},
	}
}
