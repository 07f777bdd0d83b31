package table

// MIN_PARTIAL_ROW_HEIGHT is the minimum remaining height, in pixels, worth
// attempting a mid-row split for; below it the row is deferred to the next
// page/column instead.
const MIN_PARTIAL_ROW_HEIGHT Fl = 20

// splitResult is the Split-Point Finder's answer: the last row to include
// (EndRow, exclusive) and, if the row at EndRow-1 only fits partially, the
// plan for that partial row.
type splitResult struct {
	EndRow     int
	PartialRow *PartialRowInfo
}

// partialMadeProgress reports whether any cell advanced at least one line
// relative to where it started.
func partialMadeProgress(p PartialRowInfo) bool {
	for i := range p.ToLineByCell {
		if p.ToLineByCell[i] > p.FromLineByCell[i] {
			return true
		}
	}
	return false
}

// findSplitPoint walks rows from startRow, accumulating height, and decides
// where the current fragment must end: at a row boundary, or mid-row on a
// line boundary.
//
// pendingPartialRow is accepted for interface parity with the driver's call
// site but is intentionally never read: the driver only passes it on the
// first visit to a row, before a partial plan for that row exists.
func findSplitPoint(block TableBlock, measure TableMeasure, startRow int, availableHeight Fl, fullPageHeight Fl, pendingPartialRow *PartialRowInfo) splitResult {
	rows := block.Rows
	var accumulated Fl
	lastFitRow := startRow

	for i := startRow; i < len(rows); i++ {
		rowHeight := measure.Rows[i].Height
		if accumulated+rowHeight <= availableHeight {
			accumulated += rowHeight
			lastFitRow = i + 1
			continue
		}

		remainingHeight := availableHeight - accumulated

		if rowHeight > fullPageHeight {
			partial := computePartialRow(i, rows[i], measure, remainingHeight, nil)
			return splitResult{EndRow: i + 1, PartialRow: &partial}
		}

		if rows[i].Attrs.CantSplit {
			// lastFitRow already equals startRow when nothing fit yet,
			// which signals the driver to advance instead of emitting an
			// empty fragment.
			return splitResult{EndRow: lastFitRow, PartialRow: nil}
		}

		if remainingHeight >= MIN_PARTIAL_ROW_HEIGHT {
			partial := computePartialRow(i, rows[i], measure, remainingHeight, nil)
			if partialMadeProgress(partial) {
				return splitResult{EndRow: i + 1, PartialRow: &partial}
			}
		}
		return splitResult{EndRow: lastFitRow, PartialRow: nil}
	}

	return splitResult{EndRow: len(rows), PartialRow: nil}
}
