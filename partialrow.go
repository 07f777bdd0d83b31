package table

// computePartialRow runs the two-pass line-advancement planner: pass 1
// greedily fits as many lines as possible per cell independently,
// pass 2 re-aligns every cell to the same line-advancement count so that
// cells with differently-sized lines stay structurally synchronized across
// fragments.
//
// fromLineByCell may be nil, meaning "start of row"; when non-nil it must
// have one entry per cell and every entry must be >= 0 — a negative entry
// is a programmer error, not a condition layout can recover from.
func computePartialRow(rowIndex int, row TableRow, measure TableMeasure, availableHeight Fl, fromLineByCell []int) PartialRowInfo {
	if rowIndex < 0 || rowIndex >= len(measure.Rows) {
		panic("table: rowIndex out of bounds in computePartialRow")
	}
	cellMeasures := measure.Rows[rowIndex].Cells
	n := len(row.Cells)

	startLine := make([]int, n)
	if fromLineByCell != nil {
		if len(fromLineByCell) != n {
			panic("table: fromLineByCell length mismatch in computePartialRow")
		}
		for i, v := range fromLineByCell {
			if v < 0 {
				panic("table: fromLine < 0 in computePartialRow")
			}
			startLine[i] = v
		}
	}

	lines := make([][]Fl, n)
	total := make([]int, n)
	padTop := make([]Fl, n)
	padBot := make([]Fl, n)
	for i, cell := range row.Cells {
		var cm CellMeasure
		if i < len(cellMeasures) {
			cm = cellMeasures[i]
		}
		lines[i] = cellLines(cell, cm)
		total[i] = len(lines[i])
		padding := cell.Attrs.Padding.Resolve()
		padTop[i], padBot[i] = padding.Top, padding.Bottom
	}

	// Pass 1: greedy fit per cell, independent of the other cells.
	cutLine := make([]int, n)
	lineHeightSum := make([]Fl, n)
	for i := 0; i < n; i++ {
		availableForLines := maxF(0, availableHeight-(padTop[i]+padBot[i]))
		cur := startLine[i]
		var acc Fl
		for cur < total[i] {
			h := lines[i][cur]
			if acc+h > availableForLines {
				break
			}
			acc += h
			cur++
		}
		cutLine[i] = cur
		lineHeightSum[i] = acc
	}

	// Pass 2: re-align by line-advancement count, unless every cell already
	// exhausted its remaining lines in pass 1.
	allComplete := true
	for i := 0; i < n; i++ {
		if cutLine[i] < total[i] {
			allComplete = false
			break
		}
	}

	toLine := make([]int, n)
	cellHeight := make([]Fl, n)
	if allComplete {
		copy(toLine, cutLine)
		copy(cellHeight, lineHeightSum)
	} else {
		minAdv := 0
		found := false
		for i := 0; i < n; i++ {
			adv := cutLine[i] - startLine[i]
			if adv > 0 && (!found || adv < minAdv) {
				minAdv = adv
				found = true
			}
		}
		for i := 0; i < n; i++ {
			newCut := startLine[i] + minAdv
			if newCut > total[i] {
				newCut = total[i]
			}
			toLine[i] = newCut
			var acc Fl
			for l := startLine[i]; l < newCut; l++ {
				acc += lines[i][l]
			}
			cellHeight[i] = acc
		}
	}

	var partialHeight Fl
	for i := 0; i < n; i++ {
		full := cellHeight[i] + padTop[i] + padBot[i]
		if full > partialHeight {
			partialHeight = full
		}
	}

	isFirstPart := true
	madeProgress := false
	allExhausted := true
	for i := 0; i < n; i++ {
		if startLine[i] != 0 {
			isFirstPart = false
		}
		if toLine[i] > startLine[i] {
			madeProgress = true
		}
		if toLine[i] < total[i] {
			allExhausted = false
		}
	}
	isLastPart := allExhausted || !madeProgress

	if partialHeight == 0 && isFirstPart {
		var maxPad Fl
		for i := 0; i < n; i++ {
			pad := padTop[i] + padBot[i]
			if pad > maxPad {
				maxPad = pad
			}
		}
		partialHeight = maxPad
	}

	return PartialRowInfo{
		RowIndex:       rowIndex,
		FromLineByCell: startLine,
		ToLineByCell:   toLine,
		IsFirstPart:    isFirstPart,
		IsLastPart:     isLastPart,
		PartialHeight:  partialHeight,
	}
}
