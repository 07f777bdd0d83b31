package table

// LineMeasure is one measured line of paragraph content.
type LineMeasure struct {
	LineHeight Fl
}

// BlockMeasure is the measurement of one content block inside a cell. Lines
// is only meaningful when the corresponding TableCell.Blocks[k].Kind is
// BlockParagraph; TotalHeight is the measurement pass's own summary of
// Lines, carried through rather than recomputed, so that a measurement
// quirk upstream is visible rather than silently overwritten.
type BlockMeasure struct {
	Lines       []LineMeasure
	TotalHeight Fl
}

// CellMeasure is the measurement of one cell: one BlockMeasure per block of
// the corresponding TableCell, in the same order.
type CellMeasure struct {
	Blocks []BlockMeasure
}

// RowMeasure is the measurement of one row.
type RowMeasure struct {
	Height Fl
	Cells  []CellMeasure
}

// TableMeasure is the measurement pass's output: one RowMeasure per
// TableBlock row, in the same order, plus column and total geometry.
type TableMeasure struct {
	Rows         []RowMeasure
	ColumnWidths []Fl
	TotalWidth   Fl
	TotalHeight  Fl
}

// cellLines flattens all paragraph blocks of a cell into one ordered
// sequence of line heights; non-paragraph blocks contribute zero lines.
func cellLines(cell TableCell, measure CellMeasure) []Fl {
	var lines []Fl
	for k, block := range cell.Blocks {
		if block.Kind != BlockParagraph {
			continue
		}
		if k >= len(measure.Blocks) {
			break
		}
		for _, line := range measure.Blocks[k].Lines {
			lines = append(lines, line.LineHeight)
		}
	}
	return lines
}

// totalLines is the number of lines cellLines would return, without
// allocating the slice; used for invariant bounds checks.
func totalLines(cell TableCell, measure CellMeasure) int {
	n := 0
	for k, block := range cell.Blocks {
		if block.Kind != BlockParagraph {
			continue
		}
		if k >= len(measure.Blocks) {
			break
		}
		n += len(measure.Blocks[k].Lines)
	}
	return n
}

// sumRowHeights sums RowMeasure.Height over [from, to), tolerating to
// exceeding the number of measured rows.
func sumRowHeights(rows []RowMeasure, from, to int) Fl {
	if to > len(rows) {
		to = len(rows)
	}
	var total Fl
	for i := from; i < to; i++ {
		total += rows[i].Height
	}
	return total
}
