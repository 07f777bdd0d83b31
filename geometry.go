package table

// DEFAULT_MIN_COLUMN_WIDTH and MAX_MIN_COLUMN_WIDTH bound the per-column
// minimum width reported in fragment metadata.
const (
	DEFAULT_MIN_COLUMN_WIDTH Fl = 25
	MAX_MIN_COLUMN_WIDTH     Fl = 200
)

// calculateColumnMinWidth clamps the measured width of column i into
// [DEFAULT_MIN_COLUMN_WIDTH, MAX_MIN_COLUMN_WIDTH], falling back to
// DEFAULT_MIN_COLUMN_WIDTH when the measured width is zero.
func calculateColumnMinWidth(i int, measure TableMeasure) Fl {
	width := DEFAULT_MIN_COLUMN_WIDTH
	if i < len(measure.ColumnWidths) && measure.ColumnWidths[i] != 0 {
		width = measure.ColumnWidths[i]
	}
	return clampF(width, DEFAULT_MIN_COLUMN_WIDTH, MAX_MIN_COLUMN_WIDTH)
}

// generateColumnBoundaries walks measure.ColumnWidths cumulatively, starting
// at x, producing one resizable ColumnBoundary per column. An empty
// ColumnWidths yields no boundaries.
func generateColumnBoundaries(measure TableMeasure, x Fl) []ColumnBoundary {
	boundaries := make([]ColumnBoundary, 0, len(measure.ColumnWidths))
	cursor := x
	for i, width := range measure.ColumnWidths {
		boundaries = append(boundaries, ColumnBoundary{
			Index:     i,
			X:         cursor,
			Width:     width,
			MinWidth:  calculateColumnMinWidth(i, measure),
			Resizable: true,
		})
		cursor += width
	}
	return boundaries
}

// applyTableIndent shifts x right by indent and shrinks width by the same
// amount, never letting width go negative.
func applyTableIndent(x, width, indent Fl) (Fl, Fl) {
	return x + indent, maxF(0, width-indent)
}
