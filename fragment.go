package table

// PartialRowInfo describes a mid-row split: the row is being emitted across
// more than one fragment, cut on per-cell line boundaries.
type PartialRowInfo struct {
	RowIndex int

	// FromLineByCell and ToLineByCell index global line positions per cell
	// (across all paragraph blocks in the cell); To is exclusive.
	FromLineByCell []int
	ToLineByCell   []int

	IsFirstPart bool
	IsLastPart  bool

	// PartialHeight is the height, in pixels, this slice contributes.
	PartialHeight Fl
}

// ColumnBoundary is one column's geometry, exposed for downstream
// interactive features (e.g. column resize handles).
type ColumnBoundary struct {
	Index     int
	X         Fl
	Width     Fl
	MinWidth  Fl
	Resizable bool
}

// FragmentMetadata carries information that only the consumer needs, never
// the core itself.
type FragmentMetadata struct {
	ColumnBoundaries []ColumnBoundary
	// CoordinateSystem is always "fragment".
	CoordinateSystem string
}

// TableFragment is a rectangular slice of a table placed on a page.
type TableFragment struct {
	Kind    string // always "table"
	BlockID string
	FromRow int
	ToRow   int // exclusive
	X, Y    Fl
	Width   Fl
	Height  Fl

	ContinuesFromPrev bool
	ContinuesOnNext   bool

	// RepeatHeaderCount is the number of header rows prepended to this
	// fragment; 0 on the first fragment.
	RepeatHeaderCount int

	PartialRow *PartialRowInfo

	Metadata FragmentMetadata
}
