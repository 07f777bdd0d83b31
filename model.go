package table

import "github.com/HuyDuc111/SuperDoc/logger"

// Padding is the per-side cell padding, in pixels, after defaults have been
// resolved (see DEFAULT_CELL_PADDING).
type Padding struct {
	Top, Left, Right, Bottom Fl
}

// DEFAULT_CELL_PADDING is applied per-field whenever a PaddingInput field is
// left unset; the defaults differ between the horizontal and vertical axes,
// matching Word's own table cell margins.
var DEFAULT_CELL_PADDING = Padding{Top: 2, Left: 4, Right: 4, Bottom: 2}

// PaddingInput carries an optional override per side; a nil field falls back
// to DEFAULT_CELL_PADDING independently of the other sides.
type PaddingInput struct {
	Top, Left, Right, Bottom *Fl
}

// Resolve merges p against DEFAULT_CELL_PADDING, one field at a time.
func (p PaddingInput) Resolve() Padding {
	resolved := DEFAULT_CELL_PADDING
	if p.Top != nil {
		resolved.Top = *p.Top
	}
	if p.Left != nil {
		resolved.Left = *p.Left
	}
	if p.Right != nil {
		resolved.Right = *p.Right
	}
	if p.Bottom != nil {
		resolved.Bottom = *p.Bottom
	}
	return resolved
}

// VerticalAlign is consumed by the painter only; the core never branches on it.
type VerticalAlign string

const (
	VAlignTop    VerticalAlign = "top"
	VAlignCenter VerticalAlign = "center"
	VAlignBottom VerticalAlign = "bottom"
)

// BlockKind distinguishes paragraph content, which contributes lines to a
// cell, from any other block kind, which the core treats as zero lines.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockOther
)

// CellBlock is one content block inside a cell. Only its Kind matters to the
// core; paragraph text, runs and styling are the renderer's concern.
type CellBlock struct {
	Kind BlockKind
}

// CellAttrs is the subset of a cell's attribute bag the core reads.
// Background and VerticalAlign are carried through to the fragment consumer
// unexamined.
type CellAttrs struct {
	Padding       PaddingInput
	Background    string
	VerticalAlign VerticalAlign
}

// TableCell is one cell of a TableRow. Blocks is always normalized: callers
// construct cells with NewTableCell so the core never special-cases the
// legacy single-paragraph shape.
type TableCell struct {
	Blocks []CellBlock
	Attrs  CellAttrs
}

// NewTableCell builds a TableCell, applying a backward-compatibility rule:
// a cell with no Blocks but a legacy single paragraph is normalized to a
// one-element Blocks sequence, so the rest of the core only ever sees the
// uniform shape.
func NewTableCell(blocks []CellBlock, hasLegacyParagraph bool, attrs CellAttrs) TableCell {
	if len(blocks) == 0 && hasLegacyParagraph {
		blocks = []CellBlock{{Kind: BlockParagraph}}
	}
	return TableCell{Blocks: blocks, Attrs: attrs}
}

// RowAttrs is the subset of a row's attribute bag the core reads.
type RowAttrs struct {
	// RepeatHeader marks this row as part of the contiguous header prefix.
	RepeatHeader bool
	// CantSplit forbids a mid-content split of this row, except for the
	// over-tall escape hatch.
	CantSplit bool
}

// TableRow is an ordered sequence of cells plus row-level properties.
type TableRow struct {
	Cells []TableCell
	Attrs RowAttrs
}

// TableIndent mirrors attrs.tableIndent from the source model.
type TableIndent struct {
	Width Fl
}

// TableProperties mirrors attrs.tableProperties.
type TableProperties struct {
	// FloatingTableProperties triggers the Monolithic Path when non-empty.
	FloatingTableProperties map[string]any
}

// AnchorAttrs mirrors attrs.anchor.
type AnchorAttrs struct {
	IsAnchored bool
}

// BlockAttrs is the subset of the table block's attribute bag the core reads.
type BlockAttrs struct {
	TableIndent     *TableIndent
	TableProperties TableProperties
	Anchor          AnchorAttrs
}

// TableBlock is the input table, immutable during layout.
type TableBlock struct {
	ID    string
	Rows  []TableRow
	Attrs BlockAttrs
}

// IsFloating reports whether attrs.tableProperties.floatingTableProperties
// is present and non-empty, which routes layout to the Monolithic Path.
func (b TableBlock) IsFloating() bool {
	return len(b.Attrs.TableProperties.FloatingTableProperties) > 0
}

// getTableIndentWidth returns attrs.tableIndent.width iff it is a finite
// number, else 0.
func getTableIndentWidth(attrs BlockAttrs) Fl {
	if attrs.TableIndent == nil {
		return 0
	}
	if !finite(attrs.TableIndent.Width) {
		logger.WarningLogger.Printf("table indent width %v is not finite, treating as 0", attrs.TableIndent.Width)
		return 0
	}
	return attrs.TableIndent.Width
}

// countHeaderRows returns the length of the contiguous prefix of rows whose
// Attrs.RepeatHeader is true; the first false row terminates the count.
func countHeaderRows(block TableBlock) int {
	count := 0
	for _, row := range block.Rows {
		if !row.Attrs.RepeatHeader {
			break
		}
		count++
	}
	return count
}
