package table

import "testing"

func TestNewTableCellLegacyParagraph(t *testing.T) {
	cell := NewTableCell(nil, true, CellAttrs{})
	if len(cell.Blocks) != 1 || cell.Blocks[0].Kind != BlockParagraph {
		t.Fatalf("legacy paragraph cell should normalize to one paragraph block, got %+v", cell.Blocks)
	}

	cell2 := NewTableCell(nil, false, CellAttrs{})
	if len(cell2.Blocks) != 0 {
		t.Fatalf("cell with neither blocks nor legacy paragraph should have zero blocks, got %+v", cell2.Blocks)
	}

	explicit := []CellBlock{{Kind: BlockOther}, {Kind: BlockParagraph}}
	cell3 := NewTableCell(explicit, true, CellAttrs{})
	if len(cell3.Blocks) != 2 {
		t.Fatalf("explicit blocks should win over the legacy paragraph flag, got %+v", cell3.Blocks)
	}
}

func TestPaddingInputResolve(t *testing.T) {
	got := PaddingInput{}.Resolve()
	if got != DEFAULT_CELL_PADDING {
		t.Fatalf("empty PaddingInput should resolve to defaults, got %+v", got)
	}

	top := Fl(10)
	got = PaddingInput{Top: &top}.Resolve()
	want := Padding{Top: 10, Left: 4, Right: 4, Bottom: 2}
	if got != want {
		t.Fatalf("PaddingInput should override only Top, got %+v want %+v", got, want)
	}
}

func TestGetTableIndentWidthDegenerate(t *testing.T) {
	if w := getTableIndentWidth(BlockAttrs{}); w != 0 {
		t.Fatalf("nil TableIndent should yield 0, got %v", w)
	}

	nan := Fl(0)
	nan = nan / nan // NaN
	attrs := BlockAttrs{TableIndent: &TableIndent{Width: nan}}
	if w := getTableIndentWidth(attrs); w != 0 {
		t.Fatalf("NaN indent width should coerce to 0, got %v", w)
	}

	inf := Fl(1)
	inf = inf / Fl(0)
	attrs = BlockAttrs{TableIndent: &TableIndent{Width: inf}}
	if w := getTableIndentWidth(attrs); w != 0 {
		t.Fatalf("infinite indent width should coerce to 0, got %v", w)
	}

	attrs = BlockAttrs{TableIndent: &TableIndent{Width: 12}}
	if w := getTableIndentWidth(attrs); w != 12 {
		t.Fatalf("finite indent width should be returned verbatim, got %v", w)
	}
}

func TestCountHeaderRows(t *testing.T) {
	block := TableBlock{Rows: []TableRow{
		{Attrs: RowAttrs{RepeatHeader: true}},
		{Attrs: RowAttrs{RepeatHeader: true}},
		{Attrs: RowAttrs{RepeatHeader: false}},
		{Attrs: RowAttrs{RepeatHeader: true}}, // non-contiguous, must not count
	}}
	if got := countHeaderRows(block); got != 2 {
		t.Fatalf("countHeaderRows should stop at the first non-header row, got %d", got)
	}
}

func TestIsFloating(t *testing.T) {
	b := TableBlock{}
	if b.IsFloating() {
		t.Fatalf("empty FloatingTableProperties must not be floating")
	}
	b.Attrs.TableProperties.FloatingTableProperties = map[string]any{"wrap": "around"}
	if !b.IsFloating() {
		t.Fatalf("non-empty FloatingTableProperties must be floating")
	}
}
