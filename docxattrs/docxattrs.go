// Package docxattrs adapts a github.com/unidoc/unioffice document.Table
// into this module's table.TableBlock. It builds structure only — row and
// cell content, repeatHeader/cantSplit row properties, and table indent —
// never measurement, which is a separate, external collaborator (the
// measurement pass).
//
// This mirrors the approach of aerissecure-convert/docx: most styling is
// resolved on a best-effort basis, falling back to the core's own defaults
// where the underlying OOXML value can't be determined confidently.
package docxattrs

import (
	"fmt"

	"github.com/unidoc/unioffice/document"

	table "github.com/HuyDuc111/SuperDoc"
)

// twipsPerInch and pixelsPerInch convert OOXML's twentieths-of-a-point
// (twips) width units into the pixel unit this module's core works in.
const (
	twipsPerInch  = 1440
	pixelsPerInch = 96
)

func twipsToPixels(twips int64) table.Fl {
	return table.Fl(twips) / twipsPerInch * pixelsPerInch
}

// FromUnioffice builds a table.TableBlock from a unioffice document.Table.
// Nested tables inside a cell are not supported; a cell's paragraphs each
// become one BlockParagraph CellBlock, in order.
func FromUnioffice(tbl document.Table) (table.TableBlock, error) {
	ct := tbl.X()
	if ct == nil {
		return table.TableBlock{}, fmt.Errorf("docxattrs: table has no underlying element")
	}

	block := table.TableBlock{
		ID: fmt.Sprintf("docx-table-%p", ct),
	}
	if pr := ct.TblPr; pr != nil && pr.TblInd != nil && pr.TblInd.WAttr != nil &&
		pr.TblInd.WAttr.ST_DecimalNumberOrPercent.ST_UnqualifiedPercentage != nil {
		block.Attrs.TableIndent = &table.TableIndent{
			Width: twipsToPixels(*pr.TblInd.WAttr.ST_DecimalNumberOrPercent.ST_UnqualifiedPercentage),
		}
	}

	for _, row := range tbl.Rows() {
		block.Rows = append(block.Rows, convertRow(row))
	}
	return block, nil
}

func convertRow(row document.Row) table.TableRow {
	out := table.TableRow{}
	for _, cell := range row.Cells() {
		out.Cells = append(out.Cells, convertCell(cell))
	}
	out.Attrs = rowAttrs(row)
	return out
}

func convertCell(cell document.Cell) table.TableCell {
	blocks := make([]table.CellBlock, 0, len(cell.Paragraphs()))
	for range cell.Paragraphs() {
		blocks = append(blocks, table.CellBlock{Kind: table.BlockParagraph})
	}
	return table.NewTableCell(blocks, false, table.CellAttrs{})
}

// rowAttrs reads repeatHeader and cantSplit off the row's underlying OOXML
// element. Per the ECMA-376 boolean-element convention, the mere presence
// of the element means "on"; this adapter does not resolve an explicit
// w:val="false" override, matching the best-effort style of the rest of
// this ingestion boundary.
func rowAttrs(row document.Row) table.RowAttrs {
	ct := row.X()
	if ct == nil || ct.TrPr == nil {
		return table.RowAttrs{}
	}
	return table.RowAttrs{
		RepeatHeader: len(ct.TrPr.TblHeader) > 0,
		CantSplit:    len(ct.TrPr.CantSplit) > 0,
	}
}
