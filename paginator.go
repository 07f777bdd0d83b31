package table

// Margins holds the page margins the driver reads from. Only Top is used by
// this core, to decide whether a table fits on a page it hasn't started yet.
type Margins struct {
	Top Fl
}

// Page is the paginator's notion of a page: an appendable fragment list plus
// margins. The driver only ever appends to Fragments; it never removes or
// reorders them.
type Page struct {
	Fragments []TableFragment
	Margins   Margins
}

// PageState is the paginator's cursor into the current page and column. The
// driver treats CursorY as the only mutable field it owns directly; it
// reaches ColumnIndex and ContentBottom read-only except through
// Paginator.AdvanceColumn.
type PageState struct {
	Page          *Page
	CursorY       Fl
	ContentBottom Fl
	ColumnIndex   int
}

// Paginator is the external collaborator that owns page and column
// geometry. This core never creates, destroys or reorders pages itself; it
// only asks the paginator to ensure a page exists or to advance to the next
// column.
type Paginator interface {
	// EnsurePage is idempotent: it creates a page if none exists, or if the
	// current one is full, and otherwise returns the current state.
	EnsurePage() *PageState
	// AdvanceColumn moves to the next column within a page, or to the next
	// page once columns are exhausted.
	AdvanceColumn(state *PageState) *PageState
	// ColumnX is the left edge, in document coordinates, of the indexed
	// column.
	ColumnX(columnIndex int) Fl
	// ColumnWidth is the width, in document coordinates, of one column.
	ColumnWidth() Fl
}

// emit appends fragment to the current page and advances the cursor by
// exactly fragment.Height: a fragment's recorded height and the cursor
// advance it causes must always agree.
func emit(state *PageState, fragment TableFragment) {
	state.Page.Fragments = append(state.Page.Fragments, fragment)
	state.CursorY += fragment.Height
}
