// Package reconcile aligns the column structure of an old sheet with a new
// sheet, by header name. Row data stays positionally aligned with the header
// throughout: inserting a column shifts every data row, deleting a column
// removes it from every data row, and renames touch the header cell only.
package reconcile

import (
	"regexp"

	"github.com/rs/zerolog"

	"github.com/bberka/xlsync/pkg/xlsync/diff"
)

var nop = zerolog.Nop()

// Document is the tabular store the reconciler mutates. Row and column
// positions are 1-based. The new document is only ever read through
// HasSheet and Header.
type Document interface {
	HasSheet(name string) bool
	Header(sheet string) ([]string, error)
	InsertColumn(sheet string, pos int) error
	DeleteColumn(sheet string, pos int) error
	SetCell(sheet string, row, col int, value string) error
}

// Reconciler applies one policy to any number of sheets. It carries no
// per-sheet state and is safe to reuse across file pairs.
type Reconciler struct {
	// Layout selects where missing columns are placed.
	Layout Layout
	// AllowDelete enables removal of old columns absent from the new header.
	AllowDelete bool
	// IgnoreSheet skips sheets whose name matches. The pattern is expected
	// to be anchored at the start of the name (see xlsync.CompilePattern).
	IgnoreSheet *regexp.Regexp
	// Logger observes progress and decisions. Nil disables logging.
	Logger *zerolog.Logger
}

func (r *Reconciler) log() *zerolog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return &nop
}

// Sheet reconciles the named sheet of oldDoc against the same-named sheet
// of newDoc. Ignored and absent sheets return a skipped result. A non-nil error
// means the backing store failed; the caller should abandon the file pair.
//
// The passes run in a fixed order: insert missing columns left to right,
// delete obsolete columns (when allowed) in descending position, then
// rename by position within the overlapping header length.
func (r *Reconciler) Sheet(oldDoc, newDoc Document, name string) (SheetResult, error) {
	if r.IgnoreSheet != nil && r.IgnoreSheet.MatchString(name) {
		res := skipped(name, "name matches ignore pattern")
		r.log().Info().Str("sheet", name).Str("pattern", r.IgnoreSheet.String()).Msg("skipping ignored sheet")
		return res, nil
	}
	if !oldDoc.HasSheet(name) {
		res := skipped(name, "sheet not present in old document")
		r.log().Info().Str("sheet", name).Msg("sheet does not exist in the old document, skipping")
		return res, nil
	}

	oldHeader, err := oldDoc.Header(name)
	if err != nil {
		return failed(name, err), err
	}
	newHeader, err := newDoc.Header(name)
	if err != nil {
		return failed(name, err), err
	}

	changes := diff.Diff(oldHeader, newHeader)
	r.log().Debug().
		Str("sheet", name).
		Int("missing", len(changes.Missing)).
		Int("obsolete", len(changes.Obsolete)).
		Int("renamed", len(changes.Renames)).
		Msg("comparing columns")

	res := SheetResult{Sheet: name, Status: StatusReconciled}

	// Insert pass. Pure-rename targets are not inserted; the rename pass
	// relabels them in place. Placing a column updates the in-memory header
	// before the next missing column is considered, so later positions
	// account for it.
	missing := make(map[string]bool, len(changes.Missing))
	for _, col := range changes.Missing {
		missing[col] = true
	}
	for i, col := range newHeader {
		if !missing[col] || diff.Contains(oldHeader, col) {
			continue
		}
		pos := len(oldHeader) + 1
		if r.Layout == LayoutInsertShifting {
			if p := i + 1; p < pos {
				pos = p
			}
			if pos <= len(oldHeader) {
				if err := oldDoc.InsertColumn(name, pos); err != nil {
					return failed(name, err), err
				}
			}
		}
		if err := oldDoc.SetCell(name, 1, pos, col); err != nil {
			return failed(name, err), err
		}
		oldHeader = append(oldHeader[:pos-1], append([]string{col}, oldHeader[pos-1:]...)...)
		res.Added++
		r.log().Info().Str("sheet", name).Str("column", col).Int("position", pos).Msg("added column")
	}

	// Delete pass. Obsolete is computed against the post-insertion header;
	// descending order keeps not-yet-deleted positions valid.
	if r.AllowDelete {
		obsolete := make(map[string]bool)
		for _, col := range diff.Diff(oldHeader, newHeader).Obsolete {
			obsolete[col] = true
		}
		for p := len(oldHeader) - 1; p >= 0; p-- {
			if !obsolete[oldHeader[p]] {
				continue
			}
			if err := oldDoc.DeleteColumn(name, p+1); err != nil {
				return failed(name, err), err
			}
			r.log().Info().Str("sheet", name).Str("column", oldHeader[p]).Int("position", p+1).Msg("deleted column")
			oldHeader = append(oldHeader[:p], oldHeader[p+1:]...)
			res.Deleted++
		}
	}

	// Rename pass. Label-only: the header cell is overwritten, data rows do
	// not move.
	for _, rn := range diff.Diff(oldHeader, newHeader).Renames {
		if err := oldDoc.SetCell(name, 1, rn.Pos+1, rn.To); err != nil {
			return failed(name, err), err
		}
		oldHeader[rn.Pos] = rn.To
		res.Renamed++
		r.log().Info().Str("sheet", name).Str("from", rn.From).Str("to", rn.To).Int("position", rn.Pos+1).Msg("renamed column")
	}

	return res, nil
}
