package reconcile

import "fmt"

// Status is the outcome of reconciling one sheet.
type Status string

const (
	// StatusReconciled means the sheet was compared and any required column
	// changes were applied.
	StatusReconciled Status = "reconciled"
	// StatusSkipped means the sheet was not touched (ignored by pattern, or
	// absent from the old document).
	StatusSkipped Status = "skipped"
	// StatusFailed means the backing store failed while reconciling the
	// sheet.
	StatusFailed Status = "failed"
)

// SheetResult reports what happened to one sheet. Skips are results, not
// errors; the caller logs them and continues.
type SheetResult struct {
	Sheet   string
	Status  Status
	Reason  string
	Added   int
	Deleted int
	Renamed int
}

// Changed reports whether the sheet was mutated.
func (r SheetResult) Changed() bool {
	return r.Added > 0 || r.Deleted > 0 || r.Renamed > 0
}

// Summary returns a one-line human-readable description of the result.
func (r SheetResult) Summary() string {
	switch r.Status {
	case StatusSkipped:
		return fmt.Sprintf("sheet %q skipped: %s", r.Sheet, r.Reason)
	case StatusFailed:
		return fmt.Sprintf("sheet %q failed: %s", r.Sheet, r.Reason)
	default:
		if !r.Changed() {
			return fmt.Sprintf("sheet %q up to date", r.Sheet)
		}
		return fmt.Sprintf("sheet %q reconciled: %d added, %d deleted, %d renamed",
			r.Sheet, r.Added, r.Deleted, r.Renamed)
	}
}

func skipped(sheet, reason string) SheetResult {
	return SheetResult{Sheet: sheet, Status: StatusSkipped, Reason: reason}
}

func failed(sheet string, err error) SheetResult {
	return SheetResult{Sheet: sheet, Status: StatusFailed, Reason: err.Error()}
}
