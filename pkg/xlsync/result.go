package xlsync

import (
	"fmt"

	"github.com/bberka/xlsync/pkg/xlsync/reconcile"
)

// FileResult is the outcome of syncing one file pair.
type FileResult struct {
	// OldPath is the document that was mutated.
	OldPath string
	// NewPath is the read-only reference document.
	NewPath string
	// Sheets holds the per-sheet outcomes, in new-document sheet order.
	Sheets []reconcile.SheetResult
	// Err is set when the pair was abandoned on a backing-store failure.
	Err error
}

// Changed reports whether any sheet of the old document was mutated.
func (r *FileResult) Changed() bool {
	for _, s := range r.Sheets {
		if s.Changed() {
			return true
		}
	}
	return false
}

// Summary returns a one-line human-readable description of the result.
func (r *FileResult) Summary() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: abandoned: %v", r.OldPath, r.Err)
	}
	var added, deleted, renamed, skippedCount int
	for _, s := range r.Sheets {
		added += s.Added
		deleted += s.Deleted
		renamed += s.Renamed
		if s.Status == reconcile.StatusSkipped {
			skippedCount++
		}
	}
	return fmt.Sprintf("%s: %d sheets (%d skipped), %d columns added, %d deleted, %d renamed",
		r.OldPath, len(r.Sheets), skippedCount, added, deleted, renamed)
}

// TreeResult aggregates the outcomes of a directory-tree run.
type TreeResult struct {
	// Files holds one result per processed pair, in walk order.
	Files []FileResult
	// Pairs is the number of file pairs processed.
	Pairs int
	// Synced is the number of pairs completed and persisted.
	Synced int
	// Failed is the number of pairs abandoned on error.
	Failed int
	// Skipped is the number of candidate files with no old-side
	// counterpart or matching the ignore pattern.
	Skipped int
}

// Summary returns a one-line human-readable description of the run.
func (r *TreeResult) Summary() string {
	return fmt.Sprintf("%d pairs processed: %d synced, %d failed, %d files skipped",
		r.Pairs, r.Synced, r.Failed, r.Skipped)
}
