package xlsync

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bberka/xlsync/pkg/xlsync/workbook"
)

// Recognized spreadsheet suffixes for directory mode.
var spreadsheetExts = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

// IsSpreadsheet reports whether the file name carries a recognized
// spreadsheet suffix.
func IsSpreadsheet(name string) bool {
	return spreadsheetExts[strings.ToLower(filepath.Ext(name))]
}

// SyncFiles reconciles the columns of the old workbook against the new
// one, sheet by sheet, and persists the old workbook once after all sheets
// are processed. The new workbook is never written.
//
// A backing-store failure abandons the pair: the error is recorded on the
// returned FileResult and also returned, so directory runs can isolate it
// while single-file callers surface it.
func SyncFiles(oldPath, newPath string, opts Options) (*FileResult, error) {
	log := opts.logger()
	res := &FileResult{OldPath: oldPath, NewPath: newPath}

	log.Info().Str("old", oldPath).Str("new", newPath).Msg("comparing and syncing columns")

	newDoc, err := workbook.Open(newPath)
	if err != nil {
		res.Err = NewSyncError("open", newPath, err)
		return res, res.Err
	}
	defer newDoc.Close()

	oldDoc, err := workbook.Open(oldPath)
	if err != nil {
		res.Err = NewSyncError("open", oldPath, err)
		return res, res.Err
	}
	defer oldDoc.Close()

	rec := opts.reconciler()
	for _, sheet := range newDoc.SheetNames() {
		sr, err := rec.Sheet(oldDoc, newDoc, sheet)
		res.Sheets = append(res.Sheets, sr)
		if err != nil {
			res.Err = NewSyncError("read", oldPath, err)
			return res, res.Err
		}
	}

	// Single file-level commit. If this fails mid-write the old document
	// may be left inconsistent on disk; no rollback is attempted.
	if err := oldDoc.Save(); err != nil {
		res.Err = NewSyncError("save", oldPath, err)
		return res, res.Err
	}

	log.Info().Str("old", oldPath).Msg(res.Summary())
	return res, nil
}

// SyncTrees walks newDir recursively, pairs each recognized spreadsheet
// with the file at the same relative path under oldDir, and syncs every
// pair sequentially. A failed pair is logged and recorded, and the walk
// continues; only configuration errors (missing or non-directory roots)
// abort the run.
func SyncTrees(oldDir, newDir string, opts Options) (*TreeResult, error) {
	log := opts.logger()

	for _, dir := range []string{oldDir, newDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, NewSyncError("open", dir, ErrFileNotFound)
		}
		if !info.IsDir() {
			return nil, NewSyncError("open", dir, ErrNotDirectory)
		}
	}

	res := &TreeResult{}
	walkErr := filepath.WalkDir(newDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("cannot read path, skipping")
			return nil
		}
		if d.IsDir() || !IsSpreadsheet(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(newDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if opts.IgnoreFile != nil && opts.IgnoreFile.MatchString(rel) {
			res.Skipped++
			log.Info().Str("file", rel).Str("pattern", opts.IgnoreFile.String()).Msg("skipping ignored file")
			return nil
		}

		oldPath := filepath.Join(oldDir, filepath.FromSlash(rel))
		if _, err := os.Stat(oldPath); err != nil {
			res.Skipped++
			log.Info().Str("file", rel).Msg("no counterpart in old directory, skipping")
			return nil
		}

		res.Pairs++
		fr, err := SyncFiles(oldPath, path, opts)
		res.Files = append(res.Files, *fr)
		if err != nil {
			// Pair abandoned; other pairs are unaffected.
			res.Failed++
			log.Error().Err(err).Str("old", oldPath).Str("new", path).Msg("file pair abandoned")
			return nil
		}
		res.Synced++
		return nil
	})
	if walkErr != nil {
		return res, walkErr
	}

	log.Info().
		Int("pairs", res.Pairs).
		Int("synced", res.Synced).
		Int("failed", res.Failed).
		Int("skipped", res.Skipped).
		Msg("directory comparison completed")
	return res, nil
}
