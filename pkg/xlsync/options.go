// Package xlsync reconciles the column structure of old spreadsheet
// documents against new ones, for a single file pair or for a whole
// directory tree paired by relative path.
package xlsync

import (
	"regexp"

	"github.com/rs/zerolog"

	"github.com/bberka/xlsync/pkg/xlsync/reconcile"
)

// Options configures one sync run. The zero value appends new columns,
// never deletes, ignores nothing, and logs nowhere.
type Options struct {
	// AllowDelete removes old columns that are absent from the new header.
	AllowDelete bool
	// Layout selects where missing columns are placed (see reconcile).
	Layout reconcile.Layout
	// IgnoreSheet skips sheets whose name matches, from the start of the
	// name. Build it with CompilePattern to get that anchoring.
	IgnoreSheet *regexp.Regexp
	// IgnoreFile skips files whose relative path matches, from the start of
	// the path. Directory mode only.
	IgnoreFile *regexp.Regexp
	// Logger observes progress and decisions. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns options for a non-destructive append-layout run.
func DefaultOptions() Options {
	return Options{Layout: reconcile.LayoutAppend}
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (o Options) reconciler() *reconcile.Reconciler {
	layout := o.Layout
	if layout == "" {
		layout = reconcile.LayoutAppend
	}
	return &reconcile.Reconciler{
		Layout:      layout,
		AllowDelete: o.AllowDelete,
		IgnoreSheet: o.IgnoreSheet,
		Logger:      o.Logger,
	}
}

// CompilePattern compiles an ignore pattern with match-from-start
// semantics: the expression must match at the beginning of the name, but
// need not cover all of it. A pattern "Temp" matches "Temp_2024"; a
// pattern "2024" does not.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + expr + `)`)
}
