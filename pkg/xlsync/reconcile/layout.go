package reconcile

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout indicates an unsupported layout strategy value. It is a
// configuration error and fatal for the whole run.
var ErrInvalidLayout = errors.New("invalid layout strategy")

// Layout selects where newly discovered columns are placed in the old sheet.
type Layout string

const (
	// LayoutAppend places each new column after the last existing column.
	// No existing columns or data move.
	LayoutAppend Layout = "rightmost"
	// LayoutInsertShifting places each new column at the position it holds
	// in the new header, shifting existing columns and row data right.
	LayoutInsertShifting Layout = "moverows"
)

// String returns the CLI value of the layout.
func (l Layout) String() string {
	return string(l)
}

// ParseLayout maps a CLI sync-type value to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutAppend:
		return LayoutAppend, nil
	case LayoutInsertShifting:
		return LayoutInsertShifting, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidLayout, s, LayoutAppend, LayoutInsertShifting)
	}
}
