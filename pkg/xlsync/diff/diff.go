// Package diff computes column-level differences between two header rows.
package diff

// Rename is a same-position header value mismatch. Pos is 0-based.
type Rename struct {
	Pos  int
	From string
	To   string
}

// Changes holds the differences between an old and a new header row.
//
// A positional mismatch whose two names appear nowhere else in the other
// header is a pure rename: the column was relabeled in place. Such names
// are reported in Renames only, never as Missing or Obsolete, so a
// relabeled column is not torn down and recreated. A mismatch caused by
// surrounding structure (either name also occurs elsewhere in the other
// header) still contributes to Missing/Obsolete as usual.
type Changes struct {
	// Missing contains names present in the new header but absent from the
	// old header, in new-header order, excluding pure-rename targets.
	Missing []string
	// Obsolete contains names present in the old header but absent from the
	// new header, in old-header order, excluding pure-rename sources.
	Obsolete []string
	// Renames contains every positional mismatch within the overlapping
	// length of both headers, pure or not.
	Renames []Rename
}

// HasChanges reports whether any difference was detected.
func (c *Changes) HasChanges() bool {
	return len(c.Missing) > 0 || len(c.Obsolete) > 0 || len(c.Renames) > 0
}

// Diff compares two header rows by name and position.
// It is total: empty headers are valid and yield no changes.
func Diff(oldHeader, newHeader []string) *Changes {
	c := &Changes{}

	oldSet := toSet(oldHeader)
	newSet := toSet(newHeader)

	overlap := len(oldHeader)
	if len(newHeader) < overlap {
		overlap = len(newHeader)
	}
	renamedFrom := make(map[string]bool)
	renamedTo := make(map[string]bool)
	for p := 0; p < overlap; p++ {
		if oldHeader[p] == newHeader[p] {
			continue
		}
		c.Renames = append(c.Renames, Rename{Pos: p, From: oldHeader[p], To: newHeader[p]})
		if !newSet[oldHeader[p]] && !oldSet[newHeader[p]] {
			renamedFrom[oldHeader[p]] = true
			renamedTo[newHeader[p]] = true
		}
	}

	for _, name := range newHeader {
		if !oldSet[name] && !renamedTo[name] {
			c.Missing = append(c.Missing, name)
		}
	}

	for _, name := range oldHeader {
		if !newSet[name] && !renamedFrom[name] {
			c.Obsolete = append(c.Obsolete, name)
		}
	}

	return c
}

// Contains reports whether header holds name, by exact value equality.
// Duplicate names are distinct positions; the leftmost occurrence is
// canonical for membership.
func Contains(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}

func toSet(header []string) map[string]bool {
	set := make(map[string]bool, len(header))
	for _, name := range header {
		set[name] = true
	}
	return set
}
