package patch

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"github.com/joshuapare/skelkit/internal/format"
)

// HasSkelExtension reports whether name ends in .skel, ignoring case.
func HasSkelExtension(name string) bool {
	fold := cases.Fold()
	return fold.String(filepath.Ext(name)) == format.Extension
}

// NameFilter selects skeletons by bone name. A file matches when its base
// name, with or without extension, equals the filter under Unicode case
// folding. The zero value matches everything.
type NameFilter struct {
	want string
	fold cases.Caser
}

// NewNameFilter creates a filter for name. Surrounding whitespace is ignored;
// an empty or blank name yields a filter that matches every file.
func NewNameFilter(name string) NameFilter {
	name = strings.TrimSpace(name)
	if name == "" {
		return NameFilter{}
	}
	fold := cases.Fold()
	return NameFilter{want: fold.String(name), fold: fold}
}

// Active reports whether the filter restricts anything.
func (f NameFilter) Active() bool {
	return f.want != ""
}

// Match reports whether path passes the filter.
func (f NameFilter) Match(path string) bool {
	if !f.Active() {
		return true
	}
	base := filepath.Base(path)
	if f.fold.String(base) == f.want {
		return true
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return f.fold.String(stem) == f.want
}
