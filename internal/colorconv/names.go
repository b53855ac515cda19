package colorconv

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// NameToHTML looks up a CSS Level 3 color name, ignoring case and
// surrounding space, and returns its "#rrggbb" form.
func NameToHTML(name string) (string, error) {
	// A Caser is stateful and not safe to share.
	key := cases.Fold().String(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return FormatHTML(int(c.R), int(c.G), int(c.B)), nil
}

// Names returns the known color names in alphabetical order.
func Names() []string {
	return append([]string(nil), colornames.Names...)
}
