package colorconv

import (
	"fmt"
	"strconv"
)

// ParseHTML parses "#rgb" or "#rrggbb" into byte RGB. Hex digits may be
// either case. In the short form each digit is doubled, so "#abc" is
// "#aabbcc".
func ParseHTML(s string) (r, g, b int, err error) {
	if len(s) == 0 || s[0] != '#' || (len(s) != 4 && len(s) != 7) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHTML, s)
	}
	n, perr := strconv.ParseUint(s[1:], 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHTML, s)
	}
	if len(s) == 4 {
		return int(n>>8&0xF) * 0x11, int(n>>4&0xF) * 0x11, int(n&0xF) * 0x11, nil
	}
	return int(n>>16&0xFF), int(n>>8&0xFF), int(n&0xFF), nil
}

// FormatHTML formats byte RGB as "#rrggbb". Components outside [0, 255]
// saturate.
func FormatHTML(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", ClampByte(r), ClampByte(g), ClampByte(b))
}
