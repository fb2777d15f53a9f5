package fieldstyle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/drift/pkg/graphics"
	"golang.org/x/image/colornames"
)

// ParseColor parses a color written as an SVG 1.1 color name ("red",
// "dodgerblue"), "#RRGGBB", or "#AARRGGBB".
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownColor)
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		if len(hex) == 6 {
			n |= 0xFF000000
		}
		return graphics.Color(n), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return fromRGBA(c), nil
}

// FormatColor returns the SVG name of c when one exists, otherwise its hex
// form. Opaque colors are written as #RRGGBB.
func FormatColor(c graphics.Color) string {
	for _, name := range colornames.Names {
		if fromRGBA(colornames.Map[name]) == c {
			return name
		}
	}
	if c>>24 == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}
