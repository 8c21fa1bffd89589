package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbPattern   = regexp.MustCompile(`(?i)rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
	nonHexDigits = regexp.MustCompile(`[^0-9a-fA-F]`)
)

// NormalizeColor converts hex, short hex, rgb() and rgba() values to
// lower-case #rrggbb. Alpha is dropped. Values that cannot be normalized
// return "".
func NormalizeColor(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "#") {
		hex := strings.ToLower(nonHexDigits.ReplaceAllString(raw, ""))
		switch len(hex) {
		case 3, 4:
			return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		case 6:
			return "#" + hex
		case 8:
			return "#" + hex[:6]
		default:
			return ""
		}
	}

	m := rgbPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, channel := range m[1:] {
		n, err := strconv.Atoi(channel)
		if err != nil || n > 255 {
			n = 255
		}
		fmt.Fprintf(&b, "%02x", n)
	}
	return b.String()
}

// Normalize rewrites every palette hex and forbidden color to lower-case
// #rrggbb. Palette entries that cannot be parsed keep their raw value;
// unparseable forbidden entries are dropped.
func (g *BrandGuideline) Normalize() {
	if g.Colors == nil {
		return
	}
	for _, palette := range []map[string]ColorSpec{g.Colors.Primary, g.Colors.Semantic, g.Colors.Neutral} {
		for name, c := range palette {
			if hex := NormalizeColor(c.Hex); hex != "" {
				c.Hex = hex
				palette[name] = c
			}
		}
	}
	if g.Colors.Forbidden == nil {
		return
	}
	forbidden := make([]string, 0, len(g.Colors.Forbidden))
	for _, c := range g.Colors.Forbidden {
		if hex := NormalizeColor(c); hex != "" {
			forbidden = append(forbidden, hex)
		}
	}
	g.Colors.Forbidden = forbidden
}
