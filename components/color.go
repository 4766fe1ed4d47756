package components

import "github.com/lucasb-eyer/go-colorful"

// MustHex parses a #rrggbb literal; for package-level palettes only
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
