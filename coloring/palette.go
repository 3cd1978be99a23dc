package coloring

// DefaultPalette is the hue list used for display, indexed by color number.
var DefaultPalette = Palette{"#CA3C66", "#A7E0E0", "#24D26D", "#C49FFF", "#F6FE78", "#FE81CC", "#8A97FE"}

// Palette is an ordered list of hex colors.
type Palette []string

// Hex returns the hue for color number n (1-based), cycling past the end.
// An empty palette or a non-positive n yields "".
func (p Palette) Hex(n int) string {
	if len(p) == 0 || n < 1 {
		return ""
	}

	return p[(n-1)%len(p)]
}
