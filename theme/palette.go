package theme

type RGB [3]uint8

type Palette struct {
	Name   string
	Colors []RGB
}

// Default is the built-in palette: a dark-slate to warm ramp. UI roles read
// from fixed positions on it and channel columns spread across its bright half.
func Default() *Palette {
	return &Palette{
		Name: "musicli",
		Colors: []RGB{
			{0x16, 0x16, 0x2e}, // deep slate
			{0x2a, 0x2a, 0x4a}, // dark slate
			{0x56, 0x5f, 0x89}, // dusk blue
			{0x9a, 0xa5, 0xce}, // slate gray
			{0xc0, 0xca, 0xf5}, // pale foreground
			{0x7a, 0xa2, 0xf7}, // sky blue
			{0x2a, 0xc3, 0xde}, // cyan
			{0x9e, 0xce, 0x6a}, // green
			{0xe0, 0xaf, 0x68}, // amber
			{0xf7, 0x76, 0x8e}, // rose
		},
	}
}

// Lookup returns interpolated color for normalized value 0-1
func (p *Palette) Lookup(norm float64) RGB {
	if norm <= 0 {
		return p.Colors[0]
	}
	if norm >= 1 {
		return p.Colors[len(p.Colors)-1]
	}

	// Find the two colors to interpolate between
	pos := norm * float64(len(p.Colors)-1)
	i := int(pos)
	frac := pos - float64(i)

	c0 := p.Colors[i]
	c1 := p.Colors[i+1]

	return RGB{
		lerp(c0[0], c1[0], frac),
		lerp(c0[1], c1[1], frac),
		lerp(c0[2], c1[2], frac),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// Index returns color at specific index (no interpolation)
func (p *Palette) Index(i int) RGB {
	if i < 0 {
		return p.Colors[0]
	}
	if i >= len(p.Colors) {
		return p.Colors[len(p.Colors)-1]
	}
	return p.Colors[i]
}
