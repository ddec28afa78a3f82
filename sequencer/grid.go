package sequencer

// Symbol is one grid cell: a typeable key bound to a note, or Rest.
type Symbol rune

// Rest is the empty cell. Space types it, and it is accepted on any channel.
const Rest Symbol = ' '

// Direction is one cursor move. Left/Right cross channels, Up/Down walk steps.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Grid is the edit surface: one symbol sequence per MIDI channel, every
// sequence kept the same length, with a single shared cursor. The final step
// is always an open row of rests so the cursor has somewhere to append; all
// growth and shrinkage runs through grow/removeStep so the channels can never
// drift apart.
type Grid struct {
	channels   [][]Symbol
	percussion int // channel index of the drum lane, -1 for none
	cursorStep int
	cursorCh   int
}

// NewGrid returns a grid of the given width holding a single open step.
func NewGrid(channels, percussion int) *Grid {
	if channels < 1 {
		channels = 1
	}
	if percussion < 0 || percussion >= channels {
		percussion = -1
	}
	g := &Grid{
		channels:   make([][]Symbol, channels),
		percussion: percussion,
	}
	for ch := range g.channels {
		g.channels[ch] = []Symbol{Rest}
	}
	return g
}

// Channels returns the grid width.
func (g *Grid) Channels() int {
	return len(g.channels)
}

// Len returns the step count, including the trailing open row.
func (g *Grid) Len() int {
	return len(g.channels[0])
}

// Cursor returns the active step and channel.
func (g *Grid) Cursor() (step, channel int) {
	return g.cursorStep, g.cursorCh
}

// Symbol returns the cell at (step, channel).
func (g *Grid) Symbol(step, channel int) Symbol {
	return g.channels[channel][step]
}

// Percussion returns the drum lane index, or -1 if the grid has none.
func (g *Grid) Percussion() int {
	return g.percussion
}

// IsPercussion reports whether a channel is the drum lane.
func (g *Grid) IsPercussion(channel int) bool {
	return channel == g.percussion
}

// MoveCursor moves one cell, clamped at every edge except the bottom: moving
// Down from the last step first grows every channel by one rest so the grid
// extends instead of stopping.
func (g *Grid) MoveCursor(d Direction) {
	switch d {
	case Left:
		if g.cursorCh > 0 {
			g.cursorCh--
		}
	case Right:
		if g.cursorCh < len(g.channels)-1 {
			g.cursorCh++
		}
	case Up:
		if g.cursorStep > 0 {
			g.cursorStep--
		}
	case Down:
		if g.cursorStep == g.Len()-1 {
			g.grow()
		}
		g.cursorStep++
	}
}

// SetSymbol writes a symbol at the cursor and advances one step. Writing on
// the open row grows the grid first so exactly one open row always trails.
// Returns false, leaving the grid untouched, for symbols the channel has no
// mapping for; Rest is accepted everywhere.
func (g *Grid) SetSymbol(s Symbol) bool {
	if s != Rest && !Mapped(s, g.IsPercussion(g.cursorCh)) {
		return false
	}
	if g.cursorStep == g.Len()-1 {
		g.grow()
	}
	g.channels[g.cursorCh][g.cursorStep] = s
	g.cursorStep++
	return true
}

// DeleteAtCursor removes the cursor's step from every channel in lock-step.
// Within the last two positions it degrades to Backspace instead, protecting
// the open row.
func (g *Grid) DeleteAtCursor() {
	if g.cursorStep >= g.Len()-2 {
		g.Backspace()
		return
	}
	g.removeStep(g.cursorStep)
	g.clampCursor()
}

// Backspace removes the second-to-last step (the newest real content) from
// every channel. Once only the open row and at most one step remain, it
// cancels the beat in progress instead: channels before the active one are
// cleared back to rest rather than shrinking further.
func (g *Grid) Backspace() {
	if g.Len() > 2 {
		g.removeStep(g.Len() - 2)
	} else {
		for ch := 0; ch < g.cursorCh; ch++ {
			for step := range g.channels[ch] {
				g.channels[ch][step] = Rest
			}
		}
	}
	g.clampCursor()
}

// grow appends one rest to every channel.
func (g *Grid) grow() {
	for ch := range g.channels {
		g.channels[ch] = append(g.channels[ch], Rest)
	}
}

// removeStep drops step i from every channel.
func (g *Grid) removeStep(i int) {
	for ch := range g.channels {
		g.channels[ch] = append(g.channels[ch][:i], g.channels[ch][i+1:]...)
	}
}

// ensureLen grows the grid until it holds at least n steps.
func (g *Grid) ensureLen(n int) {
	for g.Len() < n {
		g.grow()
	}
}

func (g *Grid) clampCursor() {
	if g.cursorStep > g.Len()-1 {
		g.cursorStep = g.Len() - 1
	}
	if g.cursorStep < 0 {
		g.cursorStep = 0
	}
}
