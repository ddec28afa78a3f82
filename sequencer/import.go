package sequencer

import "github.com/friedev/musicli/midi"

// GridFromEvents rebuilds an editable grid from imported events, quantizing
// each NoteOn to its nearest step. NoteOffs carry no grid information (cells
// have no duration) and are dropped; ProgramChanges fill the instrument
// table. The grid widens past the requested channel count if the events use
// higher channels.
func GridFromEvents(events []midi.Event, channels, percussion int, ticksPerBeat uint16) (*Grid, []uint8) {
	quantum := Quantum(ticksPerBeat)
	if quantum == 0 {
		quantum = 1
	}
	for _, e := range events {
		if int(e.Channel) >= channels {
			channels = int(e.Channel) + 1
		}
	}

	g := NewGrid(channels, percussion)
	instruments := make([]uint8, g.Channels())
	for _, e := range events {
		ch := int(e.Channel)
		switch e.Type {
		case midi.ProgramChange:
			instruments[ch] = e.Program
		case midi.NoteOn:
			if e.Velocity == 0 {
				// NoteOn with velocity 0 is a disguised NoteOff.
				continue
			}
			step := int((e.Tick + quantum/2) / quantum)
			g.ensureLen(step + 2)
			g.channels[ch][step] = g.symbolFor(ch, e.Note)
		}
	}
	return g, instruments
}

// symbolFor reverse-maps a pitch to the key that would type it. Melodic
// pitches outside the keymap clamp to its nearest end; drum pitches with no
// slot (the no-op hit included) collapse back to rest.
func (g *Grid) symbolFor(ch int, pitch uint8) Symbol {
	if g.IsPercussion(ch) {
		for _, k := range DrumKeys {
			if k.Pitch == pitch {
				return k.Key
			}
		}
		return Rest
	}
	offset := int(pitch) - DefaultOctave*NotesPerOctave
	if offset < 0 {
		offset = 0
	}
	if offset >= len(melodicKeyOrder) {
		offset = len(melodicKeyOrder) - 1
	}
	return Symbol(melodicKeyOrder[offset])
}
