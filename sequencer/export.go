package sequencer

import "github.com/friedev/musicli/midi"

// Quantum returns the tick length of one grid step: a sixteenth note.
func Quantum(ticksPerBeat uint16) uint32 {
	return uint32(ticksPerBeat) / 4
}

// Export flattens the grid into timed MIDI events, channel by channel. The
// result is chronological within each channel but not globally sorted; the
// writer groups by channel anyway.
func (g *Grid) Export(instruments []uint8, ticksPerBeat uint16) []midi.Event {
	quantum := Quantum(ticksPerBeat)
	var events []midi.Event
	for ch := range g.channels {
		if g.IsPercussion(ch) {
			events = append(events, g.exportDrums(ch, quantum)...)
			continue
		}
		var program uint8
		if ch < len(instruments) {
			program = instruments[ch]
		}
		events = append(events, g.exportMelodic(ch, program, quantum)...)
	}
	return events
}

// exportMelodic plays one channel legato: each note holds until the next one
// cuts it at its own tick. Internal rests do not release the held note; only
// a rest on the final step does, a quarter-step after its tick.
func (g *Grid) exportMelodic(ch int, program uint8, quantum uint32) []midi.Event {
	steps := g.channels[ch]
	events := []midi.Event{{
		Type:    midi.ProgramChange,
		Channel: uint8(ch),
		Program: program,
	}}

	sounding := false
	var prev uint8
	for i, s := range steps {
		tick := uint32(i) * quantum
		pitch, ok := MelodicPitch(s)
		if !ok {
			if i == len(steps)-1 && sounding {
				events = append(events, noteOff(tick+quantum/4, ch, prev))
				sounding = false
			}
			continue
		}
		if sounding {
			events = append(events, noteOff(tick, ch, prev))
		}
		events = append(events, noteOn(tick, ch, pitch))
		sounding = true
		prev = pitch
	}
	return events
}

// exportDrums strikes on every step, rests included: cells with no drum
// mapping fire NoopNote. Each strike is cut one tick before the next lands,
// and the last is closed on the final step's own tick.
func (g *Grid) exportDrums(ch int, quantum uint32) []midi.Event {
	steps := g.channels[ch]
	var events []midi.Event

	sounding := false
	var prev uint8
	for i, s := range steps {
		tick := uint32(i) * quantum
		if sounding {
			events = append(events, noteOff(tick-1, ch, prev))
		}
		hit, ok := DrumPitch(s)
		if !ok {
			hit = NoopNote
		}
		events = append(events, noteOn(tick, ch, hit))
		sounding = true
		prev = hit
	}
	if sounding {
		events = append(events, noteOff(uint32(len(steps)-1)*quantum, ch, prev))
	}
	return events
}

func noteOn(tick uint32, ch int, note uint8) midi.Event {
	return midi.Event{
		Tick:     tick,
		Type:     midi.NoteOn,
		Channel:  uint8(ch),
		Note:     note,
		Velocity: midi.DefaultVelocity,
	}
}

func noteOff(tick uint32, ch int, note uint8) midi.Event {
	return midi.Event{
		Tick:    tick,
		Type:    midi.NoteOff,
		Channel: uint8(ch),
		Note:    note,
	}
}
