package midi

// MIDI message types
const (
	NoteOn        uint8 = 0x90
	NoteOff       uint8 = 0x80
	ProgramChange uint8 = 0xC0
)

// DefaultVelocity is used for every exported note.
const DefaultVelocity uint8 = 127

// Event is one timed message in an exported stream. Ticks are absolute from
// the start of the song; the writer converts them to per-track deltas.
type Event struct {
	Tick     uint32
	Type     uint8 // NoteOn, NoteOff, ProgramChange
	Channel  uint8
	Note     uint8 // NoteOn, NoteOff
	Velocity uint8 // NoteOn, NoteOff
	Program  uint8 // ProgramChange
}
