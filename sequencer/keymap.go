package sequencer

import (
	"fmt"
	"strings"
)

// Melodic entry walks the keyboard like a piano: zsxdcvgbhnjm covers one
// octave of semitones across the bottom rows, q2w3er5t6y7ui9o0p continues
// chromatically above it.
const melodicKeyOrder = "zsxdcvgbhnjmq2w3er5t6y7ui9o0p"

// DefaultOctave anchors the lowest melodic key ('z').
const DefaultOctave = 4

// NotesPerOctave is the chromatic octave size.
const NotesPerOctave = 12

// NoopNote is the reserved drum pitch struck for cells with no mapping.
const NoopNote uint8 = 0

var noteNames = [NotesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// NoteKey binds one typeable symbol to a MIDI note.
type NoteKey struct {
	Key   Symbol
	Pitch uint8
	Label string
}

// DrumKeys lays a General MIDI kit on the same physical rows as the melodic
// keys, so muscle memory carries between lanes.
var DrumKeys = []NoteKey{
	{'z', 36, "Kick"},
	{'x', 38, "Snare"},
	{'c', 39, "Clap"},
	{'v', 42, "Closed HH"},
	{'g', 46, "Open HH"},
	{'b', 41, "Low Tom"},
	{'h', 43, "Mid Tom"},
	{'n', 45, "High Tom"},
	{'j', 49, "Crash"},
	{'m', 51, "Ride"},
	{'q', 37, "Rimshot"},
	{'w', 56, "Cowbell"},
	{'e', 75, "Clave"},
	{'r', 70, "Maracas"},
	{'t', 54, "Tambourine"},
	{'y', 69, "Cabasa"},
}

var (
	melodicPitches = make(map[Symbol]uint8, len(melodicKeyOrder))
	drumPitches    = make(map[Symbol]uint8, len(DrumKeys))
)

func init() {
	base := uint8(DefaultOctave * NotesPerOctave)
	for i, r := range melodicKeyOrder {
		melodicPitches[Symbol(r)] = base + uint8(i)
	}
	for _, k := range DrumKeys {
		drumPitches[k.Key] = k.Pitch
	}
}

// MelodicKeys returns the ordered melodic bindings, labeled with note names.
func MelodicKeys() []NoteKey {
	keys := make([]NoteKey, 0, len(melodicKeyOrder))
	for _, r := range melodicKeyOrder {
		pitch := melodicPitches[Symbol(r)]
		keys = append(keys, NoteKey{Symbol(r), pitch, NoteName(pitch)})
	}
	return keys
}

// MelodicPitch resolves a symbol on a melodic channel.
func MelodicPitch(s Symbol) (uint8, bool) {
	pitch, ok := melodicPitches[s]
	return pitch, ok
}

// DrumPitch resolves a symbol on the percussion channel.
func DrumPitch(s Symbol) (uint8, bool) {
	pitch, ok := drumPitches[s]
	return pitch, ok
}

// DrumLabel names a drum symbol, or "" if unmapped.
func DrumLabel(s Symbol) string {
	for _, k := range DrumKeys {
		if k.Key == s {
			return k.Label
		}
	}
	return ""
}

// Mapped reports whether a symbol produces sound on the given kind of
// channel. Rest is never mapped; the editor accepts it unconditionally.
func Mapped(s Symbol, percussion bool) bool {
	if percussion {
		_, ok := drumPitches[s]
		return ok
	}
	_, ok := melodicPitches[s]
	return ok
}

// NoteName renders a pitch as e.g. "C#4", octaves counted from MIDI 0.
func NoteName(pitch uint8) string {
	return fmt.Sprintf("%s%d", noteNames[pitch%NotesPerOctave], pitch/NotesPerOctave)
}

// KeymapText renders both note tables as plain text.
func KeymapText() string {
	var b strings.Builder
	b.WriteString("Melodic keys:\n")
	for _, k := range MelodicKeys() {
		fmt.Fprintf(&b, "  %c  %s\n", k.Key, k.Label)
	}
	b.WriteString("\nDrum keys:\n")
	for _, k := range DrumKeys {
		fmt.Fprintf(&b, "  %c  %s (%s)\n", k.Key, k.Label, NoteName(k.Pitch))
	}
	return b.String()
}
