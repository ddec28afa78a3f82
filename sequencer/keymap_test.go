package sequencer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMelodicKeysWalkSemitones(t *testing.T) {
	base := uint8(DefaultOctave * NotesPerOctave)

	for i, r := range melodicKeyOrder {
		pitch, ok := MelodicPitch(Symbol(r))
		assert.True(t, ok, "key %c", r)
		assert.Equal(t, base+uint8(i), pitch, "key %c", r)
	}

	pitch, _ := MelodicPitch('z')
	assert.Equal(t, uint8(48), pitch)
	pitch, _ = MelodicPitch('p')
	assert.Equal(t, uint8(76), pitch)
}

func TestMelodicUnmappedKeys(t *testing.T) {
	for _, r := range "aflk" {
		_, ok := MelodicPitch(Symbol(r))
		assert.False(t, ok, "key %c", r)
	}
	_, ok := MelodicPitch(Rest)
	assert.False(t, ok)
}

func TestDrumKeysMatchKit(t *testing.T) {
	pitch, ok := DrumPitch('z')
	assert.True(t, ok)
	assert.Equal(t, uint8(36), pitch)
	assert.Equal(t, "Kick", DrumLabel('z'))

	pitch, _ = DrumPitch('x')
	assert.Equal(t, uint8(38), pitch)

	pitch, _ = DrumPitch('v')
	assert.Equal(t, uint8(42), pitch)

	_, ok = DrumPitch('s')
	assert.False(t, ok)
	assert.Equal(t, "", DrumLabel('s'))
}

func TestMappedRespectsLane(t *testing.T) {
	assert.True(t, Mapped('s', false))
	assert.False(t, Mapped('s', true))
	assert.True(t, Mapped('z', true))
	assert.True(t, Mapped('z', false))
	assert.False(t, Mapped(Rest, false))
	assert.False(t, Mapped(Rest, true))
}

func TestNoteName(t *testing.T) {
	assert.Equal(t, "C4", NoteName(48))
	assert.Equal(t, "C#4", NoteName(49))
	assert.Equal(t, "B4", NoteName(59))
	assert.Equal(t, "E6", NoteName(76))
}

func TestMelodicKeysOrderedForDisplay(t *testing.T) {
	keys := MelodicKeys()
	assert.Len(t, keys, len(melodicKeyOrder))
	assert.Equal(t, Symbol('z'), keys[0].Key)
	assert.Equal(t, "C4", keys[0].Label)

	for i := 1; i < len(keys); i++ {
		assert.Equal(t, keys[i-1].Pitch+1, keys[i].Pitch)
	}
}

func TestKeymapText(t *testing.T) {
	text := KeymapText()
	assert.True(t, strings.Contains(text, "z  C4"))
	assert.True(t, strings.Contains(text, "Kick"))
	assert.True(t, strings.Contains(text, "Drum keys"))
}
