package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/friedev/musicli/midi"
)

func TestGridFromEventsRoundTrip(t *testing.T) {
	g := NewGrid(10, 9)
	typeSymbols(g, "zx v")
	g.MoveCursor(Right)
	for i := 0; i < 4; i++ {
		g.MoveCursor(Up)
	}
	typeSymbols(g, "sd")

	instruments := make([]uint8, 10)
	instruments[0] = 24
	instruments[1] = 33

	events := g.Export(instruments, testTPB)
	imported, gotInstruments := GridFromEvents(events, 10, 9, testTPB)

	assert.Equal(t, g.Channels(), imported.Channels())
	assert.Equal(t, instruments, gotInstruments)

	// Every content row survives the trip.
	for step := 0; step < g.Len()-1; step++ {
		for ch := 0; ch < g.Channels(); ch++ {
			assert.Equal(t, g.Symbol(step, ch), imported.Symbol(step, ch),
				"step %d channel %d", step, ch)
		}
	}
}

func TestGridFromEventsDrumRoundTrip(t *testing.T) {
	g := NewGrid(10, 9)
	for i := 0; i < 9; i++ {
		g.MoveCursor(Right)
	}
	typeSymbols(g, "z x")

	events := g.Export(make([]uint8, 10), testTPB)
	imported, _ := GridFromEvents(events, 10, 9, testTPB)

	assert.Equal(t, Symbol('z'), imported.Symbol(0, 9))
	// The no-op strike on the rest step collapses back to rest.
	assert.Equal(t, Rest, imported.Symbol(1, 9))
	assert.Equal(t, Symbol('x'), imported.Symbol(2, 9))
}

func TestGridFromEventsClampsStrayPitches(t *testing.T) {
	events := []midi.Event{
		{Tick: 0, Type: midi.NoteOn, Channel: 0, Note: 20, Velocity: 100},
		{Tick: 240, Type: midi.NoteOn, Channel: 0, Note: 120, Velocity: 100},
	}

	g, _ := GridFromEvents(events, 1, -1, testTPB)

	assert.Equal(t, Symbol('z'), g.Symbol(0, 0))
	assert.Equal(t, Symbol('p'), g.Symbol(1, 0))
}

func TestGridFromEventsIgnoresVelocityZero(t *testing.T) {
	events := []midi.Event{
		{Tick: 0, Type: midi.NoteOn, Channel: 0, Note: 48, Velocity: 0},
	}

	g, _ := GridFromEvents(events, 1, -1, testTPB)
	assert.Equal(t, Rest, g.Symbol(0, 0))
}

func TestGridFromEventsWidensForHighChannels(t *testing.T) {
	events := []midi.Event{
		{Tick: 0, Type: midi.NoteOn, Channel: 12, Note: 48, Velocity: 100},
	}

	g, instruments := GridFromEvents(events, 4, -1, testTPB)

	assert.Equal(t, 13, g.Channels())
	assert.Len(t, instruments, 13)
	assert.Equal(t, Symbol('z'), g.Symbol(0, 12))
}

func TestGridFromEventsQuantizes(t *testing.T) {
	q := Quantum(testTPB)
	events := []midi.Event{
		// Slightly late and slightly early hits land on their steps.
		{Tick: q + q/8, Type: midi.NoteOn, Channel: 0, Note: 48, Velocity: 100},
		{Tick: 3*q - q/8, Type: midi.NoteOn, Channel: 0, Note: 50, Velocity: 100},
	}

	g, _ := GridFromEvents(events, 1, -1, testTPB)

	assert.Equal(t, Symbol('z'), g.Symbol(1, 0))
	assert.Equal(t, Symbol('x'), g.Symbol(3, 0))
}
