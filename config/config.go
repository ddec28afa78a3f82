package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MIDI range limits shared by option clamping and the editor.
const (
	MaxChannels = 16
	MaxProgram  = 127
)

// Options carries everything the command line resolves to for one session.
type Options struct {
	File         string  // .mid destination, "" means no export target yet
	Import       bool    // read File into the grid before editing
	Soundfont    string  // passed to fluidsynth for playback
	Channels     int     // grid width
	Percussion   int     // channel index of the drum lane, -1 disables it
	Instruments  []uint8 // initial program per channel
	TicksPerBeat uint16
	BPM          int
	Unicode      bool
	Hex          bool // write exports as a hex dump instead of raw bytes
	MIDIOut      string
	Debug        bool
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Channels:     10,
		Percussion:   9,
		TicksPerBeat: 960,
		BPM:          120,
		Unicode:      true,
	}
}

// Normalize clamps option values into MIDI's legal ranges and sizes the
// instrument table to the channel count.
func (o *Options) Normalize() {
	if o.Channels < 1 {
		o.Channels = 1
	}
	if o.Channels > MaxChannels {
		o.Channels = MaxChannels
	}
	if o.Percussion >= o.Channels {
		o.Percussion = -1
	}
	if o.Percussion < 0 {
		o.Percussion = -1
	}
	if o.TicksPerBeat < 24 {
		o.TicksPerBeat = 24
	}
	if o.BPM < 1 {
		o.BPM = 1
	}

	instruments := make([]uint8, o.Channels)
	for i, program := range o.Instruments {
		if i >= o.Channels {
			break
		}
		if program > MaxProgram {
			program = MaxProgram
		}
		instruments[i] = program
	}
	o.Instruments = instruments
}

// Prefs are the few settings remembered between sessions in config.json.
type Prefs struct {
	Soundfont string `json:"soundfont,omitempty"`
	MIDIOut   string `json:"midiOut,omitempty"`
	Unicode   *bool  `json:"unicode,omitempty"`
	BPM       int    `json:"bpm,omitempty"`
}

// ApplyTo fills options from saved prefs; flags parsed afterwards win.
func (p *Prefs) ApplyTo(o *Options) {
	if p.Soundfont != "" {
		o.Soundfont = p.Soundfont
	}
	if p.MIDIOut != "" {
		o.MIDIOut = p.MIDIOut
	}
	if p.Unicode != nil {
		o.Unicode = *p.Unicode
	}
	if p.BPM > 0 {
		o.BPM = p.BPM
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "musicli"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadPrefs reads prefs from disk, or returns defaults if not found
func LoadPrefs() (*Prefs, error) {
	path, err := ConfigPath()
	if err != nil {
		return &Prefs{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Prefs{}, nil
		}
		return nil, err
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Save writes the prefs to disk
func (p *Prefs) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
