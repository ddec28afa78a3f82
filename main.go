package main

import (
	"flag"
	"fmt"
	"os"
	rdebug "runtime/debug"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/friedev/musicli/config"
	"github.com/friedev/musicli/debug"
	"github.com/friedev/musicli/midi"
	"github.com/friedev/musicli/sequencer"
	"github.com/friedev/musicli/theme"
	"github.com/friedev/musicli/tui"
)

func main() {
	opts := config.DefaultOptions()

	prefs, err := config.LoadPrefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring unreadable config: %v\n", err)
		prefs = &config.Prefs{}
	}
	prefs.ApplyTo(opts)

	var (
		instruments string
		ascii       bool
		keymap      bool
	)

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: musicli [flags] [file.mid]")
		flag.PrintDefaults()
	}
	flag.BoolVar(&opts.Import, "import", false, "load file.mid into the grid before editing")
	flag.BoolVar(&opts.Import, "i", false, "shorthand for -import")
	flag.StringVar(&opts.Soundfont, "soundfont", opts.Soundfont, "soundfont passed to fluidsynth")
	flag.StringVar(&opts.Soundfont, "f", opts.Soundfont, "shorthand for -soundfont")
	flag.IntVar(&opts.Channels, "channels", opts.Channels, "number of channels")
	flag.IntVar(&opts.Percussion, "percussion", opts.Percussion, "drum channel index, -1 for none")
	tpb := flag.Int("ticks-per-beat", int(opts.TicksPerBeat), "MIDI resolution")
	flag.IntVar(&opts.BPM, "bpm", opts.BPM, "tempo")
	flag.IntVar(&opts.BPM, "b", opts.BPM, "shorthand for -bpm")
	flag.StringVar(&instruments, "instruments", "", "comma-separated GM program per channel, e.g. 0,33,24")
	flag.BoolVar(&opts.Unicode, "unicode", opts.Unicode, "draw with unicode symbols")
	flag.BoolVar(&ascii, "U", false, "ASCII-only display (same as -unicode=false)")
	flag.BoolVar(&opts.Hex, "hex", false, "write exports as a hex dump")
	flag.StringVar(&opts.MIDIOut, "midi-out", opts.MIDIOut, "MIDI out port for live note preview")
	flag.BoolVar(&opts.Debug, "debug", false, "log to ~/.config/musicli/debug.log")
	flag.BoolVar(&keymap, "keymap", false, "print the note keymaps and exit")
	flag.BoolVar(&keymap, "H", false, "shorthand for -keymap")
	flag.Parse()

	if keymap {
		fmt.Print(sequencer.KeymapText())
		return
	}

	opts.File = flag.Arg(0)
	if *tpb < 0 || *tpb > 32767 { // SMF metrical resolution is 15-bit
		*tpb = 0
	}
	opts.TicksPerBeat = uint16(*tpb)
	if ascii {
		opts.Unicode = false
	}
	if instruments != "" {
		parsed, err := parseInstruments(instruments)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad -instruments: %v\n", err)
			os.Exit(2)
		}
		opts.Instruments = parsed
	}
	opts.Normalize()

	if opts.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		}
		defer debug.Disable()
	}

	grid := sequencer.NewGrid(opts.Channels, opts.Percussion)
	if opts.Import {
		events, ticksPerBeat, bpm, err := midi.ReadFile(opts.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		opts.TicksPerBeat = ticksPerBeat
		opts.BPM = int(bpm + 0.5)
		grid, opts.Instruments = sequencer.GridFromEvents(events, opts.Channels, opts.Percussion, ticksPerBeat)
		opts.Channels = grid.Channels()
		debug.Log("import", "%s: %d events, %d channels", opts.File, len(events), opts.Channels)
	}

	var preview *midi.Preview
	if opts.MIDIOut != "" {
		preview, err = midi.OpenPreview(opts.MIDIOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	// A panic inside the TUI leaves no readable terminal output, so record it.
	defer func() {
		if r := recover(); r != nil {
			if path := debug.WriteCrash(r, rdebug.Stack()); path != "" {
				fmt.Fprintf(os.Stderr, "musicli crashed! Traceback written to %s\n", path)
			}
			os.Exit(1)
		}
	}()

	m := tui.NewModel(grid, opts.Instruments, opts, theme.New(opts.Unicode), preview)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Remember the session's ambient settings for next time.
	prefs.Soundfont = opts.Soundfont
	prefs.MIDIOut = opts.MIDIOut
	prefs.Unicode = &opts.Unicode
	prefs.BPM = opts.BPM
	if err := prefs.Save(); err != nil {
		debug.Log("config", "could not save prefs: %v", err)
	}
}

func parseInstruments(s string) ([]uint8, error) {
	var programs []uint8
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		if n < 0 || n > config.MaxProgram {
			return nil, fmt.Errorf("program %d out of range 0-%d", n, config.MaxProgram)
		}
		programs = append(programs, uint8(n))
	}
	return programs, nil
}
