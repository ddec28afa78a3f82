package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/Southclaws/fault/ftag"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/friedev/musicli/config"
	"github.com/friedev/musicli/debug"
	"github.com/friedev/musicli/midi"
	"github.com/friedev/musicli/sequencer"
	"github.com/friedev/musicli/theme"
)

type Model struct {
	Grid        *sequencer.Grid
	Instruments []uint8
	Opts        *config.Options
	Theme       *theme.Theme
	Preview     *midi.Preview

	keys      keyMap
	help      help.Model
	status    string
	statusErr bool
	playing   bool
	quitting  bool
}

// playbackDoneMsg arrives when the fluidsynth process exits.
type playbackDoneMsg struct{}

func NewModel(grid *sequencer.Grid, instruments []uint8, opts *config.Options, th *theme.Theme, preview *midi.Preview) Model {
	return Model{
		Grid:        grid,
		Instruments: instruments,
		Opts:        opts,
		Theme:       th,
		Preview:     preview,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			m.Grid.MoveCursor(sequencer.Up)
		case key.Matches(msg, m.keys.Down):
			m.Grid.MoveCursor(sequencer.Down)
		case key.Matches(msg, m.keys.Left):
			m.Grid.MoveCursor(sequencer.Left)
		case key.Matches(msg, m.keys.Right):
			m.Grid.MoveCursor(sequencer.Right)

		case key.Matches(msg, m.keys.Delete):
			m.Grid.DeleteAtCursor()
		case key.Matches(msg, m.keys.Backspace):
			m.Grid.Backspace()

		case key.Matches(msg, m.keys.InstUp):
			m.cycleInstrument(1)
		case key.Matches(msg, m.keys.InstDown):
			m.cycleInstrument(-1)

		case key.Matches(msg, m.keys.Export):
			m.export()

		case key.Matches(msg, m.keys.Play):
			if cmd := m.exportAndPlay(); cmd != nil {
				return m, cmd
			}

		default:
			m.typeSymbol(msg.String())
		}

	case playbackDoneMsg:
		m.playing = false
		m.setStatus("Playback finished")

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// typeSymbol routes a plain keypress into the grid and echoes accepted notes
// to the preview port.
func (m *Model) typeSymbol(s string) {
	runes := []rune(s)
	if len(runes) != 1 {
		return
	}
	sym := sequencer.Symbol(runes[0])

	_, ch := m.Grid.Cursor()
	if !m.Grid.SetSymbol(sym) {
		debug.Log("input", "ignored %q on channel %d", s, ch)
		return
	}
	m.setStatus("")

	if m.Grid.IsPercussion(ch) {
		if pitch, ok := sequencer.DrumPitch(sym); ok {
			m.Preview.Strike(uint8(ch), pitch, midi.DefaultVelocity)
		}
	} else if pitch, ok := sequencer.MelodicPitch(sym); ok {
		m.Preview.Strike(uint8(ch), pitch, midi.DefaultVelocity)
	}
}

// cycleInstrument steps the active melodic channel through the GM programs,
// wrapping at both ends.
func (m *Model) cycleInstrument(delta int) {
	_, ch := m.Grid.Cursor()
	if m.Grid.IsPercussion(ch) {
		m.setError("percussion channel has no instrument")
		return
	}
	program := int(m.Instruments[ch]) + delta
	if program < 0 {
		program = config.MaxProgram
	}
	if program > config.MaxProgram {
		program = 0
	}
	m.Instruments[ch] = uint8(program)
	m.Preview.Program(uint8(ch), uint8(program))
	m.setStatus(fmt.Sprintf("channel %d: %d %s", ch, program, sequencer.InstrumentName(uint8(program))))
}

// export writes the grid to the configured file and reports on the status
// line either way.
func (m *Model) export() bool {
	events := m.Grid.Export(m.Instruments, m.Opts.TicksPerBeat)
	err := midi.WriteFile(m.Opts.File, events, m.Opts.TicksPerBeat, float64(m.Opts.BPM), m.Opts.Hex)
	if err != nil {
		debug.Log("export", "write failed: %v", err)
		if ftag.Get(err) == midi.TagNoTarget {
			m.setError("no output file; restart with one: musicli song.mid")
		} else {
			m.setError(err.Error())
		}
		return false
	}
	m.setStatus(fmt.Sprintf("Wrote %s", m.Opts.File))
	return true
}

// exportAndPlay exports, then hands the file to fluidsynth in the background.
// With no output file configured it plays through a throwaway temp file, so
// auditioning never requires saving first.
func (m *Model) exportAndPlay() tea.Cmd {
	if m.playing {
		m.setStatus("Already playing")
		return nil
	}

	path := m.Opts.File
	temp := path == ""
	if temp {
		f, err := os.CreateTemp("", "musicli-*.mid")
		if err != nil {
			m.setError(err.Error())
			return nil
		}
		events := m.Grid.Export(m.Instruments, m.Opts.TicksPerBeat)
		err = midi.Write(f, events, m.Opts.TicksPerBeat, float64(m.Opts.BPM))
		f.Close()
		if err != nil {
			os.Remove(f.Name())
			m.setError(err.Error())
			return nil
		}
		path = f.Name()
		m.setStatus("Playing (unsaved)")
	} else {
		if !m.export() {
			return nil
		}
		m.setStatus(fmt.Sprintf("Playing %s", path))
	}

	m.playing = true
	soundfont := m.Opts.Soundfont
	return func() tea.Msg {
		midi.Play(path, soundfont)
		if temp {
			os.Remove(path)
		}
		return playbackDoneMsg{}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	file := m.Opts.File
	if file == "" {
		file = "(no file)"
	}
	_, ch := m.Grid.Cursor()
	lane := sequencer.InstrumentName(m.Instruments[ch])
	if m.Grid.IsPercussion(ch) {
		lane = "drums"
	}
	header := headerStyle.Render(fmt.Sprintf("musicli  %s  %dbpm  ch%d %s",
		file, m.Opts.BPM, ch, lane))
	if m.playing {
		header += "  " + lipgloss.NewStyle().Foreground(m.Theme.Active()).Render("PLAYING")
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(m.gridView())
	if m.help.ShowAll {
		out.WriteString("\n")
		out.WriteString(m.legendView())
	}
	out.WriteString("\n")
	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
		if m.statusErr {
			statusStyle = lipgloss.NewStyle().Foreground(m.Theme.Error())
		}
		out.WriteString(statusStyle.Render(m.status))
	}
	out.WriteString("\n")
	out.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return out.String()
}

// gridView renders steps as rows flowing down and channels as columns, the
// convention the note entry keys assume.
func (m Model) gridView() string {
	cursorStep, cursorCh := m.Grid.Cursor()
	channels := m.Grid.Channels()

	dim := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	var b strings.Builder

	// Channel header, drum lane marked instead of numbered.
	b.WriteString("    ")
	for ch := 0; ch < channels; ch++ {
		label := fmt.Sprintf("%2d", ch)
		if m.Grid.IsPercussion(ch) {
			label = " " + string(m.Theme.Symbols.Drum)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(m.Theme.ChannelColor(ch, channels)).Render(label))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for step := 0; step < m.Grid.Len(); step++ {
		if step%4 == 0 {
			b.WriteString(dim.Render(fmt.Sprintf("%3d ", step/4+1)))
		} else {
			b.WriteString(dim.Render("  " + string(m.Theme.Symbols.Beat) + " "))
		}
		openRow := step == m.Grid.Len()-1
		for ch := 0; ch < channels; ch++ {
			sym := m.Grid.Symbol(step, ch)
			cell := rune(sym)
			if sym == sequencer.Rest {
				cell = m.Theme.Symbols.Rest
			}

			style := lipgloss.NewStyle().Foreground(m.Theme.ChannelColor(ch, channels))
			if openRow {
				style = dim
			}
			if step == cursorStep && ch == cursorCh {
				style = style.Foreground(m.Theme.Cursor()).Reverse(true)
			}
			b.WriteString(style.Render(" " + string(cell)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// legendView lists the note keys for the channel under the cursor.
func (m Model) legendView() string {
	_, ch := m.Grid.Cursor()

	var pairs []string
	if m.Grid.IsPercussion(ch) {
		for _, k := range sequencer.DrumKeys {
			pairs = append(pairs, fmt.Sprintf("%c=%s", k.Key, k.Label))
		}
	} else {
		for _, k := range sequencer.MelodicKeys() {
			label := strings.ReplaceAll(k.Label, "#", string(m.Theme.Symbols.Sharp))
			pairs = append(pairs, fmt.Sprintf("%c=%s", k.Key, label))
		}
	}

	style := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	var b strings.Builder
	for i, p := range pairs {
		b.WriteString(fmt.Sprintf("%-14s", p))
		if (i+1)%6 == 0 {
			b.WriteString("\n")
		}
	}
	return style.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}
