package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/friedev/musicli/config"
	"github.com/friedev/musicli/sequencer"
	"github.com/friedev/musicli/theme"
)

func testModel(file string) Model {
	opts := config.DefaultOptions()
	opts.File = file
	opts.Normalize()
	grid := sequencer.NewGrid(opts.Channels, opts.Percussion)
	return NewModel(grid, opts.Instruments, opts, theme.New(true), nil)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTypingNotesAdvancesCursor(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, keyPress('z'))

	assert.Equal(t, 2, m.Grid.Len())
	assert.Equal(t, sequencer.Symbol('z'), m.Grid.Symbol(0, 0))
	step, _ := m.Grid.Cursor()
	assert.Equal(t, 1, step)
}

func TestUnmappedKeyIsIgnored(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, keyPress('a'))

	assert.Equal(t, 1, m.Grid.Len())
	step, _ := m.Grid.Cursor()
	assert.Equal(t, 0, step)
}

func TestSpaceInsertsRest(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.Equal(t, 2, m.Grid.Len())
	assert.Equal(t, sequencer.Rest, m.Grid.Symbol(0, 0))
}

func TestArrowKeysMoveCursor(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	step, ch := m.Grid.Cursor()
	assert.Equal(t, 1, step)
	assert.Equal(t, 1, ch)
	assert.Equal(t, 2, m.Grid.Len())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	step, ch = m.Grid.Cursor()
	assert.Equal(t, 0, step)
	assert.Equal(t, 0, ch)
}

func TestBackspaceDropsLastStep(t *testing.T) {
	m := testModel("")
	m, _ = update(t, m, keyPress('z'))
	m, _ = update(t, m, keyPress('x'))
	assert.Equal(t, 3, m.Grid.Len())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, 2, m.Grid.Len())
	assert.Equal(t, sequencer.Symbol('z'), m.Grid.Symbol(0, 0))
}

func TestExportWithoutFileReportsStatus(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, keyPress('W'))

	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "no output file")
}

func TestExportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	m := testModel(path)
	m, _ = update(t, m, keyPress('z'))

	m, _ = update(t, m, keyPress('W'))

	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "Wrote")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestPlayWithoutFileUsesTempFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	m := testModel("")
	m, _ = update(t, m, keyPress('z'))

	m, cmd := update(t, m, keyPress('P'))

	assert.NotNil(t, cmd)
	assert.True(t, m.playing)
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "unsaved")
}

func TestPlayWithFileExportsFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	m := testModel(path)
	m, _ = update(t, m, keyPress('z'))

	m, cmd := update(t, m, keyPress('P'))

	assert.NotNil(t, cmd)
	assert.True(t, m.playing)
	assert.Contains(t, m.status, "Playing")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestPlayWhilePlayingRefused(t *testing.T) {
	m := testModel("")
	m.playing = true

	m, cmd := update(t, m, keyPress('P'))

	assert.Nil(t, cmd)
	assert.Equal(t, "Already playing", m.status)
}

func TestQuitKey(t *testing.T) {
	m := testModel("")

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestInstrumentCycling(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, keyPress('+'))
	assert.Equal(t, uint8(1), m.Instruments[0])
	assert.Contains(t, m.status, "Bright Acoustic Piano")

	m, _ = update(t, m, keyPress('-'))
	m, _ = update(t, m, keyPress('-'))
	assert.Equal(t, uint8(config.MaxProgram), m.Instruments[0])
}

func TestInstrumentCyclingRefusedOnDrumLane(t *testing.T) {
	m := testModel("")
	for i := 0; i < 9; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}

	m, _ = update(t, m, keyPress('+'))

	assert.True(t, m.statusErr)
}

func TestHelpToggle(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, keyPress('?'))
	assert.True(t, m.help.ShowAll)

	m, _ = update(t, m, keyPress('?'))
	assert.False(t, m.help.ShowAll)
}

func TestPlaybackDoneClearsFlag(t *testing.T) {
	m := testModel("")
	m.playing = true

	m, _ = update(t, m, playbackDoneMsg{})

	assert.False(t, m.playing)
	assert.Contains(t, m.status, "finished")
}

func TestViewRenders(t *testing.T) {
	m := testModel("")
	m, _ = update(t, m, keyPress('z'))

	view := m.View()

	assert.Contains(t, view, "musicli")
	assert.Contains(t, view, "z")
	// Drum lane header mark.
	assert.Contains(t, view, string(m.Theme.Symbols.Drum))
}

func TestLegendFollowsLane(t *testing.T) {
	m := testModel("")
	m, _ = update(t, m, keyPress('?'))

	view := m.View()
	assert.Contains(t, view, "C4")

	for i := 0; i < 9; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	view = m.View()
	assert.Contains(t, view, "Kick")
	assert.NotContains(t, view, "C#4")
}

func TestWindowSizeSetsHelpWidth(t *testing.T) {
	m := testModel("")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, m.help.Width)
}
