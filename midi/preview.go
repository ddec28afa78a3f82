package midi

import (
	"strings"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Preview echoes entered notes to a MIDI out port, so editing is audible
// without exporting first.
type Preview struct {
	send func(gomidi.Message) error
}

// OpenPreview connects to the first out port whose name contains portName,
// case-insensitively.
func OpenPreview(portName string) (*Preview, error) {
	want := strings.ToLower(portName)
	for _, port := range gomidi.GetOutPorts() {
		if !strings.Contains(strings.ToLower(port.String()), want) {
			continue
		}
		send, err := gomidi.SendTo(port)
		if err != nil {
			return nil, fault.Wrap(err, fmsg.With("could not open midi out port"))
		}
		return &Preview{send: send}, nil
	}
	return nil, fault.New("midi out port not found",
		fmsg.WithDesc("port not found", "No MIDI output matches "+portName))
}

// Strike sounds a note briefly: on now, off 100ms later. Safe to call on a
// nil Preview, which makes it a no-op when no port is configured.
func (p *Preview) Strike(channel, note, velocity uint8) {
	if p == nil || p.send == nil {
		return
	}
	p.send(gomidi.NoteOn(channel, note, velocity))
	go func() {
		time.Sleep(100 * time.Millisecond)
		p.send(gomidi.NoteOff(channel, note))
	}()
}

// Program switches the port's instrument so later strikes audition with it.
// Also a no-op on a nil Preview.
func (p *Preview) Program(channel, program uint8) {
	if p == nil || p.send == nil {
		return
	}
	p.send(gomidi.ProgramChange(channel, program))
}
