package midi

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile loads an SMF file back into events, flattening all tracks into one
// stream with absolute ticks. Returns the file's resolution and first tempo
// alongside, falling back to 960 ticks and 120 BPM when the file carries
// neither.
func ReadFile(path string) (events []Event, ticksPerBeat uint16, bpm float64, err error) {
	rd, err := smf.ReadFile(path)
	if err != nil {
		return nil, 0, 0, fault.Wrap(err,
			fmsg.WithDesc("could not read midi file", fmt.Sprintf("Could not read %s", path)),
			ftag.With(TagIO))
	}

	ticksPerBeat = 960
	if mt, ok := rd.TimeFormat.(smf.MetricTicks); ok {
		ticksPerBeat = uint16(mt)
	}
	bpm = 120
	if tempos := rd.TempoChanges(); len(tempos) > 0 {
		bpm = tempos[0].BPM
	}

	for _, tr := range rd.Tracks {
		var tick uint32
		var ch, key, vel, program uint8
		for _, ev := range tr {
			tick += ev.Delta
			switch {
			case ev.Message.GetNoteOn(&ch, &key, &vel):
				events = append(events, Event{
					Tick: tick, Type: NoteOn, Channel: ch, Note: key, Velocity: vel,
				})
			case ev.Message.GetNoteOff(&ch, &key, &vel):
				events = append(events, Event{
					Tick: tick, Type: NoteOff, Channel: ch, Note: key, Velocity: vel,
				})
			case ev.Message.GetProgramChange(&ch, &program):
				events = append(events, Event{
					Tick: tick, Type: ProgramChange, Channel: ch, Program: program,
				})
			}
		}
	}
	return events, ticksPerBeat, bpm, nil
}
