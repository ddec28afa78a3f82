package midi

import (
	"encoding/hex"
	"io"
	"os"
	"sort"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Write serializes events as a multi-track SMF stream: one track per channel,
// each track's events stable-sorted by tick, tempo on the first track.
func Write(w io.Writer, events []Event, ticksPerBeat uint16, bpm float64) error {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerBeat)

	byChannel := make(map[uint8][]Event)
	var channels []uint8
	for _, e := range events {
		if _, ok := byChannel[e.Channel]; !ok {
			channels = append(channels, e.Channel)
		}
		byChannel[e.Channel] = append(byChannel[e.Channel], e)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })

	for i, ch := range channels {
		track := byChannel[ch]
		sort.SliceStable(track, func(a, b int) bool { return track[a].Tick < track[b].Tick })

		var tr smf.Track
		if i == 0 {
			tr.Add(0, smf.MetaTempo(bpm))
		}
		var last uint32
		for _, e := range track {
			delta := e.Tick - last
			last = e.Tick
			switch e.Type {
			case NoteOn:
				tr.Add(delta, gomidi.NoteOn(e.Channel, e.Note, e.Velocity))
			case NoteOff:
				tr.Add(delta, gomidi.NoteOff(e.Channel, e.Note))
			case ProgramChange:
				tr.Add(delta, gomidi.ProgramChange(e.Channel, e.Program))
			}
		}
		tr.Close(0)
		if err := sm.Add(tr); err != nil {
			return fault.Wrap(err, fmsg.With("could not add track"))
		}
	}

	// A songless stream still gets its tempo track.
	if len(channels) == 0 {
		var tr smf.Track
		tr.Add(0, smf.MetaTempo(bpm))
		tr.Close(0)
		if err := sm.Add(tr); err != nil {
			return fault.Wrap(err, fmsg.With("could not add tempo track"))
		}
	}

	if _, err := sm.WriteTo(w); err != nil {
		return fault.Wrap(err, fmsg.With("could not serialize song"), ftag.With(TagIO))
	}
	return nil
}

// WriteFile writes the stream to path, as a hex dump instead when hexDump is
// set. An empty path is the caller forgetting to configure one, reported with
// its own tag so the UI can point at the fix.
func WriteFile(path string, events []Event, ticksPerBeat uint16, bpm float64, hexDump bool) error {
	if path == "" {
		return fault.New("no export destination",
			fmsg.WithDesc("no output file", "No output file configured. Pass one on the command line."),
			ftag.With(TagNoTarget))
	}

	f, err := os.Create(path)
	if err != nil {
		return fault.Wrap(err, fmsg.With("could not create output file"), ftag.With(TagIO))
	}
	defer f.Close()

	var w io.Writer = f
	if hexDump {
		d := hex.Dumper(f)
		defer d.Close()
		w = d
	}
	return Write(w, events, ticksPerBeat, bpm)
}
