package main

import (
	"fmt"
	"os"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/smf"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "ports":
		listPorts()
	case "help", "-h", "--help":
		usage()
	default:
		dumpFile(os.Args[1])
	}
}

func usage() {
	fmt.Println("Inspect MIDI files and ports")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  mididump FILE   - print every event in FILE")
	fmt.Println("  mididump ports  - list MIDI input/output ports")
}

func dumpFile(path string) {
	rd, err := smf.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: format %d, %d track(s), %v\n", path, rd.Format(), rd.NumTracks(), rd.TimeFormat)
	if tempos := rd.TempoChanges(); len(tempos) > 0 {
		fmt.Printf("tempo: %.1f bpm\n", tempos[0].BPM)
	}

	for i, tr := range rd.Tracks {
		fmt.Printf("\n=== Track %d ===\n", i)
		var tick uint32
		for _, ev := range tr {
			tick += ev.Delta
			fmt.Printf("  %8d  %s\n", tick, ev.Message.String())
		}
	}
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! The MIDI backend is hung.")
	}
}
