package midi

import (
	"os"
	"os/exec"

	"github.com/friedev/musicli/debug"
)

// DefaultSoundfont is tried when none is configured.
const DefaultSoundfont = "/usr/share/soundfonts/default.sf2"

// Play renders an exported file through fluidsynth, blocking until the
// process exits. Failures are logged, not returned: playback is best-effort
// and the editor keeps running either way.
func Play(path, soundfont string) {
	if soundfont == "" {
		if _, err := os.Stat(DefaultSoundfont); err == nil {
			soundfont = DefaultSoundfont
		}
	}

	args := []string{"-i"}
	if soundfont != "" {
		args = append(args, soundfont)
	}
	args = append(args, path)

	debug.Log("play", "fluidsynth %v", args)
	if err := exec.Command("fluidsynth", args...).Run(); err != nil {
		debug.Log("play", "fluidsynth failed: %v", err)
	}
}
