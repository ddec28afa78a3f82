package debug

import (
	"fmt"
	"os"
)

// CrashFile is where panics are recorded, in the working directory so the
// report survives even when the config directory is unwritable.
const CrashFile = "crash.log"

// WriteCrash records a recovered panic value and its stack trace to CrashFile
// and returns the path written, or an empty string if even that failed.
func WriteCrash(v any, stack []byte) string {
	f, err := os.Create(CrashFile)
	if err != nil {
		return ""
	}
	defer f.Close()

	fmt.Fprintf(f, "panic: %v\n\n%s", v, stack)
	return CrashFile
}
