package midi

import "github.com/Southclaws/fault/ftag"

// Error tags let the UI tell recoverable conditions apart from real I/O
// failures without string matching.
const (
	TagNoTarget ftag.Kind = "export_target_missing"
	TagIO       ftag.Kind = "io"
)
