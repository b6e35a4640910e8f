package xlsx2json

import (
	"log/slog"
	"time"
)

// Stats counts what happened to one document.
type Stats struct {
	// Entries is the number of catalog entries read.
	Entries int
	// Inserted is the number of entries under the prefix.
	Inserted int
	// Skipped is the number of entries outside the prefix.
	Skipped     int
	Transformed int
	Warnings    int
	Duration    time.Duration
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("entries", s.Entries),
		slog.Int("inserted", s.Inserted),
		slog.Int("skipped", s.Skipped),
		slog.Int("transformed", s.Transformed),
		slog.Int("warnings", s.Warnings),
		slog.Duration("duration", s.Duration),
	)
}
