package lint

import (
	"time"

	"github.com/goodsign/monday"
)

// FileMeta identifies the document a run operates on.
type FileMeta struct {
	Path       string
	Name       string // base name without directory
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// FileTimes carries document timestamps from storage.
type FileTimes struct {
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Context is the immutable per-run bundle handed to each rule. It is
// constructed fresh per document per run and never shared across documents.
type Context struct {
	CreatedAt  time.Time
	ModifiedAt time.Time
	FileName   string
	Locale     monday.Locale

	// Now and AlreadyModified are populated before the timestamp stage.
	Now             time.Time
	AlreadyModified bool

	// Populated before the key-sort stage so it can stay consistent with
	// what the timestamp rule just wrote.
	CurrentTimeFormatted string
	DateModifiedKey      string
	TimestampUpdated     bool
}
