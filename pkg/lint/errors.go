package lint

import (
	"errors"
	"fmt"

	"github.com/mdtidy/mdtidy/pkg/yamlfm"
)

// ErrorKind classifies a failed lint run.
type ErrorKind int

const (
	// KindGeneric covers any rule failure without a more specific class,
	// including storage I/O errors surfaced during a run.
	KindGeneric ErrorKind = iota
	// KindMetadata marks a structured front-matter parse failure.
	KindMetadata
)

// ContentError is returned when a document's pipeline aborts. It carries the
// file path, the underlying error, and a classification; rendering it into a
// user-facing string happens at the presentation boundary.
type ContentError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func (e *ContentError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// wrapRuleError classifies an error raised during a rule's execution.
// ContentErrors pass through with the path filled in.
func wrapRuleError(path string, err error) error {
	var ce *ContentError
	if errors.As(err, &ce) {
		if ce.Path == "" {
			ce.Path = path
		}
		return ce
	}
	kind := KindGeneric
	var pe *yamlfm.ParseError
	if errors.As(err, &pe) {
		kind = KindMetadata
	}
	return &ContentError{Path: path, Kind: kind, Err: err}
}
