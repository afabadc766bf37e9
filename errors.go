package interleave

import "errors"

// Hard-failure conditions. Everything else the pipeline encounters is
// absorbed with a deterministic fallback and reported as a Warning.
var (
	// ErrEmptyDocument is returned when a document that is supposed to
	// be aligned has no text: there is nothing to align against.
	ErrEmptyDocument = errors.New("interleave: document has no text to align")

	// ErrUnknownAlignmentMode is returned for an unrecognized alignment
	// mode value. This is a configuration error, not a data error.
	ErrUnknownAlignmentMode = errors.New("interleave: unknown alignment mode")
)
