// Package interleave turns two independently extracted monolingual
// documents (the same work in two languages) into one interleaved
// bilingual document suitable for side-by-side rendering.
//
// Basic usage:
//
//	doc, warnings, err := interleave.New(docEN, docZH).Build()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", interleave.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := interleave.New(docEN, docZH).
//	    AlignmentMode(segment.Paragraph).
//	    ImageMatchMode(match.Page).
//	    StartMarkers("Chapter 1", "第一章").
//	    Build()
//
// The pipeline degrades gracefully: absent markers, mismatched segment
// counts, and unpairable images all produce deterministic fallbacks and
// warnings, never errors. The only hard failures are an empty document
// and an unrecognized mode.
package interleave

import "github.com/tsawler/interleave/model"

// New returns a Pipeline over the two documents. Configuration methods
// return new Pipeline instances, so a configured pipeline can be reused
// and shared; Build is the terminal operation.
func New(doc1, doc2 model.Document) *Pipeline {
	return &Pipeline{
		doc1:    doc1,
		doc2:    doc2,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustBuild wraps a call to Build and panics on error, discarding
// warnings.
//
// Example:
//
//	doc := interleave.MustBuild(interleave.New(d1, d2).Build())
func MustBuild[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
