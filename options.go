package interleave

import (
	"github.com/tsawler/interleave/match"
	"github.com/tsawler/interleave/segment"
)

// Options holds configuration for one pipeline run. It is passed by value
// into each stage; no stage mutates it.
type Options struct {
	// Alignment
	alignmentMode segment.Mode
	segmenter     segment.Segmenter // nil means ForMode(alignmentMode)

	// Structure detection
	detectStructure bool
	startMarker1    string
	startMarker2    string
	endMarker1      string
	endMarker2      string

	// Images
	extractImages bool
	imageMode     match.Mode
	maxDrift      float64
	tolerance     int
}

// defaultOptions returns the default pipeline options: sentence alignment,
// structure detection on, positional image matching.
func defaultOptions() Options {
	return Options{
		alignmentMode:   segment.Sentence,
		detectStructure: true,
		extractImages:   true,
		imageMode:       match.Position,
		maxDrift:        match.DefaultMaxDrift,
	}
}

// clone creates a copy of the Options. All fields are values, so the
// shallow copy is a deep one.
func (o Options) clone() Options {
	return o
}
