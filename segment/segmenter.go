package segment

import (
	"fmt"
	"strings"
)

// Mode selects segmentation granularity.
type Mode int

const (
	// Sentence splits text at sentence boundaries.
	Sentence Mode = iota
	// Paragraph splits text at blank lines.
	Paragraph
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case Sentence:
		return "sentence"
	case Paragraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Valid reports whether the mode is a recognized value.
func (m Mode) Valid() bool {
	return m == Sentence || m == Paragraph
}

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sentence":
		return Sentence, nil
	case "paragraph":
		return Paragraph, nil
	default:
		return 0, fmt.Errorf("segment: unknown alignment mode %q", s)
	}
}

// Segmenter splits a span of text into an ordered sequence of segments.
// Implementations must be deterministic and must not retain the input.
type Segmenter interface {
	Segment(text string) []string
}

// ForMode returns the built-in segmenter for a mode. The caller is
// responsible for using the same mode for both languages of a document
// pair; mixing granularities produces meaningless alignments.
func ForMode(m Mode) Segmenter {
	if m == Paragraph {
		return Paragraphs{}
	}
	return Sentences{}
}
