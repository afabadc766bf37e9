package interleave

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal irregularity encountered while
// building the aligned document.
type WarningCode int

const (
	// WarnNoStartMarker means no start-of-main boundary was found for a
	// language and its whole text was treated as main matter.
	WarnNoStartMarker WarningCode = iota
	// WarnNoEndMarker means no back-matter boundary was found for a
	// language.
	WarnNoEndMarker
	// WarnSegmentMismatch means the two languages produced different
	// segment counts and trailing blocks have an absent side.
	WarnSegmentMismatch
	// WarnUnmatchedImages means one or more images could not be paired
	// across languages and will render full-width.
	WarnUnmatchedImages
)

// String returns the warning code's name.
func (c WarningCode) String() string {
	switch c {
	case WarnNoStartMarker:
		return "no_start_marker"
	case WarnNoEndMarker:
		return "no_end_marker"
	case WarnSegmentMismatch:
		return "segment_mismatch"
	case WarnUnmatchedImages:
		return "unmatched_images"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue raised during pipeline processing. The
// build succeeded but the result may be imperfect.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings renders a warning list as a single semicolon-separated
// string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
