package model

import "strings"

// Document is one language's extracted material: the full text of the work
// plus any images encountered during extraction, in document order. It is
// produced by an extraction collaborator (see the extract package) and is
// immutable once produced.
type Document struct {
	// Lang is the BCP 47 language code for the document ("en", "zh", ...).
	Lang string

	// FullText is the complete extracted text.
	FullText string

	// Images are the extracted images in extraction order.
	Images []Image
}

// Empty reports whether the document contains no alignable text.
func (d Document) Empty() bool {
	return strings.TrimSpace(d.FullText) == ""
}

// Image is a single extracted image with the metadata needed for
// cross-language matching. Images smaller than 50x50 pixels are filtered
// out at extraction time and never reach the pipeline.
type Image struct {
	// Index is the image's position in extraction order (0-based).
	Index int

	// Page is the 1-indexed page number, or 0 when the source format has
	// no pages (ePub, plain text).
	Page int

	// Position is the fraction of the document traversed when the image
	// was encountered, in [0,1].
	Position float64

	// Caption is the image caption, if the source provided one.
	Caption string

	// Data is the raw image bytes as stored in the source container.
	Data []byte

	// Width and Height are the pixel dimensions. Both are >= 1.
	Width  int
	Height int
}

// HasPage reports whether the image carries a page number.
func (i Image) HasPage() bool {
	return i.Page > 0
}

// StructuredDocument is one document's text cut into front matter, main
// text, and back matter. Concatenating Front+Main+Back reconstructs the
// text the split was derived from with no character loss. Main is never
// empty when the input text was non-empty: when no boundaries are found
// the entire text becomes Main.
type StructuredDocument struct {
	Front string
	Main  string
	Back  string
}

// HasFront reports whether any front matter was detected.
func (s StructuredDocument) HasFront() bool {
	return strings.TrimSpace(s.Front) != ""
}

// HasBack reports whether any back matter was detected.
func (s StructuredDocument) HasBack() bool {
	return strings.TrimSpace(s.Back) != ""
}

// SpanKind identifies which span of a structured document a segment
// came from.
type SpanKind int

const (
	// SpanFront marks front matter (title, preface, table of contents).
	SpanFront SpanKind = iota
	// SpanMain marks the main body text.
	SpanMain
	// SpanBack marks back matter (appendix, notes, index).
	SpanBack
)

// String returns a human-readable representation of the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanFront:
		return "front"
	case SpanMain:
		return "main"
	case SpanBack:
		return "back"
	default:
		return "unknown"
	}
}

// Segment is one sentence or paragraph of text produced by a Segmenter.
type Segment struct {
	// Text is the segment content with surrounding whitespace trimmed.
	Text string

	// Lang is the BCP 47 language code of the segment.
	Lang string

	// Kind records which document span the segment came from.
	Kind SpanKind
}
