package model

// MatchConfidence describes how an image pair was established.
type MatchConfidence int

const (
	// ConfidenceExact means the pairing used identical indices: the same
	// extraction index (position mode) or the same block index
	// (proximity mode).
	ConfidenceExact MatchConfidence = iota
	// ConfidenceInferred means the pairing was heuristic: nearest relative
	// position (page mode) or a block index inside a tolerance window.
	ConfidenceInferred
)

// String returns a human-readable representation of the confidence.
func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceInferred:
		return "inferred"
	default:
		return "unknown"
	}
}

// ImagePair is one attached image slot on an aligned block. A fully matched
// pair has both sides set and renders side by side; an unmatched image has
// exactly one side set and renders full-width. Both sides nil is invalid
// and never produced.
type ImagePair struct {
	Image1     *Image
	Image2     *Image
	Confidence MatchConfidence
}

// Matched reports whether both languages contributed an image.
func (p ImagePair) Matched() bool {
	return p.Image1 != nil && p.Image2 != nil
}

// AlignedBlock is one paired unit of main-text content: the i-th segment of
// each language, plus any images attached to this position. One of the two
// segments may be nil, but only in trailing blocks produced when the two
// segment sequences differ in length.
type AlignedBlock struct {
	Segment1 *Segment
	Segment2 *Segment
	Images   []ImagePair
}

// Complete reports whether both languages contributed a segment.
func (b AlignedBlock) Complete() bool {
	return b.Segment1 != nil && b.Segment2 != nil
}

// AlignedDocument is the final artifact of the pipeline, consumed by a
// Renderer. Front and back matter are kept verbatim per language and are
// never segment-aligned; only the main text is paired block by block.
type AlignedDocument struct {
	// Languages holds the two language codes in input order.
	Languages [2]string

	// Front maps language code to that language's front matter text.
	Front map[string]string

	// Main is the ordered sequence of aligned blocks.
	Main []AlignedBlock

	// Back maps language code to that language's back matter text.
	Back map[string]string
}

// Stats summarizes an aligned document for diagnostics and logging.
type Stats struct {
	// FrontPresent and BackPresent report, per language code, whether any
	// front or back matter was detected.
	FrontPresent map[string]bool
	BackPresent  map[string]bool

	// MainBlocks is the number of aligned blocks in the main text.
	MainBlocks int

	// CompleteBlocks is the number of blocks with both segments present.
	CompleteBlocks int

	// MatchedImages is the number of cross-language image pairs.
	MatchedImages int

	// UnmatchedImages is the number of images attached without a
	// counterpart in the other language.
	UnmatchedImages int
}

// Summary computes summary statistics for the document.
func (d *AlignedDocument) Summary() Stats {
	s := Stats{
		FrontPresent: make(map[string]bool, 2),
		BackPresent:  make(map[string]bool, 2),
		MainBlocks:   len(d.Main),
	}
	for lang, text := range d.Front {
		s.FrontPresent[lang] = text != ""
	}
	for lang, text := range d.Back {
		s.BackPresent[lang] = text != ""
	}
	for _, b := range d.Main {
		if b.Complete() {
			s.CompleteBlocks++
		}
		for _, p := range b.Images {
			if p.Matched() {
				s.MatchedImages++
			} else {
				s.UnmatchedImages++
			}
		}
	}
	return s
}
