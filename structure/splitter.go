package structure

import (
	"strings"

	"github.com/tsawler/interleave/model"
)

// SplitConfig carries the caller-supplied inputs for one document's split.
type SplitConfig struct {
	// Lang is the BCP 47 language code of the text.
	Lang string

	// StartMarker, when non-empty, is matched literally and takes
	// precedence over pattern detection for the start of main text.
	StartMarker string

	// EndMarker, when non-empty, is matched literally and takes
	// precedence over pattern detection for the start of back matter.
	EndMarker string

	// DetectStructure enables boundary detection. When false the whole
	// text becomes main matter.
	DetectStructure bool
}

// minMainDivisor defines the minimal-content guard: a detected main span
// shorter than 1/minMainDivisor of the text discards the boundaries.
const minMainDivisor = 100

// Split cuts a document's text into front matter, main text, and back
// matter. The start boundary cuts just after the matched start marker's
// line, so the marker stays in front; the end boundary cuts just before
// the matched back-matter marker's line, so that marker stays in back.
// Concatenating the three spans reconstructs the input exactly.
//
// Markers that are absent, out of order, or that would leave the main span
// empty or negligible all degrade to front="", main=text, back="": a text
// without usable structure is still fully alignable.
func Split(text string, cfg SplitConfig) model.StructuredDocument {
	whole := model.StructuredDocument{Main: text}
	if !cfg.DetectStructure || text == "" {
		return whole
	}

	det := NewDetector(cfg.Lang)

	// Start of main: cut after the marker line.
	start := 0
	if c := startCandidates(det, text, cfg); len(c) > 0 {
		start = c[0].End
	}

	// Start of back matter: cut before the marker line, searching only
	// past the start boundary.
	end := len(text)
	for _, c := range endCandidates(det, text, cfg) {
		if c.Pos >= start {
			end = c.Pos
			break
		}
	}
	if end <= start {
		end = len(text)
	}

	main := text[start:end]
	if strings.TrimSpace(main) == "" || len(main)*minMainDivisor < len(text) {
		// The detected boundaries would leave no usable body; an
		// over-aggressive match is worse than no split at all.
		return whole
	}

	return model.StructuredDocument{
		Front: text[:start],
		Main:  main,
		Back:  text[end:],
	}
}

func startCandidates(det *Detector, text string, cfg SplitConfig) []Candidate {
	if cfg.StartMarker != "" {
		return det.DetectLiteral(text, cfg.StartMarker, MainStart)
	}
	return filterKind(det.Detect(text), MainStart)
}

func endCandidates(det *Detector, text string, cfg SplitConfig) []Candidate {
	if cfg.EndMarker != "" {
		return det.DetectLiteral(text, cfg.EndMarker, BackStart)
	}
	return filterKind(det.Detect(text), BackStart)
}

func filterKind(cands []Candidate, kind Kind) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
