package interleave

import (
	"fmt"

	"github.com/tsawler/interleave/align"
	"github.com/tsawler/interleave/match"
	"github.com/tsawler/interleave/model"
	"github.com/tsawler/interleave/segment"
	"github.com/tsawler/interleave/structure"
)

// Pipeline provides a fluent interface for building an aligned bilingual
// document from two extracted documents. Each configuration method returns
// a new Pipeline instance, making it safe for concurrent use and allowing
// method chaining; Build executes the pipeline.
type Pipeline struct {
	doc1, doc2 model.Document

	options Options

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a copy of the Pipeline with a deep copy of options. This
// ensures immutability: each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		doc1:     p.doc1,
		doc2:     p.doc2,
		options:  p.options.clone(),
		err:      p.err,
		warnings: append([]Warning(nil), p.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Pipeline instance)
// ============================================================================

// AlignmentMode selects sentence or paragraph alignment granularity.
// The same mode applies to both languages.
func (p *Pipeline) AlignmentMode(m segment.Mode) *Pipeline {
	np := p.clone()
	np.options.alignmentMode = m
	return np
}

// Segmenter replaces the built-in segmenter for both languages, for
// callers with their own sentence-splitting model.
func (p *Pipeline) Segmenter(s segment.Segmenter) *Pipeline {
	np := p.clone()
	np.options.segmenter = s
	return np
}

// DetectStructure enables front/main/back boundary detection. It is on
// by default.
func (p *Pipeline) DetectStructure() *Pipeline {
	np := p.clone()
	np.options.detectStructure = true
	return np
}

// NoStructureDetection disables boundary detection; the whole text of
// each document is aligned as main matter.
func (p *Pipeline) NoStructureDetection() *Pipeline {
	np := p.clone()
	np.options.detectStructure = false
	return np
}

// StartMarkers supplies explicit start-of-main markers, one per language.
// An explicit marker takes precedence over pattern detection and is
// matched literally (case-insensitive, whitespace-normalized). An empty
// string keeps detection for that language.
func (p *Pipeline) StartMarkers(marker1, marker2 string) *Pipeline {
	np := p.clone()
	np.options.startMarker1 = marker1
	np.options.startMarker2 = marker2
	return np
}

// EndMarkers supplies explicit start-of-back-matter markers, one per
// language, with the same semantics as StartMarkers.
func (p *Pipeline) EndMarkers(marker1, marker2 string) *Pipeline {
	np := p.clone()
	np.options.endMarker1 = marker1
	np.options.endMarker2 = marker2
	return np
}

// ImageMatchMode selects the cross-language image matching strategy.
func (p *Pipeline) ImageMatchMode(m match.Mode) *Pipeline {
	np := p.clone()
	np.options.imageMode = m
	return np
}

// MaxImageDrift sets the page-mode cap on relative-position distance
// between paired images, as a fraction of document length.
func (p *Pipeline) MaxImageDrift(drift float64) *Pipeline {
	np := p.clone()
	np.options.maxDrift = drift
	return np
}

// ProximityTolerance sets the proximity-mode block-index window. Zero,
// the default, pairs only images on the same block.
func (p *Pipeline) ProximityTolerance(tolerance int) *Pipeline {
	np := p.clone()
	np.options.tolerance = tolerance
	return np
}

// NoImages skips image attachment entirely; the aligned document carries
// text only.
func (p *Pipeline) NoImages() *Pipeline {
	np := p.clone()
	np.options.extractImages = false
	return np
}

// ============================================================================
// Terminal Operation
// ============================================================================

// Build runs the pipeline: boundary detection, segmentation, positional
// alignment, and image matching, in that order. It returns the aligned
// document, any warnings encountered, and an error.
//
// Warnings indicate non-fatal irregularities (no marker found, segment
// count mismatch, unmatched images) where processing succeeded with a
// deterministic fallback. Errors are reserved for an empty document and
// unrecognized mode values.
func (p *Pipeline) Build() (*model.AlignedDocument, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	o := p.options
	if !o.alignmentMode.Valid() {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownAlignmentMode, int(o.alignmentMode))
	}
	if o.extractImages && !o.imageMode.Valid() {
		return nil, nil, fmt.Errorf("%w: %d", match.ErrUnknownMode, int(o.imageMode))
	}
	if p.doc1.Empty() {
		return nil, nil, fmt.Errorf("language %q: %w", p.doc1.Lang, ErrEmptyDocument)
	}
	if p.doc2.Empty() {
		return nil, nil, fmt.Errorf("language %q: %w", p.doc2.Lang, ErrEmptyDocument)
	}

	warnings := append([]Warning(nil), p.warnings...)

	// Boundary detection, independently per language.
	s1 := structure.Split(p.doc1.FullText, structure.SplitConfig{
		Lang:            p.doc1.Lang,
		StartMarker:     o.startMarker1,
		EndMarker:       o.endMarker1,
		DetectStructure: o.detectStructure,
	})
	s2 := structure.Split(p.doc2.FullText, structure.SplitConfig{
		Lang:            p.doc2.Lang,
		StartMarker:     o.startMarker2,
		EndMarker:       o.endMarker2,
		DetectStructure: o.detectStructure,
	})
	if o.detectStructure {
		warnings = append(warnings, boundaryWarnings(p.doc1.Lang, s1)...)
		warnings = append(warnings, boundaryWarnings(p.doc2.Lang, s2)...)
	}

	// Segmentation of the main spans.
	seg := o.segmenter
	if seg == nil {
		seg = segment.ForMode(o.alignmentMode)
	}
	main1 := align.Segments(seg.Segment(s1.Main), p.doc1.Lang, model.SpanMain)
	main2 := align.Segments(seg.Segment(s2.Main), p.doc2.Lang, model.SpanMain)

	// Positional alignment.
	blocks := align.Sequences(main1, main2)
	if len(main1) != len(main2) {
		warnings = append(warnings, Warning{
			Code: WarnSegmentMismatch,
			Message: fmt.Sprintf("%s has %d segments, %s has %d; trailing blocks are one-sided",
				p.doc1.Lang, len(main1), p.doc2.Lang, len(main2)),
		})
	}

	// Image matching.
	if o.extractImages {
		var err error
		blocks, err = match.Attach(blocks, p.doc1.Images, p.doc2.Images, match.Config{
			Mode:      o.imageMode,
			MaxDrift:  o.maxDrift,
			Tolerance: o.tolerance,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	doc := align.BuildDocument(p.doc1.Lang, p.doc2.Lang, s1, s2, blocks)
	if n := doc.Summary().UnmatchedImages; n > 0 && o.imageMode != match.Inline {
		warnings = append(warnings, Warning{
			Code:    WarnUnmatchedImages,
			Message: fmt.Sprintf("%d images have no counterpart and render full-width", n),
		})
	}
	return doc, warnings, nil
}

func boundaryWarnings(lang string, s model.StructuredDocument) []Warning {
	var out []Warning
	if !s.HasFront() {
		out = append(out, Warning{
			Code:    WarnNoStartMarker,
			Message: fmt.Sprintf("no start marker found for %s; whole text treated as main", lang),
		})
	}
	if !s.HasBack() {
		out = append(out, Warning{
			Code:    WarnNoEndMarker,
			Message: fmt.Sprintf("no back matter found for %s", lang),
		})
	}
	return out
}
