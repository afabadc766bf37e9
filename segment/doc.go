// Package segment splits spans of text into ordered sentence or paragraph
// segments for alignment.
//
// Sentence segmentation follows Unicode Standard Annex #29 sentence
// boundaries, which handles both Latin terminators (". ", "?", "!") and CJK
// full-width terminators (。！？) without language-specific code. Paragraph
// segmentation splits on blank lines. The Segmenter interface keeps the
// capability pluggable: callers may substitute their own implementation.
package segment
