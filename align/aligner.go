package align

import "github.com/tsawler/interleave/model"

// Sequences pairs two segment sequences positionally into aligned blocks.
// It returns exactly max(len(segs1), len(segs2)) blocks: the first
// min(len1, len2) carry both segments, the remainder carry the longer
// side only. Segments are never dropped or reordered.
func Sequences(segs1, segs2 []model.Segment) []model.AlignedBlock {
	n := len(segs1)
	if len(segs2) > n {
		n = len(segs2)
	}

	blocks := make([]model.AlignedBlock, 0, n)
	for i := 0; i < n; i++ {
		var b model.AlignedBlock
		if i < len(segs1) {
			s := segs1[i]
			b.Segment1 = &s
		}
		if i < len(segs2) {
			s := segs2[i]
			b.Segment2 = &s
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// Segments wraps raw segment strings in model.Segment values tagged with
// their language and span kind.
func Segments(texts []string, lang string, kind model.SpanKind) []model.Segment {
	out := make([]model.Segment, 0, len(texts))
	for _, t := range texts {
		out = append(out, model.Segment{Text: t, Lang: lang, Kind: kind})
	}
	return out
}
