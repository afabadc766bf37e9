package align

import "github.com/tsawler/interleave/model"

// BuildDocument composes the two structured documents and the aligned main
// blocks into the final artifact. It is pure composition: front and back
// matter are stored verbatim per language, never segment-aligned, because
// titles, copyright pages, and indices are rarely parallel enough for
// positional pairing to mean anything.
func BuildDocument(lang1, lang2 string, s1, s2 model.StructuredDocument, main []model.AlignedBlock) *model.AlignedDocument {
	return &model.AlignedDocument{
		Languages: [2]string{lang1, lang2},
		Front: map[string]string{
			lang1: s1.Front,
			lang2: s2.Front,
		},
		Main: main,
		Back: map[string]string{
			lang1: s1.Back,
			lang2: s2.Back,
		},
	}
}
