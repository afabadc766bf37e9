package align

import (
	"fmt"
	"testing"

	"github.com/tsawler/interleave/model"
)

func segs(lang string, texts ...string) []model.Segment {
	return Segments(texts, lang, model.SpanMain)
}

// Positional alignment law: max(m,n) blocks, the first min(m,n) fully
// paired, the remainder one-sided, in original order.
func TestSequences_PositionalLaw(t *testing.T) {
	tests := []struct {
		m, n int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{3, 2},
		{2, 5},
		{0, 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.m, tt.n), func(t *testing.T) {
			var t1, t2 []string
			for i := 0; i < tt.m; i++ {
				t1 = append(t1, fmt.Sprintf("en-%d", i))
			}
			for i := 0; i < tt.n; i++ {
				t2 = append(t2, fmt.Sprintf("zh-%d", i))
			}

			blocks := Sequences(segs("en", t1...), segs("zh", t2...))

			wantLen := tt.m
			if tt.n > wantLen {
				wantLen = tt.n
			}
			if len(blocks) != wantLen {
				t.Fatalf("got %d blocks, want %d", len(blocks), wantLen)
			}

			for i, b := range blocks {
				if i < tt.m {
					if b.Segment1 == nil || b.Segment1.Text != fmt.Sprintf("en-%d", i) {
						t.Errorf("block %d Segment1 = %v, want en-%d", i, b.Segment1, i)
					}
				} else if b.Segment1 != nil {
					t.Errorf("block %d Segment1 = %v, want absent", i, b.Segment1)
				}
				if i < tt.n {
					if b.Segment2 == nil || b.Segment2.Text != fmt.Sprintf("zh-%d", i) {
						t.Errorf("block %d Segment2 = %v, want zh-%d", i, b.Segment2, i)
					}
				} else if b.Segment2 != nil {
					t.Errorf("block %d Segment2 = %v, want absent", i, b.Segment2)
				}
			}
		})
	}
}

func TestSequences_MismatchedTail(t *testing.T) {
	blocks := Sequences(
		segs("en", "One.", "Two.", "Three."),
		segs("zh", "一。", "二。"),
	)

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if !blocks[0].Complete() || !blocks[1].Complete() {
		t.Error("first two blocks should be complete")
	}
	if blocks[2].Segment2 != nil {
		t.Errorf("block 3 Segment2 = %v, want absent", blocks[2].Segment2)
	}
	if blocks[2].Segment1 == nil || blocks[2].Segment1.Text != "Three." {
		t.Errorf("block 3 Segment1 = %v, want Three.", blocks[2].Segment1)
	}
}

func TestSegments_Tagging(t *testing.T) {
	out := Segments([]string{"a", "b"}, "en", model.SpanMain)
	if len(out) != 2 {
		t.Fatalf("got %d segments, want 2", len(out))
	}
	for _, s := range out {
		if s.Lang != "en" || s.Kind != model.SpanMain {
			t.Errorf("segment = %+v, want lang en kind main", s)
		}
	}
}

func TestBuildDocument(t *testing.T) {
	s1 := model.StructuredDocument{Front: "Preface\n", Main: "body", Back: "Appendix\n"}
	s2 := model.StructuredDocument{Front: "前言\n", Main: "正文", Back: ""}
	main := Sequences(segs("en", "body"), segs("zh", "正文"))

	doc := BuildDocument("en", "zh", s1, s2, main)

	if doc.Languages != [2]string{"en", "zh"} {
		t.Errorf("Languages = %v", doc.Languages)
	}
	if doc.Front["en"] != "Preface\n" || doc.Front["zh"] != "前言\n" {
		t.Errorf("Front = %v", doc.Front)
	}
	if doc.Back["en"] != "Appendix\n" || doc.Back["zh"] != "" {
		t.Errorf("Back = %v", doc.Back)
	}
	if len(doc.Main) != 1 || !doc.Main[0].Complete() {
		t.Errorf("Main = %v, want one complete block", doc.Main)
	}
}
