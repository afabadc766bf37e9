package interleave

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/interleave/match"
	"github.com/tsawler/interleave/model"
	"github.com/tsawler/interleave/segment"
)

func hasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestBuildEndToEnd(t *testing.T) {
	doc1 := model.Document{
		Lang:     "en",
		FullText: "Chapter 1\nIt was the best of times. It was the worst of times.\n",
	}
	doc2 := model.Document{
		Lang:     "zh",
		FullText: "第一章\n这是最好的时代。这是最坏的时代。\n",
	}

	doc, warnings, err := New(doc1, doc2).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if doc.Languages != [2]string{"en", "zh"} {
		t.Errorf("Languages = %v, want [en zh]", doc.Languages)
	}
	if got := doc.Front["en"]; got != "Chapter 1\n" {
		t.Errorf("Front[en] = %q, want %q", got, "Chapter 1\n")
	}
	if got := doc.Front["zh"]; got != "第一章\n" {
		t.Errorf("Front[zh] = %q, want %q", got, "第一章\n")
	}
	if len(doc.Main) != 2 {
		t.Fatalf("len(Main) = %d, want 2", len(doc.Main))
	}
	for i, b := range doc.Main {
		if !b.Complete() {
			t.Errorf("block %d not complete", i)
		}
	}
	if doc.Main[0].Segment1.Text != "It was the best of times." {
		t.Errorf("block 0 segment1 = %q", doc.Main[0].Segment1.Text)
	}
	if doc.Main[0].Segment2.Text != "这是最好的时代。" {
		t.Errorf("block 0 segment2 = %q", doc.Main[0].Segment2.Text)
	}
	if hasWarning(warnings, WarnSegmentMismatch) {
		t.Error("unexpected segment mismatch warning")
	}
	if hasWarning(warnings, WarnNoStartMarker) {
		t.Error("unexpected no-start-marker warning; markers are present")
	}
}

func TestBuildSegmentMismatch(t *testing.T) {
	doc1 := model.Document{Lang: "en", FullText: "One. Two. Three."}
	doc2 := model.Document{Lang: "zh", FullText: "一。二。"}

	doc, warnings, err := New(doc1, doc2).NoStructureDetection().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(doc.Main) != 3 {
		t.Fatalf("len(Main) = %d, want 3", len(doc.Main))
	}
	if doc.Main[2].Segment1 == nil {
		t.Error("block 2 should keep the longer side")
	}
	if doc.Main[2].Segment2 != nil {
		t.Error("block 2 segment2 should be absent")
	}
	if !hasWarning(warnings, WarnSegmentMismatch) {
		t.Error("expected segment mismatch warning")
	}
}

func TestBuildNoMarkerWarnings(t *testing.T) {
	doc1 := model.Document{Lang: "en", FullText: "Just prose with no markers. More prose."}
	doc2 := model.Document{Lang: "zh", FullText: "没有标记的文字。更多文字。"}

	doc, warnings, err := New(doc1, doc2).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Front["en"] != "" || doc.Front["zh"] != "" {
		t.Error("front should be empty when nothing is detected")
	}
	if !hasWarning(warnings, WarnNoStartMarker) {
		t.Error("expected no-start-marker warning")
	}
	if !hasWarning(warnings, WarnNoEndMarker) {
		t.Error("expected no-end-marker warning")
	}
}

func TestBuildEmptyDocument(t *testing.T) {
	doc1 := model.Document{Lang: "en", FullText: "Some text."}
	doc2 := model.Document{Lang: "zh", FullText: "   \n\t  "}

	_, _, err := New(doc1, doc2).Build()
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("error = %v, want ErrEmptyDocument", err)
	}
	if !strings.Contains(err.Error(), `"zh"`) {
		t.Errorf("error %q should name the empty language", err)
	}
}

func TestBuildUnknownAlignmentMode(t *testing.T) {
	doc1 := model.Document{Lang: "en", FullText: "Text."}
	doc2 := model.Document{Lang: "zh", FullText: "文字。"}

	_, _, err := New(doc1, doc2).AlignmentMode(segment.Mode(99)).Build()
	if !errors.Is(err, ErrUnknownAlignmentMode) {
		t.Fatalf("error = %v, want ErrUnknownAlignmentMode", err)
	}
}

func TestBuildUnknownImageMode(t *testing.T) {
	doc1 := model.Document{Lang: "en", FullText: "Text."}
	doc2 := model.Document{Lang: "zh", FullText: "文字。"}

	_, _, err := New(doc1, doc2).ImageMatchMode(match.Mode(99)).Build()
	if !errors.Is(err, match.ErrUnknownMode) {
		t.Fatalf("error = %v, want match.ErrUnknownMode", err)
	}

	// An invalid image mode is ignored once images are disabled.
	if _, _, err := New(doc1, doc2).ImageMatchMode(match.Mode(99)).NoImages().Build(); err != nil {
		t.Fatalf("Build() with NoImages error = %v", err)
	}
}

func TestBuildImageAttachment(t *testing.T) {
	doc1 := model.Document{
		Lang:     "en",
		FullText: "First sentence. Second sentence.",
		Images:   []model.Image{{Index: 0, Position: 0.5, Caption: "a map"}},
	}
	doc2 := model.Document{
		Lang:     "zh",
		FullText: "第一句。第二句。",
		Images:   []model.Image{{Index: 0, Position: 0.5, Caption: "地图"}},
	}

	doc, warnings, err := New(doc1, doc2).NoStructureDetection().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	total := 0
	for _, b := range doc.Main {
		for _, p := range b.Images {
			total++
			if !p.Matched() {
				t.Error("expected a matched pair in position mode")
			}
		}
	}
	if total != 1 {
		t.Fatalf("attached %d pairs, want 1", total)
	}
	if hasWarning(warnings, WarnUnmatchedImages) {
		t.Error("unexpected unmatched-images warning")
	}
}

func TestBuildUnmatchedImageWarning(t *testing.T) {
	doc1 := model.Document{
		Lang:     "en",
		FullText: "First sentence. Second sentence.",
		Images: []model.Image{
			{Index: 0, Position: 0.2},
			{Index: 1, Position: 0.8},
		},
	}
	doc2 := model.Document{Lang: "zh", FullText: "第一句。第二句。"}

	_, warnings, err := New(doc1, doc2).NoStructureDetection().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !hasWarning(warnings, WarnUnmatchedImages) {
		t.Error("expected unmatched-images warning")
	}
}

func TestBuildExplicitMarkers(t *testing.T) {
	doc1 := model.Document{
		Lang:     "en",
		FullText: "Foreword text.\nBEGIN STORY\nThe story itself. It continues.\n",
	}
	doc2 := model.Document{
		Lang:     "zh",
		FullText: "序言。\n正文开始\n故事本身。故事继续。\n",
	}

	doc, _, err := New(doc1, doc2).StartMarkers("begin story", "正文开始").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(doc.Front["en"], "Foreword text.") {
		t.Errorf("Front[en] = %q, want the foreword", doc.Front["en"])
	}
	if len(doc.Main) != 2 {
		t.Fatalf("len(Main) = %d, want 2", len(doc.Main))
	}
	if doc.Main[0].Segment1.Text != "The story itself." {
		t.Errorf("block 0 segment1 = %q", doc.Main[0].Segment1.Text)
	}
}

func TestPipelineImmutability(t *testing.T) {
	doc1 := model.Document{Lang: "en", FullText: "Chapter 1\nProse here. More prose.\n"}
	doc2 := model.Document{Lang: "zh", FullText: "第一章\n文字。更多文字。\n"}

	base := New(doc1, doc2)
	derived := base.NoStructureDetection()
	if derived == base {
		t.Fatal("configuration should return a new instance")
	}

	doc, _, err := base.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Front["en"] == "" {
		t.Error("base pipeline should still detect structure")
	}

	flat, _, err := derived.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if flat.Front["en"] != "" {
		t.Error("derived pipeline should not detect structure")
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}
	ws := []Warning{
		{Code: WarnNoStartMarker, Message: "no start marker found for en"},
		{Code: WarnSegmentMismatch, Message: "en has 3 segments, zh has 2"},
	}
	got := FormatWarnings(ws)
	want := "no_start_marker: no start marker found for en; segment_mismatch: en has 3 segments, zh has 2"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}
}

func TestMustBuild(t *testing.T) {
	doc1 := model.Document{Lang: "en", FullText: "Text here."}
	doc2 := model.Document{Lang: "zh", FullText: "文字。"}

	doc := MustBuild(New(doc1, doc2).Build())
	if doc == nil {
		t.Fatal("MustBuild returned nil")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustBuild should panic on error")
		}
	}()
	MustBuild(New(model.Document{}, doc2).Build())
}
