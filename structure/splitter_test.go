package structure

import (
	"strings"
	"testing"
)

func TestSplit_NoDetection(t *testing.T) {
	text := "Chapter 1\nBody.\nAppendix\nEnd.\n"
	got := Split(text, SplitConfig{Lang: "en", DetectStructure: false})

	if got.Front != "" || got.Back != "" {
		t.Errorf("front/back = %q/%q, want empty", got.Front, got.Back)
	}
	if got.Main != text {
		t.Errorf("main = %q, want whole text", got.Main)
	}
}

func TestSplit_FallbackWhenNoMarker(t *testing.T) {
	text := "plain prose with no structure\nmore prose\n"
	got := Split(text, SplitConfig{Lang: "en", DetectStructure: true})

	if got.Front != "" || got.Main != text || got.Back != "" {
		t.Errorf("Split = %+v, want whole text as main", got)
	}
}

func TestSplit_DetectedBoundaries(t *testing.T) {
	text := "The Title\n\nChapter 1\nThe story happens here and runs on for a while.\n\nAppendix\nExtra tables.\n"
	got := Split(text, SplitConfig{Lang: "en", DetectStructure: true})

	if !strings.HasSuffix(got.Front, "Chapter 1\n") {
		t.Errorf("front = %q, want it to end with the marker line", got.Front)
	}
	if !strings.HasPrefix(got.Back, "Appendix") {
		t.Errorf("back = %q, want it to start with the marker line", got.Back)
	}
	if !strings.Contains(got.Main, "The story happens") {
		t.Errorf("main = %q, missing body text", got.Main)
	}
}

func TestSplit_Lossless(t *testing.T) {
	texts := []string{
		"The Title\n\nChapter 1\nThe story happens here and keeps going.\n\nAppendix\nExtra.\n",
		"第一章\n你好世界。天气晴朗。\n",
		"no markers at all\n",
		"",
	}
	for _, text := range texts {
		got := Split(text, SplitConfig{Lang: "en", DetectStructure: true})
		if rebuilt := got.Front + got.Main + got.Back; rebuilt != text {
			t.Errorf("Front+Main+Back = %q, want %q", rebuilt, text)
		}
	}
}

// Re-splitting a reconstructed document with detection off must return the
// identical spans: no structural loss on round trips.
func TestSplit_Idempotent(t *testing.T) {
	text := "Title\n\nChapter 1\nA long enough body for the split to hold.\n\nAppendix\nEnd.\n"
	first := Split(text, SplitConfig{Lang: "en", DetectStructure: true})

	rebuilt := first.Front + first.Main + first.Back
	second := Split(rebuilt, SplitConfig{Lang: "en", DetectStructure: false})
	if second.Main != rebuilt || second.Front != "" || second.Back != "" {
		t.Errorf("re-split = %+v, want untouched text as main", second)
	}
}

func TestSplit_ExplicitMarkers(t *testing.T) {
	text := "Ignore this heading\nSTART HERE\nThe body of the work, long enough to keep.\nEND HERE\nTrailing notes.\n"
	got := Split(text, SplitConfig{
		Lang:            "en",
		StartMarker:     "start here",
		EndMarker:       "end here",
		DetectStructure: true,
	})

	if !strings.HasSuffix(got.Front, "START HERE\n") {
		t.Errorf("front = %q, want explicit start marker honored", got.Front)
	}
	if !strings.HasPrefix(got.Back, "END HERE") {
		t.Errorf("back = %q, want explicit end marker honored", got.Back)
	}
	if !strings.Contains(got.Main, "The body of the work") {
		t.Errorf("main = %q, missing body", got.Main)
	}
}

func TestSplit_EndBeforeStartIgnored(t *testing.T) {
	// The only back-matter marker precedes the main-text start; the end
	// boundary must fall back to the end of the text.
	text := "Notes\nSome preamble references.\nChapter 1\nActual body text that runs long enough.\n"
	got := Split(text, SplitConfig{Lang: "en", EndMarker: "Notes", DetectStructure: true})

	if got.Back != "" {
		t.Errorf("back = %q, want empty when end marker precedes start", got.Back)
	}
	if !strings.Contains(got.Main, "Actual body text") {
		t.Errorf("main = %q, missing body", got.Main)
	}
}

func TestSplit_TinyMainFallsBack(t *testing.T) {
	// The detected boundaries would leave a negligible main span; the
	// split must degrade to whole-text-as-main.
	var b strings.Builder
	b.WriteString(strings.Repeat("front matter filler line\n", 200))
	b.WriteString("Chapter 1\nshort\n")
	b.WriteString("Appendix\n")
	b.WriteString(strings.Repeat("back matter filler line\n", 200))
	text := b.String()

	got := Split(text, SplitConfig{Lang: "en", DetectStructure: true})
	if got.Main != text {
		t.Errorf("main length = %d, want fallback to whole text (%d)", len(got.Main), len(text))
	}
}

func TestSplit_ScenarioChapterLines(t *testing.T) {
	en := "Chapter 1\nHello world. It is sunny."
	zh := "第一章\n你好世界。天气晴朗。"

	gotEN := Split(en, SplitConfig{Lang: "en", DetectStructure: true})
	if gotEN.Front != "Chapter 1\n" {
		t.Errorf("en front = %q, want the chapter-marker line", gotEN.Front)
	}
	if gotEN.Main != "Hello world. It is sunny." {
		t.Errorf("en main = %q", gotEN.Main)
	}

	gotZH := Split(zh, SplitConfig{Lang: "zh", DetectStructure: true})
	if gotZH.Front != "第一章\n" {
		t.Errorf("zh front = %q, want the chapter-marker line", gotZH.Front)
	}
	if gotZH.Main != "你好世界。天气晴朗。" {
		t.Errorf("zh main = %q", gotZH.Main)
	}
}
