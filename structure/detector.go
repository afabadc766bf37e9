package structure

import (
	"sort"
	"strings"

	"golang.org/x/text/width"
)

// Kind identifies which structural boundary a candidate marks.
type Kind int

const (
	// MainStart marks the beginning of the main text.
	MainStart Kind = iota
	// BackStart marks the beginning of back matter.
	BackStart
)

// String returns a human-readable representation of the boundary kind.
func (k Kind) String() string {
	switch k {
	case MainStart:
		return "start_of_main"
	case BackStart:
		return "start_of_back"
	default:
		return "unknown"
	}
}

// Candidate is one potential boundary position found in a text.
type Candidate struct {
	// Kind is the boundary type the candidate marks.
	Kind Kind

	// Pos is the byte offset of the start of the matched line.
	Pos int

	// End is the byte offset just past the matched line and its newline.
	// Cutting at End keeps the marker line in the preceding span.
	End int

	// Line is the matched line with surrounding whitespace trimmed.
	Line string

	// Confidence is the score of the pattern that produced the match,
	// in (0,1]. Explicit caller-supplied markers score 1.
	Confidence float64
}

// Detector finds structural boundary candidates in raw text for one
// language. Detection is deterministic: identical text and language always
// produce identical candidates.
type Detector struct {
	sets []PatternSet
}

// NewDetector returns a detector using the pattern sets registered for the
// given language code. Unknown languages fall back to every registered set.
func NewDetector(lang string) *Detector {
	return &Detector{sets: setsFor(lang)}
}

// line is one physical line of the input with its byte span. end includes
// the trailing newline, if present.
type line struct {
	start, end int
	text       string
}

func splitLines(text string) []line {
	var lines []line
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, line{start: start, end: i + 1, text: strings.TrimSpace(text[start:i])})
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, line{start: start, end: len(text), text: strings.TrimSpace(text[start:])})
	}
	return lines
}

// Detect scans the text and returns boundary candidates for both kinds,
// ordered by position. For each kind, patterns are tried in priority order
// and the first pattern with a hit past the first 2% of the text wins; the
// 2% guard avoids mistaking a table-of-contents entry for the boundary
// itself. If every hit falls inside the first 2% (short texts, marker on
// line one), the first pattern with any hit wins instead. No candidates is
// a valid outcome meaning the whole text is main matter.
func (d *Detector) Detect(text string) []Candidate {
	lines := splitLines(text)
	minOffset := len(text) * 2 / 100

	var out []Candidate
	out = append(out, d.detectKind(lines, MainStart, minOffset)...)
	out = append(out, d.detectKind(lines, BackStart, minOffset)...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	return out
}

// detectKind finds the winning pattern for one boundary kind and returns
// its matches as candidates.
func (d *Detector) detectKind(lines []line, kind Kind, minOffset int) []Candidate {
	// First pass: only hits past the table-of-contents guard qualify.
	for _, set := range d.sets {
		for _, p := range patternsOf(set, kind) {
			if c := matchPattern(lines, p, kind, minOffset); len(c) > 0 {
				return c
			}
		}
	}
	// Fallback for texts whose only marker sits inside the guard window.
	for _, set := range d.sets {
		for _, p := range patternsOf(set, kind) {
			if c := matchPattern(lines, p, kind, 0); len(c) > 0 {
				return c
			}
		}
	}
	return nil
}

func patternsOf(set PatternSet, kind Kind) []Pattern {
	if kind == BackStart {
		return set.BackStart
	}
	return set.MainStart
}

func matchPattern(lines []line, p Pattern, kind Kind, minOffset int) []Candidate {
	var out []Candidate
	for _, ln := range lines {
		if ln.text == "" || ln.start < minOffset {
			continue
		}
		if p.re.MatchString(ln.text) {
			out = append(out, Candidate{
				Kind:       kind,
				Pos:        ln.start,
				End:        ln.end,
				Line:       ln.text,
				Confidence: p.confidence,
			})
		}
	}
	return out
}

// DetectLiteral matches an explicit caller-supplied marker string and
// returns its occurrences as the sole candidates for the given kind. The
// comparison is case-insensitive and normalizes whitespace runs and
// character width (full-width CJK forms fold to their narrow equivalents),
// so a marker copied from rendered output still matches the raw text. The
// marker must fall within a single line.
func (d *Detector) DetectLiteral(text, marker string, kind Kind) []Candidate {
	want := normalizeMarker(marker)
	if want == "" {
		return nil
	}

	var out []Candidate
	for _, ln := range splitLines(text) {
		if ln.text == "" {
			continue
		}
		if strings.Contains(normalizeMarker(ln.text), want) {
			out = append(out, Candidate{
				Kind:       kind,
				Pos:        ln.start,
				End:        ln.end,
				Line:       ln.text,
				Confidence: 1,
			})
		}
	}
	return out
}

// normalizeMarker lower-cases, folds character width, and collapses
// whitespace runs to single spaces.
func normalizeMarker(s string) string {
	s = width.Fold.String(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// Chapter is one chapter heading found in a text.
type Chapter struct {
	// Pos is the byte offset of the heading line.
	Pos int

	// Title is the heading line with surrounding whitespace trimmed.
	Title string
}

// Chapters returns every line matching a main-text marker pattern for the
// given language, in document order. It is an inventory of the document's
// apparent chapter structure, useful for choosing explicit markers.
func Chapters(text, lang string) []Chapter {
	sets := setsFor(lang)
	var out []Chapter
	for _, ln := range splitLines(text) {
		if ln.text == "" {
			continue
		}
	patterns:
		for _, set := range sets {
			for _, p := range set.MainStart {
				if p.re.MatchString(ln.text) {
					out = append(out, Chapter{Pos: ln.start, Title: ln.text})
					break patterns
				}
			}
		}
	}
	return out
}
