package segment

import "strings"

// Paragraphs segments text at blank lines. Consecutive non-blank lines are
// joined with single spaces into one paragraph, matching how loosely
// hard-wrapped extractions are best re-flowed.
type Paragraphs struct{}

// Segment implements Segmenter.
func (Paragraphs) Segment(text string) []string {
	var out []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return out
}
