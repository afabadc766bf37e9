package segment

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Sentences segments text at UAX #29 sentence boundaries. Leading and
// trailing whitespace is trimmed from each sentence and whitespace-only
// sentences are dropped, so hard-wrapped source text does not produce
// empty segments.
type Sentences struct{}

// Segment implements Segmenter.
func (Sentences) Segment(text string) []string {
	var out []string
	state := -1
	var sentence string
	for len(text) > 0 {
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		if s := strings.TrimSpace(sentence); s != "" {
			out = append(out, s)
		}
	}
	return out
}
