// Package structure detects structural boundaries in raw document text and
// splits it into front matter, main text, and back matter.
//
// Detection is heuristic: ordered lists of marker patterns (chapter openers,
// back-matter openers) are maintained per language family and tried most
// specific first. Pattern sets are registered in a lookup table keyed by
// language tag, so new families can be added without touching the detection
// algorithm. A text with no recognizable markers is not an error; the whole
// text is treated as main matter.
package structure
