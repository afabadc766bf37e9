package structure

import (
	"regexp"

	"golang.org/x/text/language"
)

// Pattern is one boundary-marker regular expression together with the
// confidence assigned to matches it produces. Patterns are applied to
// individual lines with surrounding whitespace trimmed.
type Pattern struct {
	re         *regexp.Regexp
	confidence float64
}

// PatternSet holds the ordered marker patterns for one language family.
// Within each list, patterns are ordered most specific first; the first
// pattern producing a usable hit wins for its boundary kind.
type PatternSet struct {
	// Tag identifies the language family the set applies to.
	Tag language.Tag

	// MainStart patterns mark the beginning of the main text
	// (chapter and part openers, prologues).
	MainStart []Pattern

	// BackStart patterns mark the beginning of back matter
	// (appendices, indices, afterwords).
	BackStart []Pattern
}

func pat(confidence float64, expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr), confidence: confidence}
}

// latinSet covers English-like Latin-script texts.
var latinSet = PatternSet{
	Tag: language.English,
	MainStart: []Pattern{
		pat(0.95, `(?i)^chapter\s+\d+`),
		pat(0.95, `(?i)^chapter\s+[ivxlcdm]+\b`),
		pat(0.90, `(?i)^chapter\s+(one|two|three|four|five|six|seven|eight|nine|ten)\b`),
		pat(0.90, `(?i)^ch\.\s*\d+`),
		pat(0.85, `(?i)^part\s+\d+`),
		pat(0.85, `(?i)^part\s+[ivxlcdm]+\b`),
		pat(0.85, `(?i)^book\s+\d+`),
		pat(0.85, `(?i)^book\s+[ivxlcdm]+\b`),
		pat(0.80, `(?i)^section\s+\d+`),
		pat(0.75, `^\d+\.\s+[A-Z]`),
		pat(0.70, `(?i)^prologue\b`),
		pat(0.70, `(?i)^epilogue\b`),
		pat(0.60, `(?i)^introduction$`),
		pat(0.60, `(?i)^preface$`),
	},
	BackStart: []Pattern{
		pat(0.90, `(?i)^appendix\b`),
		pat(0.90, `(?i)^bibliography\b`),
		pat(0.85, `(?i)^references\b`),
		pat(0.85, `(?i)^glossary\b`),
		pat(0.85, `(?i)^afterword\b`),
		pat(0.85, `(?i)^acknowledgements\b`),
		pat(0.80, `(?i)^about the author\b`),
		pat(0.75, `(?i)^index$`),
		pat(0.75, `(?i)^notes$`),
	},
}

// cjkSet covers Chinese texts, including classical numbering forms.
var cjkSet = PatternSet{
	Tag: language.Chinese,
	MainStart: []Pattern{
		pat(0.95, `^第[一二三四五六七八九十百千0-9]+章`),
		pat(0.90, `^第[一二三四五六七八九十百千0-9]+节`),
		pat(0.90, `^第[一二三四五六七八九十百千0-9]+部分`),
		pat(0.90, `^第[一二三四五六七八九十百千0-9]+卷`),
		pat(0.90, `^第[一二三四五六七八九十百千0-9]+回`),
		pat(0.85, `^卷[一二三四五六七八九十百千0-9]+`),
		pat(0.85, `^篇[一二三四五六七八九十百千0-9]+`),
		pat(0.75, `^[0-9]+\s*[.、]\s*[\x{4e00}-\x{9fff}]`),
		pat(0.70, `^[一二三四五六七八九十]+[.、]`),
		pat(0.70, `^序章`),
		pat(0.70, `^终章`),
		pat(0.65, `^引言`),
		pat(0.65, `^前言`),
		pat(0.65, `^楔子`),
	},
	BackStart: []Pattern{
		pat(0.90, `^附录`),
		pat(0.90, `^参考文献`),
		pat(0.85, `^词汇表`),
		pat(0.85, `^后记`),
		pat(0.85, `^致谢`),
		pat(0.80, `^索引`),
		pat(0.75, `^注释`),
	},
}

// registry holds every known pattern set. Families are registered at init
// time; Register allows callers to extend detection to further languages
// without modifying the detector itself.
var (
	registry []PatternSet
	matcher  language.Matcher
)

func init() {
	Register(latinSet)
	Register(cjkSet)
}

// Register adds a pattern set to the family registry.
func Register(set PatternSet) {
	registry = append(registry, set)
	tags := make([]language.Tag, len(registry))
	for i, s := range registry {
		tags[i] = s.Tag
	}
	matcher = language.NewMatcher(tags)
}

// setsFor resolves a language code to its pattern sets. A code that does
// not resolve to a registered family with reasonable confidence gets the
// union of all registered sets, so detection still works for languages
// without a dedicated family.
func setsFor(lang string) []PatternSet {
	tag, err := language.Parse(lang)
	if err != nil {
		return registry
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || conf == language.Low {
		return registry
	}
	return []PatternSet{registry[idx]}
}
