package scandown

import (
	"regexp"
	"strings"
)

// inlineRule is one step of inline transformation.
type inlineRule interface {
	apply(text string) string
}

type replaceRule struct {
	pattern *regexp.Regexp
	repl    string
}

func (r replaceRule) apply(text string) string {
	return r.pattern.ReplaceAllString(text, r.repl)
}

func replace(pattern, repl string) inlineRule {
	return replaceRule{regexp.MustCompile(pattern), repl}
}

// inlineRules run in order, each over the output of the one before. Later
// rules do see earlier output, so emphasis markers inside a code span are
// still transformed.
var inlineRules = []inlineRule{
	replace(`!\[([^\]]*)\]\(([^)]+)\)`, `<img src="${2}" alt="${1}">`),
	replace(`\[([^\]]+)\]\(([^)]+)\)`, `<a href="${2}">${1}</a>`),
	replace("`([^`]+)`", `<code>${1}</code>`),
	replace(`\*{3}(.+?)\*{3}`, `<strong><em>${1}</em></strong>`),
	replace(`_{3}(.+?)_{3}`, `<strong><em>${1}</em></strong>`),
	replace(`\*{2}(.+?)\*{2}`, `<strong>${1}</strong>`),
	replace(`_{2}(.+?)_{2}`, `<strong>${1}</strong>`),
	replace(`\*(.+?)\*`, `<em>${1}</em>`),
	intrawordUnderscore{},
	replace(`~~(.+?)~~`, `<del>${1}</del>`),
}

// Inline applies the inline markup rules to text: images, links, code
// spans, bold-italic, bold, italic, then strikethrough.
func Inline(text string) string {
	for _, rule := range inlineRules {
		text = rule.apply(text)
	}
	return text
}

// intrawordUnderscore rewrites _text_ as emphasis, except where either
// underscore touches an ASCII letter or digit on its outer side, so that
// snake_case_names survive. The shortest matching span wins.
type intrawordUnderscore struct{}

func (intrawordUnderscore) apply(text string) string {
	var sb strings.Builder
	last := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '_' || (i > 0 && isAlnum(text[i-1])) {
			continue
		}
		end := closeUnderscore(text, i)
		if end < 0 {
			continue
		}
		sb.WriteString(text[last:i])
		sb.WriteString("<em>")
		sb.WriteString(text[i+1 : end])
		sb.WriteString("</em>")
		last = end + 1
		i = end
	}
	if last == 0 {
		return text
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// closeUnderscore finds the nearest closing underscore for one opened at
// text[open], with at least one byte between and no line break inside.
func closeUnderscore(text string, open int) int {
	for j := open + 1; j < len(text); j++ {
		switch text[j] {
		case '\n':
			return -1
		case '_':
			if j > open+1 && (j+1 == len(text) || !isAlnum(text[j+1])) {
				return j
			}
		}
	}
	return -1
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
