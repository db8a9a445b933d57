package speech

import (
	"regexp"
	"strings"
)

var (
	sentenceBreakRe = regexp.MustCompile(`([.!?])\s+([A-Z])`)
	ellipsisRe      = regexp.MustCompile(`\.\.\.\s*([A-Z])`)
	bangRunRe       = regexp.MustCompile(`!{3,}`)
	endMarkRe       = regexp.MustCompile(`[.!?]`)
)

// EnhanceText prepares plain text for synthesis: pause markers between
// sentences, a shorter pause after ellipses, and exclamation runs capped
// at two. Text that already carries pause markup is passed through
// unmodified, which also makes the pass idempotent.
func EnhanceText(text string) string {
	if strings.Contains(text, "<break") {
		return text
	}

	enhanced := text
	if len(endMarkRe.FindAllString(enhanced, -1)) > 1 {
		enhanced = sentenceBreakRe.ReplaceAllString(enhanced, `$1 <break time="0.4s" /> $2`)
	}
	enhanced = ellipsisRe.ReplaceAllString(enhanced, `... <break time="0.3s" /> $1`)
	enhanced = bangRunRe.ReplaceAllString(enhanced, "!!")
	return enhanced
}
