package analysis

import (
	"regexp"
	"strings"
)

const (
	summaryMaxRunes  = 50
	fallbackMaxRunes = 100

	// NoSummary is shown for articles with nothing to summarise.
	NoSummary = "요약 정보 없음"
)

var sentenceBreak = regexp.MustCompile(`[.!?]\s+`)

// Summarize returns a short teaser built from the first sentence of text.
func Summarize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return NoSummary
	}

	first := sentenceBreak.Split(text, 2)[0]
	if first == "" {
		return truncateRunes(text, fallbackMaxRunes)
	}

	return truncateRunes(first, summaryMaxRunes)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
