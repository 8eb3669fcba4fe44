package analysis

import (
	"strings"
	"unicode/utf8"
)

var biasedWords = []string{
	"충격", "폭로", "폭탄", "대박", "완전", "정말", "진짜", "엄청",
	"최고", "최악", "끔찍", "놀라운", "놀라게", "놀랍게",
	"대단한", "대단히", "엄청난", "엄청나게", "정말로", "진짜로",
	"완전히", "완전한", "절대적", "절대", "무조건", "반드시",
	"당연히", "당연한", "확실히", "확실한", "분명히", "분명한",
}

var reportingWords = []string{
	"발표", "발표했다", "발표했다고", "보고", "보고했다", "보고했다고",
	"전했다", "전했다고", "밝혔다", "밝혔다고", "말했다", "말했다고",
	"설명했다", "설명했다고", "논의", "논의했다", "논의했다고",
	"검토", "검토했다", "검토했다고", "검토 중", "검토하고 있다",
	"계획", "계획하고 있다", "계획했다", "계획했다고",
}

const (
	baseNeutrality    = 0.7
	biasedPenalty     = 0.1
	maxBiasedPenalty  = 0.3
	reportingBonus    = 0.05
	maxReportingBonus = 0.2
)

// NeutralityScore rates how dispassionately a headline and summary are written, from 0 to
// 1 where 1 is the most neutral. Overlapping words are each counted, so "완전히" also
// counts as "완전".
func NeutralityScore(title, summary string) float64 {
	text := strings.ToLower(title + " " + summary)

	score := baseNeutrality
	score -= min(maxBiasedPenalty, float64(countContained(text, biasedWords))*biasedPenalty)
	score += min(maxReportingBonus, float64(countContained(text, reportingWords))*reportingBonus)

	return max(0, min(1, score))
}

const analysisSummaryMinRunes = 50

// AnalysisText picks the text a leaning analyzer should read: the summary when it says
// enough, otherwise the headline.
func AnalysisText(title, summary string) string {
	if utf8.RuneCountInString(summary) > analysisSummaryMinRunes {
		return summary
	}
	return title
}
