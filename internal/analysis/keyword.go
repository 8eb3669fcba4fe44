// Package analysis scores Korean political news text without external services.
package analysis

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/balancednews/news-feed/internal/domain"
)

type weightedPattern struct {
	keywords []string
	weight   float64
}

// Camp keywords that mark which side a sentence is about.
var (
	progressiveCamp  = []string{"이재명", "민주당", "정부", "여당"}
	conservativeCamp = []string{"윤석열", "국민의힘", "야당"}
)

// Pairs that, when both present, mark an article as criticising one camp.
var (
	progressiveCriticism = []weightedPattern{
		{[]string{"이재명", "사법리스크"}, 3},
		{[]string{"민주당", "방탄"}, 2},
		{[]string{"정부", "포퓰리즘"}, 2},
		{[]string{"이재명", "대북송금"}, 3},
		{[]string{"조국", "특혜"}, 2},
	}
	conservativeCriticism = []weightedPattern{
		{[]string{"윤석열", "거부권"}, 3},
		{[]string{"김건희", "특검"}, 3},
		{[]string{"국민의힘", "막말"}, 2},
		{[]string{"한동훈", "검찰"}, 2},
		{[]string{"채상병", "수사외압"}, 3},
	}
)

var (
	highIntensityWords = []string{
		"강력히", "단호히", "결단력있게", "과감히", "무조건", "절대", "완전히",
		"매우", "극도로", "심각한", "충격적인", "놀라운", "비난", "규탄",
	}
	mediumIntensityWords = []string{"비판", "지적", "우려", "경고", "문제", "논란", "의혹"}
	lowIntensityWords    = []string{"제안", "요청", "건의", "의견", "입장"}

	negativeContextWords = []string{"실패", "부실", "무능", "비리", "부정", "사고", "장애", "마비", "파문", "사태"}
	positiveContextWords = []string{"성공", "성과", "개선", "발전", "진전", "해결", "완료", "달성"}
)

// Negative weights pull the score towards conservative, positive towards progressive.
var (
	strongPatterns = []weightedPattern{
		{[]string{"이재명", "사법리스크"}, -8},
		{[]string{"이재명", "대북송금"}, -8},
		{[]string{"민주당", "방탄"}, -6},
		{[]string{"정부", "포퓰리즘"}, -5},
		{[]string{"조국", "특혜"}, -6},
		{[]string{"이재명", "법인카드"}, -7},
		{[]string{"윤석열", "거부권"}, 8},
		{[]string{"김건희", "특검"}, 8},
		{[]string{"김건희", "주가조작"}, 8},
		{[]string{"한동훈", "검찰"}, 6},
		{[]string{"국민의힘", "막말"}, 5},
		{[]string{"채상병", "수사외압"}, 8},
		{[]string{"윤석열", "불통"}, 6},
	}
	mediumPatterns = []weightedPattern{
		{[]string{"이재명", "문제"}, -3},
		{[]string{"민주당", "비판"}, -3},
		{[]string{"정부", "실패"}, -4},
		{[]string{"여당", "논란"}, -3},
		{[]string{"윤석열", "비판"}, 3},
		{[]string{"국민의힘", "문제"}, 3},
		{[]string{"야당", "논란"}, 3},
		{[]string{"한동훈", "지적"}, 3},
	}
)

type sentencePattern struct {
	re     *regexp.Regexp
	weight float64
}

// Blame constructions: "<subject>의 책임", "<subject>를 규탄" and similar. The weight applies
// as-is when the subject is in the progressive camp and negated for the conservative camp.
var sentencePatterns = []sentencePattern{
	{regexp.MustCompile(`([\p{L}\p{N}_]+)의\s+(책임|실책|문제|부실)`), -2},
	{regexp.MustCompile(`([\p{L}\p{N}_]+)이\s+(원인|주범|원인제공)`), -2},
	{regexp.MustCompile(`([\p{L}\p{N}_]+)의\s+(무능|부실|실패)`), -2},
	{regexp.MustCompile(`([\p{L}\p{N}_]+)에\s+(비판|지적|우려)`), -1},
	{regexp.MustCompile(`([\p{L}\p{N}_]+)를\s+(규탄|비난)`), -3},
}

const (
	conservativeBaseline = 35
	neutralBaseline      = 50
	progressiveBaseline  = 65

	maxAdjustment = 25
)

// KeywordAnalyzer estimates a political score from 1 (conservative) to 100 (progressive) by
// looking at which camp an article criticises and how strongly.
type KeywordAnalyzer struct{}

func NewKeywordAnalyzer() KeywordAnalyzer {
	return KeywordAnalyzer{}
}

func (KeywordAnalyzer) ScorePoliticalLeaning(_ context.Context, text string) (int, error) {
	return Score(text), nil
}

// Score returns the keyword-based political score of text. Empty text is neutral.
func Score(text string) int {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralScore
	}

	lower := strings.ToLower(text)
	score := float64(baseline(lower)) + float64(adjustment(lower))

	return domain.ClampArticleScore(int(math.Round(score)))
}

func baseline(text string) int {
	var progressiveTargeted, conservativeTargeted float64

	for _, p := range progressiveCriticism {
		if containsAll(text, p.keywords) {
			progressiveTargeted += p.weight
		}
	}
	for _, p := range conservativeCriticism {
		if containsAll(text, p.keywords) {
			conservativeTargeted += p.weight
		}
	}

	if containsAny(text, negativeContextWords) {
		intensity := 2*float64(countContained(text, highIntensityWords)) +
			float64(countContained(text, mediumIntensityWords)) +
			0.5*float64(countContained(text, lowIntensityWords))

		if containsAny(text, progressiveCamp) {
			progressiveTargeted += intensity
		}
		if containsAny(text, conservativeCamp) {
			conservativeTargeted += intensity
		}
	}

	switch {
	case progressiveTargeted > conservativeTargeted:
		return conservativeBaseline
	case conservativeTargeted > progressiveTargeted:
		return progressiveBaseline
	default:
		return neutralBaseline
	}
}

func adjustment(text string) int {
	negative := containsAny(text, highIntensityWords)
	positive := containsAny(text, positiveContextWords)

	var total float64
	for _, p := range strongPatterns {
		if containsAll(text, p.keywords) {
			total += p.weight * amplify(negative, positive, 1.5, 0.5)
		}
	}
	for _, p := range mediumPatterns {
		if containsAll(text, p.keywords) {
			total += p.weight * amplify(negative, positive, 1.2, 0.8)
		}
	}

	for _, p := range sentencePatterns {
		for _, match := range p.re.FindAllStringSubmatch(text, -1) {
			subject := match[1]
			switch {
			case containsAny(subject, progressiveCamp):
				total += p.weight
			case containsAny(subject, conservativeCamp):
				total -= p.weight
			}
		}
	}

	adj := int(math.Round(total))
	return max(-maxAdjustment, min(maxAdjustment, adj))
}

func amplify(negative, positive bool, negativeFactor, positiveFactor float64) float64 {
	switch {
	case negative:
		return negativeFactor
	case positive:
		return positiveFactor
	default:
		return 1
	}
}

func containsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func countContained(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
