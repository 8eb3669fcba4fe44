package domain

import (
	"fmt"
	"math"
)

const (
	MinScore = 0
	MaxScore = 100

	// MinArticleScore is the lowest score the analyzers assign to an article.
	MinArticleScore = 1

	// NeutralScore is used wherever a score is unknown.
	NeutralScore = 50
)

// Affiliation is the three-way political bucket a score falls into.
type Affiliation string

const (
	AffiliationConservative Affiliation = "conservative"
	AffiliationNeutral      Affiliation = "neutral"
	AffiliationProgressive  Affiliation = "progressive"
)

// Label returns the Korean label shown to readers.
func (a Affiliation) Label() string {
	switch a {
	case AffiliationConservative:
		return "보수"
	case AffiliationProgressive:
		return "진보"
	default:
		return "중도"
	}
}

// ParseAffiliation accepts either the English name or the Korean label.
func ParseAffiliation(s string) (Affiliation, error) {
	switch s {
	case string(AffiliationConservative), "보수":
		return AffiliationConservative, nil
	case string(AffiliationNeutral), "중도", "중립":
		return AffiliationNeutral, nil
	case string(AffiliationProgressive), "진보":
		return AffiliationProgressive, nil
	default:
		return "", fmt.Errorf("unknown affiliation [%s]", s)
	}
}

// Thresholds are the classification boundaries: scores at or below ConservativeMax are
// conservative, scores at or above ProgressiveMin are progressive.
type Thresholds struct {
	ConservativeMax int
	ProgressiveMin  int
}

var (
	CurrentThresholds = Thresholds{ConservativeMax: 45, ProgressiveMin: 56}
	LegacyThresholds  = Thresholds{ConservativeMax: 30, ProgressiveMin: 70}
)

func (t Thresholds) Classify(score int) Affiliation {
	switch {
	case score <= t.ConservativeMax:
		return AffiliationConservative
	case score >= t.ProgressiveMin:
		return AffiliationProgressive
	default:
		return AffiliationNeutral
	}
}

// ThresholdsByName resolves a configured threshold set.
func ThresholdsByName(name string) (Thresholds, error) {
	switch name {
	case "", "current":
		return CurrentThresholds, nil
	case "legacy":
		return LegacyThresholds, nil
	default:
		return Thresholds{}, fmt.Errorf("unknown political thresholds [%s]", name)
	}
}

func ClampScore(score int) int {
	return max(MinScore, min(MaxScore, score))
}

func ClampArticleScore(score int) int {
	return max(MinArticleScore, min(MaxScore, score))
}

// ScoreFromFloat rounds half up and clamps to the user score range.
func ScoreFromFloat(v float64) int {
	if math.IsNaN(v) {
		return NeutralScore
	}
	return ClampScore(int(math.Floor(max(-1, min(101, v)) + 0.5)))
}
