package domain

import (
	"math/rand/v2"
	"slices"
)

// BalancedConfig controls how a balanced reading list is assembled.
type BalancedConfig struct {
	// SimilarDistance is the largest score distance still counted as similar.
	SimilarDistance int
	// MaxArticles caps the size of the selection.
	MaxArticles int
	// SimilarPercent is the share of the selection reserved for similar articles.
	SimilarPercent int
}

type Recommendation string

const (
	RecommendationSimilar  Recommendation = "similar"
	RecommendationOpposite Recommendation = "opposite"
)

type BalancedArticle struct {
	Article
	Recommendation  Recommendation `json:"recommendation,omitempty"`
	ScoreDifference int            `json:"score_difference"`
}

// BalancedTargets returns how many similar and opposite articles a selection drawn from
// available articles aims for.
func BalancedTargets(available int, cfg BalancedConfig) (total, similar, opposite int) {
	total = min(available, cfg.MaxArticles)
	similar = (total*cfg.SimilarPercent + 99) / 100
	return total, similar, total - similar
}

// Classify reports whether an article counts as similar to the profile score, and how far
// from it the article lies. Unscored articles count as neutral.
func (cfg BalancedConfig) Classify(a Article, profileScore int) (Recommendation, int) {
	score := NeutralScore
	if a.PoliticalScore != nil {
		score = *a.PoliticalScore
	}

	diff := score - profileScore
	if diff < 0 {
		diff = -diff
	}

	if diff <= cfg.SimilarDistance {
		return RecommendationSimilar, diff
	}
	return RecommendationOpposite, diff
}

// SelectBalanced picks the closest similar articles and the furthest opposite articles at
// the configured ratio, then shuffles them. A short bucket is not filled from the other.
func SelectBalanced(articles []Article, profileScore int, cfg BalancedConfig, rng *rand.Rand) []BalancedArticle {
	var similar, opposite []BalancedArticle
	for _, a := range articles {
		rec, diff := cfg.Classify(a, profileScore)
		ba := BalancedArticle{Article: a, Recommendation: rec, ScoreDifference: diff}
		if rec == RecommendationSimilar {
			similar = append(similar, ba)
		} else {
			opposite = append(opposite, ba)
		}
	}

	slices.SortStableFunc(similar, func(a, b BalancedArticle) int {
		return a.ScoreDifference - b.ScoreDifference
	})
	slices.SortStableFunc(opposite, func(a, b BalancedArticle) int {
		return b.ScoreDifference - a.ScoreDifference
	})

	_, similarTarget, oppositeTarget := BalancedTargets(len(articles), cfg)

	selected := make([]BalancedArticle, 0, similarTarget+oppositeTarget)
	selected = append(selected, similar[:min(similarTarget, len(similar))]...)
	selected = append(selected, opposite[:min(oppositeTarget, len(opposite))]...)

	if rng != nil {
		rng.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}

	return selected
}
