package app

import (
	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
)

// DefaultRefreshNumResults is how many articles a scheduled or manual refresh requests.
const DefaultRefreshNumResults = 30

// DefaultRefreshNewsConfig returns the default config for collecting news.
func DefaultRefreshNewsConfig() command.RefreshNewsConfig {
	return command.RefreshNewsConfig{
		EnrichConcurrency: 5,
	}
}

// DefaultBalancedConfig returns the default mix of similar and opposite articles.
func DefaultBalancedConfig() domain.BalancedConfig {
	return domain.BalancedConfig{
		SimilarDistance: 15,
		MaxArticles:     20,
		SimilarPercent:  60,
	}
}

// DefaultRecommendBalancedNewsConfig returns the default config for balanced recommendations.
func DefaultRecommendBalancedNewsConfig() command.RecommendBalancedNewsConfig {
	return command.RecommendBalancedNewsConfig{
		Balanced:      DefaultBalancedConfig(),
		CandidatePool: 100,
	}
}
