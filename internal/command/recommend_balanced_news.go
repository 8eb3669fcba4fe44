package command

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// RecommendBalancedNewsRequest is the request for the RecommendBalancedNews command.
type RecommendBalancedNewsRequest struct {
	UserID string
	// Limit overrides the configured maximum when positive.
	Limit int
}

// RecommendBalancedNewsResult is the selection together with how it was made.
type RecommendBalancedNewsResult struct {
	Articles           []domain.BalancedArticle
	HasProfileScore    bool
	ProfileScore       int
	ProfileAffiliation domain.Affiliation
	SimilarTarget      int
	OppositeTarget     int
}

// RecommendBalancedNewsConfig holds configuration for balanced recommendations.
type RecommendBalancedNewsConfig struct {
	Balanced domain.BalancedConfig
	// CandidatePool is how many of the latest articles are considered.
	CandidatePool int
}

// RecommendBalancedNews mixes articles close to the user's political score with articles
// from the other side.
type RecommendBalancedNews struct {
	UserGetter datasources.UserGetter
	Lister     datasources.LatestArticleLister
	Thresholds domain.Thresholds
	Config     RecommendBalancedNewsConfig
	// NewRand returns the shuffle source for one request. Nil disables shuffling.
	NewRand func() *rand.Rand
}

// NewRecommendBalancedNews creates a properly initialized RecommendBalancedNews command.
func NewRecommendBalancedNews(
	userGetter datasources.UserGetter,
	lister datasources.LatestArticleLister,
	thresholds domain.Thresholds,
	config RecommendBalancedNewsConfig,
) *RecommendBalancedNews {
	return &RecommendBalancedNews{
		UserGetter: userGetter,
		Lister:     lister,
		Thresholds: thresholds,
		Config:     config,
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

func (c *RecommendBalancedNews) Execute(
	ctx context.Context, req RecommendBalancedNewsRequest,
) (RecommendBalancedNewsResult, error) {
	cfg := c.Config.Balanced
	if req.Limit > 0 {
		cfg.MaxArticles = min(req.Limit, c.Config.CandidatePool)
	}

	var profileScore *int
	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	switch {
	case err == nil:
		profileScore = user.PoliticalScore
	case !errors.Is(err, domain.ErrUserNotFound):
		return RecommendBalancedNewsResult{}, fmt.Errorf("fetching user: %w", err)
	}

	candidates, err := c.Lister.ListLatestArticles(ctx, 1, c.Config.CandidatePool)
	if err != nil {
		return RecommendBalancedNewsResult{}, fmt.Errorf("listing candidate articles: %w", err)
	}

	if profileScore == nil {
		latest := candidates[:min(cfg.MaxArticles, len(candidates))]
		articles := make([]domain.BalancedArticle, 0, len(latest))
		for _, a := range latest {
			articles = append(articles, domain.BalancedArticle{Article: a})
		}

		return RecommendBalancedNewsResult{
			Articles:           articles,
			ProfileScore:       domain.NeutralScore,
			ProfileAffiliation: c.Thresholds.Classify(domain.NeutralScore),
		}, nil
	}

	score := domain.ClampScore(*profileScore)
	_, similar, opposite := domain.BalancedTargets(len(candidates), cfg)

	var rng *rand.Rand
	if c.NewRand != nil {
		rng = c.NewRand()
	}

	return RecommendBalancedNewsResult{
		Articles:           domain.SelectBalanced(candidates, score, cfg, rng),
		HasProfileScore:    true,
		ProfileScore:       score,
		ProfileAffiliation: c.Thresholds.Classify(score),
		SimilarTarget:      similar,
		OppositeTarget:     opposite,
	}, nil
}
