package command

import (
	"context"
	"fmt"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// SetPoliticalScoreRequest is the request for the SetPoliticalScore command.
type SetPoliticalScoreRequest struct {
	UserID string
	Score  int
}

type SetPoliticalScoreResult struct {
	Score       int
	Affiliation domain.Affiliation
}

// SetPoliticalScore stores a user's self-assessed political score, creating a placeholder
// profile for users that have none yet.
type SetPoliticalScore struct {
	Setter     datasources.UserPoliticalScoreSetter
	Thresholds domain.Thresholds
}

// NewSetPoliticalScore creates a properly initialized SetPoliticalScore command.
func NewSetPoliticalScore(
	setter datasources.UserPoliticalScoreSetter,
	thresholds domain.Thresholds,
) *SetPoliticalScore {
	return &SetPoliticalScore{
		Setter:     setter,
		Thresholds: thresholds,
	}
}

func (c *SetPoliticalScore) Execute(ctx context.Context, req SetPoliticalScoreRequest) (SetPoliticalScoreResult, error) {
	score := domain.ClampScore(req.Score)

	if err := c.Setter.SetUserPoliticalScore(ctx, req.UserID, score); err != nil {
		return SetPoliticalScoreResult{}, fmt.Errorf("setting political score: %w", err)
	}

	return SetPoliticalScoreResult{
		Score:       score,
		Affiliation: c.Thresholds.Classify(score),
	}, nil
}
