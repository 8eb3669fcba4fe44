package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// ComputePoliticalIndexRequest is the request for the ComputePoliticalIndex command.
type ComputePoliticalIndexRequest struct {
	UserID string
}

// ComputePoliticalIndex reports a user's profile and activity leaning side by side.
type ComputePoliticalIndex struct {
	UserGetter  datasources.UserGetter
	ScoreLister datasources.ScrapScoreLister
	Thresholds  domain.Thresholds
}

// NewComputePoliticalIndex creates a properly initialized ComputePoliticalIndex command.
func NewComputePoliticalIndex(
	userGetter datasources.UserGetter,
	scoreLister datasources.ScrapScoreLister,
	thresholds domain.Thresholds,
) *ComputePoliticalIndex {
	return &ComputePoliticalIndex{
		UserGetter:  userGetter,
		ScoreLister: scoreLister,
		Thresholds:  thresholds,
	}
}

func (c *ComputePoliticalIndex) Execute(
	ctx context.Context, req ComputePoliticalIndexRequest,
) (domain.PoliticalIndex, error) {
	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user = domain.User{UID: req.UserID}
	case err != nil:
		return domain.PoliticalIndex{}, fmt.Errorf("fetching user: %w", err)
	}

	scores, err := c.ScoreLister.ListScrapScores(ctx, req.UserID)
	if err != nil {
		return domain.PoliticalIndex{}, fmt.Errorf("listing scrap scores: %w", err)
	}

	return domain.NewPoliticalIndex(user, scores, c.Thresholds), nil
}
