package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// ErrInvalidScrapAction is returned for actions other than add and remove.
var ErrInvalidScrapAction = errors.New("invalid scrap action")

type ScrapAction string

const (
	ScrapActionAdd    ScrapAction = "add"
	ScrapActionRemove ScrapAction = "remove"
)

// ScrapArticleRequest is the request for the ScrapArticle command.
type ScrapArticleRequest struct {
	UserID    string
	ArticleID string
	Action    ScrapAction
}

type ScrapArticleResult struct {
	// Changed is false when the article was already in the requested state.
	Changed            bool
	ActivityScore      int
	ActivityFromScraps bool
}

// ScrapArticle adds or removes a scrap and refreshes the user's activity score.
type ScrapArticle struct {
	Fetcher        datasources.ArticleFetcher
	Adder          datasources.ScrapAdder
	Remover        datasources.ScrapRemover
	ScoreLister    datasources.ScrapScoreLister
	UserGetter     datasources.UserGetter
	ActivitySetter datasources.UserActivityScoreSetter
}

// NewScrapArticle creates a properly initialized ScrapArticle command.
func NewScrapArticle(
	fetcher datasources.ArticleFetcher,
	adder datasources.ScrapAdder,
	remover datasources.ScrapRemover,
	scoreLister datasources.ScrapScoreLister,
	userGetter datasources.UserGetter,
	activitySetter datasources.UserActivityScoreSetter,
) *ScrapArticle {
	return &ScrapArticle{
		Fetcher:        fetcher,
		Adder:          adder,
		Remover:        remover,
		ScoreLister:    scoreLister,
		UserGetter:     userGetter,
		ActivitySetter: activitySetter,
	}
}

func (c *ScrapArticle) Execute(ctx context.Context, req ScrapArticleRequest) (ScrapArticleResult, error) {
	logger := domain.LoggerFromContext(ctx)

	var changed bool
	switch req.Action {
	case ScrapActionAdd:
		articles, err := c.Fetcher.FetchArticlesByID(ctx, []string{req.ArticleID})
		if err != nil {
			return ScrapArticleResult{}, fmt.Errorf("fetching article: %w", err)
		}
		if len(articles) == 0 {
			return ScrapArticleResult{}, domain.ErrArticleNotFound
		}

		changed, err = c.Adder.AddScrap(ctx, req.UserID, req.ArticleID)
		if err != nil {
			return ScrapArticleResult{}, fmt.Errorf("adding scrap: %w", err)
		}
	case ScrapActionRemove:
		var err error
		changed, err = c.Remover.RemoveScrap(ctx, req.UserID, req.ArticleID)
		if err != nil {
			return ScrapArticleResult{}, fmt.Errorf("removing scrap: %w", err)
		}
	default:
		return ScrapArticleResult{}, fmt.Errorf("%w [%s]", ErrInvalidScrapAction, req.Action)
	}

	scores, err := c.ScoreLister.ListScrapScores(ctx, req.UserID)
	if err != nil {
		return ScrapArticleResult{}, fmt.Errorf("listing scrap scores: %w", err)
	}

	var profileScore *int
	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	switch {
	case err == nil:
		profileScore = user.PoliticalScore
	case !errors.Is(err, domain.ErrUserNotFound):
		logger.WarnContext(ctx, "failed to fetch user for activity fallback", "error", err)
	}

	activity, fromScraps := domain.ActivityIndex(scores, profileScore)

	if err := c.ActivitySetter.SetUserActivityScore(ctx, req.UserID, activity); err != nil {
		logger.WarnContext(ctx, "failed to store activity score", "error", err)
	}

	logger.DebugContext(ctx, "updated scrap",
		"articleID", req.ArticleID, "action", req.Action, "changed", changed, "activityScore", activity)

	return ScrapArticleResult{
		Changed:            changed,
		ActivityScore:      activity,
		ActivityFromScraps: fromScraps,
	}, nil
}
