package router

import (
	"net/http"
	"time"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/balancednews/news-feed/internal/transport/web/controller"
	"github.com/gorilla/mux"
)

// Commands are the use cases the HTTP API exposes.
type Commands struct {
	ListLatestNews        command.Command[command.ListLatestNewsRequest, []domain.Article]
	RefreshNews           command.Command[command.RefreshNewsRequest, command.RefreshNewsResult]
	SetPoliticalScore     command.Command[command.SetPoliticalScoreRequest, command.SetPoliticalScoreResult]
	ScrapArticle          command.Command[command.ScrapArticleRequest, command.ScrapArticleResult]
	ComputePoliticalIndex command.Command[command.ComputePoliticalIndexRequest, domain.PoliticalIndex]
	RecommendBalancedNews command.Command[command.RecommendBalancedNewsRequest, command.RecommendBalancedNewsResult]
	CreateAPIToken        command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

type Config struct {
	Thresholds         domain.Thresholds
	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	LatestCacheMaxAge  time.Duration
	// RefreshNumResults is how many articles /news/serper/refresh requests.
	RefreshNumResults int
}

const userPath = "/users/firebase/{uid}"

func MakeRouter(
	dataset datasources.DatasetRepository,
	commands Commands,
	cfg Config,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)
	r.NotFoundHandler = corsMiddleware(http.HandlerFunc(notFound))

	r.Handle("/", controller.Root{}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/news/political", controller.NewsList{
		ListCmd:     commands.ListLatestNews,
		CacheMaxAge: cfg.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/news/search", controller.NewsSearch{
		Searcher: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/news/rss", controller.RSS{
		FeedHostname:    cfg.RSSFeedBaseURL,
		FeedPath:        "/news/rss",
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		Lister:          dataset,
		CacheMaxAge:     cfg.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/news/serper/latest", requireAuthMiddleware(controller.SerperLatest{
		RefreshCmd: commands.RefreshNews,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/news/serper/refresh", requireAuthMiddleware(controller.SerperRefresh{
		RefreshCmd: commands.RefreshNews,
		NumResults: cfg.RefreshNumResults,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/news/{article_id}", controller.ArticleGet{
		Fetcher:     dataset,
		CacheMaxAge: cfg.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle(userPath, requireSelfMiddleware(controller.UserGet{
		Getter:     dataset,
		Thresholds: cfg.Thresholds,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle(userPath, requireSelfMiddleware(controller.UserCreate{
		Users:      dataset,
		Thresholds: cfg.Thresholds,
	})).Methods(http.MethodPost)

	r.Handle(userPath, requireSelfMiddleware(controller.UserUpdate{
		Updater:    dataset,
		Thresholds: cfg.Thresholds,
	})).Methods(http.MethodPatch)

	r.Handle(userPath, requireSelfMiddleware(controller.UserDelete{
		Deleter: dataset,
	})).Methods(http.MethodDelete)

	r.Handle(userPath+"/political-score", requireSelfMiddleware(controller.PoliticalScoreSet{
		SetCmd: commands.SetPoliticalScore,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle(userPath+"/scraps", requireSelfMiddleware(controller.ScrapsList{
		Lister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle(userPath+"/scraps", requireSelfMiddleware(controller.ScrapAction{
		ScrapCmd: commands.ScrapArticle,
	})).Methods(http.MethodPost)

	r.Handle(userPath+"/political-index", requireSelfMiddleware(controller.PoliticalIndexGet{
		IndexCmd: commands.ComputePoliticalIndex,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle(userPath+"/balanced-news", requireSelfMiddleware(controller.BalancedNewsList{
		RecommendCmd: commands.RecommendBalancedNews,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: commands.CreateAPIToken,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: dataset,
	})).Methods(http.MethodGet)

	r.Handle("/v1/tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: dataset,
	})).Methods(http.MethodDelete, http.MethodOptions)

	return r, nil
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"Not found"}`))
}
