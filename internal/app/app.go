package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/balancednews/news-feed/internal/analysis"
	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/datasources/openai"
	"github.com/balancednews/news-feed/internal/datasources/pagecontent"
	"github.com/balancednews/news-feed/internal/datasources/rediscache"
	"github.com/balancednews/news-feed/internal/datasources/rssfeed"
	"github.com/balancednews/news-feed/internal/datasources/serper"
	"github.com/balancednews/news-feed/internal/datasources/sqlstore"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/balancednews/news-feed/internal/scheduler"
	"github.com/balancednews/news-feed/internal/transport/web/router"
	"github.com/balancednews/news-feed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := SetupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	thresholds, err := setupThresholds()
	if err != nil {
		return nil, fmt.Errorf("setting up political thresholds: %w", err)
	}

	cache, err := setupArticleListCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up article list cache: %w", err)
	}

	refreshNewsCmd, err := setupRefreshNews(ctx, dataset, cache, thresholds)
	if err != nil {
		return nil, fmt.Errorf("setting up news refresh: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	cacheMaxAge := GetEnvAsDurationDefault(ctx, "NEWS_LIST_CACHE_MAX_AGE", 5*time.Minute)

	httpRouter, err := router.MakeRouter(
		dataset,
		router.Commands{
			ListLatestNews:    command.NewListLatestNews(dataset, cache, cacheMaxAge),
			RefreshNews:       refreshNewsCmd,
			SetPoliticalScore: command.NewSetPoliticalScore(dataset, thresholds),
			ScrapArticle: command.NewScrapArticle(
				dataset,
				dataset,
				dataset,
				dataset,
				dataset,
				dataset,
			),
			ComputePoliticalIndex: command.NewComputePoliticalIndex(dataset, dataset, thresholds),
			RecommendBalancedNews: command.NewRecommendBalancedNews(
				dataset,
				dataset,
				thresholds,
				DefaultRecommendBalancedNewsConfig(),
			),
			CreateAPIToken: command.NewCreateAPIToken(dataset, dataset),
		},
		router.Config{
			Thresholds:         thresholds,
			RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			LatestCacheMaxAge:  cacheMaxAge,
			RefreshNumResults:  DefaultRefreshNumResults,
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   GetEnvAsIntDefault(ctx, "PORT", 8000),
			AutocertHostnames: GetEnvAsStringsDefault("HTTP_AUTOCERT_HOSTNAMES", nil),
			Router:            httpRouter,
		},
	}

	if interval := GetEnvAsDurationDefault(ctx, "NEWS_REFRESH_INTERVAL", 0); interval > 0 {
		components = append(components, &scheduler.NewsRefresher{
			Command:    refreshNewsCmd,
			Interval:   interval,
			RunOnStart: GetEnvAsBooleanDefault(ctx, "NEWS_REFRESH_ON_START", true),
			NumResults: DefaultRefreshNumResults,
		})
	}

	return components, nil
}

// SetupDatabase connects to the configured SQL storage.
func SetupDatabase(ctx context.Context) (*sql.DB, sqlstore.Driver, error) {
	driver, err := sqlstore.ParseDriver(GetEnvAsStringDefault("STORAGE_DRIVER", string(sqlstore.DriverMySQL)))
	if err != nil {
		return nil, "", err
	}

	var dsn string
	switch driver {
	case sqlstore.DriverMySQL:
		dsn = MustGetEnvAsString(ctx, "MYSQL_URI")
	case sqlstore.DriverPostgres:
		dsn = MustGetEnvAsString(ctx, "POSTGRES_URI")
	case sqlstore.DriverSQLite:
		dsn = GetEnvAsStringDefault("SQLITE_PATH", "news.db")
	}

	db, err := sqlstore.Connect(ctx, driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("connecting to storage: %w", err)
	}

	return db, driver, nil
}

// SetupDatasetRepository connects to storage, applying migrations first when
// STORAGE_AUTO_MIGRATE is set.
func SetupDatasetRepository(ctx context.Context) (*sqlstore.Repository, error) {
	db, driver, err := SetupDatabase(ctx)
	if err != nil {
		return nil, err
	}

	if GetEnvAsBooleanDefault(ctx, "STORAGE_AUTO_MIGRATE", driver == sqlstore.DriverSQLite) {
		if err := sqlstore.Migrate(ctx, db, driver); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrating %s DB: %w", driver, err)
		}
	}

	return sqlstore.New(db, driver), nil
}

// SetupRefreshNews builds the news refresh command from the environment.
func SetupRefreshNews(ctx context.Context, dataset datasources.DatasetRepository) (*command.RefreshNews, error) {
	thresholds, err := setupThresholds()
	if err != nil {
		return nil, err
	}

	cache, err := setupArticleListCache(ctx)
	if err != nil {
		return nil, err
	}

	return setupRefreshNews(ctx, dataset, cache, thresholds)
}

// SetupRescoreArticles builds the article re-analysis command from the environment.
func SetupRescoreArticles(
	ctx context.Context, dataset datasources.DatasetRepository,
) (*command.RescoreArticles, error) {
	thresholds, err := setupThresholds()
	if err != nil {
		return nil, err
	}

	analyzer, err := setupLeaningAnalyzer(ctx)
	if err != nil {
		return nil, err
	}

	return command.NewRescoreArticles(dataset, dataset, analyzer, thresholds), nil
}

func setupRefreshNews(
	ctx context.Context,
	dataset datasources.DatasetRepository,
	cache datasources.ArticleListCache,
	thresholds domain.Thresholds,
) (*command.RefreshNews, error) {
	analyzer, err := setupLeaningAnalyzer(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up leaning analyzer: %w", err)
	}

	return command.NewRefreshNews(
		setupNewsSearcher(ctx),
		setupNewsFeedSource(),
		pagecontent.NewFetcher(nil),
		dataset,
		dataset,
		analyzer,
		cache,
		thresholds,
		DefaultRefreshNewsConfig(),
	), nil
}

func setupThresholds() (domain.Thresholds, error) {
	return domain.ThresholdsByName(GetEnvAsStringDefault("POLITICAL_THRESHOLDS", "current"))
}

func setupArticleListCache(ctx context.Context) (datasources.ArticleListCache, error) {
	switch driver := GetEnvAsStringDefault("CACHE_DRIVER", "null"); driver {
	case "null":
		return datasources.NullArticleListCache{}, nil
	case "redis":
		rdb, err := rediscache.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			GetEnvAsStringDefault("REDIS_PASSWORD", ""),
			GetEnvAsIntDefault(ctx, "REDIS_DB", 0),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return rediscache.New(rdb), nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupLeaningAnalyzer(ctx context.Context) (datasources.LeaningAnalyzer, error) {
	switch driver := GetEnvAsStringDefault("ANALYZER_DRIVER", "keyword"); driver {
	case "keyword":
		return analysis.NewKeywordAnalyzer(), nil
	case "openai":
		return openai.NewAnalyzer(openai.Config{
			APIKey:  MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			Model:   GetEnvAsStringDefault("OPENAI_MODEL", ""),
			BaseURL: GetEnvAsStringDefault("OPENAI_BASE_URL", ""),
		}), nil
	default:
		return nil, fmt.Errorf("unknown analyzer driver [%s]", driver)
	}
}

func setupNewsSearcher(ctx context.Context) datasources.NewsSearcher {
	apiKey := GetEnvAsStringDefault("SERPER_API_KEY", "")
	if apiKey == "" {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "SERPER_API_KEY not set, news search disabled")
		return datasources.NullNewsSearcher{}
	}

	return serper.NewClient(apiKey, GetEnvAsStringDefault("SERPER_BASE_URL", ""))
}

func setupNewsFeedSource() datasources.NewsFeedSource {
	urls := GetEnvAsStringsDefault("RSS_FEED_URLS", nil)
	if len(urls) == 0 {
		return datasources.NullNewsFeedSource{}
	}
	return rssfeed.NewSource(urls, nil)
}

func setupAuthMiddleware(
	ctx context.Context, dataset datasources.DatasetRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "firebase":
			v, err := router.NewFirebaseValidator(MustGetEnvAsString(ctx, "FIREBASE_PROJECT_ID"))
			if err != nil {
				return nil, fmt.Errorf("creating Firebase validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, dataset, dataset))
		case "dev":
			v, err := router.NewDevTokenValidator([]byte(MustGetEnvAsString(ctx, "DEV_AUTH_SECRET")))
			if err != nil {
				return nil, fmt.Errorf("creating dev token validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
