package handlers

import (
	"github.com/jmoiron/sqlx"

	"techmart/internal/query"
	"techmart/internal/repos"
	"techmart/internal/services"
)

type Deps struct {
	SearchHandler    *SearchHandler
	RecommendHandler *RecommendHandler
	SuggestHandler   *SuggestHandler
	CatalogHandler   *CatalogHandler
	TrackHandler     *TrackHandler
	AnalyticsHandler *AnalyticsHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	catalogRepo := repos.NewCatalogRepo(db)
	categoryRepo := repos.NewCategoryRepo(db)
	historyRepo := repos.NewHistoryRepo(db)
	logRepo := repos.NewSearchLogRepo(db)

	interp := query.NewDefault()
	logSvc := services.NewQueryLogService(logRepo)
	searchSvc := services.NewSearchService(catalogRepo, interp, logSvc)
	profileSvc := services.NewProfileService(historyRepo)
	recommendSvc := services.NewRecommendService(catalogRepo, historyRepo, profileSvc)
	suggestSvc := services.NewSuggestService(catalogRepo, categoryRepo)
	activitySvc := services.NewActivityService(catalogRepo, historyRepo)

	return &Deps{
		SearchHandler:    &SearchHandler{Search: searchSvc},
		RecommendHandler: &RecommendHandler{Recommend: recommendSvc},
		SuggestHandler:   &SuggestHandler{Suggest: suggestSvc},
		CatalogHandler:   &CatalogHandler{Catalog: catalogRepo, Cats: categoryRepo},
		TrackHandler:     &TrackHandler{Activity: activitySvc},
		AnalyticsHandler: &AnalyticsHandler{Log: logSvc},
	}
}
