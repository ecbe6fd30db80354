package routers

import (
	"fmt"
	"time"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/delivery/http/controllers"
	"prosedur-service/internal/app/delivery/http/middlewares"
	"prosedur-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSearchRoutes(router chi.Router, middlewares *middlewares.Middlewares, internalConfig *config.InternalConfig, searchController *controllers.SearchController) {
	// Search endpoints get their own limiter: the form sends one query
	// update per keystroke.
	searchLimiter := middlewares.NewSearchRateLimiter(
		internalConfig.App.SearchRateLimitPerSecond,
		time.Second,
		time.Duration(internalConfig.App.SearchRateBlockInSeconds)*time.Second,
	)

	router.Use(middlewares.Authenticate)
	router.Use(searchLimiter.Limit)

	router.Post("/", searchController.CreateSearchSession)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamSearchSessionID), searchController.GetSearchSession)
	router.Put(fmt.Sprintf("/{%s}/query", constvars.URLParamSearchSessionID), searchController.UpdateQuery)
	router.Post(fmt.Sprintf("/{%s}/selections", constvars.URLParamSearchSessionID), searchController.SelectComplication)
	router.Delete(fmt.Sprintf("/{%s}/selections/{%s}", constvars.URLParamSearchSessionID, constvars.URLParamSelectionID), searchController.RemoveComplication)
}
