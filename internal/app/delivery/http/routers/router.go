package routers

import (
	"fmt"
	"time"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/delivery/http/controllers"
	"prosedur-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	sessionController *controllers.SessionController,
	practitionerController *controllers.PractitionerController,
	configController *controllers.ConfigController,
	searchController *controllers.SearchController,
	procedureController *controllers.ProcedureController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Api-Key", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, sessionController)
			})

			r.Route("/providers", func(r chi.Router) {
				attachPractitionerRoutes(r, middlewares, practitionerController)
			})

			r.Route("/config/procedure", func(r chi.Router) {
				attachConfigRoutes(r, middlewares, configController)
			})

			r.Route("/search-sessions", func(r chi.Router) {
				attachSearchRoutes(r, middlewares, internalConfig, searchController)
			})

			r.Route("/orders", func(r chi.Router) {
				attachProcedureRoutes(r, middlewares, procedureController)
			})
		})
	})
}
