package routers

import (
	"prosedur-service/internal/app/delivery/http/controllers"
	"prosedur-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConfigRoutes(router chi.Router, middlewares *middlewares.Middlewares, configController *controllers.ConfigController) {
	router.With(middlewares.Authenticate).Get("/", configController.GetProcedureConfig)
}
