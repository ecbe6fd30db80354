package routers

import (
	"prosedur-service/internal/app/delivery/http/controllers"
	"prosedur-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, middlewares *middlewares.Middlewares, practitionerController *controllers.PractitionerController) {
	router.With(middlewares.Authenticate).Get("/", practitionerController.FindAll)
}
