package routers

import (
	"fmt"

	"prosedur-service/internal/app/delivery/http/controllers"
	"prosedur-service/internal/app/delivery/http/middlewares"
	"prosedur-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachProcedureRoutes(router chi.Router, middlewares *middlewares.Middlewares, procedureController *controllers.ProcedureController) {
	router.With(middlewares.Authenticate).Post(
		fmt.Sprintf("/{%s}/completion", constvars.URLParamOrderID),
		procedureController.CompleteProcedure,
	)
}
