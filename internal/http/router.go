package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arand/kharcha/internal/http/budget"
	"github.com/arand/kharcha/internal/http/expense"
	"github.com/arand/kharcha/internal/http/export"
	"github.com/arand/kharcha/internal/http/goal"
	"github.com/arand/kharcha/internal/http/insight"
	"github.com/arand/kharcha/internal/http/month"
)

func New(
	budgetV1 *budget.Handler,
	expensesV1 *expense.Handler,
	monthsV1 *month.Handler,
	insightsV1 *insight.Handler,
	goalsV1 *goal.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/budget", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/import", expensesV1.ImportRoutes)

		r.Route("/months", func(r chi.Router) {
			monthsV1.Routes(r)
		})

		r.Route("/insights", func(r chi.Router) {
			insightsV1.Routes(r)
		})

		r.Route("/goal", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalsV1.Routes(r)
		})

		r.Route("/export", func(r chi.Router) {
			exportV1.Routes(r)
		})
	})

	return router
}
