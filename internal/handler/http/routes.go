package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes guarded by the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/auth/update", h.updateProfile)

		r.Route("/api/expenses", func(r chi.Router) {
			r.Get("/", h.listExpenses)
			r.Post("/", h.createExpense)
			r.Get("/summary", h.expenseSummary)
			r.Put("/{id}", h.updateExpense)
			r.Delete("/{id}", h.deleteExpense)
		})
	})

	return router
}
