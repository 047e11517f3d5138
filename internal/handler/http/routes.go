package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		middleware.Compress(compressionLevel, "application/json"),
	)

	if h.metricsHandler != nil {
		router.Handle("/metrics", h.metricsHandler)
	}

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Route("/employees", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createEmployee)
		r.Get("/", h.listEmployees)

		r.Get("/department/{department}", h.listEmployeesByDepartment)
		r.Get("/skills/{skill}", h.listEmployeesBySkill)
		r.Get("/avg-salary/{department}", h.averageSalary)

		r.Get("/{employee_id}", h.getEmployee)
		r.Put("/{employee_id}", h.updateEmployee)
		r.Delete("/{employee_id}", h.deleteEmployee)
	})

	return router
}
