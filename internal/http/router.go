package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/campus/internal/attachment"
	"github.com/MrJamesThe3rd/campus/internal/http/auth"
	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
	"github.com/MrJamesThe3rd/campus/internal/http/export"
	"github.com/MrJamesThe3rd/campus/internal/http/fee"
	"github.com/MrJamesThe3rd/campus/internal/http/importcsv"
	"github.com/MrJamesThe3rd/campus/internal/http/student"
)

type Options struct {
	// Verifier enables bearer authentication on the API. Nil leaves it open.
	Verifier    *auth.Verifier
	CORSOrigins []string
	Uploads     http.Handler
}

func New(
	feesV1 *fee.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	studentsV1 *student.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		envelope.JSON(w, r, http.StatusOK, "ok", nil)
	})

	if opts.Uploads != nil {
		router.Handle(attachment.Prefix+"*", opts.Uploads)
	}

	router.Route("/api/{companyId}", func(r chi.Router) {
		r.Use(auth.Middleware(opts.Verifier))

		r.Route("/fee", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json", "multipart/form-data"))
			r.Route("/import", importV1.Routes)
			r.Route("/export", exportV1.Routes)
			feesV1.Routes(r)
		})

		r.Route("/student", studentsV1.Routes)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		envelope.Fail(w, r, http.StatusNotFound, "Route not found.")
	})

	return router
}
