package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/m-zajac/repopopularity/internal/app"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/repopopularity/internal/api/http Service

// Service can return popularity of repositories.
type Service interface {
	RepositoryPopularity(ctx context.Context, identifier string) (app.PopularityResult, error)
	OrganizationPopularity(ctx context.Context, org string) (app.PopularityResultList, error)
}

// Query params read by popularity handlers.
const (
	RepositoryParam   = "repository_name"
	OrganizationParam = "org_name"
)

// NewMux creates router for app's http server
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.StripSlashes)
	r.Use(NewLoggingMiddleware(l))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/popular", func(r chi.Router) {
			r.Use(NewTimeoutMiddleware(timeout))
			r.Get("/repository", NewRepositoryHandler(service, l))
			r.Get("/org", NewOrganizationHandler(service, l))
		})
		r.Get("/utils/healthcheck", HealthcheckHandler)
	})

	return r
}
