package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/repopopularity/internal/api"
	"github.com/m-zajac/repopopularity/internal/app"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// NewRepositoryHandler creates handlerfunc returning popularity of a single repository.
func NewRepositoryHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identifier := r.URL.Query().Get(RepositoryParam)
		if identifier == "" {
			writeError(w, app.IdentifierFormatError("missing %s query param", RepositoryParam), api.ResourceRepository, identifier, l)
			return
		}

		result, err := service.RepositoryPopularity(r.Context(), identifier)
		if err != nil {
			writeError(w, err, api.ResourceRepository, identifier, l)
			return
		}

		writeJSON(w, http.StatusOK, result, l)
	}
}

// NewOrganizationHandler creates handlerfunc returning popularity of all repositories of an organization.
func NewOrganizationHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		org := r.URL.Query().Get(OrganizationParam)
		if org == "" {
			writeError(w, app.IdentifierFormatError("missing %s query param", OrganizationParam), api.ResourceOrganization, org, l)
			return
		}

		list, err := service.OrganizationPopularity(r.Context(), org)
		if err != nil {
			writeError(w, err, api.ResourceOrganization, org, l)
			return
		}
		if list.Items == nil {
			list.Items = []app.PopularityResult{}
		}

		writeJSON(w, http.StatusOK, list, l)
	}
}

// HealthcheckHandler reports that the process is able to serve requests.
func HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "I'm alive"}, nil)
}

func writeError(w http.ResponseWriter, err error, resource string, identifier string, l logrus.FieldLogger) {
	kind := app.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case app.KindNotFound:
		status = http.StatusNotFound
	case app.KindIdentifierFormat:
		status = http.StatusBadRequest
	}

	writeJSON(w, status, errorResponse{
		Title:   api.ErrorTitle,
		Message: api.ErrorMessage(kind, resource, identifier),
	}, l)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}, l logrus.FieldLogger) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := jsoniter.ConfigFastest.NewEncoder(w).Encode(v); err != nil && l != nil {
		l.Warnf("writing response: %v", err)
	}
}
