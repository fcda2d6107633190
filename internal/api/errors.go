// Package api holds presentation rules shared by http and grpc transports.
package api

import (
	"fmt"

	"github.com/m-zajac/repopopularity/internal/app"
)

// Resource names used in client facing messages.
const (
	ResourceRepository   = "Repository"
	ResourceOrganization = "Organization"
)

// ErrorTitle is the title of every error response body.
const ErrorTitle = "Error"

// ErrorMessage returns client facing message for given error kind.
// Only not found and invalid identifier messages mention the request, nothing from the error chain is exposed.
func ErrorMessage(kind app.Kind, resource string, identifier string) string {
	switch kind {
	case app.KindIdentifierFormat:
		if resource == ResourceRepository {
			return fmt.Sprintf("Invalid repository name %q, expected format owner/name", identifier)
		}
		return fmt.Sprintf("Invalid organization name %q", identifier)
	case app.KindNotFound:
		return fmt.Sprintf("%s %s not found", resource, identifier)
	case app.KindForbidden, app.KindMovedPermanently, app.KindUpstreamUnavailable:
		if resource == ResourceRepository {
			return "An error occurred when trying to get repository info"
		}
		return "An error occurred when trying to get organization info"
	case app.KindScoreComputation:
		return "An error occurred when trying to calculate score"
	case app.KindCacheUnavailable:
		return "An error occurred when trying to access cache"
	default:
		return "An unexpected error occurred"
	}
}
