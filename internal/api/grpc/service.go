package grpc

import (
	"context"

	"github.com/m-zajac/repopopularity/internal/api"
	"github.com/m-zajac/repopopularity/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppService can return popularity of repositories.
type AppService interface {
	RepositoryPopularity(ctx context.Context, identifier string) (app.PopularityResult, error)
	OrganizationPopularity(ctx context.Context, org string) (app.PopularityResultList, error)
}

// Service implements PopularityServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ PopularityServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// Repository calls service and returns reply.
func (s *Service) Repository(ctx context.Context, r *RepositoryRequest) (*Popularity, error) {
	if r.RepositoryName == "" {
		return nil, toStatus(app.IdentifierFormatError("missing repository name"), api.ResourceRepository, r.RepositoryName)
	}

	result, err := s.appService.RepositoryPopularity(ctx, r.RepositoryName)
	if err != nil {
		return nil, toStatus(err, api.ResourceRepository, r.RepositoryName)
	}

	return newPopularity(result), nil
}

// Organization calls service and returns reply.
func (s *Service) Organization(ctx context.Context, r *OrganizationRequest) (*PopularityList, error) {
	if r.OrgName == "" {
		return nil, toStatus(app.IdentifierFormatError("missing organization name"), api.ResourceOrganization, r.OrgName)
	}

	list, err := s.appService.OrganizationPopularity(ctx, r.OrgName)
	if err != nil {
		return nil, toStatus(err, api.ResourceOrganization, r.OrgName)
	}

	items := make([]*Popularity, 0, len(list.Items))
	for _, result := range list.Items {
		items = append(items, newPopularity(result))
	}
	return &PopularityList{
		Items: items,
	}, nil
}

func newPopularity(r app.PopularityResult) *Popularity {
	return &Popularity{
		Score:     int64(r.Score),
		Owner:     r.Owner,
		Name:      r.Name,
		IsPopular: r.IsPopular,
	}
}

func toStatus(err error, resource string, identifier string) error {
	kind := app.KindOf(err)

	code := codes.Internal
	switch kind {
	case app.KindNotFound:
		code = codes.NotFound
	case app.KindIdentifierFormat:
		code = codes.InvalidArgument
	}

	return status.Error(code, api.ErrorMessage(kind, resource, identifier))
}
