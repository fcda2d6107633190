package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/repopopularity/internal/api/http/mock"
	"github.com/m-zajac/repopopularity/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServiceRepository(t *testing.T) {
	tests := []struct {
		name        string
		req         *RepositoryRequest
		setupMock   func(*mock.MockService)
		want        *Popularity
		wantCode    codes.Code
		wantMessage string
	}{
		{
			name: "app service ok, valid response",
			req:  &RepositoryRequest{RepositoryName: "test/test"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "test/test").
					Return(app.PopularityResult{Score: 600, Owner: "test", Name: "test", IsPopular: true}, nil)
			},
			want:     &Popularity{Score: 600, Owner: "test", Name: "test", IsPopular: true},
			wantCode: codes.OK,
		},
		{
			name:        "empty name",
			req:         &RepositoryRequest{},
			wantCode:    codes.InvalidArgument,
			wantMessage: `Invalid repository name "", expected format owner/name`,
		},
		{
			name: "not found",
			req:  &RepositoryRequest{RepositoryName: "a/b"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "a/b").
					Return(app.PopularityResult{}, app.NotFoundError("repository a/b not found"))
			},
			wantCode:    codes.NotFound,
			wantMessage: "Repository a/b not found",
		},
		{
			name: "invalid identifier",
			req:  &RepositoryRequest{RepositoryName: "ab"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "ab").
					Return(app.PopularityResult{}, app.IdentifierFormatError("invalid"))
			},
			wantCode:    codes.InvalidArgument,
			wantMessage: `Invalid repository name "ab", expected format owner/name`,
		},
		{
			name: "app service error",
			req:  &RepositoryRequest{RepositoryName: "a/b"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "a/b").
					Return(app.PopularityResult{}, errors.New("test error"))
			},
			wantCode:    codes.Internal,
			wantMessage: "An unexpected error occurred",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			appService := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(appService)
			}

			s := NewService(appService)

			got, err := s.Repository(context.Background(), tt.req)
			require.Equal(t, tt.want, got)
			st, _ := status.FromError(err)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMessage, st.Message())
		})
	}
}

func TestServiceOrganization(t *testing.T) {
	tests := []struct {
		name      string
		req       *OrganizationRequest
		setupMock func(*mock.MockService)
		want      *PopularityList
		wantCode  codes.Code
	}{
		{
			name: "app service ok, valid response",
			req:  &OrganizationRequest{OrgName: "org"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "org").
					Return(app.PopularityResultList{Items: []app.PopularityResult{
						{Score: 1, Owner: "org", Name: "z"},
						{Score: 700, Owner: "org", Name: "a", IsPopular: true},
					}}, nil)
			},
			want: &PopularityList{Items: []*Popularity{
				{Score: 1, Owner: "org", Name: "z"},
				{Score: 700, Owner: "org", Name: "a", IsPopular: true},
			}},
			wantCode: codes.OK,
		},
		{
			name: "empty organization",
			req:  &OrganizationRequest{OrgName: "org"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "org").
					Return(app.PopularityResultList{}, nil)
			},
			want:     &PopularityList{Items: []*Popularity{}},
			wantCode: codes.OK,
		},
		{
			name:     "empty name",
			req:      &OrganizationRequest{},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "forbidden",
			req:  &OrganizationRequest{OrgName: "org"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "org").
					Return(app.PopularityResultList{}, app.ForbiddenError("forbidden"))
			},
			wantCode: codes.Internal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			appService := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(appService)
			}

			s := NewService(appService)

			got, err := s.Organization(context.Background(), tt.req)
			require.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}
