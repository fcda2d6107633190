package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/repopopularity/internal/api"
	"github.com/m-zajac/repopopularity/internal/api/http/mock"
	"github.com/m-zajac/repopopularity/internal/app"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNewRepositoryHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		url             string
		setupMock       func(*mock.MockService)
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name: "valid response",
			url:  "testurl?repository_name=test/test",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "test/test").
					Return(app.PopularityResult{Score: 600, Owner: "test", Name: "test", IsPopular: true}, nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        `{"score":600,"owner":"test","name":"test","is_popular":true}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "missing param",
			url:             "testurl",
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"title":"Error","message":"Invalid repository name \"\", expected format owner/name"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "invalid identifier",
			url:  "testurl?repository_name=lore+ipsum",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "lore ipsum").
					Return(app.PopularityResult{}, app.IdentifierFormatError("invalid identifier"))
			},
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"title":"Error","message":"Invalid repository name \"lore ipsum\", expected format owner/name"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "not found",
			url:  "testurl?repository_name=a/b",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "a/b").
					Return(app.PopularityResult{}, app.NotFoundError("repository a/b not found"))
			},
			wantStatus:      http.StatusNotFound,
			wantBody:        `{"title":"Error","message":"Repository a/b not found"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "forbidden",
			url:  "testurl?repository_name=a/b",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "a/b").
					Return(app.PopularityResult{}, app.ForbiddenError("secret token details"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantBody:        `{"title":"Error","message":"An error occurred when trying to get repository info"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "cache unavailable",
			url:  "testurl?repository_name=a/b",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "a/b").
					Return(app.PopularityResult{}, app.CacheUnavailableError(errors.New("dial tcp 10.0.0.1:6379"), "redis GET"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantBody:        `{"title":"Error","message":"An error occurred when trying to access cache"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "unknown error",
			url:  "testurl?repository_name=a/b",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryPopularity(gomock.Any(), "a/b").
					Return(app.PopularityResult{}, errors.New("error"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantBody:        `{"title":"Error","message":"An unexpected error occurred"}`,
			wantContentType: "application/json; charset=utf-8",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			l, _ := test.NewNullLogger()
			handler := NewRepositoryHandler(s, l)
			req := httptest.NewRequest(http.MethodGet, "/"+tt.url, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))

			body := w.Body.String()
			body = strings.Trim(body, "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestNewOrganizationHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		url        string
		setupMock  func(*mock.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid response",
			url:  "testurl?org_name=test",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "test").
					Return(app.PopularityResultList{Items: []app.PopularityResult{
						{Score: 3, Owner: "test", Name: "b", IsPopular: false},
						{Score: 900, Owner: "test", Name: "a", IsPopular: true},
					}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"items":[{"score":3,"owner":"test","name":"b","is_popular":false},{"score":900,"owner":"test","name":"a","is_popular":true}]}`,
		},
		{
			name: "empty organization",
			url:  "testurl?org_name=test",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "test").
					Return(app.PopularityResultList{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"items":[]}`,
		},
		{
			name:       "missing param",
			url:        "testurl?repository_name=test",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"title":"Error","message":"Invalid organization name \"\""}`,
		},
		{
			name: "not found",
			url:  "testurl?org_name=test",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "test").
					Return(app.PopularityResultList{}, app.NotFoundError("organization test not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"title":"Error","message":"Organization test not found"}`,
		},
		{
			name: "moved permanently",
			url:  "testurl?org_name=test",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "test").
					Return(app.PopularityResultList{}, app.MovedPermanentlyError("organization moved"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"title":"Error","message":"An error occurred when trying to get organization info"}`,
		},
		{
			name: "score computation",
			url:  "testurl?org_name=test",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationPopularity(gomock.Any(), "test").
					Return(app.PopularityResultList{}, app.ScoreComputationError(nil, "overflow"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"title":"Error","message":"An error occurred when trying to calculate score"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			l, _ := test.NewNullLogger()
			handler := NewOrganizationHandler(s, l)
			req := httptest.NewRequest(http.MethodGet, "/"+tt.url, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))
			assert.Equal(t, tt.wantBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHealthcheckHandler(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	HealthcheckHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"message":"I'm alive"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestWriteErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{app.NotFoundError("missing"), http.StatusNotFound},
		{app.IdentifierFormatError("bad"), http.StatusBadRequest},
		{app.ForbiddenError("forbidden"), http.StatusInternalServerError},
		{app.MovedPermanentlyError("moved"), http.StatusInternalServerError},
		{app.UpstreamUnavailableError(nil, "down"), http.StatusInternalServerError},
		{app.ScoreComputationError(nil, "overflow"), http.StatusInternalServerError},
		{app.CacheUnavailableError(nil, "down"), http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		l, _ := test.NewNullLogger()
		w := httptest.NewRecorder()
		writeError(w, tt.err, api.ResourceRepository, "a/b", l)
		assert.Equal(t, tt.want, w.Code, "error: %v", tt.err)
	}
}
