package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/m-zajac/repopopularity/internal/app"
	"golang.org/x/oauth2"
)

// Client returns metrics of github repositories.
// This struct is an adapter for app.RepositoryUpstream.
type Client struct {
	gh *github.Client
}

var _ app.RepositoryUpstream = &Client{}

// NewClient creates new github client.
// address is the rest api base url, authToken is optional.
// Redirects are never followed, so 301 responses reach the client.
func NewClient(httpClient *http.Client, address string, authToken string) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	baseURL, err := url.Parse(strings.TrimSuffix(address, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid api address %q: scheme and host are required", address)
	}

	hc := *httpClient
	hc.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	if authToken != "" {
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = &oauth2.Transport{
			Base:   base,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: authToken}),
		}
	}

	gh := github.NewClient(&hc)
	gh.BaseURL = baseURL

	return &Client{
		gh: gh,
	}, nil
}

// Repository returns metrics of a repository identified by "owner/name".
func (c *Client) Repository(ctx context.Context, identifier string) (app.RepositoryMetrics, error) {
	owner, name, err := app.SplitIdentifier(identifier)
	if err != nil {
		return app.RepositoryMetrics{}, err
	}

	repo, resp, err := c.gh.Repositories.Get(ctx, owner, name)
	if err := checkResponse(resp, err, "repository "+identifier); err != nil {
		return app.RepositoryMetrics{}, err
	}

	m, err := toMetrics(owner, name, repo)
	if err != nil {
		return app.RepositoryMetrics{}, app.UpstreamUnavailableError(err, "malformed repository %s payload", identifier)
	}

	return m, nil
}

// OrganizationRepositories returns metrics of repositories listed for given organization.
// Only the first page of the listing is taken.
func (c *Client) OrganizationRepositories(ctx context.Context, org string) ([]app.RepositoryMetrics, error) {
	if err := app.ValidateOrganizationName(org); err != nil {
		return nil, err
	}

	repos, resp, err := c.gh.Repositories.ListByOrg(ctx, org, nil)
	if err := checkResponse(resp, err, "organization "+org); err != nil {
		return nil, err
	}

	ms := make([]app.RepositoryMetrics, 0, len(repos))
	for i, repo := range repos {
		if repo == nil || repo.Name == nil {
			return nil, app.UpstreamUnavailableError(
				errors.New("missing name"),
				"malformed organization %s repository #%d payload", org, i,
			)
		}
		m, err := toMetrics(org, repo.GetName(), repo)
		if err != nil {
			return nil, app.UpstreamUnavailableError(err, "malformed organization %s repository #%d payload", org, i)
		}
		ms = append(ms, m)
	}

	return ms, nil
}

// checkResponse maps upstream outcome to app errors. Returns nil only for status 200 with decoded body.
func checkResponse(resp *github.Response, err error, what string) error {
	if resp == nil || resp.Response == nil {
		if err == nil {
			err = errors.New("no response")
		}
		return app.UpstreamUnavailableError(err, "requesting %s", what)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if err != nil {
			return app.UpstreamUnavailableError(err, "decoding %s response", what)
		}
		return nil
	case http.StatusNotFound:
		return app.NotFoundError("%s not found", what)
	case http.StatusForbidden:
		return app.ForbiddenError("request for %s forbidden", what)
	case http.StatusMovedPermanently:
		return app.MovedPermanentlyError("%s moved permanently", what)
	default:
		return app.UpstreamUnavailableError(err, "unexpected status %d for %s", resp.StatusCode, what)
	}
}

func toMetrics(owner string, name string, repo *github.Repository) (app.RepositoryMetrics, error) {
	if repo == nil {
		return app.RepositoryMetrics{}, errors.New("empty payload")
	}
	if repo.StargazersCount == nil {
		return app.RepositoryMetrics{}, errors.New("missing stargazers_count")
	}
	if repo.ForksCount == nil {
		return app.RepositoryMetrics{}, errors.New("missing forks_count")
	}

	return app.RepositoryMetrics{
		Owner: owner,
		Name:  name,
		Stars: repo.GetStargazersCount(),
		Forks: repo.GetForksCount(),
	}, nil
}
