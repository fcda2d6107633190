package app

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -destination mock/app.go -package mock github.com/m-zajac/repopopularity/internal/app RepositoryUpstream,CacheStore,Scorer

// RepositoryUpstream returns raw metrics of hosted repositories.
type RepositoryUpstream interface {
	Repository(ctx context.Context, identifier string) (RepositoryMetrics, error)
	OrganizationRepositories(ctx context.Context, org string) ([]RepositoryMetrics, error)
}

// CacheStore keeps serialized results for a deployment wide ttl.
// Read returns nil data and nil error when key is missing.
type CacheStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Scorer turns metrics into popularity result.
type Scorer interface {
	Score(m RepositoryMetrics) (PopularityResult, error)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service is main apps entry point. Provides all app functionality
type Service struct {
	upstream RepositoryUpstream
	cache    CacheStore
	scorer   Scorer
	l        logrus.FieldLogger

	inflight singleflight.Group
}

// NewService creates new Service instance
func NewService(upstream RepositoryUpstream, cache CacheStore, scorer Scorer, l logrus.FieldLogger) *Service {
	return &Service{
		upstream: upstream,
		cache:    cache,
		scorer:   scorer,
		l:        l,
	}
}

// RepositoryPopularity returns popularity of a single repository identified by "owner/name".
// Result is served from cache when possible, computed and cached otherwise.
// Malformed identifiers are rejected before cache lookup, so they never hit organization entries.
func (s *Service) RepositoryPopularity(ctx context.Context, identifier string) (PopularityResult, error) {
	if _, _, err := SplitIdentifier(identifier); err != nil {
		s.logError(identifier, err)
		return PopularityResult{}, err
	}

	v, err := s.share(ctx, "repo:"+identifier, func(ctx context.Context) (interface{}, error) {
		var cached PopularityResult
		hit, err := s.readCache(ctx, identifier, &cached)
		if err != nil {
			return nil, err
		}
		if hit {
			return cached, nil
		}

		metrics, err := s.upstream.Repository(ctx, identifier)
		if err != nil {
			return nil, ensureKind(err, KindUpstreamUnavailable, "fetching repository")
		}
		result, err := s.scorer.Score(metrics)
		if err != nil {
			return nil, ensureKind(err, KindScoreComputation, "scoring repository")
		}

		if err := s.writeCache(ctx, identifier, result); err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		s.logError(identifier, err)
		return PopularityResult{}, err
	}

	return v.(PopularityResult), nil
}

// OrganizationPopularity returns popularity of every repository of given organization.
// Items keep the order in which upstream listed the repositories.
// Any failure aborts the whole request, partial lists are never cached or returned.
func (s *Service) OrganizationPopularity(ctx context.Context, org string) (PopularityResultList, error) {
	if err := ValidateOrganizationName(org); err != nil {
		s.logError(org, err)
		return PopularityResultList{}, err
	}

	v, err := s.share(ctx, "org:"+org, func(ctx context.Context) (interface{}, error) {
		var cached PopularityResultList
		hit, err := s.readCache(ctx, org, &cached)
		if err != nil {
			return nil, err
		}
		if hit {
			return cached, nil
		}

		repos, err := s.upstream.OrganizationRepositories(ctx, org)
		if err != nil {
			return nil, ensureKind(err, KindUpstreamUnavailable, "fetching organization repositories")
		}

		items := make([]PopularityResult, len(repos))
		var g errgroup.Group
		for i, m := range repos {
			i, m := i, m
			g.Go(func() error {
				result, err := s.scorer.Score(m)
				if err != nil {
					return ensureKind(err, KindScoreComputation, fmt.Sprintf("scoring repository %s/%s", m.Owner, m.Name))
				}
				items[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		list := PopularityResultList{Items: items}
		if err := s.writeCache(ctx, org, list); err != nil {
			return nil, err
		}
		return list, nil
	})
	if err != nil {
		s.logError(org, err)
		return PopularityResultList{}, err
	}

	return v.(PopularityResultList), nil
}

// share runs fn once for all concurrent callers of the same key.
// fn gets a context detached from caller cancellation, so one cancelled caller never fails the others.
// Each caller waits only as long as its own ctx allows.
func (s *Service) share(ctx context.Context, key string, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	detached := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		return fn(detached)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, UpstreamUnavailableError(ctx.Err(), "request canceled while waiting for %s", key)
	}
}

func (s *Service) readCache(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := s.cache.Read(ctx, key)
	if err != nil {
		return false, ensureKind(err, KindCacheUnavailable, "reading cache")
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, CacheUnavailableError(err, "decoding cached value for %q", key)
	}

	return true, nil
}

func (s *Service) writeCache(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return CacheUnavailableError(err, "encoding value for %q", key)
	}
	if err := s.cache.Write(ctx, key, data); err != nil {
		return ensureKind(err, KindCacheUnavailable, "writing cache")
	}

	return nil
}

// ensureKind wraps err with msg, classifying it as fallback kind when no app error is found in its chain.
func ensureKind(err error, fallback Kind, msg string) error {
	if KindOf(err) == KindUnknown {
		return newError(fallback, err, "%s", msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *Service) logError(identifier string, err error) {
	kind := KindOf(err)
	l := s.l.WithFields(logrus.Fields{
		"identifier": identifier,
		"kind":       kind.String(),
	})

	switch kind {
	case KindNotFound:
		l.Infof("resource not found: %v", err)
	case KindIdentifierFormat:
		l.Warnf("invalid identifier: %v", err)
	case KindForbidden:
		l.Errorf("request forbidden, check access token: %v", err)
	case KindMovedPermanently:
		l.Errorf("resource moved permanently: %v", err)
	case KindUpstreamUnavailable:
		l.Errorf("upstream unavailable: %v", err)
	case KindScoreComputation:
		l.Errorf("calculating score: %v", err)
	case KindCacheUnavailable:
		l.Errorf("cache unavailable: %v", err)
	default:
		l.Errorf("unexpected error: %v", err)
	}
}
