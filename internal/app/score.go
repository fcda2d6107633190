package app

import (
	"errors"
	"fmt"
	"math"
)

// ScoringConfig holds weights used for computing popularity.
type ScoringConfig struct {
	StarMultiplier   int
	ForkMultiplier   int
	PopularThreshold int
}

// Validate checks if config values are usable.
func (c ScoringConfig) Validate() error {
	if c.StarMultiplier < 0 {
		return errors.New("star multiplier cannot be negative")
	}
	if c.ForkMultiplier < 0 {
		return errors.New("fork multiplier cannot be negative")
	}
	if c.PopularThreshold < 0 {
		return errors.New("popular threshold cannot be negative")
	}
	return nil
}

// ScoreCalculator computes popularity score from repository metrics.
type ScoreCalculator struct {
	conf ScoringConfig
}

var _ Scorer = &ScoreCalculator{}

// NewScoreCalculator creates new ScoreCalculator instance.
func NewScoreCalculator(conf ScoringConfig) (*ScoreCalculator, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}

	return &ScoreCalculator{
		conf: conf,
	}, nil
}

// Score returns popularity result for given metrics.
// score = stars*starMultiplier + forks*forkMultiplier, popular when score >= threshold.
func (c *ScoreCalculator) Score(m RepositoryMetrics) (PopularityResult, error) {
	if m.Stars < 0 || m.Forks < 0 {
		return PopularityResult{}, ScoreComputationError(
			nil,
			"invalid metrics for %s/%s: stars=%d forks=%d", m.Owner, m.Name, m.Stars, m.Forks,
		)
	}

	stars, ok := mulNonNegative(m.Stars, c.conf.StarMultiplier)
	if !ok {
		return PopularityResult{}, ScoreComputationError(nil, "stars score overflow for %s/%s", m.Owner, m.Name)
	}
	forks, ok := mulNonNegative(m.Forks, c.conf.ForkMultiplier)
	if !ok {
		return PopularityResult{}, ScoreComputationError(nil, "forks score overflow for %s/%s", m.Owner, m.Name)
	}
	if stars > math.MaxInt-forks {
		return PopularityResult{}, ScoreComputationError(nil, "score overflow for %s/%s", m.Owner, m.Name)
	}
	score := stars + forks

	return PopularityResult{
		Score:     score,
		Owner:     m.Owner,
		Name:      m.Name,
		IsPopular: score >= c.conf.PopularThreshold,
	}, nil
}

func mulNonNegative(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
