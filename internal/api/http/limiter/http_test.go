package limiter

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/m-zajac/repopopularity/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedTransportRate(t *testing.T) {
	maxRate := 500.0
	testTime := 200 * time.Millisecond

	rt := &mock.RoundTripper{}
	limited := NewTransport(rt, maxRate)

	startTime := time.Now()
	var trips int
	for startTime.Add(testTime).After(time.Now()) {
		req, _ := http.NewRequest(http.MethodGet, "http://fake", nil)
		_, err := limited.RoundTrip(req)
		require.NoError(t, err)
		trips++
	}

	expectedTrips := float64(maxRate) * float64(testTime) / float64(time.Second)
	diff := math.Abs(float64(trips)-expectedTrips) / expectedTrips
	assert.LessOrEqual(t, diff, 0.1, "unexpected number of round trips: %d, want %d", trips, int(expectedTrips))
	assert.Equal(t, trips, rt.Calls())
}

func TestLimitedTransportTimeout(t *testing.T) {
	rt := &mock.RoundTripper{}
	limited := NewTransport(rt, 1)

	req, _ := http.NewRequest(http.MethodGet, "http://fake", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	_, err := limited.RoundTrip(req)
	require.NoError(t, err, "first round trip")

	// Error is expected because of short ctx timeout and low rate limit.
	_, err = limited.RoundTrip(req)
	require.Error(t, err)
	assert.Equal(t, 1, rt.Calls())
}
