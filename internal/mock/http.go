package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RoundTripper fakes http transport, answering with preconfigured responses.
type RoundTripper struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header

	RoundTripFunc func(*http.Request) (*http.Response, error)
	Requests      []*http.Request

	i int
	m sync.Mutex
}

// RoundTrip fakes executing http request.
func (d *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	d.m.Lock()
	defer d.m.Unlock()

	i := d.i
	d.i++
	d.Requests = append(d.Requests, r)

	if d.RoundTripFunc != nil {
		return d.RoundTripFunc(r)
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[i%len(d.Bodies)]
	}

	header := http.Header{}
	if len(d.Headers) > 0 {
		header = d.Headers[i%len(d.Headers)].Clone()
	}

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     header,
		Request:    r,
	}, nil
}

// Calls returns number of executed requests.
func (d *RoundTripper) Calls() int {
	d.m.Lock()
	defer d.m.Unlock()

	return d.i
}
