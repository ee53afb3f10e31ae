// Package adapter records outbound aggregator calls through an http.RoundTripper.
package adapter

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MMN3003/swapproxy/src/audit/domain"
	"github.com/MMN3003/swapproxy/src/logger"
)

const saveTimeout = 5 * time.Second

// Transport is an http.RoundTripper that logs every upstream call to the audit repository.
type Transport struct {
	inner  http.RoundTripper
	repo   domain.Repository
	logger *logger.Logger
	wg     sync.WaitGroup
}

func NewTransport(inner http.RoundTripper, repo domain.Repository, logger *logger.Logger) *Transport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &Transport{inner: inner, repo: repo, logger: logger}
}

// NewHTTPClient wraps the default transport with auditing.
func NewHTTPClient(timeout time.Duration, repo domain.Repository, logger *logger.Logger) (*http.Client, *Transport) {
	t := NewTransport(http.DefaultTransport, repo, logger)
	return &http.Client{Timeout: timeout, Transport: t}, t
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.inner.RoundTrip(req)

	call := &domain.UpstreamCall{
		ID:         uuid.New(),
		Method:     req.Method,
		Host:       req.URL.Host,
		Path:       req.URL.Path,
		DurationMs: time.Since(start).Milliseconds(),
		CreatedAt:  start.UTC(),
	}
	if err != nil {
		call.Error = err.Error()
	} else {
		call.Status = resp.StatusCode
	}

	// Insert asynchronously so we don't slow down the request
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if dbErr := t.repo.SaveCall(ctx, call); dbErr != nil {
			t.logger.Warnf("audit: failed to log %s %s%s: %v", call.Method, call.Host, call.Path, dbErr)
		}
	}()

	return resp, err
}

// Wait blocks until pending audit writes finish.
func (t *Transport) Wait() {
	t.wg.Wait()
}
