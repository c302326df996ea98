// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the research fetch tiers.
package httputil

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	defaultMaxRetries = 2
	defaultRetryDelay = 500 * time.Millisecond
)

// DoWithRetry executes an HTTP request with a small fixed retry budget.
// A network error or a transient status (429, 5xx) triggers a retry after
// a fixed short delay; any other response is returned immediately.
//
// When maxRetries is 0 the default (2) is used; when delay is 0 the
// default (500 ms) is used. On a transient response the body is drained
// and closed before sleeping. If the context is cancelled during the wait
// the function returns ctx.Err(). After exhausting retries the last
// response or error is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, delay time.Duration) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	var resp *http.Response
	var err error
	for attempt := 0; ; attempt++ {
		resp, err = client.Do(req.Clone(ctx))
		if err == nil && !transient(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, err
		}
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func transient(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
