// Package contact submits the portfolio contact form to a third-party form
// relay and tracks the form's on-screen state.
package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrRejected is returned when the relay answers with a non-2xx status.
var ErrRejected = errors.New("contact: relay rejected submission")

// Client posts form-encoded submissions to Endpoint.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Submit sends values and succeeds only on a 2xx answer.
func (c *Client) Submit(ctx context.Context, values url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("contact: send: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}
	return nil
}

// SubmitAsync runs Submit on its own goroutine. The returned channel
// receives exactly one result.
func (c *Client) SubmitAsync(ctx context.Context, values url.Values) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- c.Submit(ctx, values)
	}()
	return done
}
