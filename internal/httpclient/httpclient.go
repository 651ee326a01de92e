/*
Package httpclient is the shared upstream HTTP client for
[internal/wikipedia] and [internal/omdb]: a uniform retry-on-timeout policy
plus goccy/go-json decoding.
*/
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/taibuivan/filmcatalog/internal/platform/constants"
)

// statusUpstreamTimeout is the HTTP status the upstream CDNs in front of
// PetScan/Wikipedia/OMDb return to signal "a timeout occurred".
const statusUpstreamTimeout = constants.StatusUpstreamTimeout

// Client wraps a single *http.Client shared across calls, scoped to the
// orchestration run that constructed it — no process-wide session.
type Client struct {
	http          *http.Client
	logger        *slog.Logger
	retryInterval time.Duration
}

// New builds a Client with the standard connect/read timeout. retryInterval
// is the configurable sleep between HTTP-522 retries; callers pass
// [config.Config.RetryInterval].
func New(logger *slog.Logger, retryInterval time.Duration) *Client {
	return &Client{
		http:          &http.Client{Timeout: constants.HTTPTimeout},
		logger:        logger,
		retryInterval: retryInterval,
	}
}

// Get issues a GET request and decodes the JSON body. HTTP 522 and a
// network-level timeout both sleep for the configured retry interval and
// retry indefinitely, yielding to ctx cancellation between sleeps; any
// other non-200 status or request failure is terminal for this call; a
// JSON decode failure is logged and returns a nil result with no error, so
// the affected call is skipped rather than aborting the pipeline.
func (c *Client) Get(ctx context.Context, url string) (json.RawMessage, error) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("httpclient: build request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if isTimeout(err) {
				c.logger.Warn("network timeout, retrying", slog.String("url", url), slog.Any("error", err))
				if waitErr := c.sleep(ctx); waitErr != nil {
					return nil, waitErr
				}
				continue
			}
			return nil, err
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == statusUpstreamTimeout:
			c.logger.Warn("upstream timeout, retrying", slog.String("url", url))
			if waitErr := c.sleep(ctx); waitErr != nil {
				return nil, waitErr
			}
			continue

		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("httpclient: unexpected status %d for %s", resp.StatusCode, url)

		case readErr != nil:
			return nil, fmt.Errorf("httpclient: read body: %w", readErr)
		}

		var raw json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			c.logger.Warn("json decode failed", slog.String("url", url), slog.Any("error", err))
			return nil, nil
		}

		return raw, nil
	}
}

func (c *Client) sleep(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.retryInterval):
		return nil
	}
}

// isTimeout reports whether err is a network-level timeout, as opposed to a
// connection refusal or DNS failure. Only timeouts are transient enough to
// retry.
func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
