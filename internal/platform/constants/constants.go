/*
Package constants provides centralized, immutable values shared across the
crawler's layers: connection timing, retry policy, and the supported year
range.

Using this package ensures magic strings and magic numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "filmcatalog-crawler"
	AppVersion = "0.1.0-dev"
)

// # Connection Timing

const (
	// DefaultConnectTimeout is the maximum time allowed to establish a pool connection.
	DefaultConnectTimeout = 5 * time.Second

	// DefaultPingTimeout is the maximum duration for a health-check ping.
	DefaultPingTimeout = 2 * time.Second

	// GlobalStatementTimeout is the per-statement deadline enforced on the pool.
	GlobalStatementTimeout = 30 * time.Second

	// ShutdownTimeout is how long a run is given to finish in-flight writes after cancellation.
	ShutdownTimeout = 30 * time.Second
)

// # Upstream HTTP / Retry Policy

const (
	// RetryInterval is the sleep between retries of a transient (HTTP 522) upstream failure.
	RetryInterval = 2 * time.Second

	// HTTPTimeout bounds a single upstream HTTP round trip.
	HTTPTimeout = 15 * time.Second

	// StatusUpstreamTimeout is the CDN-specific "a timeout occurred" status that triggers retry.
	StatusUpstreamTimeout = 522
)

// # Crawl Defaults

const (
	// DefaultStartYear is the first year crawled when unconfigured.
	DefaultStartYear = 1887

	// DefaultMaxConnections is the sole concurrency/throughput knob.
	DefaultMaxConnections = 50

	// MinSupportedYear is the lower bound of the supported year range
	// [1887, current_year+1) — the year of the earliest catalogued film.
	MinSupportedYear = 1887

	// ArticlePageSize is the outer-loop page size for Phase B.
	ArticlePageSize = 10000
)
