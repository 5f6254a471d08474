package http

import (
	"time"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger osdu.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response line.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables transport level retries of 429 and 5xx
// responses. retryMax 0 disables them.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithDataPartition sets the data-partition-id header value.
func WithDataPartition(partitionID string) Option {
	return func(c *Client) {
		c.dataPartition = partitionID
	}
}

// WithAutoAuthentication toggles the refresh-and-retry on 401 and 403.
func WithAutoAuthentication(enabled bool) Option {
	return func(c *Client) {
		c.autoAuth = enabled
	}
}

// WithVerifyTLS toggles server certificate verification.
func WithVerifyTLS(verify bool) Option {
	return func(c *Client) {
		c.verifyTLS = verify
	}
}
