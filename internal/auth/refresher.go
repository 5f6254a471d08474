// Package auth holds the credential provider core shared by the cloud
// provider plugins: token state, the bounded refresh retry loop, and the
// service principal and managed identity token flows.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/juju/clock"
	"github.com/juju/retry"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/internal/logging"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// MintFunc performs the vendor specific calls that produce a new token.
type MintFunc func(ctx context.Context) (*Token, error)

// RefreshPolicy bounds the identity backend retry loop.
type RefreshPolicy struct {
	Attempts int
	Delay    time.Duration
	Clock    clock.Clock
}

// DefaultRefreshPolicy makes three attempts ten seconds apart.
func DefaultRefreshPolicy() RefreshPolicy {
	return RefreshPolicy{
		Attempts: constants.DefaultRefreshAttempts,
		Delay:    constants.DefaultRefreshDelay,
		Clock:    clock.WallClock,
	}
}

// PolicyFromConfig applies the refresh settings of cfg over the defaults.
func PolicyFromConfig(cfg *osdu.Config) RefreshPolicy {
	policy := DefaultRefreshPolicy()
	if cfg == nil {
		return policy
	}

	if cfg.RefreshAttempts > 0 {
		policy.Attempts = cfg.RefreshAttempts
	}

	if cfg.RefreshDelay > 0 {
		policy.Delay = cfg.RefreshDelay
	}

	return policy
}

func (p RefreshPolicy) normalized() RefreshPolicy {
	defaults := DefaultRefreshPolicy()

	if p.Attempts <= 0 {
		p.Attempts = defaults.Attempts
	}

	if p.Delay <= 0 {
		p.Delay = defaults.Delay
	}

	if p.Clock == nil {
		p.Clock = defaults.Clock
	}

	return p
}

// Option configures a credential provider.
type Option func(*options)

type options struct {
	httpClient *http.Client
	policy     RefreshPolicy
	logger     osdu.Logger
}

func newOptions(opts []Option) options {
	o := options{
		httpClient: NewHTTPClient(),
		policy:     DefaultRefreshPolicy(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	o.policy = o.policy.normalized()
	o.logger = logging.OrNoop(o.logger)

	return o
}

// NewHTTPClient returns the pooled client used for identity backend and
// metadata calls.
func NewHTTPClient() *http.Client {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = constants.ShortHTTPTimeout

	return client
}

// WithHTTPClient sets the client used to reach the identity backend.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithRefreshPolicy sets the retry policy of RefreshToken.
func WithRefreshPolicy(policy RefreshPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithLogger sets the logger.
func WithLogger(logger osdu.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Refresher owns a token store and refreshes it with a MintFunc under a
// bounded fixed-delay retry policy. It implements osdu.CredentialProvider.
type Refresher struct {
	name   string
	mint   MintFunc
	store  *TokenStore
	policy RefreshPolicy
	logger osdu.Logger
}

// NewRefresher creates a Refresher. name identifies the provider in errors
// and logs.
func NewRefresher(name string, mint MintFunc, opts ...Option) *Refresher {
	o := newOptions(opts)

	return &Refresher{
		name:   name,
		mint:   mint,
		store:  NewTokenStore(),
		policy: o.policy,
		logger: o.logger,
	}
}

// RefreshToken implements osdu.CredentialProvider.
func (r *Refresher) RefreshToken(ctx context.Context) (string, error) {
	var (
		token    *Token
		attempts int
	)

	err := retry.Call(retry.CallArgs{
		Func: func() error {
			attempts++

			minted, err := r.mint(ctx)
			if err != nil {
				return err
			}

			if minted == nil || minted.AccessToken == "" {
				return osdu.ErrEmptyToken
			}

			if !minted.Valid() {
				return fmt.Errorf("%w: expires at %s", osdu.ErrExpiredToken, minted.ExpiresAt.Format(time.RFC3339))
			}

			token = minted

			return nil
		},
		IsFatalError: func(err error) bool {
			return attempts >= r.policy.Attempts ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
		NotifyFunc: func(err error, attempt int) {
			r.logger.Warn("token refresh attempt failed", map[string]interface{}{
				"provider": r.name,
				"attempt":  attempt,
				"error":    err.Error(),
			})
		},
		Attempts: r.policy.Attempts,
		Delay:    r.policy.Delay,
		Clock:    r.policy.Clock,
		Stop:     ctx.Done(),
	})
	if err != nil {
		r.logger.Error("token refresh failed", map[string]interface{}{
			"provider": r.name,
			"attempts": attempts,
		})

		return "", &osdu.CredentialRefreshError{
			Provider: r.name,
			Attempts: attempts,
			Err:      retry.LastError(err),
		}
	}

	r.store.Set(token)
	r.logger.Debug("token refreshed", map[string]interface{}{
		"provider": r.name,
		"attempts": attempts,
	})

	return token.AccessToken, nil
}

// CurrentToken implements osdu.CredentialProvider.
func (r *Refresher) CurrentToken() string {
	token := r.store.Get()
	if token == nil {
		return ""
	}

	return token.AccessToken
}

// Token returns the full current token, or nil.
func (r *Refresher) Token() *Token {
	return r.store.Get()
}

// Name returns the provider name.
func (r *Refresher) Name() string {
	return r.name
}
