package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/juju/clock"
	"github.com/juju/retry"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/internal/logging"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// ObjectStore is the vendor SDK surface a Provider needs. Stat reports
// (false, nil) for a missing object; Read returns an error wrapping
// osdu.ErrObjectNotFound.
type ObjectStore interface {
	Stat(ctx context.Context, loc Location) (bool, error)
	Read(ctx context.Context, loc Location, w io.Writer) (string, error)
	Write(ctx context.Context, loc Location, r io.Reader, contentType string) error
}

// Policy bounds the retry of transient object store failures.
type Policy struct {
	Attempts int
	Delay    time.Duration
	Clock    clock.Clock
}

// DefaultPolicy makes three attempts one second apart.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: constants.DefaultRefreshAttempts,
		Delay:    constants.DefaultRetryWaitMin,
		Clock:    clock.WallClock,
	}
}

// SettingRetryDelay is the provider setting holding the delay between object
// store attempts, as a Go duration or whole seconds.
const SettingRetryDelay = "blob_retry_delay"

// PolicyFromConfig returns DefaultPolicy with the delay taken from the
// blob_retry_delay setting when it is set and valid. The credential refresh
// delay does not apply to object store retries.
func PolicyFromConfig(cfg *osdu.Config) Policy {
	policy := DefaultPolicy()
	if cfg == nil {
		return policy
	}

	raw := cfg.Setting(SettingRetryDelay)
	if raw == "" {
		return policy
	}

	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		policy.Delay = time.Duration(seconds) * time.Second
	} else if delay, err := time.ParseDuration(raw); err == nil && delay > 0 {
		policy.Delay = delay
	}

	return policy
}

// Provider implements osdu.BlobStorageProvider over an ObjectStore.
type Provider struct {
	name   string
	parse  Parser
	store  ObjectStore
	policy Policy
	logger osdu.Logger
}

// NewProvider creates a Provider. A zero policy means DefaultPolicy.
func NewProvider(name string, parse Parser, store ObjectStore, policy Policy, logger osdu.Logger) *Provider {
	defaults := DefaultPolicy()

	if policy.Attempts <= 0 {
		policy.Attempts = defaults.Attempts
	}

	if policy.Delay <= 0 {
		policy.Delay = defaults.Delay
	}

	if policy.Clock == nil {
		policy.Clock = defaults.Clock
	}

	return &Provider{
		name:   name,
		parse:  parse,
		store:  store,
		policy: policy,
		logger: logging.OrNoop(logger),
	}
}

// Policy returns the retry policy in effect.
func (p *Provider) Policy() Policy {
	return p.policy
}

// Exists implements osdu.BlobStorageProvider.
func (p *Provider) Exists(ctx context.Context, uri string) (bool, error) {
	loc, err := p.parse(uri)
	if err != nil {
		return false, err
	}

	var found bool

	err = p.retry(ctx, "exists", loc, func() error {
		var statErr error
		found, statErr = p.store.Stat(ctx, loc)

		return statErr
	})

	return found, err
}

// Download implements osdu.BlobStorageProvider. Nothing is written to w
// unless the whole object was read.
func (p *Provider) Download(ctx context.Context, uri string, w io.Writer) (string, error) {
	content, contentType, err := p.DownloadBytes(ctx, uri)
	if err != nil {
		return "", err
	}

	if _, err := w.Write(content); err != nil {
		return "", fmt.Errorf("writing %s: %w", uri, err)
	}

	return contentType, nil
}

// DownloadBytes implements osdu.BlobStorageProvider.
func (p *Provider) DownloadBytes(ctx context.Context, uri string) ([]byte, string, error) {
	loc, err := p.parse(uri)
	if err != nil {
		return nil, "", err
	}

	var (
		buf         bytes.Buffer
		contentType string
	)

	err = p.retry(ctx, "download", loc, func() error {
		buf.Reset()

		var readErr error
		contentType, readErr = p.store.Read(ctx, loc, &buf)

		return readErr
	})
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), contentType, nil
}

// Upload implements osdu.BlobStorageProvider. The content of r is buffered
// so that failed attempts can be replayed.
func (p *Provider) Upload(ctx context.Context, uri string, r io.Reader, contentType string) error {
	loc, err := p.parse(uri)
	if err != nil {
		return err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading upload content: %w", err)
	}

	return p.retry(ctx, "upload", loc, func() error {
		return p.store.Write(ctx, loc, bytes.NewReader(content), contentType)
	})
}

func (p *Provider) retry(ctx context.Context, op string, loc Location, fn func() error) error {
	attempts := 0

	err := retry.Call(retry.CallArgs{
		Func: func() error {
			attempts++

			return fn()
		},
		IsFatalError: func(err error) bool {
			return attempts >= p.policy.Attempts ||
				errors.Is(err, osdu.ErrObjectNotFound) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
		NotifyFunc: func(err error, attempt int) {
			p.logger.Warn("blob storage call failed", map[string]interface{}{
				"provider":  p.name,
				"operation": op,
				"object":    loc.String(),
				"attempt":   attempt,
				"error":     err.Error(),
			})
		},
		Attempts: p.policy.Attempts,
		Delay:    p.policy.Delay,
		Clock:    p.policy.Clock,
		Stop:     ctx.Done(),
	})
	if err != nil {
		return fmt.Errorf("%s %s %s: %w", p.name, op, loc, retry.LastError(err))
	}

	return nil
}
