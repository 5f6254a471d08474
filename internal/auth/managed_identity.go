package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
)

// MetadataEndpoint is an instance metadata token endpoint, such as the
// Azure IMDS or the GCE metadata server.
type MetadataEndpoint struct {
	URL     string
	Query   url.Values
	Headers map[string]string
}

// ManagedIdentityProvider mints tokens from an instance metadata endpoint.
type ManagedIdentityProvider struct {
	*Refresher

	endpoint   MetadataEndpoint
	httpClient *http.Client
}

// NewManagedIdentityProvider creates a provider backed by endpoint.
func NewManagedIdentityProvider(name string, endpoint MetadataEndpoint, opts ...Option) *ManagedIdentityProvider {
	o := newOptions(opts)

	provider := &ManagedIdentityProvider{
		endpoint:   endpoint,
		httpClient: o.httpClient,
	}
	provider.Refresher = NewRefresher(name, provider.mint, opts...)

	return provider
}

func (p *ManagedIdentityProvider) mint(ctx context.Context) (*Token, error) {
	target := p.endpoint.URL
	if len(p.endpoint.Query) > 0 {
		target += "?" + p.endpoint.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating metadata request: %w", err)
	}

	for key, value := range p.endpoint.Headers {
		req.Header.Set(key, value)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling metadata endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading metadata response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d %s", constants.ErrIdentityStatus, resp.StatusCode, string(body))
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding metadata response: %w", err)
	}

	if parsed.AccessToken == "" {
		return nil, constants.ErrNoAccessToken
	}

	return parsed.token(time.Now()), nil
}
