package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
)

// SecretStore reads named secrets from a vendor secret service.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// StaticSecretStore serves secrets from memory.
type StaticSecretStore map[string]string

// GetSecret implements SecretStore.
func (s StaticSecretStore) GetSecret(_ context.Context, name string) (string, error) {
	value, ok := s[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", constants.ErrSecretNotFound, name)
	}

	return value, nil
}

// ClientCredentials is everything needed for an OAuth2 client credentials
// grant.
type ClientCredentials struct {
	ClientID       string
	ClientSecret   string
	TokenURL       string
	Scopes         []string
	AuthStyle      oauth2.AuthStyle
	EndpointParams url.Values
}

// CredentialsLoader reads ClientCredentials, usually from a SecretStore.
type CredentialsLoader func(ctx context.Context) (*ClientCredentials, error)

// ServicePrincipalProvider mints tokens with the client credentials grant.
type ServicePrincipalProvider struct {
	*Refresher

	load       CredentialsLoader
	cache      bool
	httpClient *http.Client

	mutex  sync.Mutex
	loaded *ClientCredentials
}

// NewServicePrincipalProvider creates a provider that calls load before
// every token request. With cache set, load is only called until it
// succeeds once.
func NewServicePrincipalProvider(name string, load CredentialsLoader, cache bool, opts ...Option) *ServicePrincipalProvider {
	o := newOptions(opts)

	provider := &ServicePrincipalProvider{
		load:       load,
		cache:      cache,
		httpClient: o.httpClient,
	}
	provider.Refresher = NewRefresher(name, provider.mint, opts...)

	return provider
}

func (p *ServicePrincipalProvider) credentials(ctx context.Context) (*ClientCredentials, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.cache && p.loaded != nil {
		return p.loaded, nil
	}

	creds, err := p.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading client credentials: %w", err)
	}

	if p.cache {
		p.loaded = creds
	}

	return creds, nil
}

func (p *ServicePrincipalProvider) mint(ctx context.Context) (*Token, error) {
	creds, err := p.credentials(ctx)
	if err != nil {
		return nil, err
	}

	config := clientcredentials.Config{
		ClientID:       creds.ClientID,
		ClientSecret:   creds.ClientSecret,
		TokenURL:       creds.TokenURL,
		Scopes:         creds.Scopes,
		AuthStyle:      creds.AuthStyle,
		EndpointParams: creds.EndpointParams,
	}

	token, err := config.Token(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient))
	if err != nil {
		return nil, fmt.Errorf("client credentials grant: %w", err)
	}

	return FromOAuth2(token), nil
}
