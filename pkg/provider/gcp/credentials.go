package gcp

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/fivetwenty-io/osdu-client/internal/auth"
	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewCredentials builds the GCP credential provider. With
// use_metadata_server=true tokens come from the metadata server; otherwise
// from the service account file named by sa_file_path or SA_FILE_PATH.
func NewCredentials(cfg *osdu.Config) (osdu.CredentialProvider, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	opts := []auth.Option{
		auth.WithRefreshPolicy(auth.PolicyFromConfig(cfg)),
		auth.WithLogger(cfg.Logger),
	}

	if cfg.BoolSetting(SettingUseMetadataServer) {
		return auth.NewManagedIdentityProvider(osdu.ProviderGCP, auth.MetadataEndpoint{
			URL:     cfg.SettingOr(SettingMetadataURL, DefaultMetadataURL),
			Query:   url.Values{"scopes": {strings.Join(scopes(cfg), ",")}},
			Headers: map[string]string{"Metadata-Flavor": "Google"},
		}, opts...), nil
	}

	path := cfg.SettingOr(SettingServiceAccountFile, os.Getenv(EnvServiceAccountFile))
	if path == "" {
		return nil, &osdu.MissingSettingError{Key: SettingServiceAccountFile}
	}

	var blob osdu.BlobStorageProvider

	if strings.HasPrefix(path, "gs://") {
		var err error

		blob, err = NewBlobStorage(cfg)
		if err != nil {
			return nil, err
		}
	}

	return NewServiceAccountCredentials(path, scopes(cfg), blob, nil, opts...), nil
}

func scopes(cfg *osdu.Config) []string {
	raw := cfg.Setting(SettingScopes)
	if raw == "" {
		return DefaultScopes
	}

	return strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
}

// ServiceAccountCredentials mints access tokens with a service account key
// using the JWT bearer grant. The key is re-read on every refresh so that
// rotated keys are picked up.
type ServiceAccountCredentials struct {
	*auth.Refresher

	path       string
	scopes     []string
	blob       osdu.BlobStorageProvider
	httpClient *http.Client
}

// NewServiceAccountCredentials creates a provider for the key at path, a
// local file or a gs:// object read through blob. httpClient is used for the
// token exchange; nil means a default client.
func NewServiceAccountCredentials(
	path string,
	scopes []string,
	blob osdu.BlobStorageProvider,
	httpClient *http.Client,
	opts ...auth.Option,
) *ServiceAccountCredentials {
	if httpClient == nil {
		httpClient = auth.NewHTTPClient()
	}

	credentials := &ServiceAccountCredentials{
		path:       path,
		scopes:     scopes,
		blob:       blob,
		httpClient: httpClient,
	}
	credentials.Refresher = auth.NewRefresher(osdu.ProviderGCP, credentials.mint, opts...)

	return credentials
}

func (c *ServiceAccountCredentials) readKey(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(c.path, "gs://") {
		if c.blob == nil {
			return nil, fmt.Errorf("%w: %s", constants.ErrServiceAccountPath, c.path)
		}

		content, _, err := c.blob.DownloadBytes(ctx, c.path)
		if err != nil {
			return nil, fmt.Errorf("downloading service account file: %w", err)
		}

		return content, nil
	}

	if strings.Contains(c.path, "://") {
		return nil, fmt.Errorf("%w: %s", constants.ErrServiceAccountPath, c.path)
	}

	info, err := os.Stat(c.path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", constants.ErrServiceAccountPath, c.path)
	}

	content, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading service account file: %w", err)
	}

	return content, nil
}

func (c *ServiceAccountCredentials) mint(ctx context.Context) (*auth.Token, error) {
	key, err := c.readKey(ctx)
	if err != nil {
		return nil, err
	}

	config, err := google.JWTConfigFromJSON(bytes.TrimSpace(key), c.scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing service account file: %w", err)
	}

	token, err := config.TokenSource(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)).Token()
	if err != nil {
		return nil, fmt.Errorf("exchanging service account assertion: %w", err)
	}

	return auth.FromOAuth2(token), nil
}
