package provider_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
)

type stubCredentials struct{ name string }

func (s *stubCredentials) RefreshToken(context.Context) (string, error) { return s.name, nil }
func (s *stubCredentials) CurrentToken() string                         { return s.name }

type stubBlob struct{}

func (stubBlob) Exists(context.Context, string) (bool, error)               { return true, nil }
func (stubBlob) Download(context.Context, string, io.Writer) (string, error) { return "", nil }
func (stubBlob) DownloadBytes(context.Context, string) ([]byte, string, error) {
	return nil, "", nil
}
func (stubBlob) Upload(context.Context, string, io.Reader, string) error { return nil }

func credentialsFactory(name string) provider.CredentialsFactory {
	return func(*osdu.Config) (osdu.CredentialProvider, error) {
		return &stubCredentials{name: name}, nil
	}
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	registry.RegisterCredentials("gcp", credentialsFactory("gcp"))
	registry.RegisterBlobStorage("gcp", func(*osdu.Config) (osdu.BlobStorageProvider, error) {
		return stubBlob{}, nil
	})

	resolved, err := registry.Resolve(osdu.CapabilityCredentials, "gcp", &osdu.Config{})
	require.NoError(t, err)

	creds, ok := resolved.(osdu.CredentialProvider)
	require.True(t, ok)
	assert.Equal(t, "gcp", creds.CurrentToken())

	resolved, err = registry.Resolve(osdu.CapabilityBlobStorage, "GCP", &osdu.Config{})
	require.NoError(t, err)
	assert.IsType(t, stubBlob{}, resolved)
}

func TestRegistry_UnknownProvider(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	registry.RegisterCredentials("gcp", credentialsFactory("gcp"))

	_, err := registry.Resolve(osdu.CapabilityCredentials, "unknown", &osdu.Config{})
	require.Error(t, err)
	assert.True(t, osdu.IsUnsupportedProvider(err))

	var unsupported *osdu.UnsupportedProviderError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "unknown", unsupported.ProviderID)
	assert.Equal(t, osdu.CapabilityCredentials, unsupported.Capability)
	assert.Contains(t, err.Error(), "unknown")
	assert.Contains(t, err.Error(), "credentials")

	_, err = registry.BlobStorage("gcp", &osdu.Config{})
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, osdu.CapabilityBlobStorage, unsupported.Capability)

	_, err = registry.Resolve(osdu.Capability("queue"), "gcp", nil)
	assert.True(t, osdu.IsUnsupportedProvider(err))
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	registry.RegisterCredentials("aws", credentialsFactory("first"))
	registry.RegisterCredentials("aws", credentialsFactory("second"))

	creds, err := registry.Credentials("aws", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", creds.CurrentToken())
	assert.Equal(t, []string{"aws"}, registry.Providers(osdu.CapabilityCredentials))
}

func TestRegistry_FactoryFailures(t *testing.T) {
	t.Parallel()

	errSettings := errors.New("bad settings")

	registry := provider.NewRegistry()
	registry.RegisterCredentials("azure", func(*osdu.Config) (osdu.CredentialProvider, error) {
		return nil, errSettings
	})
	registry.RegisterCredentials("nil", func(*osdu.Config) (osdu.CredentialProvider, error) {
		return nil, nil
	})

	_, err := registry.Credentials("azure", nil)
	require.ErrorIs(t, err, errSettings)

	_, err = registry.Credentials("nil", nil)
	require.ErrorIs(t, err, osdu.ErrInvalidFactory)
}

func TestRegistry_Providers(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	registry.RegisterCredentials("gcp", credentialsFactory("gcp"))
	registry.RegisterCredentials("azure", credentialsFactory("azure"))

	assert.Equal(t, []string{"azure", "gcp"}, registry.Providers(osdu.CapabilityCredentials))
	assert.Empty(t, registry.Providers(osdu.CapabilityBlobStorage))
}

//nolint:paralleltest // mutates the process environment
func TestResolveProviderID(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		config   *osdu.Config
		expected string
		err      error
	}{
		{name: "explicit wins", explicit: "aws", env: "gcp", config: &osdu.Config{Provider: "azure"}, expected: "aws"},
		{name: "environment before config", env: "GCP", config: &osdu.Config{Provider: "azure"}, expected: "gcp"},
		{name: "config fallback", config: &osdu.Config{Provider: "azure"}, expected: "azure"},
		{name: "nothing configured", config: &osdu.Config{}, err: osdu.ErrNoProviderConfigured},
		{name: "nil config", err: osdu.ErrNoProviderConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CLOUD_PROVIDER", tt.env)

			id, err := provider.ResolveProviderID(tt.explicit, tt.config)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
