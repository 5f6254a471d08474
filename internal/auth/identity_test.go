package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/osdu-client/internal/auth"
	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

func writeToken(t *testing.T, w http.ResponseWriter, body map[string]interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestStaticSecretStore(t *testing.T) {
	t.Parallel()

	store := auth.StaticSecretStore{"client-id": "abc"}

	value, err := store.GetSecret(context.Background(), "client-id")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	_, err = store.GetSecret(context.Background(), "missing")
	require.ErrorIs(t, err, constants.ErrSecretNotFound)
}

func TestServicePrincipalProvider(t *testing.T) {
	t.Parallel()

	t.Run("client credentials grant in params", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, "my-client", r.PostForm.Get("client_id"))
			assert.Equal(t, "my-secret", r.PostForm.Get("client_secret"))
			assert.Equal(t, "https://resource/.default", r.PostForm.Get("scope"))

			writeToken(t, w, map[string]interface{}{
				"access_token": "sp-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		}))
		defer server.Close()

		var loads int32

		provider := auth.NewServicePrincipalProvider("azure", func(_ context.Context) (*auth.ClientCredentials, error) {
			atomic.AddInt32(&loads, 1)

			return &auth.ClientCredentials{
				ClientID:     "my-client",
				ClientSecret: "my-secret",
				TokenURL:     server.URL,
				Scopes:       []string{"https://resource/.default"},
				AuthStyle:    oauth2.AuthStyleInParams,
			}, nil
		}, true, auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(fastPolicy()))

		token, err := provider.RefreshToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "sp-token", token)
		assert.Equal(t, "sp-token", provider.CurrentToken())
		assert.True(t, provider.Token().Valid())

		_, err = provider.RefreshToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
	})

	t.Run("basic auth header without cache", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "aws-client", user)
			assert.Equal(t, "aws-secret", pass)

			writeToken(t, w, map[string]interface{}{"access_token": "aws-token", "token_type": "Bearer"})
		}))
		defer server.Close()

		var loads int32

		provider := auth.NewServicePrincipalProvider("aws", func(_ context.Context) (*auth.ClientCredentials, error) {
			atomic.AddInt32(&loads, 1)

			return &auth.ClientCredentials{
				ClientID:     "aws-client",
				ClientSecret: "aws-secret",
				TokenURL:     server.URL,
				AuthStyle:    oauth2.AuthStyleInHeader,
			}, nil
		}, false, auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(fastPolicy()))

		for range 2 {
			token, err := provider.RefreshToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "aws-token", token)
		}

		assert.Equal(t, int32(2), atomic.LoadInt32(&loads))
	})

	t.Run("token endpoint failure exhausts attempts", func(t *testing.T) {
		t.Parallel()

		var hits int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := auth.NewServicePrincipalProvider("azure", func(_ context.Context) (*auth.ClientCredentials, error) {
			return &auth.ClientCredentials{
				ClientID:  "c",
				TokenURL:  server.URL,
				AuthStyle: oauth2.AuthStyleInParams,
			}, nil
		}, true, auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(fastPolicy()))

		_, err := provider.RefreshToken(context.Background())
		require.Error(t, err)
		assert.True(t, osdu.IsCredentialRefresh(err))
		assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	})

	t.Run("loader failure", func(t *testing.T) {
		t.Parallel()

		errLoad := errors.New("vault unreachable")
		provider := auth.NewServicePrincipalProvider("azure", func(_ context.Context) (*auth.ClientCredentials, error) {
			return nil, errLoad
		}, true, auth.WithRefreshPolicy(fastPolicy()))

		_, err := provider.RefreshToken(context.Background())
		require.ErrorIs(t, err, errLoad)
	})
}

func TestManagedIdentityProvider(t *testing.T) {
	t.Parallel()

	t.Run("string expires_in and metadata header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "true", r.Header.Get("Metadata"))
			assert.Equal(t, "2018-02-01", r.URL.Query().Get("api-version"))
			assert.Equal(t, "https://management.azure.com/", r.URL.Query().Get("resource"))

			writeToken(t, w, map[string]interface{}{
				"access_token": "msi-token",
				"expires_in":   "3599",
				"token_type":   "Bearer",
			})
		}))
		defer server.Close()

		provider := auth.NewManagedIdentityProvider("azure", auth.MetadataEndpoint{
			URL: server.URL,
			Query: url.Values{
				"api-version": {"2018-02-01"},
				"resource":    {"https://management.azure.com/"},
			},
			Headers: map[string]string{"Metadata": "true"},
		}, auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(fastPolicy()))

		token, err := provider.RefreshToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "msi-token", token)
		assert.False(t, provider.Token().ExpiresAt.IsZero())
	})

	t.Run("numeric expires_in", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeToken(t, w, map[string]interface{}{"access_token": "gce-token", "expires_in": 3599})
		}))
		defer server.Close()

		provider := auth.NewManagedIdentityProvider("gcp", auth.MetadataEndpoint{URL: server.URL},
			auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(fastPolicy()))

		token, err := provider.RefreshToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "gce-token", token)
	})

	t.Run("error status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "identity not found", http.StatusBadRequest)
		}))
		defer server.Close()

		provider := auth.NewManagedIdentityProvider("azure", auth.MetadataEndpoint{URL: server.URL},
			auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(fastPolicy()))

		_, err := provider.RefreshToken(context.Background())
		require.ErrorIs(t, err, constants.ErrIdentityStatus)
	})

	t.Run("missing access token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeToken(t, w, map[string]interface{}{"expires_in": 10})
		}))
		defer server.Close()

		provider := auth.NewManagedIdentityProvider("azure", auth.MetadataEndpoint{URL: server.URL},
			auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(fastPolicy()))

		_, err := provider.RefreshToken(context.Background())
		require.ErrorIs(t, err, constants.ErrNoAccessToken)
	})
}
