package gcp_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/osdu-client/internal/auth"
	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
	"github.com/fivetwenty-io/osdu-client/pkg/provider/gcp"
)

func testConfig(settings map[string]string) *osdu.Config {
	return &osdu.Config{
		ProviderSettings: settings,
		RefreshAttempts:  3,
		RefreshDelay:     time.Millisecond,
	}
}

// serviceAccountKey returns a service account JSON document whose token_uri
// points at tokenURL.
func serviceAccountKey(t *testing.T, tokenURL string) []byte {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	document, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "osdu-test",
		"private_key_id": "key-1",
		"private_key":    string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
		"client_email":   "osdu@osdu-test.iam.gserviceaccount.com",
		"client_id":      "1234",
		"token_uri":      tokenURL,
	})
	require.NoError(t, err)

	return document
}

func newTokenServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.PostForm.Get("grant_type"))
		assert.NotEmpty(t, r.PostForm.Get("assertion"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"sa-token","token_type":"Bearer","expires_in":3600}`))
	}))
}

func TestRegistered(t *testing.T) {
	t.Parallel()

	assert.Contains(t, provider.Default.Providers(osdu.CapabilityCredentials), "gcp")
	assert.Contains(t, provider.Default.Providers(osdu.CapabilityBlobStorage), "gcp")
}

func TestResolveCredentials(t *testing.T) {
	t.Parallel()

	cfg := testConfig(map[string]string{gcp.SettingServiceAccountFile: filepath.Join(t.TempDir(), "sa.json")})

	resolved, err := provider.Resolve(osdu.CapabilityCredentials, osdu.ProviderGCP, cfg)
	require.NoError(t, err)
	assert.IsType(t, &gcp.ServiceAccountCredentials{}, resolved)

	resolved, err = provider.Resolve(osdu.CapabilityCredentials, osdu.ProviderGCP,
		testConfig(map[string]string{gcp.SettingUseMetadataServer: "true"}))
	require.NoError(t, err)
	assert.IsType(t, &auth.ManagedIdentityProvider{}, resolved)
}

func TestServiceAccountFromLocalFile(t *testing.T) {
	t.Parallel()

	var hits int32

	server := newTokenServer(t, &hits)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(path, serviceAccountKey(t, server.URL), 0o600))

	creds, err := gcp.NewCredentials(testConfig(map[string]string{gcp.SettingServiceAccountFile: path}))
	require.NoError(t, err)
	assert.Empty(t, creds.CurrentToken())

	token, err := creds.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sa-token", token)
	assert.Equal(t, "sa-token", creds.CurrentToken())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

type keyBlob struct {
	osdu.BlobStorageProvider

	content []byte
	uris    []string
}

func (k *keyBlob) DownloadBytes(_ context.Context, uri string) ([]byte, string, error) {
	k.uris = append(k.uris, uri)

	return k.content, "application/json", nil
}

func TestServiceAccountFromBucket(t *testing.T) {
	t.Parallel()

	var hits int32

	server := newTokenServer(t, &hits)
	defer server.Close()

	blob := &keyBlob{content: serviceAccountKey(t, server.URL)}
	creds := gcp.NewServiceAccountCredentials("gs://secrets/sa.json", gcp.DefaultScopes, blob, server.Client())

	token, err := creds.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sa-token", token)
	assert.Equal(t, []string{"gs://secrets/sa.json"}, blob.uris)
}

func TestServiceAccountBadPath(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"https://example.com/sa.json", filepath.Join(t.TempDir(), "missing.json")} {
		creds, err := gcp.NewCredentials(testConfig(map[string]string{gcp.SettingServiceAccountFile: path}))
		require.NoError(t, err)

		_, err = creds.RefreshToken(context.Background())
		require.ErrorIs(t, err, constants.ErrServiceAccountPath)
		assert.True(t, osdu.IsCredentialRefresh(err))
	}
}

func TestServiceAccountPathFromEnvironment(t *testing.T) {
	t.Setenv(gcp.EnvServiceAccountFile, "")

	_, err := gcp.NewCredentials(testConfig(nil))
	require.ErrorIs(t, err, osdu.ErrMissingSetting)

	t.Setenv(gcp.EnvServiceAccountFile, "/etc/osdu/sa.json")

	creds, err := gcp.NewCredentials(testConfig(nil))
	require.NoError(t, err)
	assert.NotNil(t, creds)
}

func TestMetadataServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Google", r.Header.Get("Metadata-Flavor"))
		assert.Equal(t, "openid,email", r.URL.Query().Get("scopes"))

		_, _ = w.Write([]byte(`{"access_token":"gce-token","expires_in":3599,"token_type":"Bearer"}`))
	}))
	defer server.Close()

	creds, err := gcp.NewCredentials(testConfig(map[string]string{
		gcp.SettingUseMetadataServer: "true",
		gcp.SettingMetadataURL:       server.URL,
		gcp.SettingScopes:            "openid, email",
	}))
	require.NoError(t, err)

	token, err := creds.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gce-token", token)
}

func TestBlobStorage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/b/bucket/o/present.json") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"No such object"}}`))

			return
		}

		if r.URL.Query().Get("alt") == "media" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"hello":"world"}`)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":"present.json","bucket":"bucket","contentType":"application/json"}`)
	}))
	defer server.Close()

	blob, err := gcp.NewBlobStorage(testConfig(map[string]string{gcp.SettingStorageEndpoint: server.URL + "/"}))
	require.NoError(t, err)

	ctx := context.Background()

	exists, err := blob.Exists(ctx, "gs://bucket/present.json")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = blob.Exists(ctx, "gs://bucket/absent.json")
	require.NoError(t, err)
	assert.False(t, exists)

	content, contentType, err := blob.DownloadBytes(ctx, "gs://bucket/present.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(content))
	assert.Equal(t, "application/json", contentType)

	_, _, err = blob.DownloadBytes(ctx, "gs://bucket/absent.json")
	require.ErrorIs(t, err, osdu.ErrObjectNotFound)

	_, err = blob.Exists(ctx, "s3://bucket/present.json")
	require.ErrorIs(t, err, osdu.ErrInvalidObjectURI)
}
