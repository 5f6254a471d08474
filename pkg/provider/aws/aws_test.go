package aws_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/juju/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/osdu-client/internal/auth"
	"github.com/fivetwenty-io/osdu-client/internal/blobstore"
	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
	"github.com/fivetwenty-io/osdu-client/pkg/provider/aws"
)

type fakeSSM struct {
	parameters map[string]string
	decrypted  []bool
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.decrypted = append(f.decrypted, sdkaws.ToBool(in.WithDecryption))

	value, ok := f.parameters[sdkaws.ToString(in.Name)]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "ParameterNotFound", Message: "not found"}
	}

	return &ssm.GetParameterOutput{Parameter: &ssmtypes.Parameter{Value: sdkaws.String(value)}}, nil
}

type fakeSecretsManager struct {
	secretString *string
	secretBinary []byte
}

func (f *fakeSecretsManager) GetSecretValue(
	_ context.Context,
	_ *secretsmanager.GetSecretValueInput,
	_ ...func(*secretsmanager.Options),
) (*secretsmanager.GetSecretValueOutput, error) {
	return &secretsmanager.GetSecretValueOutput{SecretString: f.secretString, SecretBinary: f.secretBinary}, nil
}

func TestRegistered(t *testing.T) {
	t.Parallel()

	assert.Contains(t, provider.Default.Providers(osdu.CapabilityCredentials), "aws")
	assert.Contains(t, provider.Default.Providers(osdu.CapabilityBlobStorage), "aws")
}

func TestSecretValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		client   *fakeSecretsManager
		key      string
		expected string
		err      error
	}{
		{name: "string secret", client: &fakeSecretsManager{secretString: sdkaws.String(`{"client_secret":"s3cr3t"}`)}, key: "client_secret", expected: "s3cr3t"},
		{name: "binary secret", client: &fakeSecretsManager{secretBinary: []byte(`{"client_secret":"bin"}`)}, key: "client_secret", expected: "bin"},
		{name: "non string value", client: &fakeSecretsManager{secretString: sdkaws.String(`{"n":42}`)}, key: "n", expected: "42"},
		{name: "missing key", client: &fakeSecretsManager{secretString: sdkaws.String(`{}`)}, key: "client_secret", err: constants.ErrSecretKeyNotFound},
		{name: "not json", client: &fakeSecretsManager{secretString: sdkaws.String(`plain`)}, key: "k", err: constants.ErrInvalidSecretFormat},
		{name: "empty secret", client: &fakeSecretsManager{}, key: "k", err: constants.ErrSecretNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := aws.SecretValue(context.Background(), tt.client, "osdu/client", tt.key)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParameterStore(t *testing.T) {
	t.Parallel()

	client := &fakeSSM{parameters: map[string]string{"/osdu/client-id": "abc"}}
	store := aws.NewParameterStore(client)

	value, err := store.GetSecret(context.Background(), "/osdu/client-id")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
	assert.Equal(t, []bool{true}, client.decrypted)

	_, err = store.GetSecret(context.Background(), "/osdu/missing")
	require.Error(t, err)
}

func TestServicePrincipal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "cognito-client", user)
		assert.Equal(t, "cognito-secret", pass)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "cognito-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "osdu/api", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"cognito-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	parameters := &fakeSSM{parameters: map[string]string{
		"/osdu/client-id": "cognito-client",
		"/osdu/token-url": server.URL + "/oauth2/token",
		"/osdu/scope":     "osdu/api",
	}}
	secrets := &fakeSecretsManager{secretString: sdkaws.String(`{"client_secret":"cognito-secret"}`)}

	creds := aws.NewServicePrincipal(parameters, secrets, aws.ServicePrincipalSettings{
		ClientIDPath:        "/osdu/client-id",
		TokenURLPath:        "/osdu/token-url",
		ScopePath:           "/osdu/scope",
		ClientSecretName:    "osdu/client",
		ClientSecretDictKey: "client_secret",
	}, auth.WithHTTPClient(server.Client()), auth.WithRefreshPolicy(auth.RefreshPolicy{
		Attempts: 3,
		Delay:    time.Millisecond,
		Clock:    clock.WallClock,
	}))

	token, err := creds.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cognito-token", token)
	assert.Equal(t, "cognito-token", creds.CurrentToken())
}

func TestNewCredentials_MissingSettings(t *testing.T) {
	t.Parallel()

	_, err := aws.NewCredentials(&osdu.Config{ProviderSettings: map[string]string{
		aws.SettingClientIDPath: "/osdu/client-id",
	}})
	require.ErrorIs(t, err, osdu.ErrMissingSetting)

	var missing *osdu.MissingSettingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, aws.SettingTokenURLPath, missing.Key)

	_, err = aws.NewCredentials(nil)
	require.ErrorIs(t, err, osdu.ErrConfigRequired)
}

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func notFound() error {
	return &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.objects[*in.Bucket+"/"+*in.Key]; !ok {
		return nil, notFound()
	}

	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := *in.Bucket + "/" + *in.Key

	content, ok := f.objects[key]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "missing"}
	}

	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(content)),
		ContentType: sdkaws.String(f.types[key]),
	}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	content, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := *in.Bucket + "/" + *in.Key
	f.objects[key] = content
	f.types[key] = sdkaws.ToString(in.ContentType)

	return &s3.PutObjectOutput{}, nil
}

func TestBlobStorage(t *testing.T) {
	t.Parallel()

	client := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	blob := aws.NewBlobStorageFromClient(client, &osdu.Config{
		ProviderSettings: map[string]string{blobstore.SettingRetryDelay: "1ms"},
	})
	ctx := context.Background()

	exists, err := blob.Exists(ctx, "s3://osdu-data/file.csv")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, blob.Upload(ctx, "s3://osdu-data/file.csv", bytes.NewBufferString("a,b\n1,2\n"), "text/csv"))

	exists, err = blob.Exists(ctx, "s3://osdu-data/file.csv")
	require.NoError(t, err)
	assert.True(t, exists)

	var out bytes.Buffer

	contentType, err := blob.Download(ctx, "s3://osdu-data/file.csv", &out)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "a,b\n1,2\n", out.String())

	_, _, err = blob.DownloadBytes(ctx, "s3://osdu-data/missing.csv")
	require.ErrorIs(t, err, osdu.ErrObjectNotFound)
}

func TestBlobStorageRetryPolicy(t *testing.T) {
	t.Parallel()

	client := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}

	blob := aws.NewBlobStorageFromClient(client, &osdu.Config{RefreshDelay: time.Hour})
	require.IsType(t, &blobstore.Provider{}, blob)
	assert.Equal(t, blobstore.DefaultPolicy().Delay, blob.(*blobstore.Provider).Policy().Delay)

	blob = aws.NewBlobStorageFromClient(client, &osdu.Config{
		RefreshDelay:     time.Hour,
		ProviderSettings: map[string]string{blobstore.SettingRetryDelay: "250ms"},
	})
	assert.Equal(t, 250*time.Millisecond, blob.(*blobstore.Provider).Policy().Delay)
}

func TestConvertPartition(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"id": {"sensitive": false, "value": "opendes"},
		"tenantId": {"sensitive": false, "value": "tenant-1"},
		"resourcePrefix": {"sensitive": false, "value": "osdu-dev"},
		"tenantSSMPrefix": {"sensitive": false, "value": "/osdu/dev/opendes"},
		"other": {"sensitive": true, "value": "ignored"},
		"policy-service-enabled": {"sensitive": false, "value": true},
		"maxRecords": {"sensitive": false, "value": 500},
		"labels": {"sensitive": false, "value": {"env": "dev"}}
	}`)

	info, err := aws.PartitionFromResponse(&osdu.Response{StatusCode: 200, Body: body})
	require.NoError(t, err)
	assert.Equal(t, &aws.PartitionInfo{
		PartitionID:     "opendes",
		TenantID:        "tenant-1",
		ResourcePrefix:  "osdu-dev",
		TenantSSMPrefix: "/osdu/dev/opendes",
	}, info)

	_, err = aws.ConvertPartition([]byte(`{"id":{"value":"opendes"}}`))
	require.ErrorIs(t, err, constants.ErrPartitionProperty)

	_, err = aws.ConvertPartition([]byte(`{
		"id": {"value": "opendes"},
		"tenantId": {"value": 7},
		"resourcePrefix": {"value": "osdu-dev"},
		"tenantSSMPrefix": {"value": "/osdu"}
	}`))
	require.ErrorIs(t, err, constants.ErrPartitionProperty)
	assert.Contains(t, err.Error(), "tenantId")

	_, err = aws.ConvertPartition([]byte(`not json`))
	require.Error(t, err)

	_, err = aws.PartitionFromResponse(nil)
	require.ErrorIs(t, err, osdu.ErrEmptyResponse)
}
