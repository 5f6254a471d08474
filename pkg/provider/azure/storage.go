package azure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	"github.com/fivetwenty-io/osdu-client/internal/blobstore"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewBlobStorage builds a blob storage provider for
// https://<account>.blob.core.windows.net/<container>/<blob> URIs.
func NewBlobStorage(cfg *osdu.Config) (osdu.BlobStorageProvider, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	store := &objectStore{
		anonymous: cfg.BoolSetting(SettingAnonymousStorage),
		clients:   make(map[string]*azblob.Client),
	}

	if !store.anonymous {
		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("creating azure credential: %w", err)
		}

		store.credential = credential
	}

	return blobstore.NewProvider(osdu.ProviderAzure, blobstore.ParseAzure, store,
		blobstore.PolicyFromConfig(cfg), cfg.Logger), nil
}

// objectStore keeps one azblob client per storage account.
type objectStore struct {
	anonymous  bool
	credential azcore.TokenCredential

	mu      sync.Mutex
	clients map[string]*azblob.Client
}

func (s *objectStore) client(account string) (*azblob.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[account]; ok {
		return client, nil
	}

	var (
		client *azblob.Client
		err    error
	)

	if s.anonymous {
		client, err = azblob.NewClientWithNoCredential(account, nil)
	} else {
		client, err = azblob.NewClient(account, s.credential, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("creating blob client for %s: %w", account, err)
	}

	s.clients[account] = client

	return client, nil
}

func (s *objectStore) Stat(ctx context.Context, loc blobstore.Location) (bool, error) {
	client, err := s.client(loc.Account)
	if err != nil {
		return false, err
	}

	_, err = client.ServiceClient().NewContainerClient(loc.Bucket).NewBlobClient(loc.Key).GetProperties(ctx, nil)
	if isNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *objectStore) Read(ctx context.Context, loc blobstore.Location, w io.Writer) (string, error) {
	client, err := s.client(loc.Account)
	if err != nil {
		return "", err
	}

	resp, err := client.DownloadStream(ctx, loc.Bucket, loc.Key, nil)
	if isNotFound(err) {
		return "", fmt.Errorf("%w: %s", osdu.ErrObjectNotFound, loc)
	}

	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", err
	}

	if resp.ContentType == nil {
		return "", nil
	}

	return *resp.ContentType, nil
}

func (s *objectStore) Write(ctx context.Context, loc blobstore.Location, r io.Reader, contentType string) error {
	client, err := s.client(loc.Account)
	if err != nil {
		return err
	}

	_, err = client.UploadStream(ctx, loc.Bucket, loc.Key, r, uploadOptions(contentType))

	return err
}

// uploadOptions leaves the content type to the service when none is given.
func uploadOptions(contentType string) *azblob.UploadStreamOptions {
	if contentType == "" {
		return nil
	}

	return &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	}
}

func isNotFound(err error) bool {
	var respErr *azcore.ResponseError

	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}
