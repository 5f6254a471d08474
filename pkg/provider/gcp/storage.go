package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"

	"github.com/fivetwenty-io/osdu-client/internal/blobstore"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewBlobStorage builds a gs:// blob storage provider using application
// default credentials. gcs_endpoint points it at an emulator instead.
func NewBlobStorage(cfg *osdu.Config) (osdu.BlobStorageProvider, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	var opts []option.ClientOption

	if endpoint := cfg.Setting(SettingStorageEndpoint); endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}

	service, err := storage.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage service: %w", err)
	}

	return blobstore.NewProvider(osdu.ProviderGCP, blobstore.ParseGCS, &objectStore{service: service},
		blobstore.PolicyFromConfig(cfg), cfg.Logger), nil
}

type objectStore struct {
	service *storage.Service
}

func (s *objectStore) Stat(ctx context.Context, loc blobstore.Location) (bool, error) {
	_, err := s.service.Objects.Get(loc.Bucket, loc.Key).Context(ctx).Do()
	if isNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *objectStore) Read(ctx context.Context, loc blobstore.Location, w io.Writer) (string, error) {
	resp, err := s.service.Objects.Get(loc.Bucket, loc.Key).Context(ctx).Download()
	if isNotFound(err) {
		return "", fmt.Errorf("%w: gs://%s", osdu.ErrObjectNotFound, loc)
	}

	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", err
	}

	return resp.Header.Get("Content-Type"), nil
}

func (s *objectStore) Write(ctx context.Context, loc blobstore.Location, r io.Reader, contentType string) error {
	object := &storage.Object{Name: loc.Key, ContentType: contentType}

	_, err := s.service.Objects.Insert(loc.Bucket, object).
		Media(r, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()

	return err
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error

	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
