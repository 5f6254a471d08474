package osdu

import (
	"context"
	"io"
)

// Capability names a pluggable provider concern.
type Capability string

const (
	// CapabilityCredentials resolves a CredentialProvider.
	CapabilityCredentials Capability = "credentials"

	// CapabilityBlobStorage resolves a BlobStorageProvider.
	CapabilityBlobStorage Capability = "blob storage"
)

// Provider identifiers understood by the bundled plugins.
const (
	ProviderGCP   = "gcp"
	ProviderAzure = "azure"
	ProviderAWS   = "aws"
)

// CredentialProvider obtains bearer tokens from a vendor identity backend.
//
// Implementations keep the last successfully refreshed token. RefreshToken
// retries transient identity backend failures a bounded number of times and
// then fails with a *CredentialRefreshError.
type CredentialProvider interface {
	// RefreshToken mints a new token, stores it and returns it.
	RefreshToken(ctx context.Context) (string, error)

	// CurrentToken returns the last refreshed token, or "" if RefreshToken
	// has never succeeded.
	CurrentToken() string
}

// BlobStorageProvider gives uniform access to vendor object storage.
// Object URIs use the vendor's native scheme (gs://, s3://, https://).
type BlobStorageProvider interface {
	// Exists reports whether an object is present at uri.
	Exists(ctx context.Context, uri string) (bool, error)

	// Download writes the object content to w and returns its content type.
	Download(ctx context.Context, uri string, w io.Writer) (string, error)

	// DownloadBytes returns the object content and its content type.
	DownloadBytes(ctx context.Context, uri string) ([]byte, string, error)

	// Upload stores the content of r at uri.
	Upload(ctx context.Context, uri string, r io.Reader, contentType string) error
}
