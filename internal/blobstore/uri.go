// Package blobstore holds the vendor neutral part of the blob storage
// providers: object URI parsing and a retrying BlobStorageProvider built on
// a small per-vendor ObjectStore.
package blobstore

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// Location addresses one object. For Azure, Account is the account URL and
// Bucket the container.
type Location struct {
	Account string
	Bucket  string
	Key     string
}

// String renders the location for logs and errors.
func (l Location) String() string {
	if l.Account != "" {
		return l.Account + "/" + l.Bucket + "/" + l.Key
	}

	return l.Bucket + "/" + l.Key
}

// Parser turns an object URI into a Location.
type Parser func(uri string) (Location, error)

// ParseGCS parses gs://bucket/object.
func ParseGCS(uri string) (Location, error) {
	return parseBucketURI("gs", uri)
}

// ParseS3 parses s3://bucket/key.
func ParseS3(uri string) (Location, error) {
	return parseBucketURI("s3", uri)
}

// ParseAzure parses https://<account>.blob.core.windows.net/<container>/<blob>.
func ParseAzure(uri string) (Location, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %s: %w", osdu.ErrInvalidObjectURI, uri, err)
	}

	if parsed.Scheme != "https" && parsed.Scheme != "http" || parsed.Host == "" {
		return Location{}, fmt.Errorf("%w: %s: expected an https blob URL", osdu.ErrInvalidObjectURI, uri)
	}

	container, blob, ok := strings.Cut(strings.TrimPrefix(parsed.Path, "/"), "/")
	if !ok || container == "" || blob == "" {
		return Location{}, fmt.Errorf("%w: %s: expected /<container>/<blob>", osdu.ErrInvalidObjectURI, uri)
	}

	return Location{
		Account: parsed.Scheme + "://" + parsed.Host,
		Bucket:  container,
		Key:     blob,
	}, nil
}

func parseBucketURI(scheme, uri string) (Location, error) {
	prefix := scheme + "://"
	if !strings.HasPrefix(uri, prefix) {
		return Location{}, fmt.Errorf("%w: %s: expected %s<bucket>/<key>", osdu.ErrInvalidObjectURI, uri, prefix)
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(uri, prefix), "/")
	if !ok || bucket == "" || key == "" {
		return Location{}, fmt.Errorf("%w: %s: expected %s<bucket>/<key>", osdu.ErrInvalidObjectURI, uri, prefix)
	}

	return Location{Bucket: bucket, Key: key}, nil
}
