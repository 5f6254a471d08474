package aws

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/fivetwenty-io/osdu-client/internal/blobstore"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// S3API is the part of s3.Client used for object access.
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewBlobStorage builds an s3:// blob storage provider with the default AWS
// credential chain. s3_endpoint selects an S3 compatible endpoint with
// path-style addressing.
func NewBlobStorage(cfg *osdu.Config) (osdu.BlobStorageProvider, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	var loadOpts []func(*config.LoadOptions) error
	if region := cfg.Setting(SettingRegion); region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	awsConfig, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint := cfg.Setting(SettingS3Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return NewBlobStorageFromClient(client, cfg), nil
}

// NewBlobStorageFromClient builds an s3:// blob storage provider over client.
func NewBlobStorageFromClient(client S3API, cfg *osdu.Config) osdu.BlobStorageProvider {
	var logger osdu.Logger
	if cfg != nil {
		logger = cfg.Logger
	}

	return blobstore.NewProvider(osdu.ProviderAWS, blobstore.ParseS3, &objectStore{client: client},
		blobstore.PolicyFromConfig(cfg), logger)
}

type objectStore struct {
	client S3API
}

func (s *objectStore) Stat(ctx context.Context, loc blobstore.Location) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if isNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *objectStore) Read(ctx context.Context, loc blobstore.Location, w io.Writer) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if isNotFound(err) {
		return "", fmt.Errorf("%w: s3://%s", osdu.ErrObjectNotFound, loc)
	}

	if err != nil {
		return "", err
	}
	defer func() { _ = out.Body.Close() }()

	if _, err := io.Copy(w, out.Body); err != nil {
		return "", err
	}

	return aws.ToString(out.ContentType), nil
}

func (s *objectStore) Write(ctx context.Context, loc blobstore.Location, r io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
		Body:   r,
	}

	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := s.client.PutObject(ctx, input)

	return err
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.ErrorCode() {
	case "NotFound", "NoSuchKey":
		return true
	default:
		return false
	}
}
