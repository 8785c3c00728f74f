package source

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/time/rate"
)

// Client is the subset of the S3 API used by the opener.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 opens sources from an S3 bucket. Source names are object keys relative
// to the configured prefix.
type S3 struct {
	client  Client
	bucket  string
	prefix  string
	limiter *rate.Limiter
}

// NewS3 creates an S3 source opener.
// rootPrefix is prepended to all keys (e.g. "datasets/").
func NewS3(client Client, bucket, rootPrefix string, optFns ...RemoteOption) *S3 {
	o := applyRemoteOptions(optFns)
	return &S3{
		client:  client,
		bucket:  bucket,
		prefix:  rootPrefix,
		limiter: o.limiter,
	}
}

// NewS3FromConfig creates an S3 opener using the default AWS configuration
// chain (environment, shared config, instance role).
func NewS3FromConfig(ctx context.Context, bucket, rootPrefix string, optFns ...RemoteOption) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewS3(s3.NewFromConfig(cfg), bucket, rootPrefix, optFns...), nil
}

func (s *S3) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open streams the named object.
func (s *S3) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return throttle(ctx, out.Body, s.limiter), nil
}
