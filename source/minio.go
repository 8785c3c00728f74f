package source

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"golang.org/x/time/rate"
)

// Minio opens sources from MinIO or other S3-compatible object storage.
type Minio struct {
	client  *minio.Client
	bucket  string
	prefix  string
	limiter *rate.Limiter
}

// NewMinio creates a MinIO source opener.
// rootPrefix is prepended to all keys (e.g. "datasets/").
func NewMinio(client *minio.Client, bucket, rootPrefix string, optFns ...RemoteOption) *Minio {
	o := applyRemoteOptions(optFns)
	return &Minio{
		client:  client,
		bucket:  bucket,
		prefix:  rootPrefix,
		limiter: o.limiter,
	}
}

func (s *Minio) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open streams the named object.
func (s *Minio) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	// GetObject is lazy; stat first so a missing source fails at open time.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, ErrNotFound
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return throttle(ctx, obj, s.limiter), nil
}
