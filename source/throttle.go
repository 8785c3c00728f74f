package source

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// RemoteOption configures a remote opener (S3, MinIO).
type RemoteOption func(*remoteOptions)

type remoteOptions struct {
	limiter *rate.Limiter
}

// WithRateLimit throttles remote source reads to the given byte rate.
// Values <= 0 disable throttling.
func WithRateLimit(bytesPerSecond int) RemoteOption {
	return func(o *remoteOptions) {
		if bytesPerSecond > 0 {
			o.limiter = rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond)
		}
	}
}

func applyRemoteOptions(optFns []RemoteOption) remoteOptions {
	var o remoteOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// throttle wraps rc so reads respect the limiter. A nil limiter is a no-op.
func throttle(ctx context.Context, rc io.ReadCloser, limiter *rate.Limiter) io.ReadCloser {
	if limiter == nil {
		return rc
	}
	return &throttledReadCloser{ctx: ctx, rc: rc, limiter: limiter}
}

type throttledReadCloser struct {
	ctx     context.Context
	rc      io.ReadCloser
	limiter *rate.Limiter
}

func (t *throttledReadCloser) Read(p []byte) (int, error) {
	// A single WaitN must not exceed the burst.
	if burst := t.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := t.rc.Read(p)
	if n > 0 {
		if waitErr := t.limiter.WaitN(t.ctx, n); waitErr != nil {
			return n, waitErr
		}
	}
	return n, err
}

func (t *throttledReadCloser) Close() error {
	return t.rc.Close()
}
