// Package retry re-runs calls that failed in transit. It sits above
// the client on purpose: the protocol layer stays single-attempt, and
// whoever owns the call decides whether waiting is acceptable.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v3"

	"github.com/maxbull/factom-go-sdk/internal/common/core"
)

type Retrier struct {
	mode    core.RetryMode
	maxTime time.Duration
}

func New(mode core.RetryMode, maxTime time.Duration) *Retrier {
	return &Retrier{mode: mode, maxTime: maxTime}
}

// Do runs op, retrying transport failures with exponential backoff
// until one attempt succeeds, the time budget is spent, or ctx is
// done. With core.None the operation runs exactly once.
//
// Only transport failures are retried. A daemon that answered has
// spoken, even when the answer is an API error, and malformed or
// mismatched responses will not get better by asking again.
func (r *Retrier) Do(ctx context.Context, op func() error) error {
	if r.mode == core.None {
		return op()
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = r.maxTime

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		var transportErr *core.TransportError
		if errors.As(err, &transportErr) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(policy, ctx))
}
