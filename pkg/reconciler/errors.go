// Package reconciler holds the behavior shared across the ChallengeInstance
// reconcile loop: sentinel errors, their retryable/non-retryable
// classification, and the retry-delay policy.
package reconciler

import (
	stderrors "errors"
	"fmt"
)

// Lookup errors. Not retryable: the referenced object will not appear by
// waiting, the instance needs operator or player intervention instead.
var (
	ErrChallengeNotFound     = stderrors.New("challenge not found")
	ErrInstanceClassNotFound = stderrors.New("instance class not found")
)

// Validation errors. Not retryable: the instance spec itself is malformed.
var (
	ErrFlagMissing  = stderrors.New("flag validation failed")
	ErrTimeoutParse = stderrors.New("timeout parse error")
	ErrElfGeneration = stderrors.New("flag executable generation error")
)

// ErrProgressingWait signals that a resource builder has nothing wrong to
// report, but a dependency it needs hasn't materialised yet (e.g. a pull
// secret an external syncer hasn't copied into the controller's namespace
// yet). The caller should requeue briefly without treating this as failure.
var ErrProgressingWait = stderrors.New("dependency still materialising")

// ErrResourceCreation wraps a transient failure materialising a child
// resource. Retryable: the next reconcile attempt may succeed once the API
// server or admission webhook recovers.
type ErrResourceCreation struct {
	ResourceType string
	Reason       string
}

func (e *ErrResourceCreation) Error() string {
	return fmt.Sprintf("resource creation failed: %s - %s", e.ResourceType, e.Reason)
}

// Retryable classifies an error returned from one reconcile step. The lookup
// and validation sentinels above are not retryable; ErrResourceCreation,
// Kubernetes API errors, and anything else not recognized are.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var creationErr *ErrResourceCreation
	if stderrors.As(err, &creationErr) {
		return true
	}
	switch {
	case stderrors.Is(err, ErrChallengeNotFound),
		stderrors.Is(err, ErrInstanceClassNotFound),
		stderrors.Is(err, ErrFlagMissing),
		stderrors.Is(err, ErrTimeoutParse),
		stderrors.Is(err, ErrElfGeneration):
		return false
	default:
		// Unrecognized errors are assumed to be transient API-server
		// failures (timeouts, conflicts) rather than spec problems.
		return true
	}
}
