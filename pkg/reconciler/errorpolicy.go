package reconciler

import (
	"time"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/norelect/berg-challenge-controller/pkg/metrics"
)

// Requeue delays for the two error tiers. Transient platform errors are
// retried quickly; errors that won't resolve themselves back off much
// further so a broken instance doesn't spin the work queue.
const (
	RetryableRequeueDelay    = 10 * time.Second
	NonRetryableRequeueDelay = 5 * time.Minute
)

// ResultForError turns a reconcile error into the ctrl.Result/error pair
// controller-runtime expects, recording the reconcile_errors metric by
// error kind along the way. kind is a short label such as "resource-create"
// or "flag-validation" used only for metrics, not control flow.
func ResultForError(kind string, err error) (ctrl.Result, error) {
	metrics.RecordReconcileError(kind)

	if Retryable(err) {
		return ctrl.Result{RequeueAfter: RetryableRequeueDelay}, nil
	}
	return ctrl.Result{RequeueAfter: NonRetryableRequeueDelay}, nil
}
