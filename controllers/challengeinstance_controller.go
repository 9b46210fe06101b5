// Package controllers implements Kubernetes controllers for the berg.norelect.ch
// custom resources.
//
// CHALLENGE INSTANCE CONTROLLER
//
// ChallengeInstanceReconciler drives the full lifecycle of one ephemeral
// per-player CTF sandbox: a cluster-scoped ChallengeInstance names a
// Challenge template and an owner, and this reconciler materialises a
// dedicated namespace and everything inside it (network policy, services,
// gateway routes, flag delivery, deployment), then tears the whole thing
// back down again on expiry or deletion.
//
// RECONCILE STATE MACHINE:
//
//	Pending → Creating → Starting → Running → Terminating → Terminated
//	                                                        ↘ Failed (from Pending only)
//
//   - Pending: validate the flag requirement, move to Creating or fail.
//   - Creating: materialise every child resource in a fixed order (namespace,
//     pull secrets, network policy, then per-container services/routes/flag
//     configmap/PDB/deployment). Any dependency still propagating requeues
//     without advancing the phase.
//   - Starting: wait for every managed pod to report Ready.
//   - Running: steady state; requeue at the instance's expiry or in 10
//     minutes, whichever comes first.
//   - Terminating: delegate entirely to the finalizer path.
//
// Deletion at any phase is intercepted by a finalizer so workloads drain and
// the namespace is removed before the network policy protecting it goes
// away — a naive owner-reference cascade could let a dying pod's egress
// race the policy's deletion.
package controllers

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
	"github.com/norelect/berg-challenge-controller/api/external"
	"github.com/norelect/berg-challenge-controller/pkg/config"
	"github.com/norelect/berg-challenge-controller/pkg/events"
	"github.com/norelect/berg-challenge-controller/pkg/flag"
	"github.com/norelect/berg-challenge-controller/pkg/metrics"
	"github.com/norelect/berg-challenge-controller/pkg/reconciler"
	"github.com/norelect/berg-challenge-controller/pkg/resources"
	"github.com/norelect/berg-challenge-controller/pkg/timeout"
	"github.com/google/uuid"
	stderrors "errors"
)

const instanceFinalizer = "challengeinstance.berg.norelect.ch/finalizer"

// ChallengeInstanceReconciler reconciles ChallengeInstance objects.
//
// RBAC PERMISSIONS (defined by kubebuilder markers below):
//
// ChallengeInstances: full CRUD plus status/finalizers.
// Challenges, ChallengeInstanceClasses: read-only.
// Deployments, Services, ConfigMaps, Secrets, PodDisruptionBudgets: full
// CRUD, scoped by owner reference. Namespaces: get/list/watch/create/delete.
// Pods: read-only.
// CiliumNetworkPolicies, HTTPRoutes, TLSRoutes: full CRUD (external CRDs).
type ChallengeInstanceReconciler struct {
	client.Client
	Scheme    *runtime.Scheme
	Config    config.Config
	Publisher *events.Publisher // may be nil; publish calls are skipped
}

//+kubebuilder:rbac:groups=berg.norelect.ch,resources=challengeinstances,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=berg.norelect.ch,resources=challengeinstances/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=berg.norelect.ch,resources=challengeinstances/finalizers,verbs=update
//+kubebuilder:rbac:groups=berg.norelect.ch,resources=challenges,verbs=get;list;watch
//+kubebuilder:rbac:groups=berg.norelect.ch,resources=challengeinstanceclasses,verbs=get;list;watch
//+kubebuilder:rbac:groups="",resources=namespaces,verbs=get;list;watch;create;delete
//+kubebuilder:rbac:groups="",resources=secrets;configmaps;services,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups="",resources=pods,verbs=get;list;watch
//+kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=policy,resources=poddisruptionbudgets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=cilium.io,resources=ciliumnetworkpolicies,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=gateway.networking.k8s.io,resources=httproutes;tlsroutes,verbs=get;list;watch;create;update;patch;delete

// Reconcile is the main reconciliation loop.
func (r *ChallengeInstanceReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	start := time.Now()
	defer func() {
		metrics.ObserveReconciliationDuration(time.Since(start).Seconds())
	}()

	var instance berg.ChallengeInstance
	if err := r.Get(ctx, req.NamespacedName, &instance); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return reconciler.ResultForError("get-instance", err)
	}

	// 1. Deletion in progress.
	if !instance.DeletionTimestamp.IsZero() {
		res, err := r.runFinalizer(ctx, &instance)
		return r.recordOutcome(res, err)
	}

	// 2. Finalizer missing.
	if !controllerutil.ContainsFinalizer(&instance, instanceFinalizer) {
		controllerutil.AddFinalizer(&instance, instanceFinalizer)
		if err := r.Update(ctx, &instance); err != nil {
			return reconciler.ResultForError("add-finalizer", err)
		}
		return r.recordOutcome(ctrl.Result{RequeueAfter: time.Second}, nil)
	}

	// 3. No instanceId yet.
	if instance.Status.InstanceID == "" {
		res, err := r.initializeStatus(ctx, &instance)
		return r.recordOutcome(res, err)
	}

	// 4. Already expired.
	if instance.Status.ExpiresAt != nil && timeout.IsExpired(instance.Status.ExpiresAt.Time, time.Now()) {
		logger.Info("instance expired, initiating termination", "name", instance.Name)
		metrics.RecordTimeout()
		instance.Spec.TerminationReason = berg.TerminationReasonTimeout
		if err := r.Update(ctx, &instance); err != nil {
			return reconciler.ResultForError("mark-timeout", err)
		}
		if err := r.Delete(ctx, &instance); err != nil && !apierrors.IsNotFound(err) {
			return reconciler.ResultForError("delete-expired", err)
		}
		return r.recordOutcome(ctrl.Result{}, nil)
	}

	// 5. Fetch Challenge and Class.
	challenge, class, err := r.fetchChallengeAndClass(ctx, &instance)
	if err != nil {
		return r.recordOutcome(reconciler.ResultForError("lookup", err))
	}

	// 6. Dispatch on phase.
	var res ctrl.Result
	switch instance.Status.Phase {
	case berg.PhasePending:
		res, err = r.handlePending(ctx, &instance, challenge)
	case berg.PhaseCreating:
		res, err = r.handleCreating(ctx, &instance, challenge, class)
	case berg.PhaseStarting:
		res, err = r.handleStarting(ctx, &instance)
	case berg.PhaseRunning:
		res, err = r.handleRunning(ctx, &instance)
	case berg.PhaseTerminating:
		res, err = r.runFinalizer(ctx, &instance)
	case berg.PhaseTerminated, berg.PhaseFailed:
		res, err = ctrl.Result{}, nil
	default:
		// Freshly initialized status always sets Pending; an empty phase
		// here would mean a status write was lost. Treat it the same way.
		res, err = r.handlePending(ctx, &instance, challenge)
	}

	return r.recordOutcome(res, err)
}

func (r *ChallengeInstanceReconciler) recordOutcome(res ctrl.Result, err error) (ctrl.Result, error) {
	if err != nil {
		metrics.RecordReconciliation("error")
	} else {
		metrics.RecordReconciliation("success")
	}
	return res, err
}

// initializeStatus assigns a fresh instance ID and computes the initial
// expiry, per §4.1 step 3.
func (r *ChallengeInstanceReconciler) initializeStatus(ctx context.Context, instance *berg.ChallengeInstance) (ctrl.Result, error) {
	timeoutStr := instance.Spec.Timeout
	if timeoutStr == "" {
		timeoutStr = r.Config.DefaultTimeout
	}

	if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
		s.InstanceID = uuid.NewString()
		s.Phase = berg.PhasePending
		now := metav1.Now()
		s.StartedAt = &now

		expiry, err := timeout.CalculateExpiry(timeoutStr, now.Time)
		if err != nil {
			return fmt.Errorf("%w: %s", reconciler.ErrTimeoutParse, err)
		}
		expiryTime := metav1.NewTime(expiry)
		s.ExpiresAt = &expiryTime
		return nil
	}); err != nil {
		return reconciler.ResultForError("timeout-parse", err)
	}

	metrics.RecordInstanceStarted()
	return ctrl.Result{RequeueAfter: time.Second}, nil
}

func (r *ChallengeInstanceReconciler) fetchChallengeAndClass(ctx context.Context, instance *berg.ChallengeInstance) (*berg.Challenge, *berg.ChallengeInstanceClass, error) {
	challengeNamespace := instance.Spec.ChallengeRef.Namespace
	if challengeNamespace == "" {
		challengeNamespace = r.Config.ChallengeNamespace
	}

	var challenge berg.Challenge
	if err := r.Get(ctx, types.NamespacedName{Namespace: challengeNamespace, Name: instance.Spec.ChallengeRef.Name}, &challenge); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: %s/%s", reconciler.ErrChallengeNotFound, challengeNamespace, instance.Spec.ChallengeRef.Name)
		}
		return nil, nil, err
	}

	className := instance.Spec.InstanceClass
	if className == "" {
		className = r.Config.DefaultInstanceClass
	}
	var class berg.ChallengeInstanceClass
	if err := r.Get(ctx, types.NamespacedName{Name: className}, &class); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: %s", reconciler.ErrInstanceClassNotFound, className)
		}
		return nil, nil, err
	}

	return &challenge, &class, nil
}

// handlePending validates flag requirements (§4.1 Pending row).
func (r *ChallengeInstanceReconciler) handlePending(ctx context.Context, instance *berg.ChallengeInstance, challenge *berg.Challenge) (ctrl.Result, error) {
	requiresFlag := false
	for _, c := range challenge.Spec.Containers {
		if c.DynamicFlag != nil {
			requiresFlag = true
			break
		}
	}

	if requiresFlag && instance.Spec.Flag == "" {
		if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
			s.Phase = berg.PhaseFailed
			s.SetCondition(berg.Condition{
				Type:    "FlagValidation",
				Status:  berg.ConditionFalse,
				Reason:  "FlagMissing",
				Message: "dynamic flag declared but spec.flag is empty",
			})
			return nil
		}); err != nil {
			return reconciler.ResultForError("status-update", err)
		}
		return ctrl.Result{}, nil
	}

	if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
		s.Phase = berg.PhaseCreating
		s.SetCondition(berg.Condition{Type: "FlagValidation", Status: berg.ConditionTrue})
		return nil
	}); err != nil {
		return reconciler.ResultForError("status-update", err)
	}

	r.publishPhase(instance, "Creating", "")
	return ctrl.Result{RequeueAfter: time.Second}, nil
}

// handleCreating materialises every child resource in the fixed order from
// §4.2. Any stage returning reconciler.ErrProgressingWait short-circuits
// the remaining stages and requeues without advancing the phase.
func (r *ChallengeInstanceReconciler) handleCreating(ctx context.Context, instance *berg.ChallengeInstance, challenge *berg.Challenge, class *berg.ChallengeInstanceClass) (ctrl.Result, error) {
	namespaceName := instance.Status.Namespace
	if namespaceName == "" {
		namespaceName = resources.GenerateNamespaceName(r.Config.NamespacePrefix, instance.Spec.ChallengeRef.Name, instance.Spec.OwnerID)
	}

	if err := resources.ReconcileNamespace(ctx, r.Client, r.Scheme, instance, namespaceName, r.Config.ChallengeNamespace); err != nil {
		return reconciler.ResultForError("namespace-create", wrapCreation("namespace", err))
	}

	var pullSecretNames []string
	if class.Spec.ImagePull != nil {
		pullSecretNames = class.Spec.ImagePull.SecretNames
	}
	for _, secretName := range pullSecretNames {
		if err := resources.CopyPullSecret(ctx, r.Client, r.Scheme, instance, r.Config.ChallengeNamespace, secretName, namespaceName); err != nil {
			if stderrors.Is(err, reconciler.ErrProgressingWait) {
				return r.waitProgressing(ctx, instance, "pull secret "+secretName+" not yet available")
			}
			return reconciler.ResultForError("pull-secret-copy", wrapCreation("pull-secret", err))
		}
	}

	gw := class.Spec.Gateway
	if err := resources.ReconcileNetworkPolicy(ctx, r.Client, r.Scheme, instance, namespaceName, challenge.Spec.AllowOutboundTraffic, resources.GatewayTarget{HTTPPort: gw.HTTPPort, TLSPort: gw.TLSPort}); err != nil {
		return reconciler.ResultForError("network-policy-create", wrapCreation("network-policy", err))
	}

	gwConfig := resources.GatewayConfig{
		Name:             gw.Name,
		Namespace:        gw.Namespace,
		HTTPListenerName: gw.HTTPListenerName,
		TLSListenerName:  gw.TLSListenerName,
		Domain:           gw.Domain,
		HTTPPort:         gw.HTTPPort,
		TLSPort:          gw.TLSPort,
	}

	var endpoints []berg.ServiceEndpoint
	for _, container := range challenge.Spec.Containers {
		svcEndpoints, err := resources.ReconcileServices(ctx, r.Client, r.Scheme, instance, container, namespaceName, gw.Domain)
		if err != nil {
			return reconciler.ResultForError("service-create", wrapCreation("service", err))
		}
		endpoints = append(endpoints, svcEndpoints...)

		for _, port := range container.Ports {
			switch port.Type {
			case berg.PortTypePublicHTTPRoute:
				ep, err := resources.ReconcileHTTPRoute(ctx, r.Client, r.Scheme, instance, container, port, namespaceName, gwConfig)
				if err != nil {
					return reconciler.ResultForError("httproute-create", wrapCreation("httproute", err))
				}
				endpoints = append(endpoints, ep)
			case berg.PortTypePublicTLSRoute:
				ep, err := resources.ReconcileTLSRoute(ctx, r.Client, r.Scheme, instance, container, port, namespaceName, gwConfig)
				if err != nil {
					return reconciler.ResultForError("tlsroute-create", wrapCreation("tlsroute", err))
				}
				endpoints = append(endpoints, ep)
			}
		}

		if container.DynamicFlag != nil {
			if err := resources.ReconcileFlagConfigMaps(ctx, r.Client, r.Scheme, instance, container.DynamicFlag, instance.Spec.Flag, namespaceName); err != nil {
				if isElfError(err) {
					return reconciler.ResultForError("elf-generation", fmt.Errorf("%w: %s", reconciler.ErrElfGeneration, err))
				}
				return reconciler.ResultForError("flag-configmap-create", wrapCreation("flag-configmap", err))
			}
		}

		if err := resources.ReconcilePDB(ctx, r.Client, r.Scheme, instance, container.Hostname, namespaceName); err != nil {
			return reconciler.ResultForError("pdb-create", wrapCreation("pdb", err))
		}

		if err := resources.ReconcileDeployment(ctx, r.Client, r.Scheme, instance, container, namespaceName, class, pullSecretNames); err != nil {
			return reconciler.ResultForError("deployment-create", wrapCreation("deployment", err))
		}
	}

	if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
		s.Phase = berg.PhaseStarting
		s.Namespace = namespaceName
		s.Services = endpoints
		s.SetCondition(berg.Condition{Type: "NamespaceCreated", Status: berg.ConditionTrue})
		s.SetCondition(berg.Condition{Type: "ResourcesCreated", Status: berg.ConditionTrue})
		return nil
	}); err != nil {
		return reconciler.ResultForError("status-update", err)
	}

	return ctrl.Result{RequeueAfter: time.Second}, nil
}

// waitProgressing records a ProgressingWait condition and requeues quickly,
// for the case where a resource builder has nothing wrong to report but a
// dependency (e.g. a synced pull secret) hasn't materialised yet (§4.2, §4.3).
func (r *ChallengeInstanceReconciler) waitProgressing(ctx context.Context, instance *berg.ChallengeInstance, message string) (ctrl.Result, error) {
	if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
		s.SetCondition(berg.Condition{Type: "ProgressingWait", Status: berg.ConditionTrue, Message: message})
		return nil
	}); err != nil {
		return reconciler.ResultForError("status-update", err)
	}
	return ctrl.Result{RequeueAfter: 2 * time.Second}, nil
}

// handleStarting waits for every managed pod to report Ready (§4.1 Starting row).
func (r *ChallengeInstanceReconciler) handleStarting(ctx context.Context, instance *berg.ChallengeInstance) (ctrl.Result, error) {
	ready, err := r.allPodsReady(ctx, instance.Status.Namespace)
	if err != nil {
		return reconciler.ResultForError("pod-list", err)
	}

	if ready {
		if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
			s.Phase = berg.PhaseRunning
			now := metav1.Now()
			s.ReadyAt = &now
			s.SetCondition(berg.Condition{Type: "PodsReady", Status: berg.ConditionTrue})
			return nil
		}); err != nil {
			return reconciler.ResultForError("status-update", err)
		}

		r.publishReady(instance)

		if instance.Status.ExpiresAt != nil {
			return ctrl.Result{RequeueAfter: time.Until(instance.Status.ExpiresAt.Time)}, nil
		}
		return ctrl.Result{}, nil
	}

	if instance.Status.FindCondition("PodsReady") == nil {
		if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
			s.SetCondition(berg.Condition{Type: "PodsReady", Status: berg.ConditionUnknown})
			return nil
		}); err != nil {
			return reconciler.ResultForError("status-update", err)
		}
	}

	return ctrl.Result{RequeueAfter: 5 * time.Second}, nil
}

// handleRunning re-checks expiry and requeues at the shorter of the
// remaining time-to-live and 10 minutes (§4.1 Running row).
func (r *ChallengeInstanceReconciler) handleRunning(ctx context.Context, instance *berg.ChallengeInstance) (ctrl.Result, error) {
	if instance.Status.ExpiresAt == nil {
		return ctrl.Result{}, nil
	}

	remaining := time.Until(instance.Status.ExpiresAt.Time)
	if remaining > 10*time.Minute {
		remaining = 10 * time.Minute
	}
	if remaining < 0 {
		remaining = 0
	}
	return ctrl.Result{RequeueAfter: remaining}, nil
}

// runFinalizer implements the staged teardown from §4.6.
func (r *ChallengeInstanceReconciler) runFinalizer(ctx context.Context, instance *berg.ChallengeInstance) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	namespaceName := instance.Status.Namespace
	if namespaceName == "" {
		namespaceName = resources.GenerateNamespaceName(r.Config.NamespacePrefix, instance.Spec.ChallengeRef.Name, instance.Spec.OwnerID)
	}

	// 1. Drain live workload pods.
	drained, err := r.drainWorkloads(ctx, namespaceName)
	if err != nil {
		return reconciler.ResultForError("workload-drain", err)
	}
	if !drained {
		return ctrl.Result{RequeueAfter: 2 * time.Second}, nil
	}

	// 2. Delete the namespace once workloads are gone.
	var ns corev1.Namespace
	err = r.Get(ctx, types.NamespacedName{Name: namespaceName}, &ns)
	switch {
	case apierrors.IsNotFound(err):
		// proceed
	case err != nil:
		return reconciler.ResultForError("namespace-get", err)
	case ns.Status.Phase != corev1.NamespaceTerminating:
		if err := r.Delete(ctx, &ns); err != nil && !apierrors.IsNotFound(err) {
			return reconciler.ResultForError("namespace-delete", err)
		}
		return ctrl.Result{RequeueAfter: 2 * time.Second}, nil
	default:
		return ctrl.Result{RequeueAfter: 2 * time.Second}, nil
	}

	// 3. Mark terminated.
	if err := r.updateStatus(ctx, instance, func(s *berg.ChallengeInstanceStatus) error {
		s.Phase = berg.PhaseTerminated
		now := metav1.Now()
		s.TerminatedAt = &now
		s.SetCondition(berg.Condition{Type: "NamespaceDeleted", Status: berg.ConditionTrue})
		return nil
	}); err != nil {
		return reconciler.ResultForError("status-update", err)
	}

	reason := string(instance.Spec.TerminationReason)
	if reason == "" {
		reason = string(berg.TerminationReasonUserRequest)
	}
	r.publishTerminated(instance, reason)

	// 4. Remove the finalizer.
	controllerutil.RemoveFinalizer(instance, instanceFinalizer)
	if err := r.Update(ctx, instance); err != nil {
		return reconciler.ResultForError("remove-finalizer", err)
	}

	// 5. Decrement the active-instances metric.
	metrics.RecordInstanceTerminated()
	logger.Info("instance torn down", "name", instance.Name, "namespace", namespaceName)

	return ctrl.Result{}, nil
}

// drainWorkloads issues a background delete of every deployment in
// namespaceName that still has non-terminating pods, and reports whether
// the namespace is now free of live workload pods.
func (r *ChallengeInstanceReconciler) drainWorkloads(ctx context.Context, namespaceName string) (bool, error) {
	var deployments appsv1.DeploymentList
	if err := r.List(ctx, &deployments, client.InNamespace(namespaceName)); err != nil {
		if apierrors.IsNotFound(err) {
			return true, nil
		}
		return false, err
	}

	var pods corev1.PodList
	if err := r.List(ctx, &pods, client.InNamespace(namespaceName)); err != nil {
		if apierrors.IsNotFound(err) {
			return true, nil
		}
		return false, err
	}

	livePods := 0
	for _, p := range pods.Items {
		if p.Status.Phase != corev1.PodSucceeded && p.Status.Phase != corev1.PodFailed && p.DeletionTimestamp.IsZero() {
			livePods++
		}
	}

	if livePods == 0 {
		return true, nil
	}

	background := client.PropagationPolicy(metav1.DeletePropagationBackground)
	for i := range deployments.Items {
		if err := r.Delete(ctx, &deployments.Items[i], background); err != nil && !apierrors.IsNotFound(err) {
			return false, err
		}
	}

	return false, nil
}

func (r *ChallengeInstanceReconciler) allPodsReady(ctx context.Context, namespaceName string) (bool, error) {
	if namespaceName == "" {
		return false, nil
	}

	var pods corev1.PodList
	if err := r.List(ctx, &pods, client.InNamespace(namespaceName), client.MatchingLabels{resources.LabelManagedBy: resources.ManagedByValue}); err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if len(pods.Items) == 0 {
		return false, nil
	}

	for _, p := range pods.Items {
		if p.Status.Phase != corev1.PodRunning {
			return false, nil
		}
		readyCond := false
		for _, c := range p.Status.Conditions {
			if c.Type == corev1.PodReady && c.Status == corev1.ConditionTrue {
				readyCond = true
				break
			}
		}
		if !readyCond {
			return false, nil
		}
	}

	return true, nil
}

// updateStatus applies mutate to a clone of instance's status, sets
// observedGeneration, and issues a merge-patch on the status subresource —
// the single status-write helper every phase transition goes through.
func (r *ChallengeInstanceReconciler) updateStatus(ctx context.Context, instance *berg.ChallengeInstance, mutate func(*berg.ChallengeInstanceStatus) error) error {
	patchBase := instance.DeepCopy()
	newStatus := instance.Status.DeepCopy()

	if err := mutate(newStatus); err != nil {
		return err
	}
	newStatus.ObservedGeneration = instance.Generation

	instance.Status = *newStatus
	return r.Status().Patch(ctx, instance, client.MergeFrom(patchBase))
}

func (r *ChallengeInstanceReconciler) publishPhase(instance *berg.ChallengeInstance, phase, message string) {
	if r.Publisher == nil {
		return
	}
	_ = r.Publisher.PublishPhase(events.InstancePhaseEvent{
		Timestamp:  time.Now(),
		InstanceID: instance.Status.InstanceID,
		OwnerID:    instance.Spec.OwnerID,
		Challenge:  instance.Spec.ChallengeRef.Name,
		Phase:      phase,
		Message:    message,
	})
}

func (r *ChallengeInstanceReconciler) publishReady(instance *berg.ChallengeInstance) {
	if r.Publisher == nil {
		return
	}
	var endpoints []events.ServiceEndpoint
	for _, e := range instance.Status.Services {
		endpoints = append(endpoints, events.ServiceEndpoint{Name: e.Name, Hostname: e.Hostname, Port: e.Port, Protocol: e.Protocol})
	}
	_ = r.Publisher.PublishReady(events.InstanceReadyEvent{
		Timestamp:  time.Now(),
		InstanceID: instance.Status.InstanceID,
		OwnerID:    instance.Spec.OwnerID,
		Services:   endpoints,
	})
}

func (r *ChallengeInstanceReconciler) publishTerminated(instance *berg.ChallengeInstance, reason string) {
	if r.Publisher == nil {
		return
	}
	_ = r.Publisher.PublishTerminated(events.InstanceTerminatedEvent{
		Timestamp:  time.Now(),
		InstanceID: instance.Status.InstanceID,
		OwnerID:    instance.Spec.OwnerID,
		Reason:     reason,
	})
}

// SetupWithManager sets up the controller with the Manager, watching the
// primary kind plus every owned child kind so a child event requeues its
// owning instance.
func (r *ChallengeInstanceReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&berg.ChallengeInstance{}).
		Owns(&corev1.Namespace{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&corev1.Secret{}).
		Owns(&corev1.Service{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		Owns(&external.CiliumNetworkPolicy{}).
		Owns(&external.HTTPRoute{}).
		Owns(&external.TLSRoute{}).
		Complete(r)
}

func wrapCreation(resourceType string, err error) error {
	if err == nil {
		return nil
	}
	return &reconciler.ErrResourceCreation{ResourceType: resourceType, Reason: err.Error()}
}

func isElfError(err error) bool {
	return stderrors.Is(err, flag.ErrEmptyFlag)
}
