// Package main is the entry point for the berg ChallengeInstance controller.
//
// This controller manages the lifecycle of CTF challenge sandboxes:
//   - Challenge: a challenge's container/port/flag template
//   - ChallengeInstanceClass: resource, security and gateway defaults
//   - ChallengeInstance: one player's ephemeral instantiation of a Challenge
//
// The controller uses the Kubebuilder framework and implements a single
// reconciliation loop that drives a ChallengeInstance through
// Pending -> Creating -> Starting -> Running -> Terminating -> Terminated,
// materialising the namespace, network policy, services, routes, flag
// delivery and workload for each instance and tearing all of it back down
// on expiry or deletion.
//
// Deployment:
//   The controller runs as a Kubernetes Deployment with:
//   - Leader election for high availability
//   - Health and readiness probes
//   - Prometheus metrics endpoint on :8080
//   - Health probes on :8081
//
// Example usage:
//
//	# Run controller with leader election enabled
//	./controller --leader-elect=true
//
//	# Run with custom metrics address
//	./controller --metrics-bind-address=:9090
//
//	# Enable debug logging
//	./controller --zap-log-level=debug
package main

import (
	"flag"
	"os"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	_ "k8s.io/client-go/plugin/pkg/client/auth"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
	external "github.com/norelect/berg-challenge-controller/api/external"
	"github.com/norelect/berg-challenge-controller/controllers"
	"github.com/norelect/berg-challenge-controller/pkg/config"
	"github.com/norelect/berg-challenge-controller/pkg/events"
	_ "github.com/norelect/berg-challenge-controller/pkg/metrics" // Initialize custom metrics
)

// syncPeriod is how often the manager's cache does a full re-list of watched
// resources, correcting any drift an informer missed delivering as an event.
const syncPeriod = 30 * time.Minute

var (
	// scheme defines the runtime scheme used by the controller. It includes
	// standard Kubernetes types, the berg CRDs, and the external Cilium and
	// Gateway API types the controller creates but does not own.
	scheme = runtime.NewScheme()

	// setupLog is the logger used during controller initialization.
	setupLog = ctrl.Log.WithName("setup")
)

// init registers all required schemes with the controller's runtime scheme.
// This must happen before the manager is created to ensure all types are
// recognized.
func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(berg.AddToScheme(scheme))
	utilruntime.Must(external.AddToScheme(scheme))
}

// main is the entry point for the berg ChallengeInstance controller.
//
// It performs the following initialization steps:
//  1. Parse command-line flags and environment configuration
//  2. Initialize structured logging with zap
//  3. Create controller manager with leader election
//  4. Register the ChallengeInstanceReconciler
//  5. Setup health and readiness probes
//  6. Optionally connect a NATS publisher for lifecycle events
//  7. Start the manager and wait for shutdown signal
//
// The controller will exit with code 1 if any initialization step fails,
// except for the NATS connection, which is best-effort.
func main() {
	var metricsAddr string
	var enableLeaderElection bool
	var probeAddr string
	var natsURL string
	var natsUser string
	var natsPassword string

	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080", "The address the metric endpoint binds to.")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	flag.StringVar(&natsURL, "nats-url", getEnv("NATS_URL", "nats://localhost:4222"), "NATS server URL")
	flag.StringVar(&natsUser, "nats-user", getEnv("NATS_USER", ""), "NATS username")
	flag.StringVar(&natsPassword, "nats-password", getEnv("NATS_PASSWORD", ""), "NATS password")

	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	cfg, err := config.FromEnv()
	if err != nil {
		setupLog.Error(err, "invalid configuration")
		os.Exit(1)
	}

	// Create controller manager
	// The manager coordinates the reconciler and provides shared dependencies:
	//   - Kubernetes client for CRUD operations
	//   - Cache for efficient resource watching
	//   - Metrics registry for Prometheus
	//   - Leader election for high availability
	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme: scheme,

		Metrics: metricsserver.Options{BindAddress: metricsAddr},

		HealthProbeBindAddress: probeAddr,

		// Periodic full re-list, on top of event-driven reconciles, so
		// drift missed by a dropped watch event still gets corrected.
		Cache: cache.Options{SyncPeriod: &syncPeriod},

		// Leader election ensures only one controller instance reconciles
		// instances at a time. Critical with multiple replicas: two
		// reconcilers racing on the same namespace teardown would corrupt
		// the finalizer drain sequence.
		LeaderElection:   enableLeaderElection,
		LeaderElectionID: "berg-challenge-controller.norelect.ch",
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	// Connect the NATS event publisher. A connection failure here is not
	// fatal: the controller keeps reconciling and simply never announces
	// phase changes to scoreboard/UI consumers.
	setupLog.Info("connecting to NATS", "url", natsURL)
	publisher, err := events.NewPublisher(events.Config{
		URL:      natsURL,
		User:     natsUser,
		Password: natsPassword,
	})
	if err != nil {
		setupLog.Error(err, "unable to connect to NATS")
		setupLog.Info("continuing without NATS - lifecycle events will not be published")
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Register ChallengeInstanceReconciler
	// Drives each ChallengeInstance through its full lifecycle:
	//   - Materialises namespace, network policy, services, routes, flag
	//     delivery and workload
	//   - Watches pod readiness and instance expiry
	//   - Tears the namespace down through the finalizer on deletion/expiry
	if err = (&controllers.ChallengeInstanceReconciler{
		Client:    mgr.GetClient(),
		Scheme:    mgr.GetScheme(),
		Config:    cfg,
		Publisher: publisher,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "ChallengeInstance")
		os.Exit(1)
	}

	// Setup health check endpoint. Kubernetes uses /healthz to determine if
	// the controller is alive.
	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}

	// Setup readiness check endpoint. Kubernetes uses /readyz to determine
	// if the controller is ready to serve.
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	// Start the manager and begin reconciliation.
	// SetupSignalHandler() ensures graceful shutdown on SIGTERM/SIGINT.
	setupLog.Info("starting manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}

// getEnv gets an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
