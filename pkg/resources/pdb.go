package resources

import (
	"context"

	policyv1 "k8s.io/api/policy/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
)

// ReconcilePDB creates a zero-disruption PodDisruptionBudget named
// "{hostname}-pdb" for one container's pods. Already-exists is success: the
// budget is never mutated once created.
func ReconcilePDB(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, hostname, namespaceName string) error {
	zero := intstr.FromInt(0)
	pdb := &policyv1.PodDisruptionBudget{
		ObjectMeta: metav1.ObjectMeta{
			Name:      hostname + "-pdb",
			Namespace: namespaceName,
			Labels:    CommonLabels(instance),
		},
		Spec: policyv1.PodDisruptionBudgetSpec{
			MaxUnavailable: &zero,
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{LabelContainer: hostname},
			},
		},
	}
	if err := controllerutil.SetControllerReference(instance, pdb, scheme); err != nil {
		return err
	}
	if err := c.Create(ctx, pdb); err != nil && !apierrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}
