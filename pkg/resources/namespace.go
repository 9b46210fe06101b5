package resources

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
	"github.com/norelect/berg-challenge-controller/pkg/reconciler"
)

// ReconcileNamespace creates the instance's namespace if it does not already
// exist. Already-exists is treated as success: namespaces are never mutated
// once created.
func ReconcileNamespace(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, namespaceName, challengeNamespace string) error {
	ns := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name:   namespaceName,
			Labels: NamespaceLabels(instance, challengeNamespace),
		},
	}
	if err := controllerutil.SetControllerReference(instance, ns, scheme); err != nil {
		return err
	}

	if err := c.Create(ctx, ns); err != nil && !apierrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}

// CopyPullSecret copies secretName from the controller's own namespace into
// targetNamespace, stripping server-assigned metadata. The source secret is
// usually managed by an external secret syncer; if it hasn't landed yet,
// CopyPullSecret reports reconciler.ErrProgressingWait rather than an error
// so the caller requeues briefly instead of failing the instance.
func CopyPullSecret(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, controllerNamespace, secretName, targetNamespace string) error {
	var src corev1.Secret
	err := c.Get(ctx, client.ObjectKey{Namespace: controllerNamespace, Name: secretName}, &src)
	if apierrors.IsNotFound(err) {
		return reconciler.ErrProgressingWait
	}
	if err != nil {
		return err
	}

	labels := CommonLabels(instance)
	labels[LabelComponent] = "pull-secret"

	dst := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      src.Name,
			Namespace: targetNamespace,
			Labels:    labels,
		},
		Type:       src.Type,
		Data:       src.Data,
		StringData: src.StringData,
	}

	if err := controllerutil.SetControllerReference(instance, dst, scheme); err != nil {
		return err
	}

	if err := c.Create(ctx, dst); err != nil && !apierrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}
