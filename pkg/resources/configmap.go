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
	"github.com/norelect/berg-challenge-controller/pkg/flag"
)

// Fixed configmap names. Two containers in the same challenge each
// requesting a file-based flag collide here — an accepted limitation, see
// DESIGN.md.
const (
	FlagContentConfigMapName    = "flag-content"
	FlagExecutableConfigMapName = "flag-executable"
)

// ReconcileFlagConfigMaps creates the flag-content and/or flag-executable
// configmaps for one container's DynamicFlag, skipping arms that are unset.
// Already-exists is treated as success.
func ReconcileFlagConfigMaps(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, dyn *berg.DynamicFlag, flagValue, namespaceName string) error {
	if dyn == nil {
		return nil
	}

	if dyn.Content != nil {
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      FlagContentConfigMapName,
				Namespace: namespaceName,
				Labels:    contentLabels(instance, FlagContentConfigMapName),
			},
			Data: map[string]string{"content": flagValue + "\n"},
		}
		if err := createConfigMap(ctx, c, scheme, instance, cm); err != nil {
			return err
		}
	}

	if dyn.Executable != nil {
		elf, err := flag.GenerateElfExecutable(flagValue)
		if err != nil {
			return err
		}
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      FlagExecutableConfigMapName,
				Namespace: namespaceName,
				Labels:    contentLabels(instance, FlagExecutableConfigMapName),
			},
			BinaryData: map[string][]byte{"executable": elf},
		}
		if err := createConfigMap(ctx, c, scheme, instance, cm); err != nil {
			return err
		}
	}

	return nil
}

func contentLabels(instance *berg.ChallengeInstance, component string) map[string]string {
	labels := CommonLabels(instance)
	labels[LabelComponent] = component
	return labels
}

func createConfigMap(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, cm *corev1.ConfigMap) error {
	if err := controllerutil.SetControllerReference(instance, cm, scheme); err != nil {
		return err
	}
	if err := c.Create(ctx, cm); err != nil && !apierrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}
