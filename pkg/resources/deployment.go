package resources

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
	"github.com/norelect/berg-challenge-controller/pkg/flag"
)

const (
	fallbackCPURequest    = "100m"
	fallbackCPULimit      = "1000m"
	fallbackMemoryRequest = "128Mi"
	fallbackMemoryLimit   = "512Mi"

	annotationEgressBandwidth  = "kubernetes.io/egress-bandwidth"
	annotationIngressBandwidth = "kubernetes.io/ingress-bandwidth"
	annotationSafeToEvict      = "cluster-autoscaler.kubernetes.io/safe-to-evict"
)

// ReconcileDeployment creates the single-replica Deployment running one
// container's pod. Already-exists is treated as success; the deployment is
// never mutated once created, mirroring every other resource in this
// package.
func ReconcileDeployment(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, container berg.ContainerSpec, namespaceName string, class *berg.ChallengeInstanceClass, challengePullSecretNames []string) error {
	dep, err := buildDeployment(instance, container, namespaceName, class, challengePullSecretNames)
	if err != nil {
		return err
	}
	if err := controllerutil.SetControllerReference(instance, dep, scheme); err != nil {
		return err
	}
	if err := c.Create(ctx, dep); err != nil && !apierrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}

func buildDeployment(instance *berg.ChallengeInstance, container berg.ContainerSpec, namespaceName string, class *berg.ChallengeInstanceClass, pullSecretNames []string) (*appsv1.Deployment, error) {
	env := buildEnvVars(instance, container, namespaceName)

	volumes, mounts, err := buildVolumes(container)
	if err != nil {
		return nil, err
	}

	podContainer := corev1.Container{
		Name:            container.Hostname,
		Image:           container.Image,
		ImagePullPolicy: corev1.PullPolicy(imagePullPolicy(class)),
		Env:             env,
		VolumeMounts:    mounts,
		Resources:       buildResources(container, class),
		SecurityContext: buildSecurityContext(container),
		ReadinessProbe:  container.ReadinessProbe,
		LivenessProbe:   container.LivenessProbe,
	}

	podAnnotations := map[string]string{annotationSafeToEvict: "false"}
	if container.EgressBandwidth != "" {
		podAnnotations[annotationEgressBandwidth] = container.EgressBandwidth
	}
	if container.IngressBandwidth != "" {
		podAnnotations[annotationIngressBandwidth] = container.IngressBandwidth
	}

	var imagePullSecrets []corev1.LocalObjectReference
	for _, name := range pullSecretNames {
		imagePullSecrets = append(imagePullSecrets, corev1.LocalObjectReference{Name: name})
	}

	zero := int64(0)
	podSpec := corev1.PodSpec{
		Hostname:                      container.Hostname,
		Containers:                    []corev1.Container{podContainer},
		Volumes:                       volumes,
		ImagePullSecrets:              imagePullSecrets,
		RuntimeClassName:              runtimeClassName(container, class),
		EnableServiceLinks:            boolPtr(false),
		AutomountServiceAccountToken:  boolPtr(false),
		TerminationGracePeriodSeconds: &zero,
	}

	dep := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      container.Hostname,
			Namespace: namespaceName,
			Labels:    CommonLabels(instance),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: int32Ptr(1),
			Selector: &metav1.LabelSelector{
				MatchLabels: PodSelectorLabels(container.Hostname),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      PodLabels(instance, container.Hostname),
					Annotations: podAnnotations,
				},
				Spec: podSpec,
			},
		},
	}

	return dep, nil
}

func buildEnvVars(instance *berg.ChallengeInstance, container berg.ContainerSpec, namespaceName string) []corev1.EnvVar {
	var env []corev1.EnvVar
	for key, value := range container.Environment {
		env = append(env, corev1.EnvVar{Name: key, Value: value})
	}

	env = append(env, corev1.EnvVar{Name: "CHALLENGE_NAMESPACE", Value: namespaceName})

	if container.DynamicFlag != nil && container.DynamicFlag.Env != nil {
		env = append(env, corev1.EnvVar{Name: container.DynamicFlag.Env.Name, Value: instance.Spec.Flag})
	}

	return env
}

func buildVolumes(container berg.ContainerSpec) ([]corev1.Volume, []corev1.VolumeMount, error) {
	if container.DynamicFlag == nil {
		return nil, nil, nil
	}

	var volumes []corev1.Volume
	var mounts []corev1.VolumeMount

	if c := container.DynamicFlag.Content; c != nil {
		volume, mount, err := flag.BuildContentVolumeMount(c.Path, c.Mode)
		if err != nil {
			return nil, nil, err
		}
		volumes = append(volumes, volume)
		mounts = append(mounts, mount)
	}

	if e := container.DynamicFlag.Executable; e != nil {
		volume, mount, err := flag.BuildExecutableVolumeMount(e.Path, e.Mode)
		if err != nil {
			return nil, nil, err
		}
		volumes = append(volumes, volume)
		mounts = append(mounts, mount)
	}

	return volumes, mounts, nil
}

func buildResources(container berg.ContainerSpec, class *berg.ChallengeInstanceClass) corev1.ResourceRequirements {
	defaultCPULimit, defaultCPURequest := fallbackCPULimit, fallbackCPURequest
	defaultMemoryLimit, defaultMemoryRequest := fallbackMemoryLimit, fallbackMemoryRequest
	if class != nil && class.Spec.DefaultResources != nil {
		d := class.Spec.DefaultResources
		if d.CPULimit != "" {
			defaultCPULimit = d.CPULimit
		}
		if d.CPURequest != "" {
			defaultCPURequest = d.CPURequest
		}
		if d.MemoryLimit != "" {
			defaultMemoryLimit = d.MemoryLimit
		}
		if d.MemoryRequest != "" {
			defaultMemoryRequest = d.MemoryRequest
		}
	}

	cpuLimit, cpuRequest := defaultCPULimit, defaultCPURequest
	memoryLimit, memoryRequest := defaultMemoryLimit, defaultMemoryRequest
	if container.ResourceLimits != nil {
		if container.ResourceLimits.CPU != "" {
			cpuLimit = container.ResourceLimits.CPU
		}
		if container.ResourceLimits.Memory != "" {
			memoryLimit = container.ResourceLimits.Memory
		}
	}
	if container.ResourceRequests != nil {
		if container.ResourceRequests.CPU != "" {
			cpuRequest = container.ResourceRequests.CPU
		}
		if container.ResourceRequests.Memory != "" {
			memoryRequest = container.ResourceRequests.Memory
		}
	}

	return corev1.ResourceRequirements{
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(cpuLimit),
			corev1.ResourceMemory: resource.MustParse(memoryLimit),
		},
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(cpuRequest),
			corev1.ResourceMemory: resource.MustParse(memoryRequest),
		},
	}
}

func buildSecurityContext(container berg.ContainerSpec) *corev1.SecurityContext {
	var drop []corev1.Capability
	if container.DynamicFlag != nil && container.DynamicFlag.Executable != nil {
		drop = append(drop, "DAC_OVERRIDE")
	}

	var add []corev1.Capability
	for _, cap := range container.AdditionalCapabilities {
		add = append(add, corev1.Capability(cap))
	}

	var capabilities *corev1.Capabilities
	if len(add) > 0 || len(drop) > 0 {
		capabilities = &corev1.Capabilities{Add: add, Drop: drop}
	}

	return &corev1.SecurityContext{
		Privileged:               boolPtr(false),
		AllowPrivilegeEscalation: boolPtr(true),
		Capabilities:             capabilities,
	}
}

func imagePullPolicy(class *berg.ChallengeInstanceClass) string {
	if class != nil && class.Spec.ImagePull != nil && class.Spec.ImagePull.Policy != "" {
		return class.Spec.ImagePull.Policy
	}
	return string(corev1.PullIfNotPresent)
}

func runtimeClassName(container berg.ContainerSpec, class *berg.ChallengeInstanceClass) *string {
	if container.RuntimeClassName != "" {
		return &container.RuntimeClassName
	}
	if class != nil && class.Spec.Security != nil && class.Spec.Security.RuntimeClassName != "" {
		name := class.Spec.Security.RuntimeClassName
		return &name
	}
	return nil
}

func boolPtr(v bool) *bool { return &v }
