package resources

import (
	"context"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
)

// NodePortServiceSuffix names the secondary NodePort service created
// alongside the ClusterIP service when a container exposes a PublicPort.
const NodePortServiceSuffix = "-node-port"

// ReconcileServices creates the ClusterIP service (all ports) and, if the
// container declares any PublicPort, the NodePort service (public ports
// only) for one container. It returns the list of ServiceEndpoints
// harvested from the created/existing NodePort service, with hostname set
// to the class gateway domain.
func ReconcileServices(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, container berg.ContainerSpec, namespaceName, gatewayDomain string) ([]berg.ServiceEndpoint, error) {
	if err := reconcileClusterIPService(ctx, c, scheme, instance, container, namespaceName); err != nil {
		return nil, err
	}

	var publicPorts []berg.PortSpec
	for _, p := range container.Ports {
		if p.Type == berg.PortTypePublic {
			publicPorts = append(publicPorts, p)
		}
	}
	if len(publicPorts) == 0 {
		return nil, nil
	}

	svc, err := reconcileNodePortService(ctx, c, scheme, instance, container, publicPorts, namespaceName)
	if err != nil {
		return nil, err
	}

	return harvestNodePortEndpoints(svc, publicPorts, gatewayDomain), nil
}

func reconcileClusterIPService(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, container berg.ContainerSpec, namespaceName string) error {
	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      container.Hostname,
			Namespace: namespaceName,
			Labels:    CommonLabels(instance),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: PodSelectorLabels(container.Hostname),
			Ports:    toServicePorts(container.Ports),
		},
	}
	if err := controllerutil.SetControllerReference(instance, svc, scheme); err != nil {
		return err
	}
	if err := c.Create(ctx, svc); err != nil && !apierrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}

func reconcileNodePortService(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, container berg.ContainerSpec, publicPorts []berg.PortSpec, namespaceName string) (*corev1.Service, error) {
	name := container.Hostname + NodePortServiceSuffix
	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespaceName,
			Labels:    CommonLabels(instance),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeNodePort,
			Selector: PodSelectorLabels(container.Hostname),
			Ports:    toServicePorts(publicPorts),
		},
	}
	if err := controllerutil.SetControllerReference(instance, svc, scheme); err != nil {
		return nil, err
	}

	err := c.Create(ctx, svc)
	if err == nil {
		return svc, nil
	}
	if !apierrors.IsAlreadyExists(err) {
		return nil, err
	}

	var existing corev1.Service
	if err := c.Get(ctx, client.ObjectKey{Namespace: namespaceName, Name: name}, &existing); err != nil {
		return nil, err
	}
	return &existing, nil
}

func toServicePorts(ports []berg.PortSpec) []corev1.ServicePort {
	out := make([]corev1.ServicePort, 0, len(ports))
	for _, p := range ports {
		sp := corev1.ServicePort{
			Name:     p.Name,
			Port:     int32(p.Port),
			Protocol: corev1.Protocol(strings.ToUpper(p.Protocol)),
		}
		if p.AppProtocol != "" {
			ap := p.AppProtocol
			sp.AppProtocol = &ap
		}
		out = append(out, sp)
	}
	return out
}

func harvestNodePortEndpoints(svc *corev1.Service, publicPorts []berg.PortSpec, gatewayDomain string) []berg.ServiceEndpoint {
	nodePortByName := map[string]int32{}
	for _, sp := range svc.Spec.Ports {
		nodePortByName[sp.Name] = sp.NodePort
	}

	endpoints := make([]berg.ServiceEndpoint, 0, len(publicPorts))
	for _, p := range publicPorts {
		assigned := nodePortByName[p.Name]
		falseVal := false
		endpoints = append(endpoints, berg.ServiceEndpoint{
			Name:        p.Name,
			Hostname:    gatewayDomain,
			Port:        uint16(assigned),
			Protocol:    strings.ToUpper(p.Protocol),
			AppProtocol: p.AppProtocol,
			TLS:         &falseVal,
		})
	}
	return endpoints
}
