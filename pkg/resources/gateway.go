package resources

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
	"github.com/norelect/berg-challenge-controller/api/external"
)

func routeName(hostname string, port berg.PortSpec, suffix string) string {
	name := fmt.Sprintf("%s-%s-%s", hostname, port.Name, suffix)
	if len(name) > 63 {
		name = name[:63]
	}
	return name
}

// ReconcileHTTPRoute creates (or, on conflict, reads back) the HTTPRoute for
// one PublicHttpRoute port and returns the ServiceEndpoint surfaced in
// status. The subdomain is a freshly generated UUID on first creation; on
// retry the existing route's hostname is reused so the ServiceEndpoint in
// status stays stable.
func ReconcileHTTPRoute(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, container berg.ContainerSpec, port berg.PortSpec, namespaceName string, gw GatewayConfig) (berg.ServiceEndpoint, error) {
	name := routeName(container.Hostname, port, "http")
	hostname := fmt.Sprintf("%s.%s", uuid.NewString(), gw.Domain)

	route := &external.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespaceName,
			Labels:    CommonLabels(instance),
		},
		Spec: external.HTTPRouteSpec{
			Hostnames: []string{hostname},
			ParentRefs: []external.ParentReference{{
				Name:        gw.Name,
				Namespace:   gw.Namespace,
				SectionName: gw.HTTPListenerName,
			}},
			Rules: []external.HTTPRouteRule{{
				BackendRefs: []external.HTTPBackendRef{{
					Name: container.Hostname,
					Port: int32Ptr(int32(port.Port)),
				}},
			}},
		},
	}
	route.SetGroupVersionKind(external.HTTPRouteGVK)

	if err := controllerutil.SetControllerReference(instance, route, scheme); err != nil {
		return berg.ServiceEndpoint{}, err
	}

	err := c.Create(ctx, route)
	switch {
	case err == nil:
		// hostname is the one we just minted
	case apierrors.IsAlreadyExists(err):
		var existing external.HTTPRoute
		if getErr := c.Get(ctx, client.ObjectKey{Namespace: namespaceName, Name: name}, &existing); getErr != nil {
			return berg.ServiceEndpoint{}, getErr
		}
		if len(existing.Spec.Hostnames) > 0 {
			hostname = existing.Spec.Hostnames[0]
		}
	default:
		return berg.ServiceEndpoint{}, err
	}

	tlsTrue := true
	return berg.ServiceEndpoint{
		Name:        port.Name,
		Hostname:    hostname,
		Port:        gw.HTTPPort,
		Protocol:    "TCP",
		AppProtocol: "HTTP",
		TLS:         &tlsTrue,
	}, nil
}

// ReconcileTLSRoute is the TLS-listener equivalent of ReconcileHTTPRoute.
func ReconcileTLSRoute(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, container berg.ContainerSpec, port berg.PortSpec, namespaceName string, gw GatewayConfig) (berg.ServiceEndpoint, error) {
	name := routeName(container.Hostname, port, "tls")
	hostname := fmt.Sprintf("%s.%s", uuid.NewString(), gw.Domain)

	route := &external.TLSRoute{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespaceName,
			Labels:    CommonLabels(instance),
		},
		Spec: external.TLSRouteSpec{
			Hostnames: []string{hostname},
			ParentRefs: []external.ParentReference{{
				Name:        gw.Name,
				Namespace:   gw.Namespace,
				SectionName: gw.TLSListenerName,
			}},
			Rules: []external.TLSRouteRule{{
				Name: routeName(container.Hostname, port, "tls-rule"),
				BackendRefs: []external.BackendRef{{
					Name: container.Hostname,
					Port: int32Ptr(int32(port.Port)),
				}},
			}},
		},
	}
	route.SetGroupVersionKind(external.TLSRouteGVK)

	if err := controllerutil.SetControllerReference(instance, route, scheme); err != nil {
		return berg.ServiceEndpoint{}, err
	}

	err := c.Create(ctx, route)
	switch {
	case err == nil:
	case apierrors.IsAlreadyExists(err):
		var existing external.TLSRoute
		if getErr := c.Get(ctx, client.ObjectKey{Namespace: namespaceName, Name: name}, &existing); getErr != nil {
			return berg.ServiceEndpoint{}, getErr
		}
		if len(existing.Spec.Hostnames) > 0 {
			hostname = existing.Spec.Hostnames[0]
		}
	default:
		return berg.ServiceEndpoint{}, err
	}

	tlsTrue := true
	return berg.ServiceEndpoint{
		Name:        port.Name,
		Hostname:    hostname,
		Port:        gw.TLSPort,
		Protocol:    "TCP",
		AppProtocol: "TCP",
		TLS:         &tlsTrue,
	}, nil
}

// GatewayConfig is the subset of ChallengeInstanceClass.Spec.Gateway needed
// to build routes, passed explicitly to keep the resources package free of
// a dependency on reconciler-level context plumbing.
type GatewayConfig struct {
	Name             string
	Namespace        string
	HTTPListenerName string
	TLSListenerName  string
	Domain           string
	HTTPPort         uint16
	TLSPort          uint16
}

func int32Ptr(v int32) *int32 { return &v }
