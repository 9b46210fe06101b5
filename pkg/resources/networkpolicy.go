package resources

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
	"github.com/norelect/berg-challenge-controller/api/external"
)

// NetworkPolicyName is the fixed name of the single CiliumNetworkPolicy
// created per instance namespace.
const NetworkPolicyName = "challenge-network-policy"

// GatewayTarget names the HTTP/TLS ports instances may call back to on the
// "host" entity.
type GatewayTarget struct {
	HTTPPort uint16
	TLSPort  uint16
}

// ReconcileNetworkPolicy creates the instance's CiliumNetworkPolicy if it
// does not already exist. The rule order follows the fixed sequence: DNS,
// intra-namespace mesh, callback to the gateway host, and (conditionally)
// unrestricted world egress.
func ReconcileNetworkPolicy(ctx context.Context, c client.Client, scheme *runtime.Scheme, instance *berg.ChallengeInstance, namespaceName string, allowOutboundTraffic bool, gw GatewayTarget) error {
	cnp := &external.CiliumNetworkPolicy{
		ObjectMeta: metav1.ObjectMeta{
			Name:      NetworkPolicyName,
			Namespace: namespaceName,
		},
		Spec: external.CiliumNetworkPolicySpec{
			EndpointSelector: &metav1.LabelSelector{},
			Egress:           buildEgressRules(namespaceName, allowOutboundTraffic, gw),
		},
	}
	cnp.SetGroupVersionKind(external.CiliumNetworkPolicyGVK)

	if err := controllerutil.SetControllerReference(instance, cnp, scheme); err != nil {
		return err
	}

	if err := c.Create(ctx, cnp); err != nil && !apierrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}

func buildEgressRules(namespaceName string, allowOutboundTraffic bool, gw GatewayTarget) []external.CiliumEgressRule {
	dnsRule := external.CiliumEgressRule{
		ToEntities: []string{external.CiliumEntityKubeAPIServer, "kube-dns"},
		ToPorts: []external.CiliumPortRule{{
			Ports: []external.CiliumPortProtocol{{Port: "53", Protocol: external.CiliumProtoUDP}, {Port: "53", Protocol: external.CiliumProtoTCP}},
		}},
	}
	if !allowOutboundTraffic {
		dnsRule.ToPorts[0].Rules = &external.CiliumL7Rule{
			DNS: []external.CiliumDNSRule{{
				MatchPattern: fmt.Sprintf("*.%s.svc.cluster.local.", namespaceName),
			}},
		}
	}

	meshRule := external.CiliumEgressRule{
		ToEndpoints: []metav1.LabelSelector{{}},
	}

	hostRule := external.CiliumEgressRule{
		ToEntities: []string{external.CiliumEntityHost},
		ToPorts: []external.CiliumPortRule{{
			Ports: []external.CiliumPortProtocol{
				{Port: fmt.Sprintf("%d", gw.HTTPPort), Protocol: external.CiliumProtoTCP},
				{Port: fmt.Sprintf("%d", gw.TLSPort), Protocol: external.CiliumProtoTCP},
			},
		}},
	}

	rules := []external.CiliumEgressRule{dnsRule, meshRule, hostRule}

	if allowOutboundTraffic {
		rules = append(rules, external.CiliumEgressRule{
			ToEntities: []string{external.CiliumEntityWorld},
		})
	}

	return rules
}
