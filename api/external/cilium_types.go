// Package external hand-defines the subset of third-party CRD schemas the
// controller reads and writes but does not own or register a generated
// clientset for: Cilium network policies and Gateway API routes. Shapes
// mirror what the upstream CRDs accept; the controller only ever creates
// these objects, so fields it never sets are omitted.
package external

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// CiliumEntity names a well-known Cilium policy entity.
const (
	CiliumEntityHost          = "host"
	CiliumEntityRemoteNode    = "remote-node"
	CiliumEntityKubeAPIServer = "kube-apiserver"
	CiliumEntityIngress       = "ingress"
	CiliumEntityCluster       = "cluster"
	CiliumEntityInit          = "init"
	CiliumEntityHealth        = "health"
	CiliumEntityUnmanaged     = "unmanaged"
	CiliumEntityWorld         = "world"
	CiliumEntityAll           = "all"
)

// CiliumPortProtocolName names the L4 protocol of a CiliumPortProtocol entry.
const (
	CiliumProtoTCP = "TCP"
	CiliumProtoUDP = "UDP"
)

// CiliumNetworkPolicyGVK is the GroupVersionKind of the upstream CRD this
// package targets.
var CiliumNetworkPolicyGVK = schema.GroupVersionKind{
	Group:   "cilium.io",
	Version: "v2",
	Kind:    "CiliumNetworkPolicy",
}

// CiliumNetworkPolicy mirrors cilium.io/v2 CiliumNetworkPolicy, namespaced.
type CiliumNetworkPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec CiliumNetworkPolicySpec `json:"spec"`
}

// CiliumNetworkPolicyList is required to register CiliumNetworkPolicy with a
// runtime.Scheme: controller-runtime builds a List informer for every owned
// kind, constructing it by GVK through the scheme rather than referencing
// this type directly.
type CiliumNetworkPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []CiliumNetworkPolicy `json:"items"`
}

// CiliumNetworkPolicySpec selects the endpoints the rule applies to and the
// egress traffic those endpoints may originate.
type CiliumNetworkPolicySpec struct {
	// +optional
	EndpointSelector *metav1.LabelSelector `json:"endpointSelector,omitempty"`
	// +optional
	Egress []CiliumEgressRule `json:"egress,omitempty"`
}

// CiliumEgressRule is one allowed egress destination; any combination of the
// four selector kinds may be populated on the same rule.
type CiliumEgressRule struct {
	// +optional
	ToEndpoints []metav1.LabelSelector `json:"toEndpoints,omitempty"`
	// +optional
	ToEntities []string `json:"toEntities,omitempty"`
	// +optional
	ToFQDNs []CiliumFQDNRule `json:"toFQDNs,omitempty"`
	// +optional
	ToPorts []CiliumPortRule `json:"toPorts,omitempty"`
}

// CiliumFQDNRule matches egress destinations by DNS name or pattern.
type CiliumFQDNRule struct {
	// +optional
	MatchName string `json:"matchName,omitempty"`
	// +optional
	MatchPattern string `json:"matchPattern,omitempty"`
}

// CiliumPortRule restricts a rule to a set of ports, optionally with L7
// rules layered on top.
type CiliumPortRule struct {
	// +optional
	Ports []CiliumPortProtocol `json:"ports,omitempty"`
	// +optional
	Rules *CiliumL7Rule `json:"rules,omitempty"`
}

// CiliumPortProtocol is one port/protocol pair. Port is a string because
// Cilium accepts named ports alongside numeric ones.
type CiliumPortProtocol struct {
	// +optional
	Port string `json:"port,omitempty"`
	// +optional
	Protocol string `json:"protocol,omitempty"`
}

// CiliumL7Rule carries L7-aware rule sets; only DNS egress visibility rules
// are used by this controller.
type CiliumL7Rule struct {
	// +optional
	DNS []CiliumDNSRule `json:"dns,omitempty"`
}

// CiliumDNSRule allows DNS lookups for a given name or pattern to pass
// through an otherwise FQDN-restricted egress rule.
type CiliumDNSRule struct {
	// +optional
	MatchName string `json:"matchName,omitempty"`
	// +optional
	MatchPattern string `json:"matchPattern,omitempty"`
}

func (in *CiliumNetworkPolicy) DeepCopyObject() runtime.Object {
	if in == nil {
		return nil
	}
	out := new(CiliumNetworkPolicy)
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec.deepCopy()
	return out
}

func (in *CiliumNetworkPolicyList) DeepCopyObject() runtime.Object {
	if in == nil {
		return nil
	}
	out := new(CiliumNetworkPolicyList)
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]CiliumNetworkPolicy, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
	return out
}

// DeepCopyInto lets CiliumNetworkPolicyList's DeepCopyObject build its Items
// slice without a pointer-returning round trip through DeepCopyObject.
func (in *CiliumNetworkPolicy) DeepCopyInto(out *CiliumNetworkPolicy) {
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec.deepCopy()
}

func (s CiliumNetworkPolicySpec) deepCopy() CiliumNetworkPolicySpec {
	out := s
	if s.EndpointSelector != nil {
		out.EndpointSelector = s.EndpointSelector.DeepCopy()
	}
	if s.Egress != nil {
		out.Egress = make([]CiliumEgressRule, len(s.Egress))
		for i, r := range s.Egress {
			out.Egress[i] = r.deepCopy()
		}
	}
	return out
}

func (r CiliumEgressRule) deepCopy() CiliumEgressRule {
	out := r
	if r.ToEndpoints != nil {
		out.ToEndpoints = make([]metav1.LabelSelector, len(r.ToEndpoints))
		for i := range r.ToEndpoints {
			r.ToEndpoints[i].DeepCopyInto(&out.ToEndpoints[i])
		}
	}
	if r.ToEntities != nil {
		out.ToEntities = append([]string(nil), r.ToEntities...)
	}
	if r.ToFQDNs != nil {
		out.ToFQDNs = append([]CiliumFQDNRule(nil), r.ToFQDNs...)
	}
	if r.ToPorts != nil {
		out.ToPorts = make([]CiliumPortRule, len(r.ToPorts))
		for i, p := range r.ToPorts {
			out.ToPorts[i] = p.deepCopy()
		}
	}
	return out
}

func (p CiliumPortRule) deepCopy() CiliumPortRule {
	out := p
	if p.Ports != nil {
		out.Ports = append([]CiliumPortProtocol(nil), p.Ports...)
	}
	if p.Rules != nil {
		r := *p.Rules
		if p.Rules.DNS != nil {
			r.DNS = append([]CiliumDNSRule(nil), p.Rules.DNS...)
		}
		out.Rules = &r
	}
	return out
}
