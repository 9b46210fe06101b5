package external

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// HTTPRouteGVK is the GroupVersionKind of the Gateway API v1 HTTPRoute CRD.
var HTTPRouteGVK = schema.GroupVersionKind{
	Group:   "gateway.networking.k8s.io",
	Version: "v1",
	Kind:    "HTTPRoute",
}

// TLSRouteGVK is the GroupVersionKind of the Gateway API v1alpha2 TLSRoute
// CRD. TLSRoute has not graduated past v1alpha2 upstream.
var TLSRouteGVK = schema.GroupVersionKind{
	Group:   "gateway.networking.k8s.io",
	Version: "v1alpha2",
	Kind:    "TLSRoute",
}

// ParentReference names the Gateway (or other parent) a route attaches to.
type ParentReference struct {
	// +optional
	Group string `json:"group,omitempty"`
	// +optional
	Kind string `json:"kind,omitempty"`
	// +optional
	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name"`
	// +optional
	SectionName string `json:"sectionName,omitempty"`
	// +optional
	Port *int32 `json:"port,omitempty"`
}

// BackendRef targets the Service a TLSRoute rule forwards to.
type BackendRef struct {
	// +optional
	Group string `json:"group,omitempty"`
	// +optional
	Kind string `json:"kind,omitempty"`
	// +optional
	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name"`
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	Weight *int32 `json:"weight,omitempty"`
}

// HTTPBackendRef targets the Service an HTTPRoute rule forwards to.
type HTTPBackendRef struct {
	// +optional
	Group string `json:"group,omitempty"`
	// +optional
	Kind string `json:"kind,omitempty"`
	// +optional
	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name"`
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	Weight *int32 `json:"weight,omitempty"`
}

// HTTPRequestRedirectFilter implements the RequestRedirect filter kind.
type HTTPRequestRedirectFilter struct {
	// +optional
	Scheme string `json:"scheme,omitempty"`
	// +optional
	Hostname string `json:"hostname,omitempty"`
	// +optional
	Path string `json:"path,omitempty"`
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	StatusCode *int32 `json:"statusCode,omitempty"`
}

// HTTPRouteFilter is a tagged union; RequestRedirect is the only filter kind
// modelled here. The controller's routes set no filters.
type HTTPRouteFilter struct {
	// +optional
	Type string `json:"type,omitempty"`
	// +optional
	RequestRedirect *HTTPRequestRedirectFilter `json:"requestRedirect,omitempty"`
}

// HTTPRouteRule is one match/forward rule within an HTTPRoute.
type HTTPRouteRule struct {
	// +optional
	Name string `json:"name,omitempty"`
	// +optional
	BackendRefs []HTTPBackendRef `json:"backendRefs,omitempty"`
	// +optional
	Filters []HTTPRouteFilter `json:"filters,omitempty"`
}

// HTTPRouteSpec is the subset of Gateway API v1 HTTPRouteSpec this
// controller populates.
type HTTPRouteSpec struct {
	// +optional
	Hostnames []string `json:"hostnames,omitempty"`
	// +optional
	ParentRefs []ParentReference `json:"parentRefs,omitempty"`
	// +optional
	Rules []HTTPRouteRule `json:"rules,omitempty"`
}

// HTTPRoute mirrors gateway.networking.k8s.io/v1 HTTPRoute, namespaced.
type HTTPRoute struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec HTTPRouteSpec `json:"spec"`
}

// HTTPRouteList is required to register HTTPRoute with a runtime.Scheme:
// controller-runtime builds a List informer for every owned kind,
// constructing it by GVK through the scheme rather than referencing this
// type directly.
type HTTPRouteList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []HTTPRoute `json:"items"`
}

// TLSRouteRule is one forwarding rule within a TLSRoute. Name is required
// upstream (unlike HTTPRouteRule.Name).
type TLSRouteRule struct {
	Name string `json:"name"`
	// +optional
	BackendRefs []BackendRef `json:"backendRefs,omitempty"`
}

// TLSRouteSpec is the subset of Gateway API v1alpha2 TLSRouteSpec this
// controller populates.
type TLSRouteSpec struct {
	// +optional
	Hostnames []string `json:"hostnames,omitempty"`
	// +optional
	ParentRefs []ParentReference `json:"parentRefs,omitempty"`
	// +optional
	Rules []TLSRouteRule `json:"rules,omitempty"`
}

// TLSRoute mirrors gateway.networking.k8s.io/v1alpha2 TLSRoute, namespaced.
type TLSRoute struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec TLSRouteSpec `json:"spec"`
}

// TLSRouteList is required to register TLSRoute with a runtime.Scheme:
// controller-runtime builds a List informer for every owned kind,
// constructing it by GVK through the scheme rather than referencing this
// type directly.
type TLSRouteList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []TLSRoute `json:"items"`
}

func (in *HTTPRoute) DeepCopyObject() runtime.Object {
	if in == nil {
		return nil
	}
	out := new(HTTPRoute)
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec.deepCopy()
	return out
}

func (in *HTTPRoute) DeepCopyInto(out *HTTPRoute) {
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec.deepCopy()
}

func (in *HTTPRouteList) DeepCopyObject() runtime.Object {
	if in == nil {
		return nil
	}
	out := new(HTTPRouteList)
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]HTTPRoute, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
	return out
}

func (s HTTPRouteSpec) deepCopy() HTTPRouteSpec {
	out := s
	if s.Hostnames != nil {
		out.Hostnames = append([]string(nil), s.Hostnames...)
	}
	if s.ParentRefs != nil {
		out.ParentRefs = append([]ParentReference(nil), s.ParentRefs...)
	}
	if s.Rules != nil {
		out.Rules = make([]HTTPRouteRule, len(s.Rules))
		for i, r := range s.Rules {
			rr := r
			if r.BackendRefs != nil {
				rr.BackendRefs = append([]HTTPBackendRef(nil), r.BackendRefs...)
			}
			if r.Filters != nil {
				rr.Filters = append([]HTTPRouteFilter(nil), r.Filters...)
			}
			out.Rules[i] = rr
		}
	}
	return out
}

func (in *TLSRoute) DeepCopyObject() runtime.Object {
	if in == nil {
		return nil
	}
	out := new(TLSRoute)
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec.deepCopy()
	return out
}

func (in *TLSRoute) DeepCopyInto(out *TLSRoute) {
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec.deepCopy()
}

func (in *TLSRouteList) DeepCopyObject() runtime.Object {
	if in == nil {
		return nil
	}
	out := new(TLSRouteList)
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]TLSRoute, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
	return out
}

func (s TLSRouteSpec) deepCopy() TLSRouteSpec {
	out := s
	if s.Hostnames != nil {
		out.Hostnames = append([]string(nil), s.Hostnames...)
	}
	if s.ParentRefs != nil {
		out.ParentRefs = append([]ParentReference(nil), s.ParentRefs...)
	}
	if s.Rules != nil {
		out.Rules = make([]TLSRouteRule, len(s.Rules))
		for i, r := range s.Rules {
			rr := r
			if r.BackendRefs != nil {
				rr.BackendRefs = append([]BackendRef(nil), r.BackendRefs...)
			}
			out.Rules[i] = rr
		}
	}
	return out
}
