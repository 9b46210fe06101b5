package external

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// AddToScheme registers the hand-defined Cilium and Gateway API kinds this
// controller creates. There is no generated clientset for these CRDs, so
// registration happens directly against the GVKs declared alongside each
// type instead of through a scheme.Builder.
func AddToScheme(s *runtime.Scheme) error {
	s.AddKnownTypeWithName(CiliumNetworkPolicyGVK, &CiliumNetworkPolicy{})
	s.AddKnownTypeWithName(HTTPRouteGVK, &HTTPRoute{})
	s.AddKnownTypeWithName(TLSRouteGVK, &TLSRoute{})

	s.AddKnownTypeWithName(listGVK(CiliumNetworkPolicyGVK), &CiliumNetworkPolicyList{})
	s.AddKnownTypeWithName(listGVK(HTTPRouteGVK), &HTTPRouteList{})
	s.AddKnownTypeWithName(listGVK(TLSRouteGVK), &TLSRouteList{})

	metav1.AddToGroupVersion(s, schema.GroupVersion{Group: CiliumNetworkPolicyGVK.Group, Version: CiliumNetworkPolicyGVK.Version})
	metav1.AddToGroupVersion(s, schema.GroupVersion{Group: HTTPRouteGVK.Group, Version: HTTPRouteGVK.Version})
	metav1.AddToGroupVersion(s, schema.GroupVersion{Group: TLSRouteGVK.Group, Version: TLSRouteGVK.Version})

	return nil
}

// listGVK derives the "FooList" GVK controller-runtime requests when it
// builds a List informer for an owned kind "Foo".
func listGVK(gvk schema.GroupVersionKind) schema.GroupVersionKind {
	gvk.Kind += "List"
	return gvk
}
