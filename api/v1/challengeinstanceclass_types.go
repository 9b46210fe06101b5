package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// GatewayConfig points at the platform gateway instances attach their public
// routes to.
type GatewayConfig struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`

	HTTPListenerName string `json:"httpListenerName"`
	TLSListenerName  string `json:"tlsListenerName"`

	// Domain is the suffix appended to generated subdomains.
	Domain string `json:"domain"`

	// +kubebuilder:default=80
	// +optional
	HTTPPort uint16 `json:"httpPort,omitempty"`
	// +kubebuilder:default=443
	// +optional
	TLSPort uint16 `json:"tlsPort,omitempty"`
}

// ResourceDefaults are the class-wide fallback cpu/memory requests & limits,
// themselves overridden by ContainerSpec.ResourceRequests/Limits.
type ResourceDefaults struct {
	// +optional
	CPURequest string `json:"cpuRequest,omitempty"`
	// +optional
	CPULimit string `json:"cpuLimit,omitempty"`
	// +optional
	MemoryRequest string `json:"memoryRequest,omitempty"`
	// +optional
	MemoryLimit string `json:"memoryLimit,omitempty"`
}

// NetworkConfig holds class-wide bandwidth shaping defaults.
type NetworkConfig struct {
	// +optional
	EgressBandwidth string `json:"egressBandwidth,omitempty"`
	// +optional
	IngressBandwidth string `json:"ingressBandwidth,omitempty"`
	// +optional
	AdditionalHeadlessService bool `json:"additionalHeadlessService,omitempty"`
}

// ImagePullConfig names the pull policy and the secrets to copy into every
// instance namespace.
type ImagePullConfig struct {
	// +kubebuilder:default=IfNotPresent
	// +optional
	Policy string `json:"policy,omitempty"`
	// +optional
	SecretNames []string `json:"secretNames,omitempty"`
}

// PodSecurityContextConfig is a class-wide pod security context default.
type PodSecurityContextConfig struct {
	// +optional
	RunAsNonRoot *bool `json:"runAsNonRoot,omitempty"`
	// +optional
	FSGroup *int64 `json:"fsGroup,omitempty"`
	// +optional
	SupplementalGroups []int64 `json:"supplementalGroups,omitempty"`
}

// SecurityConfig groups runtime-class and pod security context defaults.
type SecurityConfig struct {
	// +optional
	RuntimeClassName string `json:"runtimeClassName,omitempty"`
	// +optional
	PodSecurityContext *PodSecurityContextConfig `json:"podSecurityContext,omitempty"`
}

// ChallengeInstanceClassSpec groups default resource shapes, gateway target,
// and security posture for the instances that reference it. Analogous to
// StorageClass: a small catalogue of tiers rather than one setting per
// instance.
type ChallengeInstanceClassSpec struct {
	Gateway GatewayConfig `json:"gateway"`

	// +optional
	DefaultResources *ResourceDefaults `json:"defaultResources,omitempty"`
	// +optional
	Network *NetworkConfig `json:"network,omitempty"`
	// +optional
	ImagePull *ImagePullConfig `json:"imagePull,omitempty"`
	// +optional
	Security *SecurityConfig `json:"security,omitempty"`

	// +optional
	Default bool `json:"default,omitempty"`

	// +optional
	DefaultTimeout string `json:"defaultTimeout,omitempty"`

	// ChallengeNamespace names a namespace for the Challenge objects of this
	// class. The controller does not read it: when ChallengeRef.Namespace is
	// unset, the Challenge is looked up in the controller's configured
	// challenge namespace.
	ChallengeNamespace string `json:"challengeNamespace"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster
// +kubebuilder:printcolumn:name="Gateway",type=string,JSONPath=`.spec.gateway.name`
// +kubebuilder:printcolumn:name="Default",type=boolean,JSONPath=`.spec.default`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// ChallengeInstanceClass is the Schema for the challengeinstanceclasses API.
type ChallengeInstanceClass struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ChallengeInstanceClassSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// ChallengeInstanceClassList contains a list of ChallengeInstanceClass.
type ChallengeInstanceClassList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ChallengeInstanceClass `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ChallengeInstanceClass{}, &ChallengeInstanceClassList{})
}
