package v1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ChallengeSpec defines a reusable CTF challenge template. The controller never
// mutates a Challenge; instances only read it.
type ChallengeSpec struct {
	// DisplayName is shown to players.
	// +optional
	DisplayName string `json:"displayName,omitempty"`

	// Author is the challenge's creator.
	Author string `json:"author"`

	// Description is the player-facing writeup prompt.
	Description string `json:"description"`

	// Flag is the default/static flag value, used when no container declares a
	// dynamic flag.
	Flag string `json:"flag"`

	// FlagFormat documents the expected flag shape, e.g. "flag{...}".
	FlagFormat string `json:"flagFormat"`

	// DynamicFlagMode controls how a per-instance flag is derived when present.
	// +kubebuilder:validation:Enum=suffix;leetify
	// +optional
	DynamicFlagMode string `json:"dynamicFlagMode,omitempty"`

	// HideUntil, if set, is an RFC3339 timestamp before which the challenge is
	// not yet visible to players. Opaque to the controller.
	// +optional
	HideUntil string `json:"hideUntil,omitempty"`

	// Difficulty is a free-form label (e.g. "easy", "insane").
	Difficulty string `json:"difficulty"`

	// StaticValue is the point value when scoring is not dynamic.
	// +optional
	StaticValue *float64 `json:"staticValue,omitempty"`

	// Categories groups the challenge for listing.
	Categories []string `json:"categories"`

	// Tags are free-form labels.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// Event references an optional competition/event identifier.
	// +optional
	Event string `json:"event,omitempty"`

	// AllowOutboundTraffic, when true, opens an egress rule to the "world"
	// Cilium entity for every instance of this challenge (see §4.2 egress
	// rule ordering).
	// +optional
	AllowOutboundTraffic bool `json:"allowOutboundTraffic,omitempty"`

	// Containers are the workloads that make up one instance of this challenge.
	// +optional
	Containers []ContainerSpec `json:"containers,omitempty"`

	// Attachments are downloadable files offered alongside the challenge.
	// +optional
	Attachments []AttachmentSpec `json:"attachments,omitempty"`
}

// ContainerSpec describes one workload within a Challenge. Hostname doubles as
// the Service and Deployment name and must be unique within the Challenge.
type ContainerSpec struct {
	Hostname string `json:"hostname"`
	Image    string `json:"image"`

	// Environment is copied verbatim into the container's env, before any
	// dynamic-flag env injection.
	// +optional
	Environment map[string]string `json:"environment,omitempty"`

	Ports []PortSpec `json:"ports"`

	// DynamicFlag, if set, describes how the instance's flag is delivered to
	// this container.
	// +optional
	DynamicFlag *DynamicFlag `json:"dynamicFlag,omitempty"`

	// +optional
	ResourceRequests *ResourceSpec `json:"resourceRequests,omitempty"`
	// +optional
	ResourceLimits *ResourceSpec `json:"resourceLimits,omitempty"`

	// AdditionalCapabilities are Linux capabilities added to the container's
	// security context.
	// +optional
	AdditionalCapabilities []string `json:"additionalCapabilities,omitempty"`

	// RuntimeClassName overrides the class default runtime class for this
	// container.
	// +optional
	RuntimeClassName string `json:"runtimeClassName,omitempty"`

	// ReadinessProbe and LivenessProbe pass through opaquely to the pod
	// template; the controller never inspects their contents.
	// +kubebuilder:pruning:PreserveUnknownFields
	// +optional
	ReadinessProbe *corev1.Probe `json:"readinessProbe,omitempty"`
	// +kubebuilder:pruning:PreserveUnknownFields
	// +optional
	LivenessProbe *corev1.Probe `json:"livenessProbe,omitempty"`

	// +optional
	EgressBandwidth string `json:"egressBandwidth,omitempty"`
	// +optional
	IngressBandwidth string `json:"ingressBandwidth,omitempty"`
}

// PortType classifies how a port is exposed outside the namespace.
// +kubebuilder:validation:Enum=internalPort;publicPort;publicHttpRoute;publicTlsRoute
type PortType string

const (
	PortTypeInternal       PortType = "internalPort"
	PortTypePublic         PortType = "publicPort"
	PortTypePublicHTTPRoute PortType = "publicHttpRoute"
	PortTypePublicTLSRoute  PortType = "publicTlsRoute"
)

// PortSpec describes one port a container listens on.
type PortSpec struct {
	// +optional
	Name string `json:"name,omitempty"`
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	Port uint16 `json:"port"`
	// Protocol is the L4 protocol, "tcp" or "udp".
	Protocol string `json:"protocol"`
	// +optional
	AppProtocol string   `json:"appProtocol,omitempty"`
	Type        PortType `json:"type"`
}

// DynamicFlag is a tagged union of flag-delivery modes; any combination of the
// three arms may be set simultaneously.
type DynamicFlag struct {
	// +optional
	Env *EnvFlag `json:"env,omitempty"`
	// +optional
	Content *ContentFlag `json:"content,omitempty"`
	// +optional
	Executable *ExecutableFlag `json:"executable,omitempty"`
}

// EnvFlag injects the instance flag as an environment variable named Name.
type EnvFlag struct {
	Name string `json:"name"`
}

// ContentFlag mounts the flag as a read-only text file at Path. Path may
// contain the literal substring "{entropy}".
type ContentFlag struct {
	Path string `json:"path"`
	// +optional
	Mode *int32 `json:"mode,omitempty"`
}

// ExecutableFlag mounts a hand-assembled ELF binary that prints the flag at
// Path. Path may contain the literal substring "{entropy}".
type ExecutableFlag struct {
	Path string `json:"path"`
	// +optional
	Mode *int32 `json:"mode,omitempty"`
}

// ResourceSpec overrides either CPU or memory quantities; unset fields fall
// back to the ChallengeInstanceClass defaults and then to hard-coded values.
type ResourceSpec struct {
	// +optional
	CPU string `json:"cpu,omitempty"`
	// +optional
	Memory string `json:"memory,omitempty"`
}

// AttachmentSpec describes a downloadable file offered to players.
type AttachmentSpec struct {
	FileName string `json:"fileName"`
	// +optional
	DownloadURL string `json:"downloadURL,omitempty"`
	// +optional
	DownloadImage string `json:"downloadImage,omitempty"`
	// +optional
	DownloadImagePullSecret string `json:"downloadImagePullSecret,omitempty"`
	// +optional
	DownloadImageInsecure *bool `json:"downloadImageInsecure,omitempty"`
}

// ChallengeStatus is currently unused by the controller; Challenge is
// read-only from its perspective.
type ChallengeStatus struct {
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Author",type=string,JSONPath=`.spec.author`
// +kubebuilder:printcolumn:name="Difficulty",type=string,JSONPath=`.spec.difficulty`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Challenge is the Schema for the challenges API.
type Challenge struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ChallengeSpec   `json:"spec,omitempty"`
	Status ChallengeStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ChallengeList contains a list of Challenge.
type ChallengeList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Challenge `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Challenge{}, &ChallengeList{})
}
