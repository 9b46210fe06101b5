package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// TerminationReason records why a ChallengeInstance is being torn down.
// +kubebuilder:validation:Enum=UserRequest;Timeout;AdminTermination
type TerminationReason string

const (
	TerminationReasonUserRequest      TerminationReason = "UserRequest"
	TerminationReasonTimeout          TerminationReason = "Timeout"
	TerminationReasonAdminTermination TerminationReason = "AdminTermination"
)

// ChallengeRef names the Challenge an instance was created from.
type ChallengeRef struct {
	Name string `json:"name"`
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// ChallengeInstanceSpec is the desired state of a single deployed challenge
// instance, owned by exactly one player or team.
type ChallengeInstanceSpec struct {
	ChallengeRef ChallengeRef `json:"challengeRef"`

	// OwnerID identifies the player/team this instance belongs to.
	// +kubebuilder:validation:Pattern=`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`
	OwnerID string `json:"ownerId"`

	// Flag is the pre-generated flag value for this instance.
	// +kubebuilder:validation:MaxLength=1024
	Flag string `json:"flag"`

	// InstanceClass names the ChallengeInstanceClass to use; if empty the
	// cluster default class is used.
	// +optional
	InstanceClass string `json:"instanceClass,omitempty"`

	// Timeout is a duration string matching ([0-9]+h)?([0-9]+m)?([0-9]+s)?
	// after which the instance auto-terminates.
	// +kubebuilder:validation:Pattern=`^([0-9]+h)?([0-9]+m)?([0-9]+s)?$`
	// +optional
	Timeout string `json:"timeout,omitempty"`

	// TerminationReason, once set, is the reason the finalizer path reports
	// in its terminated event (UserRequest when unset).
	// +optional
	TerminationReason TerminationReason `json:"terminationReason,omitempty"`
}

// Phase is the coarse lifecycle state persisted on status.
// +kubebuilder:validation:Enum=Pending;Creating;Starting;Running;Terminating;Terminated;Failed
type Phase string

const (
	PhasePending     Phase = "Pending"
	PhaseCreating    Phase = "Creating"
	PhaseStarting    Phase = "Starting"
	PhaseRunning     Phase = "Running"
	PhaseTerminating Phase = "Terminating"
	PhaseTerminated  Phase = "Terminated"
	PhaseFailed      Phase = "Failed"
)

// ConditionStatus mirrors metav1.ConditionStatus but is kept local so the
// controller does not need to coerce Rust-style three-value enums on the wire.
type ConditionStatus string

const (
	ConditionTrue    ConditionStatus = "True"
	ConditionFalse   ConditionStatus = "False"
	ConditionUnknown ConditionStatus = "Unknown"
)

// Condition is a single typed status observation. Conditions accumulate by
// append unless an entry of the same Type already exists, in which case it is
// replaced in place (see DESIGN.md, status-write contention).
type Condition struct {
	Type               string          `json:"type"`
	Status             ConditionStatus `json:"status"`
	LastTransitionTime *metav1.Time    `json:"lastTransitionTime,omitempty"`
	// +optional
	Reason string `json:"reason,omitempty"`
	// +optional
	Message string `json:"message,omitempty"`
}

// ServiceEndpoint is one externally reachable address surfaced in status.
type ServiceEndpoint struct {
	Name     string `json:"name"`
	Hostname string `json:"hostname"`
	Port     uint16 `json:"port"`
	Protocol string `json:"protocol"`
	// +optional
	AppProtocol string `json:"appProtocol,omitempty"`
	// +optional
	TLS *bool `json:"tls,omitempty"`
}

// ChallengeInstanceStatus is the observed state, written exclusively through
// the controller's updateStatus helper (see controllers).
type ChallengeInstanceStatus struct {
	// +optional
	InstanceID string `json:"instanceId,omitempty"`
	// +optional
	Phase Phase `json:"phase,omitempty"`
	// Namespace, once set, is never changed.
	// +optional
	Namespace string `json:"namespace,omitempty"`
	// +optional
	Services []ServiceEndpoint `json:"services,omitempty"`

	// +optional
	StartedAt *metav1.Time `json:"startedAt,omitempty"`
	// +optional
	ReadyAt *metav1.Time `json:"readyAt,omitempty"`
	// +optional
	TerminatedAt *metav1.Time `json:"terminatedAt,omitempty"`
	// +optional
	ExpiresAt *metav1.Time `json:"expiresAt,omitempty"`

	// +optional
	Conditions []Condition `json:"conditions,omitempty"`

	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster,shortName=ci;instance
// +kubebuilder:printcolumn:name="Challenge",type=string,JSONPath=`.spec.challengeRef.name`
// +kubebuilder:printcolumn:name="Owner",type=string,JSONPath=`.spec.ownerId`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Namespace",type=string,JSONPath=`.status.namespace`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`
// +kubebuilder:printcolumn:name="Expires",type=date,JSONPath=`.status.expiresAt`

// ChallengeInstance is the Schema for the challengeinstances API. It is
// cluster-scoped because it owns a namespace.
type ChallengeInstance struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ChallengeInstanceSpec   `json:"spec,omitempty"`
	Status ChallengeInstanceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ChallengeInstanceList contains a list of ChallengeInstance.
type ChallengeInstanceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ChallengeInstance `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ChallengeInstance{}, &ChallengeInstanceList{})
}

// FindCondition returns the condition of the given type, if present.
func (s *ChallengeInstanceStatus) FindCondition(condType string) *Condition {
	for i := range s.Conditions {
		if s.Conditions[i].Type == condType {
			return &s.Conditions[i]
		}
	}
	return nil
}

// SetCondition inserts or replaces the condition of the same Type, per the
// map-keyed-by-type discipline DESIGN.md adopts for status writes.
func (s *ChallengeInstanceStatus) SetCondition(c Condition) {
	for i := range s.Conditions {
		if s.Conditions[i].Type == c.Type {
			s.Conditions[i] = c
			return
		}
	}
	s.Conditions = append(s.Conditions, c)
}
