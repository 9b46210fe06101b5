//go:build !ignore_autogenerated

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	runtime "k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto copies the receiver into out.
func (in *AttachmentSpec) DeepCopyInto(out *AttachmentSpec) {
	*out = *in
	if in.DownloadImageInsecure != nil {
		out.DownloadImageInsecure = new(bool)
		*out.DownloadImageInsecure = *in.DownloadImageInsecure
	}
}

// DeepCopy returns a deep copy.
func (in *AttachmentSpec) DeepCopy() *AttachmentSpec {
	if in == nil {
		return nil
	}
	out := new(AttachmentSpec)
	in.DeepCopyInto(out)
	return out
}

func (in *ResourceSpec) DeepCopyInto(out *ResourceSpec) {
	*out = *in
}

func (in *ResourceSpec) DeepCopy() *ResourceSpec {
	if in == nil {
		return nil
	}
	out := new(ResourceSpec)
	in.DeepCopyInto(out)
	return out
}

func (in *EnvFlag) DeepCopyInto(out *EnvFlag) { *out = *in }
func (in *EnvFlag) DeepCopy() *EnvFlag {
	if in == nil {
		return nil
	}
	out := new(EnvFlag)
	in.DeepCopyInto(out)
	return out
}

func (in *ContentFlag) DeepCopyInto(out *ContentFlag) {
	*out = *in
	if in.Mode != nil {
		out.Mode = new(int32)
		*out.Mode = *in.Mode
	}
}

func (in *ContentFlag) DeepCopy() *ContentFlag {
	if in == nil {
		return nil
	}
	out := new(ContentFlag)
	in.DeepCopyInto(out)
	return out
}

func (in *ExecutableFlag) DeepCopyInto(out *ExecutableFlag) {
	*out = *in
	if in.Mode != nil {
		out.Mode = new(int32)
		*out.Mode = *in.Mode
	}
}

func (in *ExecutableFlag) DeepCopy() *ExecutableFlag {
	if in == nil {
		return nil
	}
	out := new(ExecutableFlag)
	in.DeepCopyInto(out)
	return out
}

func (in *DynamicFlag) DeepCopyInto(out *DynamicFlag) {
	*out = *in
	if in.Env != nil {
		out.Env = new(EnvFlag)
		in.Env.DeepCopyInto(out.Env)
	}
	if in.Content != nil {
		out.Content = new(ContentFlag)
		in.Content.DeepCopyInto(out.Content)
	}
	if in.Executable != nil {
		out.Executable = new(ExecutableFlag)
		in.Executable.DeepCopyInto(out.Executable)
	}
}

func (in *DynamicFlag) DeepCopy() *DynamicFlag {
	if in == nil {
		return nil
	}
	out := new(DynamicFlag)
	in.DeepCopyInto(out)
	return out
}

func (in *PortSpec) DeepCopyInto(out *PortSpec) { *out = *in }
func (in *PortSpec) DeepCopy() *PortSpec {
	if in == nil {
		return nil
	}
	out := new(PortSpec)
	in.DeepCopyInto(out)
	return out
}

func (in *ContainerSpec) DeepCopyInto(out *ContainerSpec) {
	*out = *in
	if in.Environment != nil {
		out.Environment = make(map[string]string, len(in.Environment))
		for k, v := range in.Environment {
			out.Environment[k] = v
		}
	}
	if in.Ports != nil {
		out.Ports = make([]PortSpec, len(in.Ports))
		copy(out.Ports, in.Ports)
	}
	if in.DynamicFlag != nil {
		out.DynamicFlag = new(DynamicFlag)
		in.DynamicFlag.DeepCopyInto(out.DynamicFlag)
	}
	if in.ResourceRequests != nil {
		out.ResourceRequests = new(ResourceSpec)
		in.ResourceRequests.DeepCopyInto(out.ResourceRequests)
	}
	if in.ResourceLimits != nil {
		out.ResourceLimits = new(ResourceSpec)
		in.ResourceLimits.DeepCopyInto(out.ResourceLimits)
	}
	if in.AdditionalCapabilities != nil {
		out.AdditionalCapabilities = make([]string, len(in.AdditionalCapabilities))
		copy(out.AdditionalCapabilities, in.AdditionalCapabilities)
	}
	if in.ReadinessProbe != nil {
		out.ReadinessProbe = in.ReadinessProbe.DeepCopy()
	}
	if in.LivenessProbe != nil {
		out.LivenessProbe = in.LivenessProbe.DeepCopy()
	}
}

func (in *ContainerSpec) DeepCopy() *ContainerSpec {
	if in == nil {
		return nil
	}
	out := new(ContainerSpec)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeSpec) DeepCopyInto(out *ChallengeSpec) {
	*out = *in
	if in.StaticValue != nil {
		out.StaticValue = new(float64)
		*out.StaticValue = *in.StaticValue
	}
	if in.Categories != nil {
		out.Categories = make([]string, len(in.Categories))
		copy(out.Categories, in.Categories)
	}
	if in.Tags != nil {
		out.Tags = make([]string, len(in.Tags))
		copy(out.Tags, in.Tags)
	}
	if in.Containers != nil {
		out.Containers = make([]ContainerSpec, len(in.Containers))
		for i := range in.Containers {
			in.Containers[i].DeepCopyInto(&out.Containers[i])
		}
	}
	if in.Attachments != nil {
		out.Attachments = make([]AttachmentSpec, len(in.Attachments))
		for i := range in.Attachments {
			in.Attachments[i].DeepCopyInto(&out.Attachments[i])
		}
	}
}

func (in *ChallengeSpec) DeepCopy() *ChallengeSpec {
	if in == nil {
		return nil
	}
	out := new(ChallengeSpec)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeStatus) DeepCopyInto(out *ChallengeStatus) {
	*out = *in
	if in.Conditions != nil {
		out.Conditions = make([]metav1.Condition, len(in.Conditions))
		for i := range in.Conditions {
			in.Conditions[i].DeepCopyInto(&out.Conditions[i])
		}
	}
}

func (in *ChallengeStatus) DeepCopy() *ChallengeStatus {
	if in == nil {
		return nil
	}
	out := new(ChallengeStatus)
	in.DeepCopyInto(out)
	return out
}

func (in *Challenge) DeepCopyInto(out *Challenge) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

func (in *Challenge) DeepCopy() *Challenge {
	if in == nil {
		return nil
	}
	out := new(Challenge)
	in.DeepCopyInto(out)
	return out
}

func (in *Challenge) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

func (in *ChallengeList) DeepCopyInto(out *ChallengeList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Challenge, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *ChallengeList) DeepCopy() *ChallengeList {
	if in == nil {
		return nil
	}
	out := new(ChallengeList)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// -- ChallengeInstance --

func (in *ChallengeRef) DeepCopyInto(out *ChallengeRef) { *out = *in }
func (in *ChallengeRef) DeepCopy() *ChallengeRef {
	if in == nil {
		return nil
	}
	out := new(ChallengeRef)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstanceSpec) DeepCopyInto(out *ChallengeInstanceSpec) {
	*out = *in
	out.ChallengeRef = in.ChallengeRef
}

func (in *ChallengeInstanceSpec) DeepCopy() *ChallengeInstanceSpec {
	if in == nil {
		return nil
	}
	out := new(ChallengeInstanceSpec)
	in.DeepCopyInto(out)
	return out
}

func (in *ServiceEndpoint) DeepCopyInto(out *ServiceEndpoint) {
	*out = *in
	if in.TLS != nil {
		out.TLS = new(bool)
		*out.TLS = *in.TLS
	}
}

func (in *ServiceEndpoint) DeepCopy() *ServiceEndpoint {
	if in == nil {
		return nil
	}
	out := new(ServiceEndpoint)
	in.DeepCopyInto(out)
	return out
}

func (in *Condition) DeepCopyInto(out *Condition) {
	*out = *in
	if in.LastTransitionTime != nil {
		out.LastTransitionTime = in.LastTransitionTime.DeepCopy()
	}
}

func (in *Condition) DeepCopy() *Condition {
	if in == nil {
		return nil
	}
	out := new(Condition)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstanceStatus) DeepCopyInto(out *ChallengeInstanceStatus) {
	*out = *in
	if in.Services != nil {
		out.Services = make([]ServiceEndpoint, len(in.Services))
		for i := range in.Services {
			in.Services[i].DeepCopyInto(&out.Services[i])
		}
	}
	if in.StartedAt != nil {
		out.StartedAt = in.StartedAt.DeepCopy()
	}
	if in.ReadyAt != nil {
		out.ReadyAt = in.ReadyAt.DeepCopy()
	}
	if in.TerminatedAt != nil {
		out.TerminatedAt = in.TerminatedAt.DeepCopy()
	}
	if in.ExpiresAt != nil {
		out.ExpiresAt = in.ExpiresAt.DeepCopy()
	}
	if in.Conditions != nil {
		out.Conditions = make([]Condition, len(in.Conditions))
		for i := range in.Conditions {
			in.Conditions[i].DeepCopyInto(&out.Conditions[i])
		}
	}
}

func (in *ChallengeInstanceStatus) DeepCopy() *ChallengeInstanceStatus {
	if in == nil {
		return nil
	}
	out := new(ChallengeInstanceStatus)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstance) DeepCopyInto(out *ChallengeInstance) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

func (in *ChallengeInstance) DeepCopy() *ChallengeInstance {
	if in == nil {
		return nil
	}
	out := new(ChallengeInstance)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstance) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

func (in *ChallengeInstanceList) DeepCopyInto(out *ChallengeInstanceList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]ChallengeInstance, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *ChallengeInstanceList) DeepCopy() *ChallengeInstanceList {
	if in == nil {
		return nil
	}
	out := new(ChallengeInstanceList)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstanceList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// -- ChallengeInstanceClass --

func (in *GatewayConfig) DeepCopyInto(out *GatewayConfig) { *out = *in }
func (in *GatewayConfig) DeepCopy() *GatewayConfig {
	if in == nil {
		return nil
	}
	out := new(GatewayConfig)
	in.DeepCopyInto(out)
	return out
}

func (in *ResourceDefaults) DeepCopyInto(out *ResourceDefaults) { *out = *in }
func (in *ResourceDefaults) DeepCopy() *ResourceDefaults {
	if in == nil {
		return nil
	}
	out := new(ResourceDefaults)
	in.DeepCopyInto(out)
	return out
}

func (in *NetworkConfig) DeepCopyInto(out *NetworkConfig) { *out = *in }
func (in *NetworkConfig) DeepCopy() *NetworkConfig {
	if in == nil {
		return nil
	}
	out := new(NetworkConfig)
	in.DeepCopyInto(out)
	return out
}

func (in *ImagePullConfig) DeepCopyInto(out *ImagePullConfig) {
	*out = *in
	if in.SecretNames != nil {
		out.SecretNames = make([]string, len(in.SecretNames))
		copy(out.SecretNames, in.SecretNames)
	}
}

func (in *ImagePullConfig) DeepCopy() *ImagePullConfig {
	if in == nil {
		return nil
	}
	out := new(ImagePullConfig)
	in.DeepCopyInto(out)
	return out
}

func (in *PodSecurityContextConfig) DeepCopyInto(out *PodSecurityContextConfig) {
	*out = *in
	if in.RunAsNonRoot != nil {
		out.RunAsNonRoot = new(bool)
		*out.RunAsNonRoot = *in.RunAsNonRoot
	}
	if in.FSGroup != nil {
		out.FSGroup = new(int64)
		*out.FSGroup = *in.FSGroup
	}
	if in.SupplementalGroups != nil {
		out.SupplementalGroups = make([]int64, len(in.SupplementalGroups))
		copy(out.SupplementalGroups, in.SupplementalGroups)
	}
}

func (in *PodSecurityContextConfig) DeepCopy() *PodSecurityContextConfig {
	if in == nil {
		return nil
	}
	out := new(PodSecurityContextConfig)
	in.DeepCopyInto(out)
	return out
}

func (in *SecurityConfig) DeepCopyInto(out *SecurityConfig) {
	*out = *in
	if in.PodSecurityContext != nil {
		out.PodSecurityContext = new(PodSecurityContextConfig)
		in.PodSecurityContext.DeepCopyInto(out.PodSecurityContext)
	}
}

func (in *SecurityConfig) DeepCopy() *SecurityConfig {
	if in == nil {
		return nil
	}
	out := new(SecurityConfig)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstanceClassSpec) DeepCopyInto(out *ChallengeInstanceClassSpec) {
	*out = *in
	out.Gateway = in.Gateway
	if in.DefaultResources != nil {
		out.DefaultResources = new(ResourceDefaults)
		in.DefaultResources.DeepCopyInto(out.DefaultResources)
	}
	if in.Network != nil {
		out.Network = new(NetworkConfig)
		in.Network.DeepCopyInto(out.Network)
	}
	if in.ImagePull != nil {
		out.ImagePull = new(ImagePullConfig)
		in.ImagePull.DeepCopyInto(out.ImagePull)
	}
	if in.Security != nil {
		out.Security = new(SecurityConfig)
		in.Security.DeepCopyInto(out.Security)
	}
}

func (in *ChallengeInstanceClassSpec) DeepCopy() *ChallengeInstanceClassSpec {
	if in == nil {
		return nil
	}
	out := new(ChallengeInstanceClassSpec)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstanceClass) DeepCopyInto(out *ChallengeInstanceClass) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

func (in *ChallengeInstanceClass) DeepCopy() *ChallengeInstanceClass {
	if in == nil {
		return nil
	}
	out := new(ChallengeInstanceClass)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstanceClass) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

func (in *ChallengeInstanceClassList) DeepCopyInto(out *ChallengeInstanceClassList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]ChallengeInstanceClass, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *ChallengeInstanceClassList) DeepCopy() *ChallengeInstanceClassList {
	if in == nil {
		return nil
	}
	out := new(ChallengeInstanceClassList)
	in.DeepCopyInto(out)
	return out
}

func (in *ChallengeInstanceClassList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}
