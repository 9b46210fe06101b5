package resources

import (
	berg "github.com/norelect/berg-challenge-controller/api/v1"
)

const (
	LabelManagedBy    = "app.kubernetes.io/managed-by"
	LabelComponent     = "app.kubernetes.io/component"
	LabelChallenge     = "berg.norelect.ch/challenge"
	LabelOwnerID       = "berg.norelect.ch/owner-id"
	LabelInstanceID    = "berg.norelect.ch/instance-id"
	LabelContainer     = "berg.norelect.ch/container"
	LabelChallengeNS   = "berg.norelect.ch/challenge-namespace"

	ManagedByValue = "berg"
)

// CommonLabels returns the label set shared by every child resource of an
// instance.
func CommonLabels(instance *berg.ChallengeInstance) map[string]string {
	labels := map[string]string{
		LabelManagedBy: ManagedByValue,
		LabelComponent: "challenge",
		LabelChallenge: instance.Spec.ChallengeRef.Name,
		LabelOwnerID:   instance.Spec.OwnerID,
	}
	if instance.Status.InstanceID != "" {
		labels[LabelInstanceID] = instance.Status.InstanceID
	}
	return labels
}

// NamespaceLabels extends CommonLabels with the challenge-namespace label
// carried only on the instance's namespace object.
func NamespaceLabels(instance *berg.ChallengeInstance, challengeNamespace string) map[string]string {
	labels := CommonLabels(instance)
	ns := instance.Spec.ChallengeRef.Namespace
	if ns == "" {
		ns = challengeNamespace
	}
	labels[LabelChallengeNS] = ns
	return labels
}

// PodLabels extends CommonLabels with the per-container label applied to
// pod templates.
func PodLabels(instance *berg.ChallengeInstance, hostname string) map[string]string {
	labels := CommonLabels(instance)
	labels[LabelContainer] = hostname
	return labels
}

// PodSelectorLabels is the minimal, stable label set used to select pods of
// one container across deployment/service/PDB: the container label alone,
// which PodLabels also sets. It intentionally omits owner-id/instance-id so
// the selector survives exactly as built across reconciles.
func PodSelectorLabels(hostname string) map[string]string {
	return map[string]string{
		LabelContainer: hostname,
	}
}
