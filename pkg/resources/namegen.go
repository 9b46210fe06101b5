// Package resources builds the Kubernetes (and Cilium/Gateway API) child
// objects that realise one ChallengeInstance: namespace, network policy,
// services, routes, disruption budget, configmaps, and deployment.
package resources

import "fmt"

// GenerateNamespaceName derives the per-instance namespace name from the
// configured prefix, the Challenge name, and the instance owner ID,
// truncating challengeName as needed to keep the result within the
// Kubernetes 63-character name limit. The owner ID and prefix are never
// truncated: they are what keeps the name unique and attributable.
func GenerateNamespaceName(prefix, challengeName, ownerID string) string {
	maxChallengeNameLen := 63 - (len(prefix) + len(ownerID) + 2)
	if len(challengeName) > maxChallengeNameLen {
		challengeName = challengeName[:maxChallengeNameLen]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, challengeName, ownerID)
}
