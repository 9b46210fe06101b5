// Command crdgen prints the YAML CustomResourceDefinition manifests for
// Challenge, ChallengeInstanceClass and ChallengeInstance to stdout, one
// document per CRD. There is no code-generation toolchain wired into this
// repo, so the schemas are built by hand against the same
// apiextensions/v1 types `kubectl apply -f` expects; each top-level field
// is typed, and the nested spec/status bodies fall back to
// x-kubernetes-preserve-unknown-fields so the schema never drifts out of
// sync with api/v1 as fields are added there.
//
// Usage:
//
//	go run ./cmd/crdgen > config/crd/bases/berg.norelect.ch_challengeinstances.yaml
package main

import (
	"fmt"
	"os"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

func main() {
	crds := []apiextensionsv1.CustomResourceDefinition{
		crd("challenges", "Challenge", "ChallengeList", apiextensionsv1.NamespaceScoped, true),
		crd("challengeinstanceclasses", "ChallengeInstanceClass", "ChallengeInstanceClassList", apiextensionsv1.ClusterScoped, false),
		crd("challengeinstances", "ChallengeInstance", "ChallengeInstanceList", apiextensionsv1.ClusterScoped, true),
	}

	for i, c := range crds {
		out, err := yaml.Marshal(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal %s: %v\n", c.Name, err)
			os.Exit(1)
		}
		if i > 0 {
			fmt.Println("---")
		}
		os.Stdout.Write(out)
	}
}

const group = "berg.norelect.ch"

func crd(plural, kind, listKind string, scope apiextensionsv1.ResourceScope, withStatus bool) apiextensionsv1.CustomResourceDefinition {
	preserve := true
	schema := &apiextensionsv1.JSONSchemaProps{
		Type: "object",
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"spec": {
				Type:                   "object",
				XPreserveUnknownFields: &preserve,
			},
		},
	}
	if withStatus {
		schema.Properties["status"] = apiextensionsv1.JSONSchemaProps{
			Type:                   "object",
			XPreserveUnknownFields: &preserve,
		}
	}

	subresources := &apiextensionsv1.CustomResourceSubresources{}
	if withStatus {
		subresources.Status = &apiextensionsv1.CustomResourceSubresourceStatus{}
	}

	return apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apiextensions.k8s.io/v1",
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: plural + "." + group,
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:   plural,
				Kind:     kind,
				ListKind: listKind,
			},
			Scope: scope,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:         "v1",
					Served:       true,
					Storage:      true,
					Subresources: subresources,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: schema,
					},
				},
			},
		},
	}
}
