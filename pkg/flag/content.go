package flag

import (
	"fmt"
	"path"

	corev1 "k8s.io/api/core/v1"
)

const (
	contentVolumeName    = "flag-content"
	executableVolumeName = "flag-executable"

	defaultContentMode    int32 = 0o444
	defaultExecutableMode int32 = 0o555
)

// BuildContentVolumeMount expands the entropy placeholder in rawPath and
// returns the Volume/VolumeMount pair that exposes the flag-content
// configmap's "content" key read-only at the resulting path.
func BuildContentVolumeMount(rawPath string, mode *int32) (corev1.Volume, corev1.VolumeMount, error) {
	return buildVolumeMount(contentVolumeName, "content", rawPath, mode, defaultContentMode)
}

// BuildExecutableVolumeMount expands the entropy placeholder in rawPath and
// returns the Volume/VolumeMount pair that exposes the flag-executable
// configmap's "executable" key read-only at the resulting path.
func BuildExecutableVolumeMount(rawPath string, mode *int32) (corev1.Volume, corev1.VolumeMount, error) {
	return buildVolumeMount(executableVolumeName, "executable", rawPath, mode, defaultExecutableMode)
}

func buildVolumeMount(volumeName, key, rawPath string, mode *int32, fallbackMode int32) (corev1.Volume, corev1.VolumeMount, error) {
	expandedPath := SubstituteEntropy(rawPath)
	filename := path.Base(expandedPath)
	if filename == "." || filename == "/" {
		return corev1.Volume{}, corev1.VolumeMount{}, fmt.Errorf("flag: invalid path %q", rawPath)
	}

	itemMode := mode
	defaultMode := fallbackMode
	if mode != nil {
		defaultMode = *mode
	}

	volume := corev1.Volume{
		Name: volumeName,
		VolumeSource: corev1.VolumeSource{
			ConfigMap: &corev1.ConfigMapVolumeSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: volumeName},
				Items: []corev1.KeyToPath{{
					Key:  key,
					Path: filename,
					Mode: itemMode,
				}},
				DefaultMode: &defaultMode,
			},
		},
	}

	mount := corev1.VolumeMount{
		Name:      volumeName,
		MountPath: expandedPath,
		SubPath:   filename,
		ReadOnly:  true,
	}

	return volume, mount, nil
}
