// Package config loads the controller's environment-driven configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the process-wide configuration for the ChallengeInstance
// controller, populated once at startup from the environment.
type Config struct {
	ChallengeNamespace string
	ChallengeDomain    string
	ChallengeHTTPPort  uint16
	ChallengeTLSPort   uint16

	GatewayName               string
	GatewayNamespace          string
	ChallengeHTTPListenerName string
	ChallengeTLSListenerName  string

	DefaultTimeout          string
	DefaultCPULimit         string
	DefaultCPURequest       string
	DefaultMemoryLimit      string
	DefaultMemoryRequest    string
	DefaultEgressBandwidth  string
	DefaultIngressBandwidth string

	ImagePullPolicy          string
	PullSecretName           string
	DefaultRuntimeClassName  string
	AdditionalHeadlessService bool

	// DefaultInstanceClass names the ChallengeInstanceClass used when an
	// instance does not set spec.instanceClass.
	DefaultInstanceClass string
	// NamespacePrefix is prepended to every generated instance namespace name.
	NamespacePrefix string
}

// FromEnv reads the controller configuration from the process environment,
// applying the same defaults as the rest of the ambient stack. CHALLENGE_DOMAIN
// has no default: the controller cannot mint public hostnames without it.
func FromEnv() (Config, error) {
	domain := os.Getenv("CHALLENGE_DOMAIN")
	if domain == "" {
		return Config{}, fmt.Errorf("CHALLENGE_DOMAIN required")
	}

	httpPort, err := parsePort("CHALLENGE_HTTP_PORT", "80")
	if err != nil {
		return Config{}, err
	}
	tlsPort, err := parsePort("CHALLENGE_TLS_PORT", "443")
	if err != nil {
		return Config{}, err
	}

	headless, _ := strconv.ParseBool(getEnv("CHALLENGE_ADDITIONAL_HEADLESS_SERVICE", "false"))

	return Config{
		ChallengeNamespace: getEnv("CHALLENGE_NAMESPACE", "berg"),
		ChallengeDomain:    domain,
		ChallengeHTTPPort:  httpPort,
		ChallengeTLSPort:   tlsPort,

		GatewayName:               getEnv("GATEWAY_NAME", "berg-gateway"),
		GatewayNamespace:          getEnv("GATEWAY_NAMESPACE", "berg"),
		ChallengeHTTPListenerName: getEnv("CHALLENGE_HTTP_LISTENER_NAME", "http"),
		ChallengeTLSListenerName:  getEnv("CHALLENGE_TLS_LISTENER_NAME", "tls"),

		DefaultTimeout:          getEnv("CHALLENGE_INSTANCE_TIMEOUT", "2h"),
		DefaultCPULimit:         getEnv("CHALLENGE_CPU_LIMIT", "1000m"),
		DefaultCPURequest:       getEnv("CHALLENGE_CPU_REQUEST", "100m"),
		DefaultMemoryLimit:      getEnv("CHALLENGE_MEMORY_LIMIT", "512Mi"),
		DefaultMemoryRequest:    getEnv("CHALLENGE_MEMORY_REQUEST", "128Mi"),
		DefaultEgressBandwidth:  getEnv("CHALLENGE_EGRESS_BANDWIDTH", "10M"),
		DefaultIngressBandwidth: getEnv("CHALLENGE_INGRESS_BANDWIDTH", "10M"),

		ImagePullPolicy:           getEnv("CHALLENGE_IMAGE_PULL_POLICY", "IfNotPresent"),
		PullSecretName:            os.Getenv("PULL_SECRET_NAME"),
		DefaultRuntimeClassName:   os.Getenv("CHALLENGE_RUNTIME_CLASS_NAME"),
		AdditionalHeadlessService: headless,

		DefaultInstanceClass: os.Getenv("DEFAULT_INSTANCE_CLASS"),
		NamespacePrefix:      getEnv("NAMESPACE_PREFIX", "ci"),
	}, nil
}

func parsePort(key, defaultValue string) (uint16, error) {
	raw := getEnv(key, defaultValue)
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return uint16(v), nil
}

// getEnv gets an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
