package flag

import (
	"strings"
	"testing"
)

func TestSubstituteEntropy(t *testing.T) {
	path := "/home/ctf/{entropy}/flag.txt"
	result := SubstituteEntropy(path)

	if !strings.HasPrefix(result, "/home/ctf/") {
		t.Fatalf("expected result to keep prefix, got %q", result)
	}
	if strings.Contains(result, "{entropy}") {
		t.Fatalf("expected placeholder to be removed, got %q", result)
	}

	parts := strings.Split(result, "/")
	entropyPart := parts[3]
	if len(entropyPart) != 12 {
		t.Fatalf("expected 12 hex chars, got %q (len %d)", entropyPart, len(entropyPart))
	}
	for _, c := range entropyPart {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("expected lowercase hex digit, got %q in %q", c, entropyPart)
		}
	}
}

func TestSubstituteEntropyNoPlaceholder(t *testing.T) {
	path := "/home/ctf/flag.txt"
	if got := SubstituteEntropy(path); got != path {
		t.Fatalf("expected path unchanged, got %q", got)
	}
}
