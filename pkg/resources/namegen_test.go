package resources

import "testing"

func TestGenerateNamespaceName(t *testing.T) {
	ownerID := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	want := "ci-nginx-a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	if got := GenerateNamespaceName("ci", "nginx", ownerID); got != want {
		t.Fatalf("GenerateNamespaceName() = %q, want %q", got, want)
	}
}

func TestGenerateNamespaceNameTruncatesChallengeName(t *testing.T) {
	ownerID := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	longName := "a-very-long-challenge-name-that-will-not-fit-within-the-limit"
	got := GenerateNamespaceName("ci", longName, ownerID)
	if len(got) > 63 {
		t.Fatalf("expected generated name to be <= 63 chars, got %d: %q", len(got), got)
	}
	if got[:3] != "ci-" {
		t.Fatalf("expected name to start with prefix, got %q", got)
	}
	suffix := "-" + ownerID
	if got[len(got)-len(suffix):] != suffix {
		t.Fatalf("expected name to end with owner id suffix, got %q", got)
	}
}
