package timeout

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"2h", 2 * time.Hour},
		{"30m", 30 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"1h30m15s", 5415 * time.Second},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"invalid", "2x", "2", ""} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected an error, got nil", in)
		}
	}
}

func TestCalculateExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := CalculateExpiry("2h", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := now.Add(2 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("CalculateExpiry = %v, want %v", got, want)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !IsExpired(now.Add(-time.Minute), now) {
		t.Error("expected past timestamp to be expired")
	}
	if IsExpired(now.Add(time.Minute), now) {
		t.Error("expected future timestamp to not be expired")
	}
}
