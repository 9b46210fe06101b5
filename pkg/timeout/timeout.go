// Package timeout parses the ChallengeInstance timeout grammar and derives
// expiry timestamps from it.
package timeout

import (
	"fmt"
	"time"
)

// Parse reads a timeout string of the form "([0-9]+h)?([0-9]+m)?([0-9]+s)?"
// and returns the summed duration. Groups may repeat in any order and any
// subset may be omitted, but every run of digits must be followed by one of
// h/m/s, and the empty string is rejected.
func Parse(s string) (time.Duration, error) {
	// maxSeconds bounds the accumulated count so that the final
	// multiplication by time.Second cannot silently overflow the int64
	// nanoseconds time.Duration is stored as.
	const maxSeconds = int64(time.Duration(1<<63-1) / time.Second)

	var totalSeconds int64
	var num string

	addSeconds := func(n int64) error {
		if n > maxSeconds-totalSeconds {
			return fmt.Errorf("timeout too large: %s", s)
		}
		totalSeconds += n
		return nil
	}

	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			num += string(ch)
		case num != "":
			var n int64
			if _, err := fmt.Sscanf(num, "%d", &n); err != nil {
				return 0, fmt.Errorf("invalid number: %s", num)
			}
			var unitSeconds int64
			switch ch {
			case 'h':
				unitSeconds = 3600
			case 'm':
				unitSeconds = 60
			case 's':
				unitSeconds = 1
			default:
				return 0, fmt.Errorf("invalid time unit: %c", ch)
			}
			if n > maxSeconds/unitSeconds {
				return 0, fmt.Errorf("timeout too large: %s", s)
			}
			if err := addSeconds(n * unitSeconds); err != nil {
				return 0, err
			}
			num = ""
		default:
			return 0, fmt.Errorf("invalid time unit: %c", ch)
		}
	}

	if num != "" {
		return 0, fmt.Errorf("timeout string must end with a unit (h/m/s)")
	}
	if totalSeconds <= 0 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	return time.Duration(totalSeconds) * time.Second, nil
}

// CalculateExpiry parses timeoutStr and returns now plus the parsed
// duration.
func CalculateExpiry(timeoutStr string, now time.Time) (time.Time, error) {
	d, err := Parse(timeoutStr)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(d), nil
}

// IsExpired reports whether now is after expiresAt.
func IsExpired(expiresAt time.Time, now time.Time) bool {
	return now.After(expiresAt)
}
