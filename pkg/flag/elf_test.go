package flag

import (
	"bytes"
	"testing"
)

func TestGenerateElfExecutableHeader(t *testing.T) {
	flags := []string{
		"flag{a}",
		"flag{short}",
		"flag{this_is_a_longer_flag_for_testing}",
		"flag{🚩}",
	}

	for _, f := range flags {
		bin, err := GenerateElfExecutable(f)
		if err != nil {
			t.Fatalf("GenerateElfExecutable(%q) returned error: %v", f, err)
		}

		if !bytes.Equal(bin[0:4], []byte{0x7f, 'E', 'L', 'F'}) {
			t.Fatalf("%q: bad magic: % x", f, bin[0:4])
		}
		if bin[4] != 2 {
			t.Errorf("%q: class byte = %d, want 2", f, bin[4])
		}
		if bin[18] != 0x3e || bin[19] != 0x00 {
			t.Errorf("%q: machine field = %02x %02x, want 3e 00", f, bin[18], bin[19])
		}

		wantMin := 120 + len([]byte(f))
		if len(bin) < wantMin {
			t.Errorf("%q: length %d, want at least %d", f, len(bin), wantMin)
		}

		if !bytes.HasSuffix(bin, []byte(f)) {
			t.Errorf("%q: flag bytes not found verbatim at end of binary", f)
		}
	}
}

func TestGenerateElfExecutableEmptyFlag(t *testing.T) {
	if _, err := GenerateElfExecutable(""); err == nil {
		t.Fatal("expected error for empty flag")
	}
}
