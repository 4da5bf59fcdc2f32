package util

import (
	"strings"
	"testing"
)

func TestDetectKey(t *testing.T) {
	k := DetectKey("SGVsbG8")
	if !strings.HasPrefix(k, "detect:") {
		t.Fatalf("missing keyspace prefix: %q", k)
	}
	if len(k) != len("detect:")+16 {
		t.Fatalf("unexpected key length: %q", k)
	}
	if k != DetectKey("SGVsbG8") {
		t.Fatalf("key not deterministic")
	}
	if k == DetectKey("SGVsbG9") {
		t.Fatalf("distinct inputs must produce distinct keys")
	}
}
