package codecs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mbase-io/mbase"
)

// tamperLast swaps the final character for a different one drawn from the
// same alphabet, preserving charset validity so only the checksum can object.
func tamperLast(t *testing.T, enc string, alphabet string) string {
	t.Helper()
	if enc == "" {
		t.Fatalf("nothing to tamper with")
	}
	last := enc[len(enc)-1]
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] != last {
			return enc[:len(enc)-1] + string(alphabet[i])
		}
	}
	t.Fatalf("alphabet has a single character")
	return ""
}

func TestBase58CheckDetectsTampering(t *testing.T) {
	c, err := Default().Get("base58check")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	payload := []byte("fund transfer")
	enc := c.Encode(payload)

	got, err := c.Decode(enc, mbase.Strict)
	if err != nil || !bytes.Equal(got, payload) {
		t.Fatalf("round trip: %x %v", got, err)
	}

	tampered := tamperLast(t, enc, "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")
	if _, err := c.Decode(tampered, mbase.Strict); !errors.Is(err, mbase.ErrChecksumMismatch) {
		t.Fatalf("tampered input: want checksum mismatch, got %v", err)
	}
}

func TestBech32DetectsTampering(t *testing.T) {
	reg := Default()
	for _, name := range []string{"bech32", "bech32m"} {
		c, err := reg.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		payload := []byte("settlement")
		enc := c.Encode(payload)

		got, derr := c.Decode(enc, mbase.Strict)
		if derr != nil || !bytes.Equal(got, payload) {
			t.Fatalf("%s round trip: %x %v", name, got, derr)
		}

		tampered := tamperLast(t, enc, "qpzry9x8gf2tvdw0s3jn54khce6mua7l")
		if _, derr := c.Decode(tampered, mbase.Strict); !errors.Is(derr, mbase.ErrChecksumMismatch) {
			t.Fatalf("%s tampered input: want checksum mismatch, got %v", name, derr)
		}
	}
}

func TestBech32LongPayloadRoundTrip(t *testing.T) {
	payload := make([]byte, 60)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	reg := Default()
	for _, name := range []string{"bech32", "bech32m"} {
		c, err := reg.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		enc := c.Encode(payload)
		// Past the BIP-173 90-character cap; decoding must not enforce it.
		if len(enc) <= 90 {
			t.Fatalf("%s: encoding unexpectedly short (%d chars)", name, len(enc))
		}
		got, derr := c.Decode(enc, mbase.Strict)
		if derr != nil || !bytes.Equal(got, payload) {
			t.Fatalf("%s: long round trip failed: %v", name, derr)
		}
	}

	// Variant discrimination holds for long strings too.
	std, _ := reg.Get("bech32")
	m, _ := reg.Get("bech32m")
	if _, err := m.Decode(std.Encode(payload), mbase.Strict); !errors.Is(err, mbase.ErrChecksumMismatch) {
		t.Fatalf("bech32m accepted a long bech32 string: %v", err)
	}
}

func TestBech32VariantsRejectEachOther(t *testing.T) {
	reg := Default()
	std, _ := reg.Get("bech32")
	m, _ := reg.Get("bech32m")
	payload := []byte("cross check")

	if _, err := m.Decode(std.Encode(payload), mbase.Strict); !errors.Is(err, mbase.ErrChecksumMismatch) {
		t.Fatalf("bech32m must reject a bech32 checksum, got %v", err)
	}
	if _, err := std.Decode(m.Encode(payload), mbase.Strict); !errors.Is(err, mbase.ErrChecksumMismatch) {
		t.Fatalf("bech32 must reject a bech32m checksum, got %v", err)
	}
}
