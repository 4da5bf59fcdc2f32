package codecs

import (
	"errors"
	"testing"

	"github.com/mbase-io/mbase"
)

// catalogOrder is the full catalog in declaration order. Detection tie-breaks
// follow this order, so any reordering is a behavior change.
var catalogOrder = []string{
	"atbash", "base2", "base8", "base16lower", "base16upper",
	"base32lower", "base32upper", "base32padlower", "base32padupper",
	"base32hexlower", "base32hexupper", "base32hexpadlower", "base32hexpadupper",
	"zbase32", "crockford32", "base36lower", "base36upper", "base45",
	"base58btc", "base58flickr", "base58check", "base62",
	"base64", "base64pad", "base64url", "base64urlpad",
	"ascii85", "z85", "bech32", "bech32m",
	"morse", "rot13", "rot47", "a1z26", "rot18",
	"urlencoding", "quoted-printable",
}

func TestCatalogComplete(t *testing.T) {
	reg := Default()
	if reg.Len() != len(catalogOrder) {
		t.Fatalf("catalog has %d codecs, want %d", reg.Len(), len(catalogOrder))
	}
	for i, m := range reg.List() {
		if m.Name != catalogOrder[i] {
			t.Fatalf("catalog[%d] = %q, want %q", i, m.Name, catalogOrder[i])
		}
	}
}

func TestCatalogAliases(t *testing.T) {
	cases := map[string]string{
		"hex":       "base16lower",
		"base16":    "base16lower",
		"HEX":       "base16upper",
		"hexupper":  "base16upper",
		"base32":    "base32lower",
		"B32":       "base32upper",
		"base58":    "base58btc",
		"b58check":  "base58check",
		"z32":       "zbase32",
		"crockford": "crockford32",
		"base36":    "base36lower",
		"B36":       "base36upper",
		"b64":       "base64",
		"url64":     "base64url",
		"base85":    "ascii85",
		"binary":    "base2",
		"oct":       "base8",
		"qp":        "quoted-printable",
		"url":       "urlencoding",
		"morsecode": "morse",
		"rot-18":    "rot18",
	}
	reg := Default()
	for alias, want := range cases {
		c, err := reg.Get(alias)
		if err != nil {
			t.Fatalf("Get(%q): %v", alias, err)
		}
		if got := c.Meta().Name; got != want {
			t.Fatalf("Get(%q) resolved %q, want %q", alias, got, want)
		}
	}

	var nf *mbase.CodecNotFoundError
	if _, err := reg.Get("base99"); !errors.As(err, &nf) {
		t.Fatalf("want CodecNotFoundError, got %v", err)
	}
}

func TestCatalogMultibaseCodes(t *testing.T) {
	want := map[rune]string{
		'0': "base2",
		'7': "base8",
		'f': "base16lower",
		'F': "base16upper",
		'b': "base32lower",
		'B': "base32upper",
		'c': "base32padlower",
		'C': "base32padupper",
		'v': "base32hexlower",
		'V': "base32hexupper",
		't': "base32hexpadlower",
		'T': "base32hexpadupper",
		'h': "zbase32",
		'k': "base36lower",
		'K': "base36upper",
		'z': "base58btc",
		'Z': "base58flickr",
		'm': "base64",
		'M': "base64pad",
		'u': "base64url",
		'U': "base64urlpad",
	}
	got := Default().MultibaseMap()
	if len(got) != len(want) {
		t.Fatalf("multibase map has %d entries, want %d", len(got), len(want))
	}
	for code, name := range want {
		if got[code] != name {
			t.Fatalf("code %q maps to %q, want %q", code, got[code], name)
		}
	}
}

func TestEmptyInputSafety(t *testing.T) {
	for _, c := range All() {
		name := c.Meta().Name

		// Encode is total: the empty sequence round-trips like any other.
		// Checksum codecs legitimately emit a non-empty encoding for it.
		enc := c.Encode(nil)
		decoded, err := c.Decode(enc, mbase.Strict)
		if err != nil {
			t.Fatalf("%s: Decode(Encode(nil)): %v", name, err)
		}
		if len(decoded) != 0 {
			t.Fatalf("%s: empty round trip produced %x", name, decoded)
		}

		cand := c.DetectScore("")
		if cand.Confidence != 0 {
			t.Fatalf("%s: empty input scored %v", name, cand.Confidence)
		}
		if len(cand.Reasons) != 1 || cand.Reasons[0] != "empty input" {
			t.Fatalf("%s: empty input reasons %v", name, cand.Reasons)
		}
	}
}

func TestDetectScoreBounds(t *testing.T) {
	inputs := []string{
		"SGVsbG8", "48656c6c6f", "zzzzz", "... --- ...", "%41%42",
		"91JPRV3F", "!!! not base anything !!!", "0x1234", "8-5-12",
	}
	for _, c := range All() {
		for _, in := range inputs {
			cand := c.DetectScore(in)
			if cand.Confidence < 0 || cand.Confidence > 1 {
				t.Fatalf("%s: confidence %v out of [0,1] for %q",
					c.Meta().Name, cand.Confidence, in)
			}
		}
	}
}
