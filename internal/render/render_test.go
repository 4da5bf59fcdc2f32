package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":        FormatJSON,
		"json":    FormatJSON,
		"JSON":    FormatJSON,
		"cbor":    FormatCBOR,
		"msgpack": FormatMsgpack,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatalf("ParseFormat must reject unknown formats")
	}
}

func TestFormatBinary(t *testing.T) {
	if FormatJSON.Binary() {
		t.Fatalf("JSON is text")
	}
	if !FormatCBOR.Binary() || !FormatMsgpack.Binary() {
		t.Fatalf("CBOR and msgpack are binary")
	}
}

func TestMarshalJSONShape(t *testing.T) {
	b, err := Marshal(FormatJSON, VerifyResult{SchemaVersion: 1, Valid: true, Codec: "base64"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.HasSuffix(b, []byte("\n")) {
		t.Fatalf("JSON output must end with a newline")
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"schema_version", "valid", "codec", "error"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %v", key, m)
		}
	}
	if m["error"] != nil {
		t.Fatalf("empty error must render as null, got %v", m["error"])
	}
}

func TestMarshalCBORDeterministic(t *testing.T) {
	v := DetectResult{SchemaVersion: 1, InputPreview: "SGVsbG8"}
	a, err := Marshal(FormatCBOR, v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	b, err := Marshal(FormatCBOR, v)
	if err != nil || !bytes.Equal(a, b) {
		t.Fatalf("CBOR encoding not deterministic (%v)", err)
	}
}

func TestMarshalMsgpackRoundTrip(t *testing.T) {
	in := DecodeResult{Codec: "hex", Input: "48", OutputLength: 1, OutputHex: "48"}
	b, err := Marshal(FormatMsgpack, in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out DecodeResult
	if err := msgpack.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Codec != in.Codec || out.Input != in.Input || out.OutputHex != in.OutputHex {
		t.Fatalf("round trip: %+v", out)
	}
}
