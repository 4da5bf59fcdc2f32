// Package render defines the machine-readable result shapes the CLI emits
// and serializes them as JSON, CBOR or msgpack.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the serialization of a structured result.
type Format int

const (
	FormatJSON Format = iota
	FormatCBOR
	FormatMsgpack
)

// ParseFormat resolves a --format flag value. The empty string means JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	case "msgpack":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want json, cbor or msgpack)", name)
	}
}

func (f Format) String() string {
	switch f {
	case FormatCBOR:
		return "cbor"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "json"
	}
}

// Binary reports whether the format is unsafe to print on a terminal.
func (f Format) Binary() bool { return f != FormatJSON }

var cborEnc = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err) // static options, cannot fail
	}
	return em
}()

// Marshal serializes v in the given format. JSON output is indented and
// newline-terminated for terminals; CBOR uses RFC 8949 core deterministic
// encoding so identical results are byte-identical.
func Marshal(f Format, v any) ([]byte, error) {
	switch f {
	case FormatCBOR:
		return cborEnc.Marshal(v)
	case FormatMsgpack:
		return msgpack.Marshal(v)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}
