// Package codecs holds the built-in codec catalog: the RFC 4648 families,
// the big-integer and checksum bases, the 85-character encodings and the
// classic text ciphers, all behind the mbase.Codec contract.
//
// All returns the catalog in declaration order. That order is load-bearing:
// it doubles as the tie-break order when detection ranks candidates with
// equal confidence.
package codecs

import (
	"sync"

	"github.com/mbase-io/mbase"
)

// All returns every built-in codec in declaration order.
func All() []mbase.Codec {
	return []mbase.Codec{
		atbashCodec{},
		base2,
		base8,
		base16Lower,
		base16Upper,
		b32Lower,
		b32Upper,
		b32PadLower,
		b32PadUpper,
		b32HexLower,
		b32HexUpper,
		b32HexPadLower,
		b32HexPadUpper,
		zbase32Codec{},
		crockford32Codec{},
		base36Lower,
		base36Upper,
		base45Codec{},
		base58BTC,
		base58Flickr,
		base58CheckCodec{},
		base62Codec{},
		b64Std,
		b64Pad,
		b64URL,
		b64URLPad,
		ascii85Codec{},
		z85Codec{},
		bech32Std,
		bech32M,
		morseCodec{},
		rot13Codec{},
		rot47Codec{},
		a1z26Codec{},
		rot18Codec{},
		urlencodingCodec{},
		quotedPrintableCodec{},
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *mbase.Registry
)

// Default returns the shared registry over All. It is built once per process
// and panics if the catalog violates a registry invariant, which indicates a
// programming error rather than a runtime condition.
func Default() *mbase.Registry {
	defaultOnce.Do(func() {
		defaultReg = mbase.NewRegistry(All()...)
	})
	return defaultReg
}
