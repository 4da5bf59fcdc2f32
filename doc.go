// Package mbase converts byte sequences to and from dozens of text encodings
// (base-N families, ciphers, telegraph codes, internet standards) through one
// uniform codec contract, and can guess which encoding an unlabeled string
// uses.
//
// Components:
//   - Codec: the capability contract every encoding variant implements
//     (metadata, encode, decode, validate, detection scoring).
//   - Registry: immutable catalog of codec instances, indexed by name and
//     alias, with uniqueness invariants enforced at construction.
//   - Engine: heuristic detection over a registry, producing ranked
//     DetectCandidate values.
//
// The built-in catalog lives in the codecs subpackage; codecs.Default()
// returns the shared registry. Every codec instance is stateless, so a
// single registry may be shared by any number of goroutines without
// coordination.
//
// Typical use:
//
//	reg := codecs.Default()
//	c, err := reg.Get("base64")
//	text := c.Encode(payload)
//	back, err := c.Decode(text, mbase.Strict)
//
//	eng := mbase.NewEngine(reg, mbase.EngineOptions{})
//	ranked := eng.Detect(context.Background(), "SGVsbG8", 5)
package mbase
