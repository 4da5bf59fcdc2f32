package codecs

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/mbase-io/mbase"
)

const (
	base58BTCAlphabet    = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	base58FlickrAlphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
)

type base58Codec struct {
	meta  mbase.Meta
	alpha *base58.Alphabet
}

var base58BTC = base58Codec{
	meta: mbase.Meta{
		Name:          "base58btc",
		Aliases:       []string{"base58", "b58"},
		Alphabet:      base58BTCAlphabet,
		MultibaseCode: 'z',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseSensitive,
		Description:   "Base58 Bitcoin alphabet",
	},
	alpha: base58.BTCAlphabet,
}

var base58Flickr = base58Codec{
	meta: mbase.Meta{
		Name:          "base58flickr",
		Alphabet:      base58FlickrAlphabet,
		MultibaseCode: 'Z',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseSensitive,
		Description:   "Base58 Flickr alphabet",
	},
	alpha: base58.FlickrAlphabet,
}

func (c base58Codec) Meta() mbase.Meta { return c.meta }

func (c base58Codec) Encode(src []byte) string {
	return base58.EncodeAlphabet(src, c.alpha)
}

func (c base58Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	return decodeBase58(cleaned, c.meta.Alphabet, c.alpha)
}

func (c base58Codec) Validate(input string, mode mbase.Mode) error {
	return mbase.ValidateAlphabet(input, c.meta.Alphabet, mode)
}

func (c base58Codec) DetectScore(input string) mbase.DetectCandidate {
	return detectBase58(input, c.meta.Name, c.meta.MultibaseCode, c.meta.Alphabet)
}

// base58CheckCodec appends a 4-byte double-SHA256 checksum before encoding,
// the way Bitcoin addresses do.
type base58CheckCodec struct{}

func (base58CheckCodec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "base58check",
		Aliases:     []string{"b58check"},
		Alphabet:    base58BTCAlphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Base58 with 4-byte checksum (Bitcoin-style double-SHA256)",
	}
}

func (base58CheckCodec) Encode(src []byte) string {
	sum := doubleSHA256(src)
	buf := make([]byte, 0, len(src)+4)
	buf = append(buf, src...)
	buf = append(buf, sum[:4]...)
	return base58.EncodeAlphabet(buf, base58.BTCAlphabet)
}

func (base58CheckCodec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	decoded, err := decodeBase58(cleaned, base58BTCAlphabet, base58.BTCAlphabet)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 4 {
		return nil, &mbase.InvalidInputError{Message: "input too short for checksum"}
	}
	payload, checksum := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	sum := doubleSHA256(payload)
	if !bytes.Equal(checksum, sum[:4]) {
		return nil, mbase.ErrChecksumMismatch
	}
	return payload, nil
}

func (c base58CheckCodec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (c base58CheckCodec) DetectScore(input string) mbase.DetectCandidate {
	cand := detectBase58(input, "base58check", 0, base58BTCAlphabet)
	if _, err := c.Decode(input, mbase.Lenient); err == nil {
		cand.Confidence = max(cand.Confidence, 0.9)
		cand.Reasons = append(cand.Reasons, "checksum valid")
	}
	return cand
}

func decodeBase58(cleaned, alphabet string, alpha *base58.Alphabet) ([]byte, error) {
	if cleaned == "" {
		return nil, nil
	}
	if err := mbase.ValidateAlphabetPadding(cleaned, alphabet, false); err != nil {
		return nil, err
	}
	out, err := base58.DecodeAlphabet(cleaned, alpha)
	if err != nil {
		return nil, &mbase.InvalidInputError{Message: err.Error()}
	}
	return out, nil
}

func detectBase58(input, name string, code rune, alphabet string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate(name)
	}
	cand := mbase.DetectCandidate{Codec: name}
	if code != 0 && strings.HasPrefix(input, string(code)) {
		cand.Confidence = mbase.MultibaseMatch
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("multibase prefix '%c' detected", code))
	}
	ratio := charRatio(input, inAlphabet(alphabet))
	switch {
	case ratio == 1:
		cand.Confidence = max(cand.Confidence, mbase.PartialMatch)
		cand.Reasons = append(cand.Reasons, "all characters in base58 alphabet")
	case ratio > 0.9:
		cand.Confidence = max(cand.Confidence, mbase.WeakMatch)
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("%.0f%% characters valid", ratio*100))
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}

func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}
