package codecs

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/mbase-io/mbase"
)

const (
	bech32Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	// bech32HRP is the fixed human-readable part used for arbitrary
	// payloads; decoding accepts any HRP.
	bech32HRP = "data"
)

type bech32Codec struct {
	meta mbase.Meta
	m    bool
}

var bech32Std = bech32Codec{
	meta: mbase.Meta{
		Name:        "bech32",
		Alphabet:    bech32Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Bech32 (BIP-173) with HRP separator",
	},
}

var bech32M = bech32Codec{
	meta: mbase.Meta{
		Name:        "bech32m",
		Alphabet:    bech32Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Bech32m (BIP-350) with updated checksum constant",
	},
	m: true,
}

func (c bech32Codec) Meta() mbase.Meta { return c.meta }

func (c bech32Codec) Encode(src []byte) string {
	// ConvertBits cannot fail for 8->5 with padding, and Encode only
	// rejects malformed HRPs; ours is a constant.
	grouped, err := bech32.ConvertBits(src, 8, 5, true)
	if err != nil {
		return ""
	}
	var s string
	if c.m {
		s, err = bech32.EncodeM(bech32HRP, grouped)
	} else {
		s, err = bech32.Encode(bech32HRP, grouped)
	}
	if err != nil {
		return ""
	}
	return s
}

func (c bech32Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := strings.ToLower(mbase.CleanForMode(input, mode))
	// DecodeNoLimit skips the BIP-173 90-character cap (Encode has none, so
	// long payloads must round-trip) and accepts either checksum variant;
	// re-encoding with this codec's constant pins the variant down.
	hrp, grouped, err := bech32.DecodeNoLimit(cleaned)
	if err != nil {
		return nil, mbase.ErrChecksumMismatch
	}
	var reenc string
	if c.m {
		reenc, err = bech32.EncodeM(hrp, grouped)
	} else {
		reenc, err = bech32.Encode(hrp, grouped)
	}
	if err != nil || reenc != cleaned {
		return nil, mbase.ErrChecksumMismatch
	}
	out, err := bech32.ConvertBits(grouped, 5, 8, false)
	if err != nil {
		return nil, mbase.ErrChecksumMismatch
	}
	return out, nil
}

func (c bech32Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (c bech32Codec) DetectScore(input string) mbase.DetectCandidate {
	name := c.meta.Name
	if input == "" {
		return emptyCandidate(name)
	}
	cand := mbase.DetectCandidate{Codec: name}
	lower := strings.ToLower(input)
	if sep := strings.LastIndex(lower, "1"); sep > 0 && sep < len(lower)-7 {
		cand.Confidence = mbase.PartialMatch
		cand.Reasons = append(cand.Reasons, "contains bech32 separator '1'")
		if charRatio(lower[sep+1:], inAlphabet(bech32Alphabet)) == 1 {
			cand.Confidence = mbase.AlphabetMatch
			cand.Reasons = append(cand.Reasons, "valid bech32 charset")
		}
	}
	if _, err := c.Decode(input, mbase.Lenient); err == nil {
		cand.Confidence = mbase.MultibaseMatch
		cand.Reasons = append(cand.Reasons, "checksum valid")
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}
