package mbase

import "encoding/json"

// Mode selects the decoding discipline.
type Mode int

const (
	// Strict rejects any whitespace and enforces the declared case exactly.
	Strict Mode = iota
	// Lenient strips ASCII whitespace first and, for case-insensitive
	// codecs, folds to the canonical case before validating.
	Lenient
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// PaddingRule declares how a codec treats trailing filler characters.
type PaddingRule int

const (
	PaddingNone PaddingRule = iota
	PaddingRequired
	// PaddingOptional marks codecs that accept but do not require padding.
	// No built-in codec declares it; it exists for external implementations.
	PaddingOptional
)

func (p PaddingRule) String() string {
	switch p {
	case PaddingNone:
		return "none"
	case PaddingRequired:
		return "required"
	case PaddingOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// CaseRule declares how a codec treats letter case. CaseLower and CaseUpper
// are the insensitive variants that additionally declare the canonical case
// of encoded output, so Lenient mode knows which way to fold.
type CaseRule int

const (
	CaseSensitive CaseRule = iota
	CaseInsensitive
	CaseLower
	CaseUpper
)

// Insensitive reports whether Lenient mode may case-fold input for this rule.
func (c CaseRule) Insensitive() bool { return c != CaseSensitive }

func (c CaseRule) String() string {
	switch c {
	case CaseSensitive:
		return "sensitive"
	case CaseInsensitive:
		return "insensitive"
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// Meta describes one codec. Values are fixed at construction and safe to
// copy; MultibaseCode is 0 when the codec has no multibase prefix.
type Meta struct {
	Name          string
	Aliases       []string
	Alphabet      string
	MultibaseCode rune
	Padding       PaddingRule
	Case          CaseRule
	Description   string
}

// MarshalJSON renders the documented wire shape: multibase_code is a
// one-character string or null, padding and case_sensitivity are lowercase
// enum names, aliases is never null.
func (m Meta) MarshalJSON() ([]byte, error) {
	var code *string
	if m.MultibaseCode != 0 {
		s := string(m.MultibaseCode)
		code = &s
	}
	aliases := m.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	return json.Marshal(struct {
		Name          string   `json:"name"`
		Aliases       []string `json:"aliases"`
		Alphabet      string   `json:"alphabet"`
		MultibaseCode *string  `json:"multibase_code"`
		Padding       string   `json:"padding"`
		Case          string   `json:"case_sensitivity"`
		Description   string   `json:"description"`
	}{m.Name, aliases, m.Alphabet, code, m.Padding.String(), m.Case.String(), m.Description})
}

// DetectCandidate is one codec's verdict on an unlabeled input. Confidence
// is in [0,1]; Reasons justify the score, Warnings carry caveats that do not
// raise it. Produced fresh per detection call and owned by the caller.
type DetectCandidate struct {
	Codec      string   `json:"codec" msgpack:"codec"`
	Confidence float64  `json:"confidence" msgpack:"confidence"`
	Reasons    []string `json:"reasons" msgpack:"reasons"`
	Warnings   []string `json:"warnings" msgpack:"warnings"`
}

// Codec is the capability contract every encoding variant implements.
// Implementations must be stateless: the same instance is invoked
// concurrently by any number of goroutines without coordination.
type Codec interface {
	// Meta returns the codec's static description. Pure; callers may cache
	// the result.
	Meta() Meta

	// Encode is total: defined for every byte slice including the empty one,
	// and never fails. Decode(Encode(b), Strict) == b for the codec's byte
	// domain.
	Encode(src []byte) string

	// Decode converts encoded text back to bytes. Character positions in
	// returned errors are measured in the normalized text, after
	// mode-dependent whitespace stripping and case folding.
	Decode(input string, mode Mode) ([]byte, error)

	// Validate checks well-formedness without returning the payload. Most
	// codecs decode and discard; some validate structure more cheaply.
	Validate(input string, mode Mode) error

	// DetectScore scores how likely the input was produced by this codec.
	// It never fails: internal probing errors become low confidence plus a
	// warning.
	DetectScore(input string) DetectCandidate
}
