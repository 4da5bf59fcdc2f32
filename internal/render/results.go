package render

import "github.com/mbase-io/mbase"

// Result shapes carry a schema_version so downstream parsers can detect
// incompatible changes. CBOR encoding reuses the json tags.

type EncodeResult struct {
	Codec           string  `json:"codec" msgpack:"codec"`
	InputLength     int     `json:"input_length" msgpack:"input_length"`
	Output          string  `json:"output" msgpack:"output"`
	OutputLength    int     `json:"output_length" msgpack:"output_length"`
	MultibasePrefix *string `json:"multibase_prefix" msgpack:"multibase_prefix"`
}

type EncodeAllResult struct {
	InputLength int              `json:"input_length" msgpack:"input_length"`
	Results     []EncodeAllEntry `json:"results" msgpack:"results"`
}

type EncodeAllEntry struct {
	Codec  string `json:"codec" msgpack:"codec"`
	Output string `json:"output" msgpack:"output"`
}

type DecodeResult struct {
	Codec           string  `json:"codec" msgpack:"codec"`
	Input           string  `json:"input" msgpack:"input"`
	OutputLength    int     `json:"output_length" msgpack:"output_length"`
	OutputHex       string  `json:"output_hex" msgpack:"output_hex"`
	OutputText      *string `json:"output_text" msgpack:"output_text"`
	MultibasePrefix *string `json:"multibase_prefix" msgpack:"multibase_prefix"`
}

type DecodeAllResult struct {
	Input   string           `json:"input" msgpack:"input"`
	Results []DecodeAllEntry `json:"results" msgpack:"results"`
}

type DecodeAllEntry struct {
	Codec        string  `json:"codec" msgpack:"codec"`
	OutputLength *int    `json:"output_length" msgpack:"output_length"`
	OutputHex    *string `json:"output_hex" msgpack:"output_hex"`
	OutputText   *string `json:"output_text" msgpack:"output_text"`
	Error        *string `json:"error" msgpack:"error"`
}

type ConvResult struct {
	SchemaVersion int    `json:"schema_version" msgpack:"schema_version"`
	From          string `json:"from" msgpack:"from"`
	To            string `json:"to" msgpack:"to"`
	Output        string `json:"output" msgpack:"output"`
	OutputLength  int    `json:"output_length" msgpack:"output_length"`
}

type VerifyResult struct {
	SchemaVersion int     `json:"schema_version" msgpack:"schema_version"`
	Valid         bool    `json:"valid" msgpack:"valid"`
	Codec         string  `json:"codec" msgpack:"codec"`
	Error         *string `json:"error" msgpack:"error"`
}

type DetectResult struct {
	SchemaVersion int                     `json:"schema_version" msgpack:"schema_version"`
	Candidates    []mbase.DetectCandidate `json:"candidates" msgpack:"candidates"`
	InputPreview  string                  `json:"input_preview" msgpack:"input_preview"`
}

type ExplainResult struct {
	SchemaVersion int           `json:"schema_version" msgpack:"schema_version"`
	Codec         string        `json:"codec" msgpack:"codec"`
	InputPreview  string        `json:"input_preview" msgpack:"input_preview"`
	Valid         bool          `json:"valid" msgpack:"valid"`
	Error         *ExplainError `json:"error" msgpack:"error"`
	Suggestions   []string      `json:"suggestions" msgpack:"suggestions"`
}

type ExplainError struct {
	Message       string  `json:"message" msgpack:"message"`
	Position      *int    `json:"position" msgpack:"position"`
	OffendingChar *string `json:"offending_char" msgpack:"offending_char"`
	Context       *string `json:"context" msgpack:"context"`
}
