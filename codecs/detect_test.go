package codecs

import (
	"context"
	"reflect"
	"testing"

	"github.com/mbase-io/mbase"
)

func newEngine() *mbase.Engine {
	return mbase.NewEngine(Default(), mbase.EngineOptions{})
}

func TestDetectUnpaddedBase64(t *testing.T) {
	got := newEngine().Detect(context.Background(), "SGVsbG8", 5)
	if len(got) == 0 {
		t.Fatalf("no candidates")
	}
	top := got[0]
	if top.Codec != "base64" {
		t.Fatalf("top candidate %q, want base64 (full ranking: %+v)", top.Codec, got)
	}
	if top.Confidence < mbase.AlphabetMatch {
		t.Fatalf("confidence %v below alphabet match", top.Confidence)
	}
	found := false
	for _, r := range top.Reasons {
		if r == "decodes successfully" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing trial-decode reason: %v", top.Reasons)
	}
}

func TestDetectMultibaseHex(t *testing.T) {
	got := newEngine().Detect(context.Background(), "f48656c6c6f", 5)
	if len(got) == 0 || got[0].Codec != "base16lower" {
		t.Fatalf("candidates: %+v", got)
	}
	if got[0].Confidence < mbase.MultibaseMatch {
		t.Fatalf("prefixed hex should score at least %v, got %v", mbase.MultibaseMatch, got[0].Confidence)
	}
}

func TestDetectMultibaseBase58(t *testing.T) {
	got := newEngine().Detect(context.Background(), "zJxF12TrwUP45BMd", 5)
	if len(got) == 0 || got[0].Codec != "base58btc" {
		t.Fatalf("candidates: %+v", got)
	}
	if got[0].Confidence < mbase.MultibaseMatch {
		t.Fatalf("prefixed base58 should score at least %v, got %v", mbase.MultibaseMatch, got[0].Confidence)
	}
}

func TestDetectMorse(t *testing.T) {
	got := newEngine().Detect(context.Background(), "... --- ...", 5)
	if len(got) < 2 {
		t.Fatalf("candidates: %+v", got)
	}
	// base45 scores alphabet-match here too (space is in its alphabet) and
	// wins the tie by declaration order; morse is the immediate runner-up.
	if got[0].Codec != "base45" || got[1].Codec != "morse" {
		t.Fatalf("ranking: %+v", got)
	}
	if got[1].Confidence < mbase.AlphabetMatch {
		t.Fatalf("morse confidence %v, want at least %v", got[1].Confidence, mbase.AlphabetMatch)
	}
}

func TestDetectEmptyAndWhitespace(t *testing.T) {
	eng := newEngine()
	for _, in := range []string{"", "   ", "\n\t"} {
		if got := eng.Detect(context.Background(), in, 5); len(got) != 0 {
			t.Fatalf("Detect(%q) = %+v, want none", in, got)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	eng := newEngine()
	first := eng.Detect(context.Background(), "91JPRV3F", 10)
	for i := 0; i < 5; i++ {
		again := eng.Detect(context.Background(), "91JPRV3F", 10)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}
