package mbase

import (
	"errors"
	"testing"
)

// fakeCodec is a minimal Codec for registry and engine tests. Encode echoes
// the input, Decode fails when decErr is set, DetectScore returns the canned
// candidate (or panics when panics is set).
type fakeCodec struct {
	meta   Meta
	decErr error
	score  DetectCandidate
	panics bool
}

var _ Codec = fakeCodec{}

func (f fakeCodec) Meta() Meta               { return f.meta }
func (f fakeCodec) Encode(src []byte) string { return string(src) }

func (f fakeCodec) Decode(input string, _ Mode) ([]byte, error) {
	if f.decErr != nil {
		return nil, f.decErr
	}
	return []byte(input), nil
}

func (f fakeCodec) Validate(input string, mode Mode) error {
	_, err := f.Decode(input, mode)
	return err
}

func (f fakeCodec) DetectScore(string) DetectCandidate {
	if f.panics {
		panic("scorer exploded")
	}
	return f.score
}

func newFake(name string, aliases []string, code rune) fakeCodec {
	return fakeCodec{meta: Meta{Name: name, Aliases: aliases, MultibaseCode: code}}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(
		newFake("alpha", []string{"a", "A1"}, 'x'),
		newFake("beta", nil, 'y'),
	)

	for _, q := range []string{"alpha", "ALPHA", "a", "A1"} {
		c, err := r.Get(q)
		if err != nil {
			t.Fatalf("Get(%q): %v", q, err)
		}
		if c.Meta().Name != "alpha" {
			t.Fatalf("Get(%q) resolved %q", q, c.Meta().Name)
		}
	}

	var nf *CodecNotFoundError
	if _, err := r.Get("gamma"); !errors.As(err, &nf) || nf.Name != "gamma" {
		t.Fatalf("want CodecNotFoundError for gamma, got %v", err)
	}
}

func TestRegistryCaseDistinguishedAliases(t *testing.T) {
	r := NewRegistry(
		newFake("lower", []string{"q"}, 0),
		newFake("upper", []string{"Q"}, 0),
	)
	for alias, want := range map[string]string{"q": "lower", "Q": "upper"} {
		c, err := r.Get(alias)
		if err != nil {
			t.Fatalf("Get(%q): %v", alias, err)
		}
		if c.Meta().Name != want {
			t.Fatalf("Get(%q) resolved %q, want %q", alias, c.Meta().Name, want)
		}
	}
	// Spellings not registered verbatim still resolve case-insensitively.
	c, err := r.Get("LOWER")
	if err != nil || c.Meta().Name != "lower" {
		t.Fatalf("case-insensitive fallback: %v", err)
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry(newFake("c3", nil, 0), newFake("a1", nil, 0), newFake("b2", nil, 0))
	want := []string{"c3", "a1", "b2"}
	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("List length %d want %d", len(got), len(want))
	}
	for i, m := range got {
		if m.Name != want[i] {
			t.Fatalf("List[%d] = %q want %q (declaration order)", i, m.Name, want[i])
		}
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d", r.Len())
	}
}

func TestRegistryMultibaseMap(t *testing.T) {
	r := NewRegistry(newFake("alpha", nil, 'x'), newFake("beta", nil, 0))
	m := r.MultibaseMap()
	if len(m) != 1 || m['x'] != "alpha" {
		t.Fatalf("MultibaseMap = %v", m)
	}
	// Returned map is a copy.
	m['q'] = "intruder"
	if len(r.MultibaseMap()) != 1 {
		t.Fatalf("mutating the returned map leaked into the registry")
	}
}

func mustPanic(t *testing.T, why string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: %s", why)
		}
	}()
	fn()
}

func TestRegistryInvariantViolationsPanic(t *testing.T) {
	mustPanic(t, "duplicate name", func() {
		NewRegistry(newFake("dup", nil, 0), newFake("dup", nil, 0))
	})
	mustPanic(t, "alias collides with name", func() {
		NewRegistry(newFake("a", []string{"b"}, 0), newFake("b", nil, 0))
	})
	mustPanic(t, "duplicate alias", func() {
		NewRegistry(newFake("a", []string{"x"}, 0), newFake("b", []string{"x"}, 0))
	})
	mustPanic(t, "duplicate multibase code", func() {
		NewRegistry(newFake("a", nil, 'z'), newFake("b", nil, 'z'))
	})
	mustPanic(t, "empty name", func() {
		NewRegistry(fakeCodec{})
	})
}
