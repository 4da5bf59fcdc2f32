package mbase

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/mbase-io/mbase/internal/util"
	"github.com/mbase-io/mbase/internal/wire"
	"github.com/mbase-io/mbase/scorecache"
)

type memStore struct {
	mu   sync.Mutex
	m    map[string][]byte
	hits int
}

var _ scorecache.Store = (*memStore)(nil)

func newMemStore() *memStore { return &memStore{m: make(map[string][]byte)} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	if ok {
		s.hits++
	}
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *memStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *memStore) Close(context.Context) error { return nil }

var errNoDecode = &InvalidInputError{Message: "nope"}

func scorer(name string, conf float64, reasons ...string) fakeCodec {
	return fakeCodec{
		meta:   Meta{Name: name},
		decErr: errNoDecode,
		score:  DetectCandidate{Codec: name, Confidence: conf, Reasons: reasons},
	}
}

func TestDetectRankingAndTieBreak(t *testing.T) {
	eng := NewEngine(NewRegistry(
		scorer("aa", 0.6),
		scorer("bb", 0.6),
		scorer("cc", 0.8),
	), EngineOptions{})

	got := eng.Detect(context.Background(), "xyz", 0)
	if len(got) != 3 {
		t.Fatalf("candidates: %d want 3", len(got))
	}
	if got[0].Codec != "cc" {
		t.Fatalf("top candidate %q want cc", got[0].Codec)
	}
	// Equal confidence breaks by declaration order.
	if got[1].Codec != "aa" || got[2].Codec != "bb" {
		t.Fatalf("tie-break order: %q, %q", got[1].Codec, got[2].Codec)
	}
}

func TestDetectTopK(t *testing.T) {
	eng := NewEngine(NewRegistry(
		scorer("aa", 0.9),
		scorer("bb", 0.8),
		scorer("cc", 0.7),
	), EngineOptions{})

	got := eng.Detect(context.Background(), "xyz", 2)
	if len(got) != 2 || got[0].Codec != "aa" || got[1].Codec != "bb" {
		t.Fatalf("topK: %+v", got)
	}
}

func TestDetectEmptyInput(t *testing.T) {
	eng := NewEngine(NewRegistry(scorer("aa", 0)), EngineOptions{})
	if got := eng.Detect(context.Background(), "   \n ", 0); len(got) != 0 {
		t.Fatalf("whitespace-only input should yield no candidates, got %+v", got)
	}
}

func TestDetectTrialDecodeFloor(t *testing.T) {
	weak := fakeCodec{
		meta:  Meta{Name: "weak"},
		score: DetectCandidate{Codec: "weak", Confidence: 0.1, Reasons: []string{"faint signal"}},
	}
	eng := NewEngine(NewRegistry(weak), EngineOptions{})

	got := eng.Detect(context.Background(), "data", 0)
	if len(got) != 1 {
		t.Fatalf("candidates: %+v", got)
	}
	if got[0].Confidence != PartialMatch {
		t.Fatalf("successful lenient decode must floor at %v, got %v", PartialMatch, got[0].Confidence)
	}
	found := false
	for _, r := range got[0].Reasons {
		if r == "decodes successfully" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing decode reason: %v", got[0].Reasons)
	}
}

func TestDetectConfidenceClamped(t *testing.T) {
	eng := NewEngine(NewRegistry(scorer("hot", 1.5)), EngineOptions{})
	got := eng.Detect(context.Background(), "xyz", 0)
	if len(got) != 1 || got[0].Confidence != 1.0 {
		t.Fatalf("confidence not clamped to 1.0: %+v", got)
	}
}

func TestDetectScorerPanicContained(t *testing.T) {
	boom := fakeCodec{meta: Meta{Name: "boom"}, panics: true, decErr: errNoDecode}
	eng := NewEngine(NewRegistry(boom, scorer("ok", 0.9)), EngineOptions{})

	got := eng.Detect(context.Background(), "xyz", 0)
	if len(got) != 1 || got[0].Codec != "ok" {
		t.Fatalf("panicking scorer should contribute nothing, got %+v", got)
	}
}

func TestDetectMultibasePromotion(t *testing.T) {
	// Decodable remainder: prefix candidate promoted to certainty.
	zc := fakeCodec{meta: Meta{Name: "zc", MultibaseCode: 'z'}, score: DetectCandidate{Codec: "zc"}}
	eng := NewEngine(NewRegistry(zc), EngineOptions{})

	got := eng.Detect(context.Background(), "zrest", 0)
	if len(got) != 1 || got[0].Codec != "zc" {
		t.Fatalf("candidates: %+v", got)
	}
	if got[0].Confidence != 1.0 {
		t.Fatalf("valid remainder should promote to 1.0, got %v", got[0].Confidence)
	}
	if got[0].Reasons[0] != "multibase prefix 'z' detected" {
		t.Fatalf("prefix reason: %v", got[0].Reasons)
	}
	if got[0].Reasons[1] != "valid after removing prefix" {
		t.Fatalf("promotion reason: %v", got[0].Reasons)
	}
}

func TestDetectMultibasePrefixOnly(t *testing.T) {
	// Remainder does not validate: candidate stays at 0.98.
	zc := fakeCodec{meta: Meta{Name: "zc", MultibaseCode: 'z'}, decErr: errNoDecode}
	eng := NewEngine(NewRegistry(zc), EngineOptions{})

	got := eng.Detect(context.Background(), "zrest", 0)
	if len(got) != 1 || got[0].Confidence != 0.98 {
		t.Fatalf("prefix-only candidate: %+v", got)
	}
}

func TestDetectCacheRoundTrip(t *testing.T) {
	ms := newMemStore()
	eng := NewEngine(NewRegistry(scorer("aa", 0.7)), EngineOptions{
		Cache:    ms,
		CacheTTL: time.Minute,
	})

	ctx := context.Background()
	first := eng.Detect(ctx, "data", 0)
	second := eng.Detect(ctx, "data", 0)

	if ms.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", ms.hits)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached ranking differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDetectCacheSelfHeals(t *testing.T) {
	ms := newMemStore()
	eng := NewEngine(NewRegistry(scorer("aa", 0.7)), EngineOptions{
		Cache:    ms,
		CacheTTL: time.Minute,
	})

	ctx := context.Background()
	key := util.DetectKey("data")
	ms.m[key] = []byte("garbage, not a frame")

	got := eng.Detect(ctx, "data", 0)
	if len(got) != 1 || got[0].Codec != "aa" {
		t.Fatalf("corrupt entry must fall back to ranking, got %+v", got)
	}
	// The poisoned entry was replaced by a well-formed frame.
	if _, err := wire.Decode(ms.m[key]); err != nil {
		t.Fatalf("entry not healed: %v", err)
	}
}

func TestDetectCBORCacheCodec(t *testing.T) {
	ms := newMemStore()
	eng := NewEngine(NewRegistry(scorer("aa", 0.7, "signal")), EngineOptions{
		Cache:      ms,
		CacheCodec: BlobCBOR,
	})

	ctx := context.Background()
	first := eng.Detect(ctx, "data", 0)
	second := eng.Detect(ctx, "data", 0)
	if ms.hits != 1 || !reflect.DeepEqual(first, second) {
		t.Fatalf("CBOR-cached ranking differs (hits=%d)", ms.hits)
	}
}
