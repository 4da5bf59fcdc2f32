package mbase

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mbase-io/mbase/scorecache"
)

// Confidence values proposed by detection signals. A codec's emitted
// confidence is the maximum over all signals that fired, never a sum,
// clamped to [0,1]. These are shared by every codec so ranking stays
// reproducible across the catalog.
const (
	// MultibaseMatch fires when the input begins with the codec's declared
	// multibase prefix character.
	MultibaseMatch = 0.95
	// AlphabetMatch fires when 100% of characters are in the codec's
	// alphabet.
	AlphabetMatch = 0.70
	// PartialMatch fires for structurally plausible but ambiguous inputs.
	PartialMatch = 0.50
	// WeakMatch fires when the alphabet mostly matches (>=90%) or the
	// encoding has no distinguishing structure.
	WeakMatch = 0.30
)

// EngineOptions tune detection. The zero value is usable: no logging, no
// caching, worker count = GOMAXPROCS.
type EngineOptions struct {
	Logger Logger

	// Cache, when set, memoizes full rankings keyed by a hash of the
	// trimmed input. Entries are framed and versioned; corrupt or
	// undecodable entries self-heal by deletion. This is opt-in working
	// memory, not persistence of detection history.
	Cache      scorecache.Store
	CacheTTL   time.Duration // 0 => 5m
	CacheCodec BlobFormat    // serialization of cached rankings

	// Workers bounds the per-codec scoring fan-out. Scoring calls are
	// independent and stateless, so any degree of parallelism is safe.
	Workers int
}

// Engine runs every registered codec's scorer over an input and merges the
// results into a ranked candidate list. It never mutates the registry or
// any codec and is safe for concurrent use.
type Engine struct {
	reg      *Registry
	order    map[string]int // canonical name -> declaration index (tie-break)
	log      Logger
	cache    scorecache.Store
	cacheTTL time.Duration
	blob     blobCodec
	workers  int
}

// NewEngine builds a detection engine over reg.
func NewEngine(reg *Registry, opts EngineOptions) *Engine {
	order := make(map[string]int, reg.Len())
	for i, m := range reg.List() {
		order[m.Name] = i
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		reg:      reg,
		order:    order,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		cache:    opts.Cache,
		cacheTTL: coalesce[time.Duration](opts.CacheTTL, 5*time.Minute),
		blob:     newBlobCodec(opts.CacheCodec),
		workers:  workers,
	}
}

// Detect scores the input against every registered codec and returns
// candidates sorted descending by confidence; exact ties break by the
// registry's declaration order, so rankings are deterministic. topK <= 0
// returns the full ranking.
func (e *Engine) Detect(ctx context.Context, input string, topK int) []DetectCandidate {
	trimmed := strings.TrimSpace(input)

	if e.cache != nil {
		if ranked, ok := e.cacheGet(ctx, trimmed); ok {
			return truncate(ranked, topK)
		}
	}

	ranked := e.rank(trimmed)

	if e.cache != nil {
		e.cacheSet(ctx, trimmed, ranked)
	}
	return truncate(ranked, topK)
}

type scored struct {
	cand  DetectCandidate
	order int
}

func (e *Engine) rank(trimmed string) []DetectCandidate {
	codecs := e.reg.Codecs()
	results := make([]DetectCandidate, len(codecs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers)
	for i, c := range codecs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c Codec) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = e.scoreOne(c, trimmed)
		}(i, c)
	}
	wg.Wait()

	best := make(map[string]scored, len(codecs))
	if mb, ok := e.multibaseCandidate(trimmed); ok {
		best[mb.Codec] = scored{cand: mb, order: e.order[mb.Codec]}
	}
	for _, cand := range results {
		if prev, ok := best[cand.Codec]; ok && prev.cand.Confidence >= cand.Confidence {
			continue
		}
		best[cand.Codec] = scored{cand: cand, order: e.order[cand.Codec]}
	}

	merged := make([]scored, 0, len(best))
	for _, s := range best {
		if s.cand.Confidence > 0 {
			merged = append(merged, s)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].cand.Confidence != merged[j].cand.Confidence {
			return merged[i].cand.Confidence > merged[j].cand.Confidence
		}
		return merged[i].order < merged[j].order
	})

	out := make([]DetectCandidate, len(merged))
	for i, s := range merged {
		out[i] = s.cand
	}
	e.log.Debug("detect ranked", Fields{"input_len": len(trimmed), "candidates": len(out)})
	return out
}

// scoreOne runs one codec's scorer plus the fixed trial-decode policy: a
// lenient decode is always attempted, and a success floors the confidence
// at PartialMatch with reason "decodes successfully". Scorers must not
// fail; if one panics anyway the failure is folded into a zero-confidence
// candidate with a warning rather than propagated.
func (e *Engine) scoreOne(c Codec, trimmed string) (cand DetectCandidate) {
	name := c.Meta().Name
	defer func() {
		if r := recover(); r != nil {
			cand = DetectCandidate{
				Codec:    name,
				Warnings: []string{fmt.Sprintf("scorer failed: %v", r)},
			}
			e.log.Warn("detect scorer panicked", Fields{"codec": name, "panic": fmt.Sprint(r)})
		}
		cand.Confidence = clamp01(cand.Confidence)
	}()

	cand = c.DetectScore(trimmed)

	if trimmed != "" {
		if _, err := c.Decode(trimmed, Lenient); err == nil {
			if cand.Confidence < PartialMatch {
				cand.Confidence = PartialMatch
			}
			if !hasDecodeReason(cand.Reasons) {
				cand.Reasons = append(cand.Reasons, "decodes successfully")
			}
		}
	}
	return cand
}

// multibaseCandidate emits the registry-level prefix candidate: a matching
// leading multibase character is the strongest available signal (0.98),
// promoted to certainty when the remainder validates under that codec.
func (e *Engine) multibaseCandidate(trimmed string) (DetectCandidate, bool) {
	if trimmed == "" {
		return DetectCandidate{}, false
	}
	first := []rune(trimmed)[0]
	name, ok := e.reg.byCode[first]
	if !ok {
		return DetectCandidate{}, false
	}

	cand := DetectCandidate{
		Codec:      name,
		Confidence: 0.98,
		Reasons:    []string{fmt.Sprintf("multibase prefix '%c' detected", first)},
	}
	if c, err := e.reg.Get(name); err == nil {
		rest := trimmed[len(string(first)):]
		if c.Validate(rest, Lenient) == nil {
			cand.Confidence = 1.0
			cand.Reasons = append(cand.Reasons, "valid after removing prefix")
		}
	}
	return cand, true
}

func hasDecodeReason(reasons []string) bool {
	for _, r := range reasons {
		if strings.Contains(r, "decode") {
			return true
		}
	}
	return false
}

func truncate(cands []DetectCandidate, topK int) []DetectCandidate {
	if topK <= 0 || topK >= len(cands) {
		return cands
	}
	return cands[:topK]
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
