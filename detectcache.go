package mbase

import (
	"context"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mbase-io/mbase/internal/util"
	"github.com/mbase-io/mbase/internal/wire"
)

// BlobFormat selects how cached rankings are serialized.
type BlobFormat int

const (
	// BlobMsgpack is the default: compact and fast.
	BlobMsgpack BlobFormat = iota
	// BlobCBOR uses RFC 8949 core deterministic encoding, for byte-stable
	// entries (useful when the store is shared across replicas).
	BlobCBOR
)

type blobCodec interface {
	Marshal(cands []DetectCandidate) ([]byte, error)
	Unmarshal(b []byte) ([]DetectCandidate, error)
}

type msgpackBlob struct{}

func (msgpackBlob) Marshal(cands []DetectCandidate) ([]byte, error) {
	return msgpack.Marshal(cands)
}

func (msgpackBlob) Unmarshal(b []byte) ([]DetectCandidate, error) {
	var cands []DetectCandidate
	err := msgpack.Unmarshal(b, &cands)
	return cands, err
}

type cborBlob struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func (c cborBlob) Marshal(cands []DetectCandidate) ([]byte, error) {
	return c.enc.Marshal(cands)
}

func (c cborBlob) Unmarshal(b []byte) ([]DetectCandidate, error) {
	var cands []DetectCandidate
	err := c.dec.Unmarshal(b, &cands)
	return cands, err
}

func newBlobCodec(f BlobFormat) blobCodec {
	if f == BlobCBOR {
		em, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			panic(err) // static options, cannot fail
		}
		dm, err := cbor.DecOptions{}.DecMode()
		if err != nil {
			panic(err)
		}
		return cborBlob{enc: em, dec: dm}
	}
	return msgpackBlob{}
}

func (e *Engine) cacheGet(ctx context.Context, trimmed string) ([]DetectCandidate, bool) {
	key := util.DetectKey(trimmed)
	raw, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		e.log.Warn("detect cache get failed", Fields{"err": err.Error()})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	payload, err := wire.Decode(raw)
	if err != nil {
		_ = e.cache.Del(ctx, key) // self-heal corrupt entry
		return nil, false
	}
	cands, err := e.blob.Unmarshal(payload)
	if err != nil {
		_ = e.cache.Del(ctx, key) // self-heal
		return nil, false
	}
	e.log.Debug("detect cache hit", Fields{"key": key})
	return cands, true
}

func (e *Engine) cacheSet(ctx context.Context, trimmed string, ranked []DetectCandidate) {
	payload, err := e.blob.Marshal(ranked)
	if err != nil {
		e.log.Warn("detect cache encode failed", Fields{"err": err.Error()})
		return
	}
	key := util.DetectKey(trimmed)
	if err := e.cache.Set(ctx, key, wire.Encode(payload), e.cacheTTL); err != nil {
		e.log.Debug("detect cache set failed", Fields{"key": key, "err": err.Error()})
	}
}
