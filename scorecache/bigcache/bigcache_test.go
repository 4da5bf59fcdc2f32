package bigcache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := New(Config{LifeWindow: time.Minute})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	defer s.Close(ctx)

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("miss must be (nil, false, nil), got ok=%v err=%v", ok, err)
	}

	val := []byte{0x4d, 0x42, 0x53, 0x45, 0x01}
	if err := s.Set(ctx, "detect:abc", val, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(ctx, "detect:abc")
	if err != nil || !ok || !bytes.Equal(got, val) {
		t.Fatalf("Get: %x ok=%v err=%v", got, ok, err)
	}

	if err := s.Del(ctx, "detect:abc"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "detect:abc"); ok {
		t.Fatalf("key survived Del")
	}
}
