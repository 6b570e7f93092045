package storage

import (
	"context"
	"testing"
)

func TestMemoryKV_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, ok, _ := kv.Get(ctx, "progress"); ok {
		t.Error("missing key reported as present")
	}

	if err := kv.Set(ctx, "progress", []byte(`["a"]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	value, ok, err := kv.Get(ctx, "progress")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, ok=%v", err, ok)
	}
	if string(value) != `["a"]` {
		t.Errorf("Get() = %q, want %q", value, `["a"]`)
	}
}

// TestMemoryKV_CopiesValues guards against aliasing: mutating a stored
// or returned slice must not change what the store holds.
func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	in := []byte(`["a"]`)
	kv.Set(ctx, "k", in)
	in[0] = 'X'

	out, _, _ := kv.Get(ctx, "k")
	if string(out) != `["a"]` {
		t.Errorf("stored value aliased caller slice: %q", out)
	}

	out[0] = 'X'
	again, _, _ := kv.Get(ctx, "k")
	if string(again) != `["a"]` {
		t.Errorf("returned value aliased stored slice: %q", again)
	}
}
