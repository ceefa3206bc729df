package kvstore_test

import (
	"context"
	"sync"
	"testing"

	"schedlink/pkg/kvstore"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		m := kvstore.NewMemory()
		_, ok, err := m.Get(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected key to be absent")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		m := kvstore.NewMemory()
		if err := m.Set(ctx, "k", "v1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := m.Set(ctx, "k", "v2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok, err := m.Get(ctx, "k")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || v != "v2" {
			t.Errorf("expected v2, got %q (present=%v)", v, ok)
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		m := kvstore.NewMemory()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.Set(ctx, "k", "v")
				m.Get(ctx, "k")
			}()
		}
		wg.Wait()
	})
}
