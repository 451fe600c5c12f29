package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock — ручное управление временем.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)} }

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "settings"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, "settings", []byte(`{"title":"x"}`), 0)
	got, ok := c.Get(ctx, "settings")
	if !ok || string(got) != `{"title":"x"}` {
		t.Fatalf("expected hit for settings, got %q %v", got, ok)
	}
}

func TestTTL_Expiry(t *testing.T) {
	clk := newFakeClock()
	c := NewLRUCacheTTL(0, time.Minute, WithClock(clk.Now))
	ctx := context.Background()

	_ = c.Set(ctx, "ttl", []byte("v"), 100*time.Millisecond)
	clk.Advance(100 * time.Millisecond)
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit exactly at ttl boundary")
	}
	clk.Advance(time.Nanosecond)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss strictly after ttl")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry must be removed on read, len=%d", c.Len())
	}
}

// Повторный Set продлевает жизнь нового значения; старый срок не удаляет его.
func TestTTL_ResetExtendsNewestValue(t *testing.T) {
	clk := newFakeClock()
	c := NewLRUCacheTTL(0, 0, WithClock(clk.Now))
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("old"), time.Second)
	clk.Advance(800 * time.Millisecond)
	_ = c.Set(ctx, "k", []byte("new"), time.Second)
	clk.Advance(500 * time.Millisecond) // старый срок уже прошёл

	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != "new" {
		t.Fatalf("expected newest value to survive, got %q %v", got, ok)
	}
}

// Свойство: видимость K зависит только от её собственного Set/ttl.
func TestTTL_IndependentOfOtherKeys(t *testing.T) {
	clk := newFakeClock()
	c := NewLRUCacheTTL(0, 0, WithClock(clk.Now))
	ctx := context.Background()

	_ = c.Set(ctx, "K", []byte("V"), time.Second)
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("other-%d", i)
		_ = c.Set(ctx, key, []byte("x"), time.Duration(i)*10*time.Millisecond+time.Millisecond)
		if i%7 == 0 {
			_ = c.Delete(ctx, key)
		}
		clk.Advance(10 * time.Millisecond)
		if got, ok := c.Get(ctx, "K"); !ok || string(got) != "V" {
			t.Fatalf("step %d: K must be visible before ttl", i)
		}
	}
	clk.Advance(501 * time.Millisecond)
	if _, ok := c.Get(ctx, "K"); ok {
		t.Fatalf("K must be absent after ttl")
	}
}

func TestGet_DoesNotSlideExpiry(t *testing.T) {
	clk := newFakeClock()
	c := NewLRUCacheTTL(0, 0, WithClock(clk.Now))
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), time.Second)
	clk.Advance(900 * time.Millisecond)
	_, _ = c.Get(ctx, "k")
	clk.Advance(200 * time.Millisecond)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatalf("read must not extend ttl")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, "A", []byte("a"), 0)
	_ = c.Set(ctx, "B", []byte("b"), 0)
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, "C", []byte("c"), 0)

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	orig := []byte("value")
	_ = c.Set(ctx, "Z", orig, 0)
	orig[0] = 'X'

	// меняем то, что вернул Get — не должно влиять на кэш
	v1, _ := c.Get(ctx, "Z")
	v1[1] = 'Y'

	v2, _ := c.Get(ctx, "Z")
	if string(v2) != "value" {
		t.Fatalf("cache must store copies, got %q", v2)
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := NewLRUCacheTTL(0, 0)
	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	_ = c.Delete(ctx, "a")
	_ = c.Delete(ctx, "missing")
	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatalf("a must be deleted")
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := c.Get(ctx, "b"); ok || c.Len() != 0 {
		t.Fatalf("Clear must empty the cache")
	}

	// кэш пригоден после Clear
	_ = c.Set(ctx, "c", []byte("3"), 0)
	if _, ok := c.Get(ctx, "c"); !ok {
		t.Fatalf("expected hit after Clear+Set")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewLRUCacheTTL(64, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k-%d", i%100)
				_ = c.Set(ctx, key, []byte{byte(g)}, 0)
				_, _ = c.Get(ctx, key)
				if i%97 == 0 {
					_ = c.Clear(ctx)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Fatalf("capacity exceeded: %d", c.Len())
	}
}
