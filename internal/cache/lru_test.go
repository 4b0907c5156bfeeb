package cache

import "testing"

func TestLRUGetPut(t *testing.T) {
	c := NewLRU[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache succeeded")
	}

	c.Put("a", 1)
	c.Put("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v", v, ok)
	}

	// b is now the oldest.
	c.Put("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry not evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %q evicted", k)
		}
	}
}

func TestLRUUpdate(t *testing.T) {
	c := NewLRU[int, string](2)
	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(1, "uno")
	c.Put(3, "three")

	if v, _ := c.Get(1); v != "uno" {
		t.Errorf("Get(1) = %q, want updated value", v)
	}
	if _, ok := c.Get(2); ok {
		t.Error("update did not refresh recency")
	}
}

func TestLRUGetOrCreate(t *testing.T) {
	c := NewLRU[int, int](4)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	for i := 0; i < 3; i++ {
		if v := c.GetOrCreate(7, create); v != 42 {
			t.Fatalf("GetOrCreate() = %d", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Len != 1 || s.Capacity != 4 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestLRUClearAndCapacity(t *testing.T) {
	c := NewLRU[int, int](0)
	c.Put(1, 1)
	c.Put(2, 2)
	if c.Len() != 1 {
		t.Errorf("zero capacity cache holds %d entries, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Error("Clear() left entries")
	}
	c.Put(3, 3)
	if v, ok := c.Get(3); !ok || v != 3 {
		t.Error("cache unusable after Clear")
	}
}
