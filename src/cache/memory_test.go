package cache

import (
	"testing"
	"time"
)

// TestMemory_RoundTrip tests set, get and delete
func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory(time.Minute)

	if _, ok := m.Get("missing"); ok {
		t.Error("expected a miss for an unknown key")
	}

	m.Set("key", []byte("value"), time.Minute)
	b, ok := m.Get("key")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if string(b) != "value" {
		t.Errorf("expected value, got %q", b)
	}

	m.Delete("key")
	if _, ok := m.Get("key"); ok {
		t.Error("expected a miss after Delete")
	}
}

// TestMemory_ForeignValueType tests that an entry holding anything but
// bytes reads as a miss, never as a nil hit
func TestMemory_ForeignValueType(t *testing.T) {
	m := NewMemory(time.Minute)
	m.c.Set("key", 42, time.Minute)

	b, ok := m.Get("key")
	if ok {
		t.Error("expected a miss for a non-byte entry")
	}
	if b != nil {
		t.Errorf("expected nil bytes, got %v", b)
	}
}

// TestMemory_Expiry tests that entries honor their TTL
func TestMemory_Expiry(t *testing.T) {
	m := NewMemory(time.Minute)
	m.Set("key", []byte("value"), time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	if _, ok := m.Get("key"); ok {
		t.Error("expected the entry to expire")
	}
}
