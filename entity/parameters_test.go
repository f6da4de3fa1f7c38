package entity

import "testing"

func TestParametersOrder(t *testing.T) {
	p := NewParameters()
	p.Set("one", "1")
	p.Set("two", "2")
	p.Set("three", "3")

	keys := p.Keys()
	want := []string{"one", "two", "three"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("key %d: got %s, want %s", i, keys[i], key)
		}
	}
}

func TestParametersSetKeepsPosition(t *testing.T) {
	p := NewParameters()
	p.Set("one", "1")
	p.Set("two", "2")
	p.Set("one", "updated")

	if p.Len() != 2 {
		t.Fatalf("got %d entries, want 2", p.Len())
	}
	if got := p.Keys()[0]; got != "one" {
		t.Fatalf("first key: got %s, want one", got)
	}
	if got := p.Get("one"); got != "updated" {
		t.Fatalf("value: got %s, want updated", got)
	}
}

func TestParametersAppend(t *testing.T) {
	p := NewParameters()
	p.Set("ref", "order1")
	p.Append("ref", "-suffix")
	if got := p.Get("ref"); got != "order1-suffix" {
		t.Fatalf("got %s, want order1-suffix", got)
	}

	p.Append("fresh", "value")
	if got := p.Get("fresh"); got != "value" {
		t.Fatalf("got %s, want value", got)
	}
	if got := p.Keys()[1]; got != "fresh" {
		t.Fatalf("second key: got %s, want fresh", got)
	}
}

func TestParametersSignable(t *testing.T) {
	p := NewParameters()
	p.Set("a", "1")
	p.Set("b", "2")
	p.Set("c", "3")
	if got := p.Signable(); got != "a=1&b=2&c=3" {
		t.Fatalf("got %s", got)
	}
}

func TestParametersClone(t *testing.T) {
	p := NewParameters()
	p.Set("a", "1")
	clone := p.Clone()
	clone.Set("a", "changed")
	clone.Set("b", "2")

	if got := p.Get("a"); got != "1" {
		t.Fatalf("original mutated: %s", got)
	}
	if p.Has("b") {
		t.Fatal("original gained a key from the clone")
	}
}
