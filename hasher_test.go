package umap

import (
	"fmt"
	"testing"
)

func TestDefaultHasherDeterministic(t *testing.T) {
	hs := defaultHasher[string]()
	hi := defaultHasher[int]()
	type pair struct{ A, B int }
	hp := defaultHasher[pair]()

	for i := 0; i < 100; i++ {
		s := fmt.Sprintf("key-%d", i)
		if hs(s) != hs(s) {
			t.Fatalf("string hash of %q not deterministic", s)
		}
		if hi(i) != hi(i) {
			t.Fatalf("int hash of %d not deterministic", i)
		}
		p := pair{i, -i}
		if hp(p) != hp(p) {
			t.Fatalf("struct hash of %+v not deterministic", p)
		}
	}
}

// Sequential integers must not collapse into a handful of hashes; the
// finalizer has to spread them.
func TestDefaultHasherSpread(t *testing.T) {
	h := defaultHasher[int]()
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		seen[h(i)] = true
	}
	if len(seen) < 1000 {
		t.Fatalf("1000 sequential ints produced only %d distinct hashes", len(seen))
	}
}

func TestDefaultHasherSalted(t *testing.T) {
	a := defaultHasher[string]()
	b := defaultHasher[string]()
	same := 0
	for i := 0; i < 64; i++ {
		s := fmt.Sprintf("key-%d", i)
		if a(s) == b(s) {
			same++
		}
	}
	if same == 64 {
		t.Fatal("two independent hashers agree on every key; salting is broken")
	}
}

func TestDefaultHasherIntegerKinds(t *testing.T) {
	// Each integer kind takes the mixer path; adjacent keys must not
	// collide since the salted mixer is a bijection.
	if h := defaultHasher[int32](); h(7) == h(8) {
		t.Fatal("int32 hasher collided on adjacent keys")
	}
	if h := defaultHasher[uint64](); h(7) == h(8) {
		t.Fatal("uint64 hasher collided on adjacent keys")
	}
	if h := defaultHasher[uintptr](); h(7) == h(8) {
		t.Fatal("uintptr hasher collided on adjacent keys")
	}
}

func TestNewWithHasherUsesCustomHash(t *testing.T) {
	calls := 0
	m := NewWithHasher[string, int](func(key string) uint64 {
		calls++
		return uint64(len(key))
	})
	m.Insert("a", 1)
	m.Insert("bb", 2)
	m.Contains("a")
	if calls == 0 {
		t.Fatal("custom hash function never called")
	}
	if v, err := m.At("a"); err != nil || *v != 1 {
		t.Fatalf("lookup under custom hash: %v, %v", v, err)
	}
}
