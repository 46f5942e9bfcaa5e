package umap

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
)

func TestToMapFromMap(t *testing.T) {
	m := New[string, int]()
	m.FromMap(map[string]int{"a": 1, "b": 2, "c": 3})
	if m.Size() != 3 {
		t.Fatalf("size after FromMap: %d", m.Size())
	}

	// FromMap overwrites present keys.
	m.FromMap(map[string]int{"b": 20})
	if v, _ := m.At("b"); *v != 20 {
		t.Fatalf("FromMap did not overwrite: got %d", *v)
	}

	got := m.ToMap()
	want := map[string]int{"a": 1, "b": 20, "c": 3}
	if len(got) != len(want) {
		t.Fatalf("ToMap: %v", got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("ToMap[%q] = %d, want %d", k, got[k], v)
		}
	}
	assertInvariants(t, m)
}

func TestString(t *testing.T) {
	m := New[string, int]()
	m.Insert("k", 7)
	s := m.String()
	if !strings.HasPrefix(s, "Map[") {
		t.Fatalf("String prefix: %q", s)
	}
	if !strings.Contains(s, "k:7") {
		t.Fatalf("String content: %q", s)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	m := New[string, int]()
	m.FromMap(map[string]int{"x": 1, "y": 2})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Map[string, int]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Size() != 2 {
		t.Fatalf("size after round trip: %d", back.Size())
	}
	for k, v := range m.ToMap() {
		got, err := back.At(k)
		if err != nil || *got != v {
			t.Fatalf("round trip lost (%q, %d): %v", k, v, err)
		}
	}
	assertInvariants(t, &back)
}

func TestDumpValues(t *testing.T) {
	m := New[int, string](WithBucketCount(8))
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")

	var sb strings.Builder
	if err := m.DumpValues(&sb); err != nil {
		t.Fatalf("DumpValues: %v", err)
	}
	got := strings.Fields(sb.String())
	sort.Strings(got)
	want := []string{"one", "three", "two"}
	if len(got) != len(want) {
		t.Fatalf("dumped %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dumped %v, want the values %v", got, want)
		}
	}

	var empty Map[int, string]
	sb.Reset()
	if err := empty.DumpValues(&sb); err != nil || sb.Len() != 0 {
		t.Fatalf("DumpValues on zero map wrote %q (err %v)", sb.String(), err)
	}
}
