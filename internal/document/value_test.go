package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

func TestNewMappingDuplicateKeys(t *testing.T) {
	m := NewMapping(
		Entry{Key: "b", Value: 1},
		Entry{Key: "a", Value: 2},
		Entry{Key: "b", Value: 3},
	)

	if diff := cmp.Diff([]string{"b", "a"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("b"); v != 3 {
		t.Errorf("Expected last value 3 for b, got %v", v)
	}
}

func TestNilMapping(t *testing.T) {
	var m *Mapping
	if m.Len() != 0 || m.Keys() != nil || m.Entries() != nil {
		t.Error("Expected nil mapping to behave as empty")
	}
	if _, ok := m.Get("x"); ok {
		t.Error("Expected Get on nil mapping to miss")
	}
}

func TestIndex(t *testing.T) {
	root := NewMapping(
		Entry{Key: "list", Value: Sequence{"x", "y"}},
		Entry{Key: "n", Value: int64(4)},
	)

	v, err := Index(root, "list")
	if err != nil {
		t.Fatalf("Index(root, list) failed: %v", err)
	}
	got, err := Index(v, 1)
	if err != nil {
		t.Fatalf("Index(list, 1) failed: %v", err)
	}
	if got != "y" {
		t.Errorf("Expected y, got %v", got)
	}

	failures := []struct {
		name string
		v    any
		key  any
	}{
		{"int key on mapping", root, 0},
		{"missing key", root, "nope"},
		{"string key on sequence", v, "0"},
		{"negative index", v, -1},
		{"index past end", v, 2},
		{"scalar", int64(4), "x"},
		{"nil", nil, 0},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Index(tt.v, tt.key); !errors.Is(err, kerrors.ErrIndex) {
				t.Errorf("Expected ErrIndex, got %v", err)
			}
		})
	}
}

func TestMappingMarshalJSONKeepsOrder(t *testing.T) {
	m := NewMapping(
		Entry{Key: "zeta", Value: int64(1)},
		Entry{Key: "alpha", Value: Sequence{NewMapping(Entry{Key: "y", Value: true}, Entry{Key: "x", Value: nil})}},
	)

	out, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	want := `{"zeta":1,"alpha":[{"y":true,"x":null}]}`
	if string(out) != want {
		t.Errorf("MarshalJSON = %s, want %s", out, want)
	}
}
