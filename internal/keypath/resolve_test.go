package keypath

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/puqeko/conflook/internal/document"
	kerrors "github.com/puqeko/conflook/internal/errors"
)

func mustLoad(t *testing.T, name, src string) *document.Document {
	t.Helper()
	doc, err := document.Load(name, []byte(src))
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", name, err)
	}
	return doc
}

const services = `{
  "name": "shop",
  "servers": [
    {"host": "a.example", "port": 80},
    {"host": "b.example", "port": 81},
    {"host": "c.example", "port": 82}
  ],
  "database": {"primary": {"url": "postgres://db"}, "pool_size": 5},
  "debug-mode": false,
  "debug": true
}`

func TestFollowEmptyKeypathReturnsRoot(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	value, path, err := Follow(doc, "")
	if err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if value != doc.Root() {
		t.Error("Expected the root value")
	}
	if path != "" {
		t.Errorf("Expected empty path, got %q", path)
	}
}

func TestFollowExact(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	tests := []struct {
		keypath string
		want    any
	}{
		{"name", "shop"},
		{"servers.[2].host", "c.example"},
		{"servers.[0].port", int64(80)},
		{"database.primary.url", "postgres://db"},
		{"database.pool_size", int64(5)},
		{"debug-mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.keypath, func(t *testing.T) {
			for _, approx := range []bool{false, true} {
				value, path, err := Follow(doc, tt.keypath, WithApprox(approx))
				if err != nil {
					t.Fatalf("Follow(approx=%t) failed: %v", approx, err)
				}
				if diff := cmp.Diff(tt.want, value); diff != "" {
					t.Errorf("value mismatch (-want +got):\n%s", diff)
				}
				if path != tt.keypath {
					t.Errorf("Expected actual path %q, got %q", tt.keypath, path)
				}
			}
		})
	}
}

func TestFollowIndexCanonicalised(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	_, path, err := Follow(doc, "servers.[002].host")
	if err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if path != "servers.[2].host" {
		t.Errorf("Expected servers.[2].host, got %q", path)
	}
}

func TestFollowApproxPrefix(t *testing.T) {
	doc := mustLoad(t, "ab.json", `{"alpha": 1, "beta": 2}`)

	value, path, err := Follow(doc, "al", WithApprox(true))
	if err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if value != int64(1) {
		t.Errorf("Expected 1, got %#v", value)
	}
	if path != "alpha" {
		t.Errorf("Expected actual path alpha, got %q", path)
	}
}

func TestFollowApproxPrefixIsLexicographic(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	// "debug" exists exactly; "deb" prefixes both "debug" and "debug-mode".
	_, path, err := Follow(doc, "deb", WithApprox(true))
	if err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if path != "debug" {
		t.Errorf("Expected debug, got %q", path)
	}

	_, path, err = Follow(doc, "dat.prim.u", WithApprox(true))
	if err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if path != "database.primary.url" {
		t.Errorf("Expected database.primary.url, got %q", path)
	}
}

func TestFollowApproxPrefersPrefixOverFuzzy(t *testing.T) {
	// "hots" is a near miss for "host" but a prefix of "hotstandby".
	doc := mustLoad(t, "h.json", `{"host": 1, "hotstandby": 2}`)

	_, path, err := Follow(doc, "hots", WithApprox(true))
	if err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if path != "hotstandby" {
		t.Errorf("Expected prefix match hotstandby, got %q", path)
	}
}

func TestFollowApproxFuzzy(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	value, path, err := Follow(doc, "databse.primray", WithApprox(true))
	if err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if path != "database.primary" {
		t.Errorf("Expected database.primary, got %q", path)
	}
	if _, ok := value.(*document.Mapping); !ok {
		t.Errorf("Expected mapping, got %T", value)
	}
}

func TestFollowApproxIsStable(t *testing.T) {
	doc := mustLoad(t, "t.json", `{"cat": 1, "car": 2, "bat": 3}`)

	first := TryFollow(doc, "cax", WithApprox(true))
	if !first.OK() {
		t.Fatalf("TryFollow failed: %v", first.Err)
	}
	for i := 0; i < 20; i++ {
		again := TryFollow(doc, "cax", WithApprox(true))
		if again.Path != first.Path {
			t.Fatalf("Run %d chose %q, first run chose %q", i, again.Path, first.Path)
		}
	}
	// car and cat tie; the smaller key wins.
	if first.Path != "car" {
		t.Errorf("Expected car, got %q", first.Path)
	}
}

func TestFollowApproxOnlyReturnsPresentKeys(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	for _, kp := range []string{"nam", "srv", "dbase.prim", "debu", "d"} {
		res := TryFollow(doc, kp, WithApprox(true))
		if !res.OK() {
			continue
		}
		if _, _, err := Follow(doc, res.Path); err != nil {
			t.Errorf("Actual path %q for %q does not resolve exactly: %v", res.Path, kp, err)
		}
	}
}

func TestFollowErrors(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	tests := []struct {
		name    string
		keypath string
		approx  bool
		kind    error
		message string
	}{
		{"non-digit index", "servers.[2a]", false, kerrors.ErrInvalidIndexSegment, `index for "servers.[2a]" must be an integer`},
		{"index on mapping", "database.[0]", false, kerrors.ErrNotIndexable, `value at "database.[0]" is not indexable`},
		{"index out of range", "servers.[5]", false, kerrors.ErrIndexOutOfRange, `index for "servers.[5]" out of range [3]`},
		{"index equal to length", "servers.[3]", false, kerrors.ErrIndexOutOfRange, "out of range [3]"},
		{"huge index", "servers.[99999999999999999999]", false, kerrors.ErrIndexOutOfRange, "out of range"},
		{"key on scalar", "name.first", false, kerrors.ErrNotExplorableMapping, `value at "name.first" is not an explorable mapping`},
		{"key on sequence", "servers.host", true, kerrors.ErrNotExplorableMapping, "not an explorable mapping"},
		{"missing key", "database.replica", false, kerrors.ErrNoSuchKey, `no key "database.replica"`},
		{"no close match", "database.zzzzzz", true, kerrors.ErrNoCloseMatch, `no close matches for "database.zzzzzz"`},
		{"empty segment", "database..url", false, kerrors.ErrInvalidKeypathSegment, "invalid keypath"},
		{"disallowed char", "database.pri$mary", false, kerrors.ErrInvalidKeypathSegment, "invalid keypath"},
		{"empty index", "servers.[]", false, kerrors.ErrInvalidKeypathSegment, "invalid keypath"},
		{"trailing dot", "name.", false, kerrors.ErrInvalidKeypathSegment, "invalid keypath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, path, err := Follow(doc, tt.keypath, WithApprox(tt.approx))
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Expected %v, got %v", tt.kind, err)
			}
			if value != nil || path != "" {
				t.Errorf("Expected no value and path on failure, got %#v, %q", value, path)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected message containing %q, got %q", tt.message, err.Error())
			}

			var kerr *Error
			if !errors.As(err, &kerr) {
				t.Fatalf("Expected *Error, got %T", err)
			}
			if kerr.Keypath != tt.keypath {
				t.Errorf("Expected Keypath %q, got %q", tt.keypath, kerr.Keypath)
			}
		})
	}
}

func TestFollowInvalidSegmentPointer(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	tests := []struct {
		keypath string
		offset  int
	}{
		{"database.pri$mary", 12},
		{"database..url", 9},
		{".name", 0},
		{"servers.[]", 8},
		{"servers.[1", 8},
	}

	for _, tt := range tests {
		_, _, err := Follow(doc, tt.keypath)
		var kerr *Error
		if !errors.As(err, &kerr) {
			t.Fatalf("Follow(%q): expected *Error, got %v", tt.keypath, err)
		}
		if kerr.Offset != tt.offset {
			t.Errorf("Follow(%q): expected offset %d, got %d", tt.keypath, tt.offset, kerr.Offset)
		}
		want := "  " + tt.keypath + "\n  " + strings.Repeat(" ", tt.offset) + "^"
		if !strings.HasSuffix(err.Error(), want) {
			t.Errorf("Follow(%q): expected pointer\n%s\ngot\n%s", tt.keypath, want, err.Error())
		}
	}
}

func TestFollowReportsEarliestFailure(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	// the malformed third segment is never reached
	_, _, err := Follow(doc, "missing.[x].$")
	if !errors.Is(err, kerrors.ErrNoSuchKey) {
		t.Errorf("Expected ErrNoSuchKey, got %v", err)
	}
}

func TestFollowScenarioTypeDescriptions(t *testing.T) {
	doc := mustLoad(t, "x.json", `{"a": [1,2], "b": "x"}`)

	a, _, err := Follow(doc, "a")
	if err != nil {
		t.Fatalf("Follow(a) failed: %v", err)
	}
	if got := doc.TypeDescription(a); got != "array" {
		t.Errorf("Expected array, got %q", got)
	}

	first, path, err := Follow(doc, "a.[0]")
	if err != nil {
		t.Fatalf("Follow(a.[0]) failed: %v", err)
	}
	if first != int64(1) || path != "a.[0]" {
		t.Errorf("Expected 1 at a.[0], got %#v at %q", first, path)
	}
	if got := doc.TypeDescription(first); got != "number" {
		t.Errorf("Expected number, got %q", got)
	}
}

func TestFollowAcrossFormats(t *testing.T) {
	docs := map[string]string{
		"c.json": `{"server": {"ports": [8080, 8081]}}`,
		"c.toml": "[server]\nports = [8080, 8081]\n",
		"c.yaml": "server:\n  ports:\n    - 8080\n    - 8081\n",
	}

	for name, src := range docs {
		doc := mustLoad(t, name, src)
		value, path, err := Follow(doc, "serv.port.[1]", WithApprox(true))
		if err != nil {
			t.Fatalf("%s: Follow failed: %v", name, err)
		}
		if value != int64(8081) {
			t.Errorf("%s: expected 8081, got %#v", name, value)
		}
		if path != "server.ports.[1]" {
			t.Errorf("%s: expected server.ports.[1], got %q", name, path)
		}
	}
}

func TestTryFollowNeverFails(t *testing.T) {
	doc := mustLoad(t, "s.json", services)

	inputs := []string{"", ".", "..", "[", "]", "[]", "[-1]", "servers.[-1]", "a b", "ü", "servers.[1].port.x", "name.[0]"}
	for _, in := range inputs {
		for _, approx := range []bool{false, true} {
			res := TryFollow(doc, in, WithApprox(approx))
			if res.OK() {
				if res.String() != res.Path {
					t.Errorf("TryFollow(%q): String() = %q, want path %q", in, res.String(), res.Path)
				}
				continue
			}
			if res.Value != nil {
				t.Errorf("TryFollow(%q): expected nil value on failure", in)
			}
			if res.String() == "" {
				t.Errorf("TryFollow(%q): expected an error description", in)
			}
		}
	}

	if res := TryFollow(nil, "a"); res.OK() {
		t.Error("Expected failure on a nil document")
	}
}

func TestTryFollowNullValue(t *testing.T) {
	doc := mustLoad(t, "n.json", `{"owner": null}`)

	res := TryFollow(doc, "owner")
	if !res.OK() {
		t.Fatalf("Expected success resolving a null value, got %v", res.Err)
	}
	if res.Value != nil || res.Path != "owner" {
		t.Errorf("Expected nil value at owner, got %#v at %q", res.Value, res.Path)
	}
}
