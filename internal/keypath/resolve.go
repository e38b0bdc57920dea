package keypath

import (
	"strconv"
	"strings"

	"github.com/puqeko/conflook/internal/document"
	kerrors "github.com/puqeko/conflook/internal/errors"
)

// Result is the outcome of TryFollow. On success Err is nil and Path is the
// actual path followed; on failure Value is nil and Err is an *Error.
type Result struct {
	Value any
	Path  string
	Err   error
}

// OK reports whether the keypath was followed to the end.
func (r Result) OK() bool {
	return r.Err == nil
}

// String returns the actual path on success and the error description on
// failure.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Path
}

// Follow walks doc along expr and returns the value reached and the actual
// path taken. An empty expr returns the root and an empty path.
func Follow(doc *document.Document, expr string, opts ...Option) (any, string, error) {
	var root any
	if doc != nil {
		root = doc.Root()
	}
	return FollowValue(root, expr, opts...)
}

// FollowValue is Follow starting from an arbitrary value of a document tree.
func FollowValue(root any, expr string, opts ...Option) (any, string, error) {
	if expr == "" {
		return root, "", nil
	}

	o := newOptions(opts)
	cur := root
	var actual []string
	for _, seg := range split(expr) {
		next, taken, err := step(cur, seg, expr, actual, o)
		if err != nil {
			return nil, "", err
		}
		cur = next
		actual = append(actual, taken)
	}

	return cur, strings.Join(actual, "."), nil
}

// TryFollow is Follow with every failure folded into the Result.
func TryFollow(doc *document.Document, expr string, opts ...Option) Result {
	value, path, err := Follow(doc, expr, opts...)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: value, Path: path}
}

func step(cur any, seg segment, expr string, actual []string, o options) (any, string, error) {
	fail := func(kind error) *Error {
		return &Error{
			Kind:    kind,
			Keypath: expr,
			Path:    strings.Join(append(actual[:len(actual):len(actual)], seg.raw), "."),
			Segment: seg.raw,
			Offset:  seg.offset,
		}
	}

	if seg.isIndex() {
		digits := seg.index()
		if !isDigits(digits) {
			return nil, "", fail(kerrors.ErrInvalidIndexSegment)
		}
		seq, ok := cur.(document.Sequence)
		if !ok {
			return nil, "", fail(kerrors.ErrNotIndexable)
		}
		idx, err := strconv.Atoi(digits)
		if err != nil || idx >= len(seq) {
			e := fail(kerrors.ErrIndexOutOfRange)
			e.Length = len(seq)
			return nil, "", e
		}
		return seq[idx], Index(idx), nil
	}

	if bad := badChar(seg.raw); bad >= 0 {
		e := fail(kerrors.ErrInvalidKeypathSegment)
		e.Offset = seg.offset + bad
		return nil, "", e
	}

	m, ok := cur.(*document.Mapping)
	if !ok {
		return nil, "", fail(kerrors.ErrNotExplorableMapping)
	}
	if v, ok := m.Get(seg.raw); ok {
		return v, seg.raw, nil
	}
	if !o.approx {
		return nil, "", fail(kerrors.ErrNoSuchKey)
	}

	choice, ok := closest(seg.raw, m.Keys(), o.cutoff)
	if !ok {
		return nil, "", fail(kerrors.ErrNoCloseMatch)
	}
	v, _ := m.Get(choice)
	return v, choice, nil
}
