package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

// TagPolicy says what to do with a YAML value carrying a custom (non "!!")
// tag such as !Ref or !include.
type TagPolicy int

const (
	// TagKeep drops the tag and keeps the tagged value.
	TagKeep TagPolicy = iota
	// TagUnsupported replaces the tagged value with an Unsupported marker.
	TagUnsupported
	// TagReject fails parsing with errors.ErrUnsupportedTag.
	TagReject
)

var tagPolicyNames = map[TagPolicy]string{
	TagKeep:        "keep",
	TagUnsupported: "unsupported",
	TagReject:      "reject",
}

func (p TagPolicy) String() string {
	if name, ok := tagPolicyNames[p]; ok {
		return name
	}
	return "TagPolicy(" + strconv.Itoa(int(p)) + ")"
}

// ParseTagPolicy parses "keep", "unsupported" or "reject".
func ParseTagPolicy(s string) (TagPolicy, error) {
	for p, name := range tagPolicyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return TagKeep, fmt.Errorf("unknown YAML tag policy %q (want keep, unsupported or reject)", s)
}

// YAML reads .yaml and .yml files. Only the first document of a stream is
// used.
type YAML struct {
	Tags TagPolicy
}

// Name implements Format.
func (YAML) Name() string { return "YAML" }

// Suffixes implements Format.
func (YAML) Suffixes() []string { return []string{"yaml", "yml"} }

// TypeDescription implements Format.
func (YAML) TypeDescription(v any) string { return describeJSON(v) }

// Parse implements Format. The syntax tree is converted directly so that
// mapping order is kept and custom tags follow y.Tags.
func (y YAML) Parse(data []byte) (any, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}
	if len(file.Docs) == 0 || file.Docs[0] == nil {
		return NewMapping(), nil
	}
	switch file.Docs[0].Body.(type) {
	case nil, *ast.CommentGroupNode:
		return NewMapping(), nil
	}

	c := &yamlConverter{tags: y.Tags, anchors: make(map[string]any)}
	return c.convert(file.Docs[0].Body)
}

type yamlConverter struct {
	tags    TagPolicy
	anchors map[string]any
}

func (c *yamlConverter) convert(node ast.Node) (any, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case *ast.DocumentNode:
		return c.convert(n.Body)
	case *ast.NullNode:
		return nil, nil
	case *ast.BoolNode:
		return n.Value, nil
	case *ast.IntegerNode:
		return yamlInteger(n.Value), nil
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.InfinityNode:
		return n.Value, nil
	case *ast.NanNode:
		return math.NaN(), nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return "", nil
		}
		return n.Value.Value, nil
	case *ast.MappingNode:
		return c.mapping(n.Values)
	case *ast.MappingValueNode:
		return c.mapping([]*ast.MappingValueNode{n})
	case *ast.MappingKeyNode:
		return c.convert(n.Value)
	case *ast.SequenceNode:
		seq := make(Sequence, 0, len(n.Values))
		for _, e := range n.Values {
			v, err := c.convert(e)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case *ast.AnchorNode:
		v, err := c.convert(n.Value)
		if err != nil {
			return nil, err
		}
		c.anchors[n.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := c.anchors[name]
		if !ok {
			return nil, fmt.Errorf("unknown alias %q at %s", name, position(n))
		}
		return v, nil
	case *ast.TagNode:
		return c.tagged(n)
	case *ast.CommentGroupNode:
		return nil, nil
	}
	return nil, fmt.Errorf("unsupported YAML node %s at %s", node.Type(), position(node))
}

func (c *yamlConverter) mapping(values []*ast.MappingValueNode) (any, error) {
	m := NewMapping()
	for _, mv := range values {
		if _, ok := mv.Key.(*ast.MergeKeyNode); ok {
			if err := c.merge(m, mv.Value); err != nil {
				return nil, err
			}
			continue
		}

		k, err := c.convert(mv.Key)
		if err != nil {
			return nil, err
		}
		v, err := c.convert(mv.Value)
		if err != nil {
			return nil, err
		}
		m.set(yamlKey(k), v)
	}
	return m, nil
}

// merge applies a "<<" entry. Keys already present win over merged ones.
func (c *yamlConverter) merge(m *Mapping, node ast.Node) error {
	v, err := c.convert(node)
	if err != nil {
		return err
	}

	var sources []*Mapping
	switch t := v.(type) {
	case *Mapping:
		sources = append(sources, t)
	case Sequence:
		for _, e := range t {
			src, ok := e.(*Mapping)
			if !ok {
				return fmt.Errorf("merge key at %s expects mappings", position(node))
			}
			sources = append(sources, src)
		}
	default:
		return fmt.Errorf("merge key at %s expects a mapping", position(node))
	}

	for _, src := range sources {
		for _, e := range src.Entries() {
			if _, exists := m.Get(e.Key); !exists {
				m.set(e.Key, e.Value)
			}
		}
	}
	return nil
}

func (c *yamlConverter) tagged(n *ast.TagNode) (any, error) {
	tag := n.Start.Value
	if strings.HasPrefix(tag, "!!") || strings.HasPrefix(tag, "tag:yaml.org,2002:") {
		return c.standardTag(strings.TrimPrefix(strings.TrimPrefix(tag, "tag:yaml.org,2002:"), "!!"), n.Value)
	}

	switch c.tags {
	case TagReject:
		return nil, fmt.Errorf("%w %s at %s", kerrors.ErrUnsupportedTag, tag, position(n))
	case TagUnsupported:
		text := ""
		if n.Value != nil {
			text = strings.TrimSpace(n.Value.String())
		}
		return Unsupported{Tag: tag, Text: text}, nil
	}
	return c.convert(n.Value)
}

func (c *yamlConverter) standardTag(name string, node ast.Node) (any, error) {
	v, err := c.convert(node)
	if err != nil {
		return nil, err
	}

	switch name {
	case "str":
		switch t := v.(type) {
		case *Mapping, Sequence:
		case string:
			// Block scalars carry their content in the node, not the token.
			return t, nil
		default:
			if node != nil {
				return node.GetToken().Value, nil
			}
		}
	case "int":
		if s, ok := v.(string); ok {
			i, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("!!int at %s: %w", position(node), err)
			}
			return i, nil
		}
	case "float":
		switch t := v.(type) {
		case int64:
			return float64(t), nil
		case uint64:
			return float64(t), nil
		case string:
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, fmt.Errorf("!!float at %s: %w", position(node), err)
			}
			return f, nil
		}
	case "timestamp":
		if s, ok := v.(string); ok {
			return parseTimestamp(s, node)
		}
	}
	// bool, null, map, seq, binary (kept as its base64 text) and the rest
	return v, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-1-2T15:4:5.999999999",
	"2006-1-2 15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

func parseTimestamp(s string, node ast.Node) (any, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("!!timestamp at %s: cannot parse %q", position(node), s)
}

func yamlInteger(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int64, uint64:
		return t
	case uint:
		return uint64(t)
	}
	return v
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return Summary(k)
}

func position(n ast.Node) string {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return "unknown position"
	}
	return fmt.Sprintf("line %d, column %d", tok.Position.Line, tok.Position.Column)
}
