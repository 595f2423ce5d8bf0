package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// NodeKind tags the shape of a Node.
type NodeKind int

const (
	ScalarNode NodeKind = iota
	MappingNode
	SequenceNode
)

func (k NodeKind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case MappingNode:
		return "mapping"
	case SequenceNode:
		return "sequence"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// ScalarKind tags the type of a scalar leaf.
type ScalarKind int

const (
	StringScalar ScalarKind = iota
	NumberScalar
	BoolScalar
	NullScalar
)

// Scalar is a leaf value. Text holds the literal source text; for numbers it
// is a valid JSON number so it can be re-emitted verbatim.
type Scalar struct {
	Kind ScalarKind
	Text string
}

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key   string
	Value *Node
}

// Node is an ordered token tree. Mappings keep the insertion order of the
// source document.
type Node struct {
	Kind    NodeKind
	Scalar  Scalar
	Entries []Entry
	Items   []*Node
}

// String builds a string scalar node.
func String(s string) *Node {
	return &Node{Kind: ScalarNode, Scalar: Scalar{Kind: StringScalar, Text: s}}
}

// Number builds a number scalar node from its literal text.
func Number(text string) *Node {
	return &Node{Kind: ScalarNode, Scalar: Scalar{Kind: NumberScalar, Text: text}}
}

// Map builds a mapping node from alternating key/value arguments.
func Map(kv ...any) *Node {
	n := &Node{Kind: MappingNode}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Entries = append(n.Entries, Entry{Key: kv[i].(string), Value: kv[i+1].(*Node)})
	}
	return n
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Scalar: n.Scalar}
	if n.Entries != nil {
		out.Entries = make([]Entry, len(n.Entries))
		for i, e := range n.Entries {
			out.Entries[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
		}
	}
	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

// Get returns the value stored under key in a mapping node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != MappingNode {
		return nil, false
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the mapping keys in source order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.Entries))
	for _, e := range n.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Text renders a leaf as a single string. Sequences are joined with ", ",
// which is how font stacks are written in CSS.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case ScalarNode:
		if n.Scalar.Kind == NullScalar {
			return ""
		}
		return n.Scalar.Text
	case SequenceNode:
		parts := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			parts = append(parts, item.Text())
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// MarshalJSON writes the tree as JSON preserving mapping order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case ScalarNode:
		switch n.Scalar.Kind {
		case StringScalar:
			q, err := quoteJSON(n.Scalar.Text)
			if err != nil {
				return err
			}
			buf.Write(q)
		case NumberScalar, BoolScalar:
			buf.WriteString(n.Scalar.Text)
		case NullScalar:
			buf.WriteString("null")
		}
	case MappingNode:
		buf.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			q, err := quoteJSON(e.Key)
			if err != nil {
				return err
			}
			buf.Write(q)
			buf.WriteByte(':')
			if err := e.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("tokens: cannot encode %s node", n.Kind)
	}
	return nil
}

// quoteJSON quotes s without the HTML escaping json.Marshal applies, so CSS
// values such as "a > b" survive unchanged.
func quoteJSON(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decodeJSON reads a single JSON value into a Node, keeping object key order.
// Numbers keep their literal text.
func decodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	n, err := decodeJSONValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("offset %d: unexpected data after top-level value", dec.InputOffset())
		}
		return nil, err
	}
	return n, nil
}

func decodeJSONValue(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			n := &Node{Kind: MappingNode}
			seen := map[string]struct{}{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("offset %d: object key must be a string", dec.InputOffset())
				}
				if _, dup := seen[key]; dup {
					return nil, fmt.Errorf("offset %d: duplicate key %q", dec.InputOffset(), key)
				}
				seen[key] = struct{}{}
				child, err := decodeJSONNext(dec)
				if err != nil {
					return nil, err
				}
				n.Entries = append(n.Entries, Entry{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &Node{Kind: SequenceNode}
			for dec.More() {
				child, err := decodeJSONNext(dec)
				if err != nil {
					return nil, err
				}
				n.Items = append(n.Items, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		default:
			return nil, fmt.Errorf("offset %d: unexpected %q", dec.InputOffset(), v.String())
		}
	case string:
		return String(v), nil
	case json.Number:
		return Number(v.String()), nil
	case bool:
		return &Node{Kind: ScalarNode, Scalar: Scalar{Kind: BoolScalar, Text: fmt.Sprint(v)}}, nil
	case nil:
		return &Node{Kind: ScalarNode, Scalar: Scalar{Kind: NullScalar}}, nil
	default:
		return nil, fmt.Errorf("offset %d: unsupported json token %T", dec.InputOffset(), tok)
	}
}

func decodeJSONNext(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeJSONValue(dec, tok)
}

// parseYAML reads a YAML document into a Node.
func parseYAML(data []byte) (*Node, error) {
	var y yaml.Node
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, err
	}
	if y.Kind == 0 {
		return nil, errors.New("empty document")
	}
	return decodeYAML(&y)
}

// decodeYAML converts a yaml.v3 node tree into a Node.
func decodeYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return nil, fmt.Errorf("empty document")
		}
		return decodeYAML(y.Content[0])
	case yaml.AliasNode:
		if y.Alias == nil {
			return nil, fmt.Errorf("line %d: dangling alias", y.Line)
		}
		return decodeYAML(y.Alias)
	case yaml.MappingNode:
		n := &Node{Kind: MappingNode}
		seen := make(map[string]struct{}, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			k, v := y.Content[i], y.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			if _, dup := seen[k.Value]; dup {
				return nil, fmt.Errorf("line %d: duplicate key %q", k.Line, k.Value)
			}
			seen[k.Value] = struct{}{}
			child, err := decodeYAML(v)
			if err != nil {
				return nil, err
			}
			n.Entries = append(n.Entries, Entry{Key: k.Value, Value: child})
		}
		return n, nil
	case yaml.SequenceNode:
		n := &Node{Kind: SequenceNode}
		for _, item := range y.Content {
			child, err := decodeYAML(item)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, child)
		}
		return n, nil
	case yaml.ScalarNode:
		return &Node{Kind: ScalarNode, Scalar: decodeScalar(y)}, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", y.Line, y.Kind)
	}
}

func decodeScalar(y *yaml.Node) Scalar {
	switch y.ShortTag() {
	case "!!int", "!!float":
		// YAML allows numeric forms JSON does not (0x1F, .inf); keep those as text.
		if json.Valid([]byte(y.Value)) {
			return Scalar{Kind: NumberScalar, Text: y.Value}
		}
	case "!!bool":
		var b bool
		if err := y.Decode(&b); err == nil {
			if b {
				return Scalar{Kind: BoolScalar, Text: "true"}
			}
			return Scalar{Kind: BoolScalar, Text: "false"}
		}
	case "!!null":
		return Scalar{Kind: NullScalar}
	}
	return Scalar{Kind: StringScalar, Text: y.Value}
}
