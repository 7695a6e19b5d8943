package bank

import (
	"strconv"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// node is an order-preserving view over a parsed bank document. Go maps
// lose key order, so chapters, questions and answers are walked through
// this instead of being decoded into map types.
type node interface {
	// Get returns the member named key of an object node.
	Get(key string) (node, bool)

	// Each calls fn for every member of an object node in document order.
	Each(fn func(key string, v node))

	// Items returns the elements of an array node.
	Items() []node

	// Text returns a scalar as a string.
	Text() string

	// Value returns the node as plain Go values for schema validation.
	Value() any
}

// jsonNode wraps a gjson result.
type jsonNode struct {
	r gjson.Result
}

func (n jsonNode) Get(key string) (node, bool) {
	if !n.r.IsObject() {
		return nil, false
	}
	var found gjson.Result
	n.r.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
			return false
		}
		return true
	})
	if !found.Exists() {
		return nil, false
	}
	return jsonNode{r: found}, true
}

func (n jsonNode) Each(fn func(key string, v node)) {
	if !n.r.IsObject() {
		return
	}
	n.r.ForEach(func(k, v gjson.Result) bool {
		fn(k.String(), jsonNode{r: v})
		return true
	})
}

func (n jsonNode) Items() []node {
	if !n.r.IsArray() {
		return nil
	}
	arr := n.r.Array()
	out := make([]node, 0, len(arr))
	for _, v := range arr {
		out = append(out, jsonNode{r: v})
	}
	return out
}

func (n jsonNode) Text() string { return n.r.String() }

func (n jsonNode) Value() any { return n.r.Value() }

// yamlNode wraps a yaml.v3 node.
type yamlNode struct {
	n *yaml.Node
}

func newYAMLNode(n *yaml.Node) yamlNode {
	for n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return yamlNode{n: n}
}

func (y yamlNode) Get(key string) (node, bool) {
	if y.n.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(y.n.Content); i += 2 {
		if y.n.Content[i].Value == key {
			return newYAMLNode(y.n.Content[i+1]), true
		}
	}
	return nil, false
}

func (y yamlNode) Each(fn func(key string, v node)) {
	if y.n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(y.n.Content); i += 2 {
		fn(y.n.Content[i].Value, newYAMLNode(y.n.Content[i+1]))
	}
}

func (y yamlNode) Items() []node {
	if y.n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]node, 0, len(y.n.Content))
	for _, c := range y.n.Content {
		out = append(out, newYAMLNode(c))
	}
	return out
}

func (y yamlNode) Text() string { return y.n.Value }

func (y yamlNode) Value() any {
	switch y.n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(y.n.Content)/2)
		y.Each(func(key string, v node) {
			m[key] = v.Value()
		})
		return m
	case yaml.SequenceNode:
		items := y.Items()
		out := make([]any, 0, len(items))
		for _, it := range items {
			out = append(out, it.Value())
		}
		return out
	case yaml.ScalarNode:
		switch y.n.Tag {
		case "!!int", "!!float":
			if f, err := strconv.ParseFloat(y.n.Value, 64); err == nil {
				return f
			}
		case "!!bool":
			if b, err := strconv.ParseBool(y.n.Value); err == nil {
				return b
			}
		case "!!null":
			return nil
		}
		return y.n.Value
	}
	return nil
}
