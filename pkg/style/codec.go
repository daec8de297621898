package style

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes m as a JSON object, preserving declaration order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(string(d.Property))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into m, preserving key order. Null and
// empty values are dropped; numbers and booleans are kept as their text.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("style: expected object, got %v", tok)
	}
	var out Map
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("style: expected string key, got %v", keyTok)
		}
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("style: property %q: %w", key, err)
		}
		switch v := raw.(type) {
		case nil:
		case string:
			out.Set(Property(key), v)
		case json.Number, bool:
			out.Set(Property(key), fmt.Sprint(v))
		default:
			return fmt.Errorf("style: property %q: unsupported value %T", key, raw)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// MarshalYAML encodes m as an ordered YAML mapping.
func (m Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, d := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(d.Property)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered YAML mapping into m.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("style: line %d: expected mapping", value.Line)
	}
	var out Map
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("style: line %d: property %q must be a scalar", v.Line, k.Value)
		}
		if v.Tag == "!!null" {
			continue
		}
		out.Set(Property(k.Value), v.Value)
	}
	*m = out
	return nil
}
