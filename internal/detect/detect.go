// Package detect sniffs document bytes to determine their encoding and shape.
package detect

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Format represents a recognized document encoding.
type Format int

const (
	Unknown Format = iota
	JSON           // JSON object or array
	YAML           // YAML mapping or sequence
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Sniff examines input to determine its encoding. JSON is tried first since
// every JSON document is also valid YAML.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	if (data[0] == '{' || data[0] == '[') && json.Valid(data) {
		return JSON
	}

	if isYAML(data) {
		return YAML
	}
	return Unknown
}

// isYAML accepts only documents that decode to a mapping or sequence; a bare
// scalar ("hello") is valid YAML but not a document we understand.
func isYAML(data []byte) bool {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return false
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return false
	}
	kind := node.Content[0].Kind
	return kind == yaml.MappingNode || kind == yaml.SequenceNode
}

// Shape identifies what a decoded document holds.
type Shape int

const (
	ShapeUnknown      Shape = iota
	ShapeConfig             // a single configuration ({"type": ...})
	ShapeConfigList         // a list of configurations
	ShapeItem               // a single item ({"id": ..., "config": ...})
	ShapeItemList           // a list of items
	ShapePreset             // a saved preset ({"name": ..., "logs": [...]})
	ShapeLegacyPreset       // an old preset holding one config ({"name": ..., "config": ...})
	ShapePresetList         // a list of presets
)

func (s Shape) String() string {
	switch s {
	case ShapeConfig:
		return "config"
	case ShapeConfigList:
		return "config-list"
	case ShapeItem:
		return "item"
	case ShapeItemList:
		return "item-list"
	case ShapePreset:
		return "preset"
	case ShapeLegacyPreset:
		return "legacy-preset"
	case ShapePresetList:
		return "preset-list"
	default:
		return "unknown"
	}
}

// Classify inspects a generically decoded document (maps and slices as
// produced by encoding/json or yaml.v3) and reports its shape. Lists are
// classified by their first element; an empty list is an empty item list.
func Classify(doc any) Shape {
	switch v := doc.(type) {
	case map[string]any:
		return classifyObject(v)
	case []any:
		if len(v) == 0 {
			return ShapeItemList
		}
		first, ok := v[0].(map[string]any)
		if !ok {
			return ShapeUnknown
		}
		switch classifyObject(first) {
		case ShapeConfig:
			return ShapeConfigList
		case ShapeItem:
			return ShapeItemList
		case ShapePreset, ShapeLegacyPreset:
			return ShapePresetList
		}
	}
	return ShapeUnknown
}

func classifyObject(m map[string]any) Shape {
	_, hasLogs := m["logs"]
	_, hasConfig := m["config"]
	_, hasName := m["name"]
	_, hasType := m["type"]
	switch {
	case hasLogs:
		return ShapePreset
	case hasConfig && hasName:
		return ShapeLegacyPreset
	case hasConfig:
		return ShapeItem
	case hasType:
		return ShapeConfig
	}
	return ShapeUnknown
}
