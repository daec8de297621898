package entry

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/artisan/internal/detect"
)

// ErrUnrecognized is returned by Decode for input that is neither a JSON
// nor a YAML document of a known shape.
var ErrUnrecognized = errors.New("unrecognized document")

// Decode reads a JSON or YAML document holding a configuration, a list of
// configurations, an item or a list of items, a preset or a list of presets
// (the first preset is used). Items without an id get a fresh one.
func Decode(data []byte) ([]Item, error) {
	format := detect.Sniff(data)
	if format == detect.Unknown {
		return nil, ErrUnrecognized
	}

	var doc any
	if err := unmarshal(format, data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	var items []Item
	switch shape := detect.Classify(doc); shape {
	case detect.ShapeConfig:
		var c Config
		if err := unmarshal(format, data, &c); err != nil {
			return nil, fmt.Errorf("decode %s: %w", shape, err)
		}
		items = []Item{{Config: c}}
	case detect.ShapeConfigList:
		var cs []Config
		if err := unmarshal(format, data, &cs); err != nil {
			return nil, fmt.Errorf("decode %s: %w", shape, err)
		}
		for _, c := range cs {
			items = append(items, Item{Config: c})
		}
	case detect.ShapeItem:
		var it Item
		if err := unmarshal(format, data, &it); err != nil {
			return nil, fmt.Errorf("decode %s: %w", shape, err)
		}
		items = []Item{it}
	case detect.ShapeItemList:
		if err := unmarshal(format, data, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", shape, err)
		}
	case detect.ShapePreset, detect.ShapeLegacyPreset:
		var p Preset
		if err := unmarshal(format, data, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", shape, err)
		}
		items = p.Logs
	case detect.ShapePresetList:
		var ps []Preset
		if err := unmarshal(format, data, &ps); err != nil {
			return nil, fmt.Errorf("decode %s: %w", shape, err)
		}
		items = ps[0].Logs
	default:
		return nil, ErrUnrecognized
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = NewID()
		}
	}
	return items, nil
}

func unmarshal(format detect.Format, data []byte, v any) error {
	if format == detect.JSON {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}
