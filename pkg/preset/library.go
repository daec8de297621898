package preset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkoosis/artisan/pkg/entry"
)

// StorageKey is the key the preset list is stored under.
const StorageKey = "console_artisan_presets"

var (
	// ErrEmptyName is returned by Save for a blank name.
	ErrEmptyName = errors.New("preset name is empty")
	// ErrPresetNotFound is returned for an unknown preset id.
	ErrPresetNotFound = errors.New("preset not found")
)

// Library manages the saved presets in a Store.
type Library struct {
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for store operations.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Library) { l.log = log }
}

// WithClock sets the time source for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Library) { l.now = now }
}

// NewLibrary creates a library over store.
func NewLibrary(store Store, opts ...Option) *Library {
	l := &Library{store: store, log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the saved presets, newest first. Presets stored in the
// legacy single-config layout come back as one-item sequences.
func (l *Library) List(ctx context.Context) ([]entry.Preset, error) {
	data, err := l.store.Get(ctx, StorageKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	var presets []entry.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	for _, p := range presets {
		if p.Upgraded {
			l.log.Debug().Str("id", p.ID).Str("name", p.Name).Msg("upgraded legacy preset")
		}
	}
	return presets, nil
}

// Save stores items under name as a new preset placed first in the list.
func (l *Library) Save(ctx context.Context, name string, items []entry.Item) (entry.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entry.Preset{}, ErrEmptyName
	}
	presets, err := l.List(ctx)
	if err != nil {
		return entry.Preset{}, err
	}

	p := entry.Preset{
		ID:        entry.NewID(),
		Name:      name,
		CreatedAt: l.now().UnixMilli(),
		Logs:      items,
	}
	if p.Logs == nil {
		p.Logs = []entry.Item{}
	}
	if err := l.write(ctx, append([]entry.Preset{p}, presets...)); err != nil {
		return entry.Preset{}, err
	}
	l.log.Info().Str("id", p.ID).Str("name", p.Name).Int("items", len(items)).Msg("saved preset")
	return p, nil
}

// Delete removes the preset with id.
func (l *Library) Delete(ctx context.Context, id string) error {
	presets, err := l.List(ctx)
	if err != nil {
		return err
	}
	kept := presets[:0]
	for _, p := range presets {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(presets) {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, id)
	}
	if err := l.write(ctx, kept); err != nil {
		return err
	}
	l.log.Info().Str("id", id).Msg("deleted preset")
	return nil
}

// Find returns the preset with id.
func (l *Library) Find(ctx context.Context, id string) (entry.Preset, error) {
	presets, err := l.List(ctx)
	if err != nil {
		return entry.Preset{}, err
	}
	for _, p := range presets {
		if p.ID == id {
			return p, nil
		}
	}
	return entry.Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, id)
}

// Load returns the items of the preset with id, each with a fresh id.
func (l *Library) Load(ctx context.Context, id string) ([]entry.Item, error) {
	p, err := l.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return entry.WithFreshIDs(p.Logs), nil
}

func (l *Library) write(ctx context.Context, presets []entry.Preset) error {
	if presets == nil {
		presets = []entry.Preset{}
	}
	data, err := json.Marshal(presets)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	if err := l.store.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("store presets: %w", err)
	}
	return nil
}
