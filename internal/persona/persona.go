// Package persona owns the active persona and stealth flag and keeps the
// effective theme in step with them.
package persona

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DaanHessen/smallheath/internal/store"
	"github.com/DaanHessen/smallheath/internal/theme"
)

const (
	KeyPersona = "shelby-character"
	KeyStealth = "shelby-stealth"
)

// Snapshot is everything a consumer needs to draw: the inputs and the
// theme and attributes derived from them.
type Snapshot struct {
	Persona    theme.Persona     `json:"persona"`
	Stealth    bool              `json:"stealth"`
	Theme      theme.Theme       `json:"theme"`
	Attributes map[string]string `json:"attributes"`
}

// Store is constructed once at startup and passed to every consumer.
type Store struct {
	kv       store.KeyValue
	registry *theme.Registry
	log      *slog.Logger

	persona theme.Persona
	stealth bool

	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Snapshot)
}

// Option customises a Store.
type Option func(*Store)

func WithRegistry(r *theme.Registry) Option { return func(s *Store) { s.registry = r } }
func WithLogger(l *slog.Logger) Option       { return func(s *Store) { s.log = l } }

// Load reads the persisted persona and stealth flag. Missing or unrecognized
// values fall back to the registry default and false.
func Load(ctx context.Context, kv store.KeyValue, opts ...Option) *Store {
	s := &Store{kv: kv, registry: theme.Default(), log: slog.Default(), listeners: map[int]func(Snapshot){}}
	for _, o := range opts {
		o(s)
	}
	s.persona = s.registry.Default()
	if raw, ok, err := kv.Get(ctx, KeyPersona); err != nil {
		s.log.Warn("read persona", slog.String("error", err.Error()))
	} else if ok {
		if p, valid := s.registry.Parse(raw); valid {
			s.persona = p
		}
	}
	if raw, ok, err := kv.Get(ctx, KeyStealth); err != nil {
		s.log.Warn("read stealth flag", slog.String("error", err.Error()))
	} else if ok {
		s.stealth = raw == "true"
	}
	return s
}

func (s *Store) Persona() theme.Persona    { return s.persona }
func (s *Store) Stealth() bool             { return s.stealth }
func (s *Store) Registry() *theme.Registry { return s.registry }

// Theme is recomputed on every call.
func (s *Store) Theme() theme.Theme { return s.registry.Resolve(s.persona, s.stealth) }

func (s *Store) Snapshot() Snapshot {
	t := s.Theme()
	return Snapshot{
		Persona:    s.persona,
		Stealth:    s.stealth,
		Theme:      t,
		Attributes: theme.Attributes(s.persona, s.stealth, t),
	}
}

// SetPersona switches persona unconditionally. Unregistered personas are ignored.
func (s *Store) SetPersona(ctx context.Context, p theme.Persona) {
	if _, ok := s.registry.Parse(string(p)); !ok {
		return
	}
	s.persona = p
	s.persist(ctx, KeyPersona, string(p))
	s.publish()
}

// TogglePersona cycles through the registered personas.
func (s *Store) TogglePersona(ctx context.Context) {
	s.SetPersona(ctx, s.registry.Next(s.persona))
}

func (s *Store) ToggleStealth(ctx context.Context) {
	s.stealth = !s.stealth
	v := "false"
	if s.stealth {
		v = "true"
	}
	s.persist(ctx, KeyStealth, v)
	s.publish()
}

// Subscribe registers fn to receive a Snapshot synchronously after every
// persona or stealth change. The returned func removes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish() {
	snap := s.Snapshot()
	s.mu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	fns := make([]func(Snapshot), 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) persist(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.log.Warn("persist preference", slog.String("key", key), slog.String("error", err.Error()))
	}
}
