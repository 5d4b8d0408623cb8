// Package ledger keeps the whiskey inventory, mirrors it to the key-value
// store on every change, and derives the statistics the views display.
package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DaanHessen/smallheath/internal/store"
)

const KeyInventory = "shelby-inventory"

// Manager owns the in-memory collection. There is exactly one writer, so it
// does no locking of its own.
type Manager struct {
	kv      store.KeyValue
	log     *slog.Logger
	now     func() time.Time
	newID   func() string
	records []Record
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }
func WithIDs(next func() string) Option      { return func(m *Manager) { m.newID = next } }
func WithLogger(l *slog.Logger) Option       { return func(m *Manager) { m.log = l } }

// Open loads the persisted snapshot. An absent or malformed snapshot yields the seed collection.
func Open(ctx context.Context, kv store.KeyValue, opts ...Option) *Manager {
	m := &Manager{
		kv:    kv,
		log:   slog.Default(),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(m)
	}
	m.records = m.load(ctx)
	return m
}

func (m *Manager) load(ctx context.Context) []Record {
	raw, ok, err := m.kv.Get(ctx, KeyInventory)
	if err != nil {
		m.log.Warn("read inventory", slog.String("error", err.Error()))
		return Seed()
	}
	if !ok {
		return Seed()
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil || records == nil {
		m.log.Debug("inventory snapshot unreadable, using seed")
		return Seed()
	}
	return records
}

func (m *Manager) persist(ctx context.Context) {
	b, err := json.Marshal(m.records)
	if err != nil {
		m.log.Warn("encode inventory", slog.String("error", err.Error()))
		return
	}
	if err := m.kv.Set(ctx, KeyInventory, string(b)); err != nil {
		m.log.Warn("persist inventory", slog.String("error", err.Error()))
	}
}

// List returns the collection, most recent first.
func (m *Manager) List() []Record { return append([]Record{}, m.records...) }

func (m *Manager) Len() int { return len(m.records) }

func (m *Manager) Get(id string) (Record, bool) {
	if i := m.index(id); i >= 0 {
		return m.records[i], true
	}
	return Record{}, false
}

// Add assigns an id and creation date and puts the record at the front.
func (m *Manager) Add(ctx context.Context, f Fields) Record {
	rec := Record{
		ID:           m.newID(),
		Name:         f.Name,
		Origin:       f.Origin,
		Distillery:   f.Distillery,
		BarrelNumber: f.BarrelNumber,
		Age:          f.Age,
		Quantity:     f.Quantity,
		Location:     f.Location,
		Status:       f.Status,
		DateAdded:    FormatDateAdded(m.now()),
		Notes:        f.Notes,
	}
	m.records = append([]Record{rec}, m.records...)
	m.persist(ctx)
	return rec
}

// Update merges p into the record with id. It reports whether the record exists.
func (m *Manager) Update(ctx context.Context, id string, p Patch) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.records[i] = p.apply(m.records[i])
	m.persist(ctx)
	return true
}

// Delete removes the record with id. It reports whether the record existed.
func (m *Manager) Delete(ctx context.Context, id string) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.records = append(m.records[:i:i], m.records[i+1:]...)
	m.persist(ctx)
	return true
}

// Reset replaces the collection with the seed data.
func (m *Manager) Reset(ctx context.Context) {
	m.records = Seed()
	m.persist(ctx)
}

func (m *Manager) Stats() Stats   { return ComputeStats(m.records) }
func (m *Manager) Report() Report { return BuildReport(m.records) }

func (m *Manager) FilterByLocation(location string) []Record {
	return m.Filter("", location, "")
}

// Search matches query case-insensitively against name, origin, distillery and barrel number.
func (m *Manager) Search(query string) []Record {
	return m.Filter(query, "", "")
}

// Filter combines a search query with optional exact location and status filters.
// Empty arguments match everything.
func (m *Manager) Filter(query, location string, status Status) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Record{}
	for _, r := range m.records {
		if location != "" && r.Location != location {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		if q != "" && !matches(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r Record, q string) bool {
	for _, field := range []string{r.Name, r.Origin, r.Distillery, r.BarrelNumber} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (m *Manager) index(id string) int {
	for i, r := range m.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
