package persona

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DaanHessen/smallheath/internal/store"
	"github.com/DaanHessen/smallheath/internal/theme"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, store.NewMemKV())
	if s.Persona() != theme.Thomas || s.Stealth() {
		t.Fatalf("expected thomas/no stealth, got %s/%v", s.Persona(), s.Stealth())
	}
}

func TestLoadIgnoresInvalidStoredValues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()
	_ = kv.Set(ctx, KeyPersona, "grace")
	_ = kv.Set(ctx, KeyStealth, "yes")
	s := Load(ctx, kv)
	if s.Persona() != theme.Thomas {
		t.Fatalf("invalid persona should default, got %s", s.Persona())
	}
	if s.Stealth() {
		t.Fatal("non-\"true\" stealth value should read as false")
	}
}

func TestLoadRestoresPersisted(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()
	_ = kv.Set(ctx, KeyPersona, "luca")
	_ = kv.Set(ctx, KeyStealth, "true")
	s := Load(ctx, kv)
	if s.Persona() != theme.Luca || !s.Stealth() {
		t.Fatalf("expected luca/stealth, got %s/%v", s.Persona(), s.Stealth())
	}
}

func TestTogglePersonaIsInvolution(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()
	s := Load(ctx, kv)
	start := s.Persona()
	s.TogglePersona(ctx)
	if s.Persona() == start {
		t.Fatal("toggle did not change persona")
	}
	if v, _, _ := kv.Get(ctx, KeyPersona); v != string(s.Persona()) {
		t.Fatalf("persona not written through: %q", v)
	}
	s.TogglePersona(ctx)
	if s.Persona() != start {
		t.Fatalf("double toggle should return to %s, got %s", start, s.Persona())
	}
}

func TestThemeTracksLatestChange(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, store.NewMemKV())
	s.SetPersona(ctx, theme.Luca)
	if s.Theme().Accent != "#8b0000" {
		t.Fatalf("theme stale after SetPersona: %s", s.Theme().Accent)
	}
	s.ToggleStealth(ctx)
	if s.Theme().Accent != "#e5e5e5" {
		t.Fatalf("theme stale after ToggleStealth: %s", s.Theme().Accent)
	}
	if s.Theme().Quote != "Vendetta. It's the only thing I understand." {
		t.Fatal("stealth replaced persona quote")
	}
	s.SetPersona(ctx, theme.Thomas)
	if got := s.Theme(); got.Accent != "#e5e5e5" || got.Author != "Thomas Shelby" {
		t.Fatalf("unexpected theme %+v", got)
	}
}

func TestSetPersonaIgnoresUnknown(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()
	s := Load(ctx, kv)
	s.SetPersona(ctx, "polly")
	if s.Persona() != theme.Thomas {
		t.Fatalf("unknown persona accepted: %s", s.Persona())
	}
	if _, ok, _ := kv.Get(ctx, KeyPersona); ok {
		t.Fatal("unknown persona should not be persisted")
	}
}

func TestSubscribersSeeConsistentSnapshot(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, store.NewMemKV())
	var seen []Snapshot
	cancel := s.Subscribe(func(snap Snapshot) {
		if snap.Theme != s.registry.Resolve(snap.Persona, snap.Stealth) {
			t.Fatalf("snapshot theme does not match its persona/stealth: %+v", snap)
		}
		if snap.Attributes["--accent"] != snap.Theme.Accent || snap.Attributes["data-character"] != string(snap.Persona) {
			t.Fatalf("attributes out of sync: %v", snap.Attributes)
		}
		seen = append(seen, snap)
	})
	s.TogglePersona(ctx)
	s.ToggleStealth(ctx)
	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if seen[0].Persona != theme.Luca || seen[1].Stealth != true {
		t.Fatalf("unexpected notifications %+v", seen)
	}
	cancel()
	s.ToggleStealth(ctx)
	if len(seen) != 2 {
		t.Fatal("cancelled subscriber still notified")
	}
}

type failingKV struct{ store.KeyValue }

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (failingKV) Set(context.Context, string, string) error { return errors.New("disk on fire") }

func TestPersistenceFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := Load(ctx, failingKV{}, WithLogger(quiet))
	if s.Persona() != theme.Thomas {
		t.Fatalf("read failure should default, got %s", s.Persona())
	}
	s.TogglePersona(ctx)
	s.ToggleStealth(ctx)
	if s.Persona() != theme.Luca || !s.Stealth() {
		t.Fatal("in-memory state should change even when persistence fails")
	}
}
