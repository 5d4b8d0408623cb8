package prefs

import (
	"context"
	"testing"

	"github.com/DaanHessen/smallheath/internal/store"
)

func TestDefaults(t *testing.T) {
	p := Load(context.Background(), store.NewMemKV(), nil)
	if p.IntroSeen() {
		t.Fatal("intro should be unseen on first run")
	}
	if !p.Cinematic() {
		t.Fatal("cinematic mode defaults to on")
	}
}

func TestCinematicOnlyOffWhenExplicitlyFalse(t *testing.T) {
	ctx := context.Background()
	for raw, want := range map[string]bool{"false": false, "true": true, "garbage": true, "": true} {
		kv := store.NewMemKV()
		_ = kv.Set(ctx, KeyCinematic, raw)
		if got := Load(ctx, kv, nil).Cinematic(); got != want {
			t.Fatalf("stored %q: cinematic=%v want %v", raw, got, want)
		}
	}
}

func TestToggleCinematicPersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()
	p := Load(ctx, kv, nil)
	p.ToggleCinematic(ctx)
	if v, _, _ := kv.Get(ctx, KeyCinematic); v != "false" {
		t.Fatalf("expected \"false\" persisted, got %q", v)
	}
	if Load(ctx, kv, nil).Cinematic() {
		t.Fatal("reload should see cinematic off")
	}
}

func TestIntroOneShot(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()
	p := Load(ctx, kv, nil)
	p.MarkIntroSeen(ctx)
	if !Load(ctx, kv, nil).IntroSeen() {
		t.Fatal("intro flag not persisted")
	}
	p.ResetIntro(ctx)
	if _, ok, _ := kv.Get(ctx, KeyIntroSeen); ok {
		t.Fatal("reset should remove the key")
	}
}
