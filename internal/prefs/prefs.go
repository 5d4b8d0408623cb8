// Package prefs holds the one-shot intro flag and the cinematic overlay toggle.
package prefs

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/DaanHessen/smallheath/internal/store"
)

const (
	KeyIntroSeen = "shelby-intro-seen"
	KeyCinematic = "shelby-cinematic-mode"
)

type Prefs struct {
	kv        store.KeyValue
	log       *slog.Logger
	introSeen bool
	cinematic bool
}

func Load(ctx context.Context, kv store.KeyValue, log *slog.Logger) *Prefs {
	if log == nil {
		log = slog.Default()
	}
	p := &Prefs{kv: kv, log: log, cinematic: true}
	if v, ok, err := kv.Get(ctx, KeyIntroSeen); err != nil {
		log.Warn("read intro flag", slog.String("error", err.Error()))
	} else if ok {
		p.introSeen = v == "true"
	}
	if v, ok, err := kv.Get(ctx, KeyCinematic); err != nil {
		log.Warn("read cinematic flag", slog.String("error", err.Error()))
	} else if ok {
		p.cinematic = v != "false"
	}
	return p
}

func (p *Prefs) IntroSeen() bool { return p.introSeen }
func (p *Prefs) Cinematic() bool { return p.cinematic }

func (p *Prefs) MarkIntroSeen(ctx context.Context) {
	p.introSeen = true
	if err := p.kv.Set(ctx, KeyIntroSeen, "true"); err != nil {
		p.log.Warn("persist intro flag", slog.String("error", err.Error()))
	}
}

func (p *Prefs) ResetIntro(ctx context.Context) {
	p.introSeen = false
	if err := p.kv.Delete(ctx, KeyIntroSeen); err != nil {
		p.log.Warn("clear intro flag", slog.String("error", err.Error()))
	}
}

func (p *Prefs) ToggleCinematic(ctx context.Context) {
	p.cinematic = !p.cinematic
	if err := p.kv.Set(ctx, KeyCinematic, strconv.FormatBool(p.cinematic)); err != nil {
		p.log.Warn("persist cinematic flag", slog.String("error", err.Error()))
	}
}
