// Package theme resolves the persisted light/dark preference and exposes
// the colour tokens for the active mode.
package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/logger"
)

// StorageKey is the preference key the mode is persisted under.
const StorageKey = "theme"

// Mode is the colour scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q (use light or dark)", s)
}

// Next is the mode a toggle switches to.
func (m Mode) Next() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ToggleLabel is the accessible label of the theme toggle.
func (m Mode) ToggleLabel() string {
	return fmt.Sprintf("Switch to %s mode", m.Next())
}

// ToggleIcon is the icon-only variant of the toggle shown in the header bar.
func (m Mode) ToggleIcon() string {
	if m == Dark {
		return "☀️"
	}
	return "🌙"
}

// ToggleText is the toggle caption in the main toolbar.
func (m Mode) ToggleText() string {
	if m == Dark {
		return "☀️ Light"
	}
	return "🌙 Dark"
}

// Provider owns the active mode and writes every change back to storage.
type Provider struct {
	mu    sync.RWMutex
	mode  Mode
	store core.Storage
	log   *logger.Logger
}

// Load reads the persisted mode. It never fails: a missing store, a missing
// key, a read error or an unrecognised value all resolve to Light.
func Load(store core.Storage, log *logger.Logger) *Provider {
	p := &Provider{
		mode:  Light,
		store: store,
		log:   log.WithFields(map[string]any{"component": "theme"}),
	}

	if store == nil {
		return p
	}

	raw, err := store.Get(StorageKey)
	switch {
	case errors.Is(err, core.ErrNotFound):
		p.log.Debug("no stored theme, using light")
	case err != nil:
		p.log.WithFields(map[string]any{"error": err.Error()}).Debug("theme read failed, using light")
	default:
		mode, perr := ParseMode(raw)
		if perr != nil {
			p.log.WithFields(map[string]any{"value": raw}).Debug("ignoring stored theme")
			break
		}
		p.mode = mode
	}

	return p
}

// Mode returns the active mode.
func (p *Provider) Mode() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

// Tokens returns the colour table of the active mode.
func (p *Provider) Tokens() Tokens {
	return TokensFor(p.Mode())
}

// Toggle flips the mode and persists it best-effort.
func (p *Provider) Toggle() Mode {
	p.mu.Lock()
	p.mode = p.mode.Next()
	mode := p.mode
	p.mu.Unlock()

	p.persist(mode)
	return mode
}

// Set switches to mode, persisting it if it changed.
func (p *Provider) Set(mode Mode) {
	p.mu.Lock()
	changed := p.mode != mode
	p.mode = mode
	p.mu.Unlock()

	if changed {
		p.persist(mode)
	}
}

func (p *Provider) persist(mode Mode) {
	if p.store == nil {
		return
	}
	if err := p.store.Set(StorageKey, string(mode)); err != nil {
		p.log.WithFields(map[string]any{"mode": string(mode), "error": err.Error()}).Warn("theme not persisted")
		return
	}
	p.log.WithFields(map[string]any{"mode": string(mode)}).Debug("theme persisted")
}
