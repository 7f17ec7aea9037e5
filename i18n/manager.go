package i18n

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/rmucenieks/store-poc/settings"
)

// Localizer is the lookup interface the coordinators consume.
type Localizer interface {
	Localized(key string) string
	CurrentLanguageKey() string
}

const languagePreferenceKey = "selected_language"

// Manager owns the active language. It restores the saved preference at
// construction, persists changes, and notifies registered subscribers so
// the coordinators can reload language-dependent data. There is no global
// instance; the manager is injected wherever it is needed.
type Manager struct {
	mu          sync.RWMutex
	current     Language
	store       settings.Store
	subscribers []func(Language)
}

func NewManager(ctx context.Context, store settings.Store, fallback Language) *Manager {
	if !fallback.Valid() {
		fallback = DefaultLanguage
	}

	current := fallback
	saved, err := store.Get(ctx, languagePreferenceKey)
	if err != nil {
		log.Printf("i18n.NewManager - Failed to read saved language: %v", err)
	} else if saved != "" {
		if lang := Language(saved); lang.Valid() {
			current = lang
		}
	}

	return &Manager{
		current: current,
		store:   store,
	}
}

// CurrentLanguage returns the active language.
func (m *Manager) CurrentLanguage() Language {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CurrentLanguageKey returns the active language's two-letter code.
func (m *Manager) CurrentLanguageKey() string {
	return string(m.CurrentLanguage())
}

// SetLanguage switches the active language, persists the choice, and
// notifies subscribers. Switching to the already-active language is a no-op.
func (m *Manager) SetLanguage(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("unsupported language: %s", lang)
	}

	m.mu.Lock()
	if m.current == lang {
		m.mu.Unlock()
		return nil
	}
	m.current = lang
	subscribers := make([]func(Language), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	if err := m.store.Set(ctx, languagePreferenceKey, string(lang)); err != nil {
		log.Printf("i18n.SetLanguage - Failed to persist language: %v", err)
	}

	log.Printf("i18n.SetLanguage - Language changed to %s (%s)", lang.DisplayName(), lang)

	for _, notify := range subscribers {
		notify(lang)
	}
	return nil
}

// OnLanguageChange registers a callback invoked after each language switch.
func (m *Manager) OnLanguageChange(fn func(Language)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Localized returns the UI string for key in the active language. Each key
// is looked up exactly once; missing entries fall back to English and then
// to the key itself.
func (m *Manager) Localized(key string) string {
	lang := m.CurrentLanguage()
	if value, ok := translations[lang][key]; ok {
		return value
	}
	if value, ok := translations[English][key]; ok {
		return value
	}
	return key
}
