package repository

import (
	"fmt"
	"portfolio/internal/models"

	json "github.com/goccy/go-json"
)

// PreferencesRepository stores front-end preferences as opaque JSON values.
type PreferencesRepository struct {
	root *Repository
}

func (p *PreferencesRepository) Get(key string) (json.RawMessage, error) {
	if !models.IsPreferenceKey(key) {
		return nil, fmt.Errorf("%w: unknown preference %q", ErrInvalid, key)
	}
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	var value json.RawMessage
	if !p.root.store.Load(key, &value) {
		return nil, ErrNotFound
	}
	return value, nil
}

func (p *PreferencesRepository) Set(key string, value json.RawMessage) error {
	if !models.IsPreferenceKey(key) {
		return fmt.Errorf("%w: unknown preference %q", ErrInvalid, key)
	}
	if !json.Valid(value) {
		return fmt.Errorf("%w: preference %q is not JSON", ErrInvalid, key)
	}
	p.root.mu.Lock()
	defer p.root.mu.Unlock()
	return p.root.persist(key, value)
}
