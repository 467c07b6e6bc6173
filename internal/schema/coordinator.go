// Package schema lists and switches the active input schema without
// restarting the backend session.
package schema

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/qianyan/rimekit/internal/rime"
	"github.com/qianyan/rimekit/internal/session"
)

// Coordinator tracks the available schemas and the active selection.
type Coordinator struct {
	sessions *session.Manager
	log      zerolog.Logger

	// resetOnSwitch drops in-flight composition when the schema
	// changes. Off by default: a switch is a reconfiguration.
	resetOnSwitch bool

	mu     sync.Mutex
	listed []rime.Schema
	active string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithResetOnSwitch makes Switch drop any in-flight composition.
func WithResetOnSwitch(reset bool) Option {
	return func(c *Coordinator) { c.resetOnSwitch = reset }
}

// NewCoordinator creates a schema coordinator bound to a session.
func NewCoordinator(sessions *session.Manager, log zerolog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		sessions: sessions,
		log:      log.With().Str("component", "schema").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns the available schemas in the stable order the backend
// reports them.
func (c *Coordinator) List() ([]rime.Schema, error) {
	schemas, err := c.sessions.ListSchemas()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.listed = schemas
	c.mu.Unlock()
	return schemas, nil
}

// Switch activates the schema with the given id. Returns false without
// side effects when the id is empty or absent from the latest listing.
func (c *Coordinator) Switch(id string) bool {
	if id == "" {
		return false
	}

	schemas, err := c.List()
	if err != nil {
		c.log.Warn().Err(err).Msg("schema listing failed")
		return false
	}
	known := false
	for _, s := range schemas {
		if s.ID == id {
			known = true
			break
		}
	}
	if !known {
		c.log.Warn().Str("schema", id).Msg("unknown schema id")
		return false
	}

	ok, err := c.sessions.SelectSchema(id)
	if err != nil || !ok {
		c.log.Warn().Err(err).Str("schema", id).Msg("schema switch rejected")
		return false
	}

	c.mu.Lock()
	c.active = id
	c.mu.Unlock()

	if c.resetOnSwitch {
		c.sessions.Reset()
	}
	c.log.Info().Str("schema", id).Msg("schema switched")
	return true
}

// Active reports the active schema id, preferring the live session's
// own answer over the last accepted switch.
func (c *Coordinator) Active() string {
	if id, ok := c.sessions.CurrentSchema(); ok {
		return id
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
