// Package colorscheme resolves a configured palette name to concrete
// color values reported by the backend.
package colorscheme

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/qianyan/rimekit/internal/config"
	"github.com/qianyan/rimekit/internal/rime"
)

// Lister supplies the backend palette listing. Satisfied by
// session.Manager.
type Lister interface {
	ListColorSchemes() ([]rime.ColorScheme, error)
}

// Resolver caches the resolved palette per configuration snapshot.
// The cache key is the snapshot's identity: because every config
// mutation replaces the whole object, a replaced snapshot re-queries
// the backend and a stale value can never be served.
type Resolver struct {
	mu     sync.Mutex
	lister Lister
	log    zerolog.Logger

	cachedFor *config.Config
	cached    rime.ColorScheme
	hasCached bool
}

// NewResolver creates a resolver over the given palette source.
func NewResolver(lister Lister, log zerolog.Logger) *Resolver {
	return &Resolver{
		lister: lister,
		log:    log.With().Str("component", "colorscheme").Logger(),
	}
}

// Resolve returns the palette named by the snapshot. The second return
// value is false when color-scheme support is disabled, the name is
// empty, or no palette of that name exists.
func (r *Resolver) Resolve(cfg *config.Config) (rime.ColorScheme, bool) {
	if cfg == nil || !cfg.ColorScheme.Enabled || cfg.ColorScheme.Name == "" {
		return rime.ColorScheme{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasCached && r.cachedFor == cfg {
		return r.cached, true
	}

	schemes, err := r.lister.ListColorSchemes()
	if err != nil {
		r.log.Warn().Err(err).Msg("color scheme listing failed")
		return rime.ColorScheme{}, false
	}
	for _, s := range schemes {
		if s.Name == cfg.ColorScheme.Name {
			r.cachedFor = cfg
			r.cached = s
			r.hasCached = true
			return s, true
		}
	}

	r.log.Warn().Str("name", cfg.ColorScheme.Name).Msg("color scheme not found")
	return rime.ColorScheme{}, false
}

// Invalidate drops the cache. Hooked to configuration replacement so a
// toggled palette resolves fresh even for an identical snapshot
// pointer.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cachedFor = nil
	r.hasCached = false
}
