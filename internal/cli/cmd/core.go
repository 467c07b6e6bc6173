package cmd

import (
	"fmt"

	"github.com/qianyan/rimekit/internal/colorscheme"
	"github.com/qianyan/rimekit/internal/config"
	"github.com/qianyan/rimekit/internal/deploy"
	"github.com/qianyan/rimekit/internal/rime"
	"github.com/qianyan/rimekit/internal/rime/memory"
	"github.com/qianyan/rimekit/internal/router"
	"github.com/qianyan/rimekit/internal/schema"
	"github.com/qianyan/rimekit/internal/session"
)

// core bundles a started composition stack for CLI commands.
type core struct {
	engine   *memory.Engine
	sessions *session.Manager
	router   *router.Router
	schemas  *schema.Coordinator
	resolver *colorscheme.Resolver
}

// startCore brings up the demo engine, runs process-wide setup exactly
// once, provisions directories, and starts one session configured from
// the current snapshot.
func startCore() (*core, error) {
	cfg := cfgMgr.Get()

	eng := memory.New(
		memory.WithLexicon(demoLexicon()),
		memory.WithSchemas(demoSchemas()...),
		memory.WithColorSchemes(demoColorSchemes()...),
	)

	traits := rime.Traits{
		SharedDataDir: cfg.Deployment.SharedDataDir,
		UserDataDir:   cfg.Deployment.UserDataDir,
		AppName:       "rimekit",
		AppVersion:    buildInfo.Version,
	}

	if err := session.Initialize(eng, traits); err != nil {
		return nil, fmt.Errorf("backend setup: %w", err)
	}

	// Directory errors degrade: the session starts with best-effort
	// defaults rather than aborting.
	prov := deploy.New("", cfg.Deployment.SharedDataDir, cfg.Deployment.UserDataDir, log)
	if err := prov.EnsureLayout(); err != nil {
		log.Warn().Err(err).Msg("directory provisioning failed")
	}

	sessions := session.NewManager(eng, log)
	sessions.SetMaxCandidates(cfg.Candidates.PageSize)
	if err := sessions.Start(session.StartConfig{
		Traits:           traits,
		OverrideUserData: cfgMgr.ConsumeOverrideUserData(),
	}); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	coordinator := schema.NewCoordinator(sessions, log,
		schema.WithResetOnSwitch(cfg.Schema.ResetOnSwitch))
	if cfg.Schema.ActiveID != "" {
		coordinator.Switch(cfg.Schema.ActiveID)
	}

	resolver := colorscheme.NewResolver(sessions, log)

	c := &core{
		engine:   eng,
		sessions: sessions,
		router:   router.New(sessions, log),
		schemas:  coordinator,
		resolver: resolver,
	}

	// Configuration changes arrive asynchronously; each handler call
	// goes through the serialized session/coordinator surface.
	cfgMgr.OnChange(func(ch config.Change) {
		switch ch.Kind {
		case config.MaxCandidatesChanged:
			sessions.SetMaxCandidates(ch.Config.Candidates.PageSize)
		case config.SchemaChanged:
			coordinator.Switch(ch.Config.Schema.ActiveID)
		case config.ColorSchemeToggled:
			resolver.Invalidate()
		}
	})

	return c, nil
}

// close shuts the session down, discarding any in-flight composition.
func (c *core) close() {
	c.sessions.Shutdown()
}
