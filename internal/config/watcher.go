package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/qianyan/rimekit/internal/logging"
)

// Watch starts watching the config file for external changes and
// reloads automatically, publishing the resulting change events.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()

		// Skip reload if this was triggered by our own write - the
		// in-memory snapshot is already correct.
		if m.skipNextReload {
			m.skipNextReload = false
			m.mu.Unlock()
			return
		}

		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		next, err := unmarshal(m.viper)
		if err != nil {
			log.Warn().Err(err).Msg("failed to unmarshal reloaded config")
			m.mu.Unlock()
			return
		}

		old := m.config
		m.config = next
		changes := diff(old, next)
		m.notifyLocked(changes)
		m.mu.Unlock()
	})

	m.watching = true
	return nil
}
