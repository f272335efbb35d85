package config

import (
	"context"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/ghostedit/internal/logging"
)

// Watch reloads the settings file whenever it is written and passes the new
// values to the OnConfigChange callbacks. A file that no longer loads or
// validates keeps the previous settings. Calling Watch again is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	logCtx := logging.WithComponent(ctx, "settings")
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		m.handleChange(logCtx, e.Name)
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleChange(ctx context.Context, file string) {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	previous := m.config
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Str("file", file).Msg("settings not reloaded")
		return
	}
	current := m.config
	callbacks := append([]func(*Config)(nil), m.callbacks...)
	m.mu.Unlock()

	if previous != nil && reflect.DeepEqual(*previous, *current) {
		log.Debug().Str("file", file).Msg("settings unchanged")
		return
	}

	log.Debug().Str("file", file).Int("callbacks", len(callbacks)).Msg("settings reloaded")
	for _, cb := range callbacks {
		cfgCopy := *current
		cb(&cfgCopy)
	}
}

// OnConfigChange registers a callback run after each successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. It must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.resolve()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}
