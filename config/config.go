// Package config loads the YAML settings file and watches it for changes.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   WindowConfig `yaml:"window"`
	Sound    SoundConfig  `yaml:"sound"`
	Language string       `yaml:"language,omitempty"`
	Quotes   []string     `yaml:"quotes,omitempty"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SoundConfig struct {
	AmbientTick     bool    `yaml:"ambient_tick"`
	TransitionChime bool    `yaml:"transition_chime"`
	Muted           bool    `yaml:"muted"`
	Volume          float64 `yaml:"volume"`
	TickPath        string  `yaml:"tick_path,omitempty"`
	BipPath         string  `yaml:"bip_path,omitempty"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  420,
			Height: 640,
		},
		Sound: SoundConfig{
			AmbientTick:     true,
			TransitionChime: true,
		},
	}
}

// DefaultPath returns ~/.chronodesk/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".chronodesk", "config.yaml"), nil
}

type Manager struct {
	mu         sync.RWMutex
	config     *Config
	configPath string
}

// NewManager loads the file at path, creating it with defaults when it does
// not exist. An empty path means DefaultPath.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("config dir: %w", err)
		}
		path = p
	}

	m := &Manager{configPath: path}
	cfg, err := m.load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		m.config = DefaultConfig()
		if err := m.SaveConfig(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		m.config = cfg
	}
	return m, nil
}

func (m *Manager) load() (*Config, error) {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", m.configPath, err)
	}
	return cfg, nil
}

// SaveConfig writes the current settings, creating the directory if needed.
func (m *Manager) SaveConfig() error {
	m.mu.RLock()
	data, err := yaml.Marshal(m.config)
	m.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(m.configPath, data, 0644)
}

// GetConfig returns a copy of the current settings.
func (m *Manager) GetConfig() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := *m.config
	c.Quotes = append([]string(nil), m.config.Quotes...)
	return c
}

// Path returns the file the manager reads.
func (m *Manager) Path() string {
	return m.configPath
}

// ConfigChangeCallback receives the settings after a successful reload.
type ConfigChangeCallback func(Config)

// WatchConfig reloads the file whenever it changes on disk and calls
// callback with the new settings. A file that fails to parse is logged and
// the previous settings stay in effect. WatchConfig returns once the watcher
// is registered; watching stops when ctx is done.
func (m *Manager) WatchConfig(ctx context.Context, callback ConfigChangeCallback) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(m.configPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(m.configPath), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(m.configPath) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := m.load()
				if err != nil {
					log.Printf("Config reload failed, keeping previous settings: %v", err)
					continue
				}
				m.mu.Lock()
				m.config = cfg
				m.mu.Unlock()
				log.Printf("Reloaded config from %s", m.configPath)
				if callback != nil {
					callback(m.GetConfig())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()
	return nil
}
