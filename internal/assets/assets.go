// Package assets handles asset loading and caching from search
// directories.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Manager loads files from a list of search directories with an in-memory
// cache. Directories are searched in reverse order, so the last added has
// the highest priority and can override earlier ones.
type Manager struct {
	mu    sync.RWMutex
	dirs  []string
	cache map[string][]byte
}

// NewManager creates a manager over the given search directories.
func NewManager(dirs ...string) *Manager {
	return &Manager{
		dirs:  dirs,
		cache: make(map[string][]byte),
	}
}

// AddDir appends a search directory with highest priority.
func (m *Manager) AddDir(dir string) {
	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()
}

// Load reads a file by relative path, searching directories in reverse
// order. Results are cached for the life of the manager.
func (m *Manager) Load(path string) ([]byte, error) {
	m.mu.RLock()
	if data, ok := m.cache[path]; ok {
		m.mu.RUnlock()
		return data, nil
	}
	dirs := m.dirs
	m.mu.RUnlock()

	for i := len(dirs) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(dirs[i], path))
		if err == nil {
			m.mu.Lock()
			m.cache[path] = data
			m.mu.Unlock()
			return data, nil
		}
	}

	return nil, fmt.Errorf("asset not found: %s", path)
}

// Clear drops the cache, forcing the next Load to hit the filesystem.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.cache = make(map[string][]byte)
	m.mu.Unlock()
}
