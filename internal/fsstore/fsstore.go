// Package fsstore is the file access used by the generator: the local disk,
// an in-memory store for tests, and a dry-run overlay that records writes
// without touching the underlying store.
package fsstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// File and directory permissions for generated output.
const (
	DirPerm  = 0755 // rwxr-xr-x
	FilePerm = 0644 // rw-r--r--
)

// FileStore reads and writes model files.
type FileStore interface {
	Exists(path string) bool
	MkdirAll(path string) error
	ReadFile(path string) (string, error)
	WriteFile(path, content string) error
}

// -----------------------------------------------------------------------------
// OS
// -----------------------------------------------------------------------------

// OS is the local file system. Writes go to a temporary sibling file that is
// renamed over the target, so a failed write never leaves a truncated model.
type OS struct{}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) MkdirAll(path string) error {
	return os.MkdirAll(path, DirPerm)
}

func (OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (OS) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------
// Memory
// -----------------------------------------------------------------------------

// Memory keeps files in a map. Paths are cleaned with filepath.Clean.
type Memory struct {
	mu    sync.RWMutex
	files map[string]string
	dirs  map[string]bool
}

// NewMemory returns a Memory store seeded with files (path -> content).
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string]string), dirs: make(map[string]bool)}
	for p, c := range files {
		m.files[filepath.Clean(p)] = c
	}
	return m
}

func (m *Memory) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	_, ok := m.files[path]
	return ok || m.dirs[path]
}

func (m *Memory) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			return nil
		}
	}
}

func (m *Memory) ReadFile(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.files[filepath.Clean(path)]
	if !ok {
		return "", &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return c, nil
}

func (m *Memory) WriteFile(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if m.dirs[path] {
		return &fs.PathError{Op: "write", Path: path, Err: errors.New("is a directory")}
	}
	m.files[path] = content
	return nil
}

// Files returns a copy of the stored files.
func (m *Memory) Files() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.files))
	for p, c := range m.files {
		out[p] = c
	}
	return out
}

// -----------------------------------------------------------------------------
// DryRun
// -----------------------------------------------------------------------------

// DryRun reads through to a base store and captures writes in memory.
// Directory creation is recorded but never performed.
type DryRun struct {
	base    FileStore
	overlay *Memory
}

// NewDryRun wraps base.
func NewDryRun(base FileStore) *DryRun {
	return &DryRun{base: base, overlay: NewMemory(nil)}
}

func (d *DryRun) Exists(path string) bool {
	return d.overlay.Exists(path) || d.base.Exists(path)
}

func (d *DryRun) MkdirAll(path string) error {
	return d.overlay.MkdirAll(path)
}

func (d *DryRun) ReadFile(path string) (string, error) {
	if c, err := d.overlay.ReadFile(path); err == nil {
		return c, nil
	}
	return d.base.ReadFile(path)
}

func (d *DryRun) WriteFile(path, content string) error {
	return d.overlay.WriteFile(path, content)
}

// Writes returns the paths that would have been written, sorted.
func (d *DryRun) Writes() []string {
	files := d.overlay.Files()
	out := make([]string, 0, len(files))
	for p := range files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
