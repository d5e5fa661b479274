// Package config holds user preferences that survive between runs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Default preference values
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultLocale       = "en_US"
	DefaultScrollStep   = 20
	DefaultMagnifyNotch = -1 // last notch, full size
)

// Preferences is the on-disk preferences document.
type Preferences struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Locale       string `json:"locale"`
	ScrollStep   int    `json:"scroll_step"`
	MagnifyNotch int    `json:"magnify_notch"`

	// KeyBindings maps action names to the single key bound to each
	KeyBindings map[string]string `json:"key_bindings,omitempty"`

	mu   sync.Mutex
	path string
}

// Defaults returns preferences with every field at its default.
func Defaults() *Preferences {
	return &Preferences{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		Locale:       DefaultLocale,
		ScrollStep:   DefaultScrollStep,
		MagnifyNotch: DefaultMagnifyNotch,
	}
}

var (
	currentMu sync.Mutex
	current   *Preferences
)

// Current returns the process-wide preferences. Before Load it returns
// in-memory defaults that are never written.
func Current() *Preferences {
	currentMu.Lock()
	defer currentMu.Unlock()
	if current == nil {
		current = Defaults()
	}
	return current
}

// DefaultPath is prefs.json in the user config directory.
func DefaultPath() string {
	root, _ := os.UserConfigDir()
	if root == "" {
		if home, _ := os.UserHomeDir(); home != "" {
			root = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(root, "starmap", "prefs.json")
}

// Load reads preferences from path and makes them current. A missing file
// yields defaults bound to path, so later changes create it.
func Load(path string) (*Preferences, error) {
	p := Defaults()
	p.path = path

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading preferences: %w", err)
	default:
		if err := json.Unmarshal(b, p); err != nil {
			return nil, fmt.Errorf("parsing preferences %s: %w", path, err)
		}
	}
	p.sanitize()

	currentMu.Lock()
	current = p
	currentMu.Unlock()
	return p, nil
}

// sanitize replaces out-of-range values with defaults.
func (p *Preferences) sanitize() {
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = DefaultWindowWidth, DefaultWindowHeight
	}
	if p.Locale == "" {
		p.Locale = DefaultLocale
	}
	if p.ScrollStep <= 0 {
		p.ScrollStep = DefaultScrollStep
	}
}

// Path returns the file the preferences are saved to, or "" when unbound.
func (p *Preferences) Path() string { return p.path }

// Save writes the preferences to their file. Unbound preferences are not
// saved.
func (p *Preferences) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveLocked()
}

func (p *Preferences) saveLocked() error {
	if p.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replacing preferences: %w", err)
	}
	return nil
}

func (p *Preferences) update(fn func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
	return p.saveLocked()
}

// SetMagnifyNotch records the magnifier step and saves.
func (p *Preferences) SetMagnifyNotch(n int) error {
	return p.update(func() { p.MagnifyNotch = n })
}

// SetWindowSize records the window size and saves.
func (p *Preferences) SetWindowSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid window size %dx%d", w, h)
	}
	return p.update(func() { p.WindowWidth, p.WindowHeight = w, h })
}

// SetLocale records the UI language and saves.
func (p *Preferences) SetLocale(locale string) error {
	if locale == "" {
		return errors.New("empty locale")
	}
	return p.update(func() { p.Locale = locale })
}

// SetKeyBinding records the key for an action and saves. An empty code
// clears the custom binding.
func (p *Preferences) SetKeyBinding(action, code string) error {
	if action == "" {
		return errors.New("empty action")
	}
	return p.update(func() {
		if code == "" {
			delete(p.KeyBindings, action)
			return
		}
		if p.KeyBindings == nil {
			p.KeyBindings = make(map[string]string)
		}
		p.KeyBindings[action] = code
	})
}

// Bindings returns a copy of the custom key bindings.
func (p *Preferences) Bindings() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]string, len(p.KeyBindings))
	for k, v := range p.KeyBindings {
		out[k] = v
	}
	return out
}
