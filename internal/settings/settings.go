// Package settings stores the console's per-user preferences and session token.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "http://localhost:8080/api/v1"
	BaseURLEnv     = "BACKOFFICE_API_URL"
)

var ErrInvalidTheme = errors.New("theme must be dark or light")

type Settings struct {
	BaseURL    string            `yaml:"base_url"`
	Theme      store.Theme       `yaml:"theme"`
	Token      string            `yaml:"token,omitempty"`
	Letterhead report.Letterhead `yaml:"letterhead"`
}

func Default() Settings {
	return Settings{
		BaseURL: DefaultBaseURL,
		Theme:   store.ThemeDark,
		Letterhead: report.Letterhead{
			BankName:  "Banque",
			Direction: "Direction des Ressources Humaines",
			City:      "Alger",
			Signatory: "Le Directeur des Ressources Humaines",
		},
	}
}

// DefaultPath is backoffice/settings.yaml under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "backoffice", "settings.yaml")
}

// File is a Settings value persisted at a path. It satisfies
// client.TokenStore so the session survives between commands.
type File struct {
	path string

	mu sync.RWMutex
	s  Settings
	// baseURL comes from BaseURLEnv. It is never written back to path.
	baseURL string
}

// Load reads path, falling back to defaults when it does not exist yet.
func Load(path string) (*File, error) {
	s := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read settings: %w", err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	}

	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.Theme != store.ThemeLight {
		s.Theme = store.ThemeDark
	}
	return &File{path: path, s: s, baseURL: os.Getenv(BaseURLEnv)}, nil
}

func (f *File) Path() string { return f.path }

// Get returns the effective settings, with the environment base URL applied.
func (f *File) Get() Settings {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s := f.s
	if f.baseURL != "" {
		s.BaseURL = f.baseURL
	}
	return s
}

func (f *File) SetTheme(theme store.Theme) error {
	if theme != store.ThemeDark && theme != store.ThemeLight {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	return f.update(func(s *Settings) { s.Theme = theme })
}

func (f *File) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.s.Token
}

func (f *File) SetToken(token string) error {
	return f.update(func(s *Settings) { s.Token = token })
}

func (f *File) Reset() error {
	return f.SetToken("")
}

func (f *File) update(fn func(*Settings)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.s)
	return f.save()
}

// save writes with 0600 since the file holds the bearer token.
func (f *File) save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := yaml.Marshal(f.s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
