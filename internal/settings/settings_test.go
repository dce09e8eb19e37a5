package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/client"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ client.TokenStore = (*File)(nil)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	f, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	s := f.Get()
	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Equal(t, store.ThemeDark, s.Theme)
	assert.Empty(t, s.Token)
	assert.NotEmpty(t, s.Letterhead.Signatory)
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://hr.bank.local/api/v1
theme: light
token: abc
letterhead:
  bank_name: Banque de Test
`), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	s := f.Get()
	assert.Equal(t, "http://hr.bank.local/api/v1", s.BaseURL)
	assert.Equal(t, store.ThemeLight, s.Theme)
	assert.Equal(t, "abc", f.Token())
	assert.Equal(t, "Banque de Test", s.Letterhead.BankName)
	assert.Equal(t, "Alger", s.Letterhead.City)
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://file/api/v1\n"), 0o600))
	t.Setenv(BaseURLEnv, "http://env/api/v1")

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env/api/v1", f.Get().BaseURL)
}

func TestEnvBaseURLIsNotSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://file.example/api/v1\n"), 0o600))
	t.Setenv(BaseURLEnv, "http://env.example/api/v1")

	f, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, f.SetToken("tok"))
	assert.Equal(t, "http://env.example/api/v1", f.Get().BaseURL)

	t.Setenv(BaseURLEnv, "")
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://file.example/api/v1", again.Get().BaseURL)
	assert.Equal(t, "tok", again.Token())
}

func TestLoad_UnknownThemeFallsBackToDark(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: sepia\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, store.ThemeDark, f.Get().Theme)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestTokenPersists(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	f, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, f.SetToken("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", again.Token())

	require.NoError(t, again.Reset())
	third, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, third.Token())
}

func TestSetTheme(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	path := filepath.Join(t.TempDir(), "settings.yaml")
	f, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, f.SetTheme(store.ThemeLight))
	assert.ErrorIs(t, f.SetTheme("sepia"), ErrInvalidTheme)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, store.ThemeLight, again.Get().Theme)
}
