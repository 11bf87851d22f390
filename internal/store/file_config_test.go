package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-tg-userbot/internal/config"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (ConfigStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	return NewFileConfigStore(path, logger.Nop()), path
}

func sampleConfiguration() models.Configuration {
	return models.Configuration{
		Credentials:    models.Credentials{APIID: 123456, APIHash: "0123456789abcdef"},
		SelectedGroups: []int64{-1001234567890, -4242},
	}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestFileConfigStore_Load_Absent(t *testing.T) {
	s, _ := newTestStore(t)

	cfg, ok := s.Load(context.Background())
	assert.False(t, ok)
	assert.Equal(t, models.Configuration{}, cfg)
}

func TestFileConfigStore_Load_Corrupted(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"api_id": "nope`), 0o600))

	cfg, ok := s.Load(context.Background())
	assert.False(t, ok)
	assert.Equal(t, models.Configuration{}, cfg)
}

func TestFileConfigStore_Load_HandWrittenRecord(t *testing.T) {
	s, path := newTestStore(t)
	body := `{"api_id": 77, "api_hash": "secret", "selected_groups": [3, 1, 2]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, ok := s.Load(context.Background())
	require.True(t, ok)
	assert.Equal(t, int32(77), cfg.APIID)
	assert.Equal(t, "secret", cfg.APIHash)
	assert.Equal(t, []int64{3, 1, 2}, cfg.SelectedGroups)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestFileConfigStore_SaveThenLoad(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	want := sampleConfiguration()

	require.NoError(t, s.Save(ctx, want))

	got, ok := s.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, want.Credentials, got.Credentials)
	assert.Equal(t, want.SelectedGroups, got.SelectedGroups)
	assert.Equal(t, models.ConfigurationComment, got.Comment)
}

// TestFileConfigStore_Save_Layout verifies the on-disk key names so the
// record stays hand-inspectable.
func TestFileConfigStore_Save_Layout(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Save(context.Background(), sampleConfiguration()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "_comment")
	assert.Contains(t, raw, "api_id")
	assert.Contains(t, raw, "api_hash")
	assert.Contains(t, raw, "selected_groups")
}

func TestFileConfigStore_Save_Overwrites(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleConfiguration()))
	require.NoError(t, s.Save(ctx, models.Configuration{
		Credentials: models.Credentials{APIID: 1, APIHash: "h"},
	}))

	got, ok := s.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, int32(1), got.APIID)
	assert.Empty(t, got.SelectedGroups)

	// no temporary leftovers next to the record
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileConfigStore_Save_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	s := NewFileConfigStore(path, logger.Nop())

	require.NoError(t, s.Save(context.Background(), sampleConfiguration()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestFileConfigStore_Remove(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleConfiguration()))

	require.NoError(t, s.Remove(ctx))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, ok := s.Load(ctx)
	assert.False(t, ok)
}

func TestFileConfigStore_Remove_Absent(t *testing.T) {
	s, _ := newTestStore(t)
	assert.NoError(t, s.Remove(context.Background()))
}

// ── NewClientStorages ────────────────────────────────────────────────────────

func TestNewClientStorages(t *testing.T) {
	dir := t.TempDir()
	storages := NewClientStorages(config.Storage{
		ConfigPath:  filepath.Join(dir, "config.json"),
		SessionPath: filepath.Join(dir, "session.json"),
	}, logger.Nop())

	require.NotNil(t, storages.ConfigStore)
	assert.Equal(t, filepath.Join(dir, "session.json"), storages.SessionPath)
}
