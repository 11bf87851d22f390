package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/models"
)

type fileConfigStore struct {
	path   string
	logger *logger.Logger
}

// NewFileConfigStore returns a [ConfigStore] keeping the record at path.
func NewFileConfigStore(path string, logger *logger.Logger) ConfigStore {
	return &fileConfigStore{path: path, logger: logger}
}

func (s *fileConfigStore) Load(ctx context.Context) (models.Configuration, bool) {
	cfg, err := s.read()
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			s.logger.Debug().Str("path", s.path).Msg("no configuration record yet")
		} else {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("configuration record unreadable")
		}
		return models.Configuration{}, false
	}

	return cfg, true
}

func (s *fileConfigStore) read() (models.Configuration, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Configuration{}, ErrConfigNotFound
		}
		return models.Configuration{}, fmt.Errorf("read configuration record: %w", err)
	}

	var cfg models.Configuration
	if err = json.Unmarshal(data, &cfg); err != nil {
		return models.Configuration{}, fmt.Errorf("%w: %v", ErrConfigCorrupted, err)
	}

	return cfg, nil
}

func (s *fileConfigStore) Save(ctx context.Context, cfg models.Configuration) error {
	cfg.Comment = models.ConfigurationComment

	payload, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("encode configuration record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create configuration dir: %w", err)
		}
	}

	// temp file in the same directory so the rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary record: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temporary record: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temporary record: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temporary record: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temporary record: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace configuration record: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Int("selected", len(cfg.SelectedGroups)).Msg("configuration record saved")
	return nil
}

func (s *fileConfigStore) Remove(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove configuration record: %w", err)
	}

	s.logger.Info().Str("path", s.path).Msg("configuration record removed")
	return nil
}
