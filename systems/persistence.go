package systems

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/quasilyte/gdata"
)

// ConfigNotLoadedMessage is logged when options fall back to defaults.
const ConfigNotLoadedMessage = "Config not loaded. Reverting to default settings."

// OptionsSource reads and writes the persisted options document.
type OptionsSource interface {
	Load(store *cfg.Store) error
	Save(store *cfg.Store) error
}

// FileOptionsSource keeps options in a file at Path.
type FileOptionsSource struct {
	Path string
}

func (s FileOptionsSource) Load(store *cfg.Store) error {
	return store.LoadFromFile(s.Path)
}

func (s FileOptionsSource) Save(store *cfg.Store) error {
	return store.SaveToFile(s.Path)
}

// DataStoreOptionsSource keeps options in the per-user application data
// directory.
type DataStoreOptionsSource struct {
	manager *gdata.Manager
}

// NewDataStoreOptionsSource opens the data store for appName.
func NewDataStoreOptionsSource(appName string) (*DataStoreOptionsSource, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open data store: %w", err)
	}
	return &DataStoreOptionsSource{manager: m}, nil
}

func (s *DataStoreOptionsSource) Load(store *cfg.Store) error {
	data, err := s.manager.LoadItem(cfg.OptionsFileName)
	if err != nil {
		return fmt.Errorf("could not load %s: %w", cfg.OptionsFileName, err)
	}
	if data == nil {
		return fmt.Errorf("no saved %s", cfg.OptionsFileName)
	}
	return store.LoadFromBytes(data)
}

func (s *DataStoreOptionsSource) Save(store *cfg.Store) error {
	data, err := store.Marshal()
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem(cfg.OptionsFileName, data); err != nil {
		return fmt.Errorf("could not save %s: %w", cfg.OptionsFileName, err)
	}
	return nil
}

// LoadOptions reads options from src. Any failure is logged and the
// defaults are returned instead.
func LoadOptions(src OptionsSource, logger *log.Logger) cfg.GameOptions {
	opts := cfg.DefaultGameOptions()
	store := cfg.NewStore()

	err := errors.New("no options source")
	if src != nil {
		err = src.Load(store)
	}
	if err != nil {
		if logger != nil {
			logger.Warn(ConfigNotLoadedMessage, "error", err)
		}
		opts.SetToDefault()
		return opts
	}

	opts.LoadFromConfig(store)
	return opts
}

// SaveOptions writes opts to src.
func SaveOptions(src OptionsSource, opts *cfg.GameOptions) error {
	if src == nil {
		return errors.New("no options source")
	}
	store := cfg.NewStore()
	opts.SaveToConfig(store)
	if err := src.Save(store); err != nil {
		return fmt.Errorf("could not save options: %w", err)
	}
	return nil
}
