package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/validation"
)

// File is the on-disk layout of both catalogs.
type File struct {
	Version string                  `yaml:"version"`
	Shop    []domain.ShopItem       `yaml:"shop" validate:"dive"`
	Rewards []domain.RewardCategory `yaml:"rewards" validate:"dive"`
}

// FileStore loads and saves the catalog YAML file.
type FileStore struct {
	path     string
	mu       sync.Mutex
	schema   validation.SchemaValidator
	validate *validator.Validate
}

// NewFileStore creates a store for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:     path,
		schema:   validation.NewSchemaValidator(),
		validate: validator.New(),
	}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the catalog file and checks it against the catalog schema and
// the entry rules. A missing file yields the built-in defaults, which are
// written out so operators have something to edit.
func (s *FileStore) Load(ctx context.Context) (*File, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		def := Defaults()
		log.Info(LogMsgCatalogDefaulted, "path", s.path)
		if err := s.write(&def); err != nil {
			log.Warn(LogMsgCatalogWriteFailed, "path", s.path, "error", err)
		}
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, s.path, err)
	}

	if err := s.schema.ValidateYAML(data, validation.CatalogSchema); err != nil {
		if errors.Is(err, validation.ErrSchemaViolation) {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalogEntry, s.path, err)
		}
		return nil, fmt.Errorf(ErrMsgParseFailed, s.path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, s.path, err)
	}
	if err := s.validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalogEntry, s.path, err)
	}

	log.Info(LogMsgCatalogLoaded, "path", s.path, "shop_items", len(file.Shop), "categories", len(file.Rewards))
	return &file, nil
}

// Save writes both catalogs. It satisfies shop.Persister.
func (s *FileStore) Save(ctx context.Context, shop []domain.ShopItem, rewards []domain.RewardCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := File{Version: FileVersion, Shop: shop, Rewards: rewards}
	if err := s.write(&file); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgCatalogSaved, "path", s.path)
	return nil
}

// write replaces the file through a temp file so readers never see a partial catalog.
func (s *FileStore) write(file *File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, s.path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+TempSuffix)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf(ErrMsgWriteFailed, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, s.path, err)
	}
	return nil
}
