// File: internal/store/store.go
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// ProjectIDKey is the properties key holding the remote project id.
const ProjectIDKey = "project_id"

// ErrNoProjectID is returned when no project id has been stored yet.
var ErrNoProjectID = errors.New("no project id stored")

// ProjectStore keeps the remote project id in a Java properties file next to the
// project sources, so later updates can address the same remote project.
type ProjectStore struct {
	path string
	log  *zap.Logger
}

// New creates a store backed by the properties file at path. The file does not
// need to exist yet.
func New(path string, logger *zap.Logger) *ProjectStore {
	return &ProjectStore{
		path: path,
		log:  logger.Named("store"),
	}
}

// Path returns the backing file location.
func (s *ProjectStore) Path() string {
	return s.path
}

// ProjectID returns the stored project id, or ErrNoProjectID when the file or the
// key is absent.
func (s *ProjectStore) ProjectID() (string, error) {
	props, err := s.load()
	if err != nil {
		return "", err
	}
	id, ok := props.Get(ProjectIDKey)
	if !ok || strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%s: %w", s.path, ErrNoProjectID)
	}
	return strings.TrimSpace(id), nil
}

// SaveProjectID writes id to the backing file, keeping any other keys already
// present. Parent directories are created as needed.
func (s *ProjectStore) SaveProjectID(id string) (err error) {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("refusing to store an empty project id")
	}

	props, err := s.load()
	if err != nil {
		return err
	}
	if _, _, err := props.Set(ProjectIDKey, id); err != nil {
		return fmt.Errorf("failed to set %s: %w", ProjectIDKey, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.path, err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create properties file %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close properties file %s: %w", s.path, cerr)
		}
	}()

	if _, err := props.WriteComment(f, "# ", properties.UTF8); err != nil {
		return fmt.Errorf("failed to write properties file %s: %w", s.path, err)
	}
	s.log.Debug("Stored project id", zap.String("path", s.path), zap.String("project_id", id))
	return nil
}

// load reads the backing file. A missing file yields an empty property set.
func (s *ProjectStore) load() (*properties.Properties, error) {
	props, err := ReadProperties(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		props = properties.NewProperties()
		props.DisableExpansion = true
		return props, nil
	}
	return props, err
}

// ReadProperties parses the Java properties file at path verbatim, without
// ${...} expansion.
func ReadProperties(path string) (*properties.Properties, error) {
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}
	return props, nil
}
