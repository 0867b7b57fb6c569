// Package archive stores exported constraint documents on the local
// filesystem, one timestamped JSON file per save.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"graphbench/application/ports"
	pkgerrors "graphbench/pkg/errors"

	"go.uber.org/zap"
)

// namePattern is the only accepted stored-document name shape. It doubles as
// a guard against path traversal in Get.
var namePattern = regexp.MustCompile(`^constraints-\d{8}-\d{6}(-\d+)?\.json$`)

// FileArchive is a DocumentArchive backed by a directory of JSON files
type FileArchive struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

var _ ports.DocumentArchive = (*FileArchive)(nil)

// NewFileArchive creates the archive directory if needed
func NewFileArchive(dir string, logger *zap.Logger) (*FileArchive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pkgerrors.NewInternalError("failed to create archive directory").WithCause(err)
	}
	return &FileArchive{dir: dir, logger: logger, now: time.Now}, nil
}

// Save stores a document under a timestamped name and returns the name.
// Saves within the same second get a numeric suffix.
func (a *FileArchive) Save(document []byte) (string, error) {
	stamp := a.now().Format("20060102-150405")
	name := fmt.Sprintf("constraints-%s.json", stamp)

	for i := 1; ; i++ {
		path := filepath.Join(a.dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("constraints-%s-%d.json", stamp, i)
	}

	if err := os.WriteFile(filepath.Join(a.dir, name), document, 0o644); err != nil {
		return "", pkgerrors.NewInternalError("failed to write constraint document").WithCause(err)
	}

	a.logger.Debug("constraint document stored", zap.String("name", name))
	return name, nil
}

// List returns the stored document names, sorted
func (a *FileArchive) List() ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to read archive directory").WithCause(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !namePattern.MatchString(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Get returns a stored document by name
func (a *FileArchive) Get(name string) ([]byte, error) {
	if !namePattern.MatchString(name) {
		return nil, pkgerrors.NewValidationError("invalid constraint document name")
	}

	data, err := os.ReadFile(filepath.Join(a.dir, name))
	if os.IsNotExist(err) {
		return nil, pkgerrors.NewNotFoundError("constraint document")
	}
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to read constraint document").WithCause(err)
	}
	return data, nil
}
