package simtools

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/metrics"
)

// Service exposes the simulator tools as MCP tool handlers. When DataDir is
// set, file tools only read and write beneath it.
type Service struct {
	*base.Engine
	DataDir string
}

// NewService creates a simtools service on top of a shared engine.
func NewService(e *base.Engine, dataDir string) *Service {
	if dataDir != "" {
		if abs, err := filepath.Abs(dataDir); err == nil {
			dataDir = abs
		}
		if resolved, err := filepath.EvalSymlinks(dataDir); err == nil {
			dataDir = resolved
		}
	}
	return &Service{Engine: e, DataDir: dataDir}
}

// allowed reports whether path, with symlinks followed, lies inside the
// data directory.
func (s *Service) allowed(path string) bool {
	if s.DataDir == "" {
		return true
	}
	resolved, err := realPath(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(s.DataDir, resolved)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// realPath follows symlinks in p. A file that does not exist yet, such as
// an archive about to be written, is placed in its resolved parent.
func realPath(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(p))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(p)), nil
}

// resolve returns the absolute path of an existing file named by a client.
// Relative names are taken from the data directory when one is set.
func (s *Service) resolve(tool, field, name string) (string, error) {
	if name == "" {
		return "", apierrors.NewValidationError(field, "", "is required")
	}
	p := filepath.FromSlash(name)
	if !filepath.IsAbs(p) && s.DataDir != "" {
		p = filepath.Join(s.DataDir, p)
	}
	p, err := filepath.Abs(p)
	if err != nil {
		return "", apierrors.NewValidationError(field, name, err.Error())
	}
	if !s.allowed(p) {
		metrics.PathRejections.WithLabelValues(tool).Inc()
		return "", apierrors.NewValidationError(field, name, fmt.Sprintf("must be inside the data directory %s", s.DataDir))
	}
	info, err := os.Stat(p)
	if err != nil {
		return "", &apierrors.NotFoundError{Source: "data directory", EntityType: "file", Identifier: name}
	}
	if info.IsDir() {
		return "", apierrors.NewValidationError(field, name, "is a directory")
	}
	return p, nil
}
