// Package loader reads documents from disk and resolves the paths that links
// and the open-path prompt refer to.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tomtext-pager/internal/markup"
)

var (
	// ErrEmptyPath is returned when no path was supplied.
	ErrEmptyPath = errors.New("empty path")
	// ErrRemoteTarget is returned for URLs; only local files can be opened.
	ErrRemoteTarget = errors.New("remote targets are not supported")
)

// Document is a parsed file.
type Document struct {
	Path     string
	Segments []markup.Segment
}

// Loader supplies parsed documents for a path.
type Loader interface {
	Load(path string) (Document, error)
}

// FileLoader reads documents from the local filesystem. Relative paths are
// resolved against Dir, or the process working directory when Dir is empty.
type FileLoader struct {
	Dir string
}

// Load reads and parses the file at path.
func (l FileLoader) Load(path string) (Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Document{}, ErrEmptyPath
	}
	if isRemote(path) {
		return Document{}, fmt.Errorf("%s: %w", path, ErrRemoteTarget)
	}
	abs, err := l.Abs(path)
	if err != nil {
		return Document{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("open %s: is a directory", path)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Document{Path: abs, Segments: markup.Split(string(data))}, nil
}

// Abs expands a leading ~ and makes path absolute relative to the loader's
// directory.
func (l FileLoader) Abs(path string) (string, error) {
	path, err := expandHome(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	base := l.Dir
	if base == "" {
		base, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", path, err)
		}
	}
	return filepath.Clean(filepath.Join(base, path)), nil
}

// Resolve maps a link target found in the document at source to a loadable
// path. Relative targets are looked up next to source first and then under the
// loader's directory; when neither exists the source-relative path is returned
// so the load error names it.
func (l FileLoader) Resolve(target, source string) string {
	target = strings.TrimSpace(target)
	if target == "" || isRemote(target) {
		return target
	}
	expanded, err := expandHome(target)
	if err == nil {
		target = expanded
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	var candidates []string
	if source != "" {
		candidates = append(candidates, filepath.Clean(filepath.Join(filepath.Dir(source), target)))
	}
	if abs, err := l.Abs(target); err == nil {
		candidates = append(candidates, abs)
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return target
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
