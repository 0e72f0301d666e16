package components

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/paths"
)

// Store is the local on-disk cache of pulled components, laid out as
// <root>/<name>/<version>/.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// DefaultStore returns the store at the shared XDG cache location.
func DefaultStore() *Store {
	return NewStore(paths.ComponentsDir())
}

// Path returns the directory a component version lives in.
func (s *Store) Path(name, version string) string {
	return filepath.Join(s.root, name, version)
}

// Has reports whether the component version has been pulled.
func (s *Store) Has(name, version string) bool {
	info, err := os.Stat(s.Path(name, version))
	return err == nil && info.IsDir()
}

// Versions lists the pulled versions of a component, sorted.
func (s *Store) Versions(name string) []string {
	dirents, err := os.ReadDir(filepath.Join(s.root, name))
	if err != nil {
		return nil
	}
	var versions []string
	for _, d := range dirents {
		if d.IsDir() {
			versions = append(versions, d.Name())
		}
	}
	sort.Strings(versions)
	return versions
}

// Install copies a component version tree from sourceDir into the store.
// An already-installed version is replaced.
func (s *Store) Install(name, version, sourceDir string) error {
	dest := s.Path(name, version)
	if err := os.RemoveAll(dest); err != nil {
		return errors.Wrapf(err, errors.ErrPullFailed,
			"failed to clear %s", dest)
	}
	if err := copyTree(sourceDir, dest); err != nil {
		return errors.Wrapf(err, errors.ErrPullFailed,
			"failed to install %s@%s from %s", name, version, sourceDir)
	}
	return nil
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}
