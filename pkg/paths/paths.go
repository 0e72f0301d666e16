// Package paths centralizes filesystem locations used by unikit: the XDG
// cache/config/state directories that hold the component index and store,
// and the well-known files inside an application working directory.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/unikit-dev/unikit/pkg/constants"
)

// CacheDir returns the root cache directory for unikit.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, constants.AppName)
}

// ConfigDir returns the directory holding unikit's own settings file.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName)
}

// IndexFile returns the path of the component index.
func IndexFile() string {
	return filepath.Join(CacheDir(), "index.yaml")
}

// ComponentsDir returns the root of the local component store.
func ComponentsDir() string {
	return filepath.Join(CacheDir(), "components")
}

// ComponentDir returns the store directory for one component version.
func ComponentDir(name, version string) string {
	return filepath.Join(ComponentsDir(), name, version)
}

// ManifestFile returns the path of the project manifest inside a workdir.
func ManifestFile(workdir string) string {
	return filepath.Join(workdir, constants.ManifestFileName)
}

// DotConfigFile returns the path of the materialized .config inside a workdir.
func DotConfigFile(workdir string) string {
	return filepath.Join(workdir, constants.DotConfigFileName)
}

// LockFile returns the path of the configure lock inside a workdir.
func LockFile(workdir string) string {
	return filepath.Join(workdir, constants.LockFileName)
}
