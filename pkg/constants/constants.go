// Package constants provides shared constants used across the unikit codebase.
// This package has no dependencies to avoid circular imports.
package constants

const (
	// AppName is used for XDG directory names and log files.
	AppName = "unikit"

	// ManifestFileName is the per-application project manifest.
	ManifestFileName = "unikit.yaml"

	// DotConfigFileName is the materialized configuration written into
	// the working directory when an application is configured.
	DotConfigFileName = ".config"

	// LockFileName guards a working directory against concurrent
	// configure runs.
	LockFileName = ".unikit.lock"
)

// KConfig key namespace and boolean values.
const (
	KConfigPrefix = "CONFIG_"
	KConfigYes    = "y"
	KConfigNo     = "n"
)

// Component types known to the index.
const (
	ComponentTypeCore = "core"
	ComponentTypeLib  = "lib"
	ComponentTypePlat = "plat"
	ComponentTypeArch = "arch"
	ComponentTypeApp  = "app"
)
