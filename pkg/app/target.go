package app

import "path/filepath"

// Target is one build target of an application: a mandatory
// architecture/platform pair, an optional human name, and an optional
// binary path the build produces.
type Target struct {
	Name         string
	Architecture string
	Platform     string
	Binary       string
}

// Binary is an alternate enumeration axis over targets: a produced binary
// path plus the name of the target it belongs to, when that target is named.
type Binary struct {
	Path       string
	TargetName string
}

// Label renders the choice label shown when the operator is asked to pick
// a binary: the path basename, suffixed with the target name in
// parentheses when present.
func (b Binary) Label() string {
	label := filepath.Base(b.Path)
	if b.TargetName != "" {
		label += " (" + b.TargetName + ")"
	}
	return label
}
