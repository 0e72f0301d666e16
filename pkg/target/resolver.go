// Package target selects the single build target a configure run applies
// to, from explicit hints when they suffice and from an interactive choice
// when they do not.
package target

import (
	"github.com/unikit-dev/unikit/pkg/app"
	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/logging"
	"github.com/unikit-dev/unikit/pkg/ui"
)

// ResolutionContext bundles the hints and the application's enumerations
// for one resolution. Built at invocation start, consumed once.
type ResolutionContext struct {
	// TargetName is the explicit --target hint, if any.
	TargetName string
	// Architecture and Platform are the explicit --arch/--plat hints;
	// they only match together.
	Architecture string
	Platform     string

	// Targets and Binaries in the application's declared order.
	Targets  []app.Target
	Binaries []app.Binary
}

// Resolve picks exactly one target, cheapest signal first:
//
//  1. a single known target wins outright, even over mismatched hints;
//  2. a single known binary selects the target it belongs to;
//  3. first declared target matching the explicit name, or matching both
//     the explicit architecture and platform;
//  4. interactive choice over the binary labels.
//
// The scan in step 3 is first-match in declared order on purpose;
// declaration order is the user-visible tie-break.
func Resolve(rc ResolutionContext, selector ui.Selector) (app.Target, error) {
	logger := logging.GetLogger("target")

	if len(rc.Targets) == 1 {
		logger.Debug().Str("target", rc.Targets[0].Name).
			Msg("Single declared target, selecting it")
		return rc.Targets[0], nil
	}

	if len(rc.Binaries) == 1 {
		if t, ok := targetForBinary(rc.Targets, rc.Binaries[0]); ok {
			logger.Debug().Str("target", t.Name).Str("binary", rc.Binaries[0].Path).
				Msg("Single binary, selecting its target")
			return t, nil
		}
	}

	for _, t := range rc.Targets {
		if rc.TargetName != "" && rc.TargetName == t.Name {
			return t, nil
		}
		if rc.Architecture != "" && rc.Platform != "" &&
			rc.Architecture == t.Architecture && rc.Platform == t.Platform {
			return t, nil
		}
	}

	return resolveInteractively(rc, selector)
}

// resolveInteractively asks the operator to pick among the binary labels
// and maps the answer back to its target.
func resolveInteractively(rc ResolutionContext, selector ui.Selector) (app.Target, error) {
	if len(rc.Binaries) == 0 {
		return app.Target{}, errors.New(errors.ErrNoTargetResolved,
			"no target could be determined for this application")
	}

	labels := make([]string, 0, len(rc.Binaries))
	for _, b := range rc.Binaries {
		labels = append(labels, b.Label())
	}

	choice, err := selector.Select("Which target would you like to configure?", labels)
	if err != nil {
		return app.Target{}, err
	}

	for _, b := range rc.Binaries {
		if choice != b.Label() {
			continue
		}
		if t, ok := targetForBinary(rc.Targets, b); ok {
			return t, nil
		}
	}

	return app.Target{}, errors.Newf(errors.ErrNoTargetResolved,
		"choice %q does not map back to a target", choice)
}

// targetForBinary maps a binary to its target, by target name when the
// binary carries one, by binary path otherwise.
func targetForBinary(targets []app.Target, b app.Binary) (app.Target, bool) {
	for _, t := range targets {
		if b.TargetName != "" && t.Name == b.TargetName {
			return t, true
		}
		if b.TargetName == "" && t.Binary == b.Path {
			return t, true
		}
	}
	return app.Target{}, false
}
