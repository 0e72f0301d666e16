// Package kconfig normalizes user-supplied configuration option requests
// into canonical KEY=VALUE assignments and reads/writes the materialized
// .config file.
package kconfig

import (
	"strings"

	"github.com/unikit-dev/unikit/pkg/constants"
	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/logging"
)

// CanonicalKey returns the token with the KConfig namespace prefix applied.
// Tokens already carrying the prefix pass through unchanged.
func CanonicalKey(token string) string {
	if strings.HasPrefix(token, constants.KConfigPrefix) {
		return token
	}
	return constants.KConfigPrefix + token
}

// Assignment renders a canonical KEY=VALUE pair.
func Assignment(key, value string) string {
	return key + "=" + value
}

// Normalize converts three independent option lists (keys to enable, keys
// to disable, explicit KEY=VALUE settings) into one ordered list of
// canonical assignments.
//
// Entries are processed enable first, then disable, then settings; that
// order is what makes conflict detection deterministic. Disabling a key
// that an earlier entry enabled fails with CONFLICTING_OPTION. A setting
// without an '=' fails with MISSING_OPTION_VALUE. Identical duplicate
// assignments are preserved; the engine applies them idempotently.
//
// Pure transformation, no side effects.
func Normalize(enable, disable, settings []string) ([]string, error) {
	logger := logging.GetLogger("kconfig")

	options := make([]string, 0, len(enable)+len(disable)+len(settings))

	for _, y := range enable {
		options = append(options, Assignment(CanonicalKey(y), constants.KConfigYes))
	}

	for _, n := range disable {
		key := CanonicalKey(n)
		if contains(options, Assignment(key, constants.KConfigYes)) {
			return nil, errors.Newf(errors.ErrConflictingOption,
				"cannot specify same option with multiple values: %s", key).
				WithDetail("option", key)
		}
		options = append(options, Assignment(key, constants.KConfigNo))
	}

	for _, o := range settings {
		opt := CanonicalKey(o)
		if !strings.Contains(opt, "=") {
			return nil, errors.Newf(errors.ErrMissingOptionValue,
				"missing value for option: %s", opt).
				WithDetail("option", opt)
		}
		options = append(options, opt)
	}

	logger.Debug().
		Int("enable", len(enable)).
		Int("disable", len(disable)).
		Int("settings", len(settings)).
		Strs("options", options).
		Msg("Normalized options")

	return options, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
