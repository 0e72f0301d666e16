package kconfig

import (
	"bufio"
	"os"
	"strings"

	"github.com/unikit-dev/unikit/pkg/errors"
)

// WriteDotConfig writes the assignments to path, one KEY=VALUE per line.
// Later assignments win over earlier ones for the same key, so caller
// overrides appended after base defaults take effect. Duplicate key+value
// pairs collapse to one line.
func WriteDotConfig(path string, assignments []string) error {
	seen := make(map[string]int, len(assignments))
	lines := make([]string, 0, len(assignments))

	for _, a := range assignments {
		key := a
		if i := strings.Index(a, "="); i >= 0 {
			key = a[:i]
		}
		if at, ok := seen[key]; ok {
			lines[at] = a
			continue
		}
		seen[key] = len(lines)
		lines = append(lines, a)
	}

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

// ReadDotConfig reads a .config file back into its assignment lines,
// skipping blanks and comments.
func ReadDotConfig(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	var assignments []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		assignments = append(assignments, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to read %s", path)
	}
	return assignments, nil
}
