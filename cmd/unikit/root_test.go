package unikit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "configure")
	assert.Contains(t, names, "pull")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "version")
}

func TestConfigureCmd_Flags(t *testing.T) {
	cmd := newConfigureCmd()

	for _, flag := range []struct {
		long  string
		short string
	}{
		{"target", "t"},
		{"arch", "m"},
		{"plat", "p"},
		{"force", "F"},
		{"menuconfig", "k"},
		{"workdir", "w"},
		{"yes", "y"},
		{"no", "n"},
		{"set", "s"},
		{"use-version", "u"},
	} {
		f := cmd.Flags().Lookup(flag.long)
		require.NotNil(t, f, "missing flag --%s", flag.long)
		assert.Equal(t, flag.short, f.Shorthand)
	}
}

func TestRootCmd_UnknownCommandFails(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"definitely-not-a-command"})

	err := root.Execute()
	assert.Error(t, err)
}
