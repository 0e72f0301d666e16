package kconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/kconfig"
)

func TestNormalize_EnableDisableSet(t *testing.T) {
	options, err := kconfig.Normalize(
		[]string{"a"},
		[]string{"b"},
		[]string{"c=2"},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"CONFIG_a=y", "CONFIG_b=n", "CONFIG_c=2"}, options)
}

func TestNormalize_PrefixedTokensPassThrough(t *testing.T) {
	options, err := kconfig.Normalize(
		[]string{"CONFIG_LIBVFSCORE"},
		nil,
		[]string{"CONFIG_STACK_SIZE=4096"},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"CONFIG_LIBVFSCORE=y", "CONFIG_STACK_SIZE=4096"}, options)
}

func TestNormalize_DisjointKeysProduceAllAssignments(t *testing.T) {
	enable := []string{"a", "b", "c"}
	disable := []string{"d", "e"}

	options, err := kconfig.Normalize(enable, disable, nil)

	require.NoError(t, err)
	require.Len(t, options, len(enable)+len(disable))
	for i := range enable {
		assert.Equal(t, "CONFIG_"+enable[i]+"=y", options[i])
	}
	for i := range disable {
		assert.Equal(t, "CONFIG_"+disable[i]+"=n", options[len(enable)+i])
	}
}

func TestNormalize_ConflictingOption(t *testing.T) {
	tests := []struct {
		name    string
		enable  []string
		disable []string
	}{
		{"bare tokens", []string{"a"}, []string{"a"}},
		{"mixed prefixing", []string{"CONFIG_a"}, []string{"a"}},
		{"conflict after clean entries", []string{"x", "a"}, []string{"y", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := kconfig.Normalize(tt.enable, tt.disable, nil)

			require.Error(t, err)
			assert.Nil(t, options)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConflictingOption))
			assert.Contains(t, err.Error(), "CONFIG_a")
		})
	}
}

func TestNormalize_MissingOptionValue(t *testing.T) {
	options, err := kconfig.Normalize(nil, nil, []string{"STACK_SIZE"})

	require.Error(t, err)
	assert.Nil(t, options)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingOptionValue))
	assert.Contains(t, err.Error(), "CONFIG_STACK_SIZE")
}

func TestNormalize_IdenticalDuplicatesKept(t *testing.T) {
	options, err := kconfig.Normalize([]string{"a", "a"}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"CONFIG_a=y", "CONFIG_a=y"}, options)
}

func TestNormalize_Empty(t *testing.T) {
	options, err := kconfig.Normalize(nil, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestWriteDotConfig_LaterAssignmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config")

	err := kconfig.WriteDotConfig(path, []string{
		"CONFIG_ARCH_X86_64=y",
		"CONFIG_STACK_SIZE=4096",
		"CONFIG_STACK_SIZE=8192",
	})
	require.NoError(t, err)

	assignments, err := kconfig.ReadDotConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CONFIG_ARCH_X86_64=y",
		"CONFIG_STACK_SIZE=8192",
	}, assignments)
}

func TestReadDotConfig_SkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config")
	require.NoError(t, kconfig.WriteDotConfig(path, []string{"CONFIG_A=y"}))

	assignments, err := kconfig.ReadDotConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CONFIG_A=y"}, assignments)
}

func TestReadDotConfig_MissingFile(t *testing.T) {
	_, err := kconfig.ReadDotConfig(filepath.Join(t.TempDir(), ".config"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}
