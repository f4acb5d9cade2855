package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(12, 12))
	assert.Equal(3, Mod(27, 12))
	assert.Equal(int8(6), Mod(int8(-8), 7))
}

func TestAbsAndMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Abs(-2))
	assert.Equal(2, Abs(2))
	assert.Equal(uint32(1), Min(uint32(4), uint32(1)))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"minor": 1, "augmented": 2, "major": 3}
	assert.Equal(t, []string{"augmented", "major", "minor"}, GetKeys(m))
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureOutputDir(dir))
	require.NoError(t, EnsureOutputDir(dir))
	assert.DirExists(t, dir)
}
