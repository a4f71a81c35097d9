package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetVersionTrimsSurroundingWhitespace(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, versionFile), []byte("v1.2.3\n"), 0o600)
	assert.NoError(t, err)

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	version, err := getVersion()
	assert.NoError(t, err)
	assert.Equal(t, "v1.2.3", version)
}
