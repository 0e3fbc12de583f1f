package githook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func TestInstall_WritesHook(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)

	hookPath, err := Install(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".git", "hooks", "pre-commit"), hookPath)

	info, err := os.Stat(hookPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "hook must be executable")

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "exec changelint")
}

func TestInstall_FromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	sub := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	hookPath, err := Install(sub)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".git", "hooks", "pre-commit"), hookPath)
}

func TestInstall_Reinstall(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)

	_, err := Install(dir)
	require.NoError(t, err)

	// Installing again over our own hook succeeds.
	_, err = Install(dir)
	assert.NoError(t, err)
}

func TestInstall_RefusesForeignHook(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	hooksDir := filepath.Join(dir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte("#!/bin/sh\necho mine\n"), 0o755))

	_, err := Install(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInstall_NotARepository(t *testing.T) {
	t.Parallel()

	_, err := Install(t.TempDir())
	assert.Error(t, err)
}
