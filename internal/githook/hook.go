// Package githook installs changelint as a git pre-commit hook. It uses
// the go-git library to locate the enclosing repository so no git CLI is
// required.
package githook

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// hookMarker identifies hooks written by changelint, so reinstalling is
// idempotent while foreign hooks are never overwritten.
const hookMarker = "Installed by changelint"

const hookScript = `#!/bin/sh
# ` + hookMarker + `. Validates the changelog before each commit.
exec changelint
`

// Install writes a pre-commit hook into the repository enclosing dir and
// returns the hook path. It refuses to overwrite a pre-commit hook it did
// not write itself.
func Install(dir string) (string, error) {
	root, err := repositoryRoot(dir)
	if err != nil {
		return "", err
	}

	hooksDir := filepath.Join(root, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return "", fmt.Errorf("creating hooks directory: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if existing, err := os.ReadFile(hookPath); err == nil {
		if !bytes.Contains(existing, []byte(hookMarker)) {
			return "", fmt.Errorf("a pre-commit hook already exists at %s", hookPath)
		}
	}

	if err := os.WriteFile(hookPath, []byte(hookScript), 0o755); err != nil {
		return "", fmt.Errorf("writing pre-commit hook: %w", err)
	}

	return hookPath, nil
}

// repositoryRoot locates the worktree root of the repository enclosing
// dir, traversing parent directories the way git itself does.
func repositoryRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
