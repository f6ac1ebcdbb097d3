package source

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no git worktree encloses the start path.
var ErrNotRepository = stderrors.New("not inside a git worktree")

// FindWorktreeRoot returns the root of the git worktree containing start.
// Parent directories are searched the way git does. Only repository layout
// is inspected; history is never read.
func FindWorktreeRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", start, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("open repository at %q: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if stderrors.Is(err, git.ErrIsBareRepository) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("open worktree at %q: %w", abs, err)
	}
	return wt.Filesystem.Root(), nil
}
