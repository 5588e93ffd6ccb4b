package helpers

import (
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SetupTestGitRepo initializes a git repository in dir.
// Returns the repository and its worktree.
func SetupTestGitRepo(t *testing.T, dir string) (*git.Repository, *git.Worktree) {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	return repo, w
}

// CommitAll stages every file in the worktree and commits it, returning the
// commit hash.
func CommitAll(t *testing.T, w *git.Worktree, msg string) string {
	t.Helper()

	if _, err := w.Add("."); err != nil {
		t.Fatalf("failed to stage files: %v", err)
	}
	hash, err := w.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return hash.String()
}
