package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func TestHeadCommit_OutsideRepositoryIsEmpty(t *testing.T) {
	require.Equal(t, "", HeadCommit(t.TempDir()))
}

func TestHeadCommit_ResolvesCommitOfEnclosingRepo(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	file := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(file, []byte("docs"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	nested := filepath.Join(dir, "target", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.Equal(t, hash.String(), HeadCommit(nested))
}
