// Package gitinfo resolves the HEAD commit of the repository enclosing a
// path, used to stamp rewrite runs.
package gitinfo

import (
	"github.com/go-git/go-git/v5"
)

// HeadCommit returns the HEAD commit hash for the git repository containing
// path, searching parent directories the way the git CLI does. A path outside
// any repository returns an empty string: the stamp is informational only.
func HeadCommit(path string) string {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()
}
