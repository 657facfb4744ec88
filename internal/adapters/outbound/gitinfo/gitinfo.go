package gitinfo

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.TemplateProvenance using go-git. When a
// template file lives in a git work tree, saved records carry the HEAD
// commit so an audit can recover exactly which template revision scored
// a submission.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) CommitHash(templatePath string) (string, error) {
	repo, err := open(templatePath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

func open(templatePath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(
		filepath.Dir(templatePath),
		&git.PlainOpenOptions{DetectDotGit: true},
	)
}
