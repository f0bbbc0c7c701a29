package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// GoGitClient is a pure-Go backend built on go-git. It needs no external
// binary, which makes it useful on hosts without a git installation and in
// tests that build real repositories in temporary directories.
type GoGitClient struct {
	dir string
}

// NewGoGitClient creates a client operating on the given directory.
func NewGoGitClient(dir string) *GoGitClient {
	return &GoGitClient{dir: dir}
}

// Version reports the embedded backend. There is no external tool to probe,
// so this never fails.
func (c *GoGitClient) Version(ctx context.Context) (string, error) {
	return "go-git (embedded)", nil
}

// IsInitialized reports whether the metadata directory exists.
func (c *GoGitClient) IsInitialized() bool {
	info, err := os.Stat(filepath.Join(c.dir, MetadataDirName))
	return err == nil && info.IsDir()
}

// Init initializes an empty repository in the working directory.
func (c *GoGitClient) Init(ctx context.Context) error {
	if _, err := gogit.PlainInit(c.dir, false); err != nil {
		return fmt.Errorf("initialize repository: %w", err)
	}
	return nil
}

// SetIdentity sets the repository-local commit author identity.
func (c *GoGitClient) SetIdentity(ctx context.Context, id Identity) error {
	repo, err := c.open()
	if err != nil {
		return err
	}

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("read repository config: %w", err)
	}

	cfg.User.Name = id.Name
	cfg.User.Email = id.Email

	if err := repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("write repository config: %w", err)
	}
	return nil
}

// IsDirty reports whether the working tree has any pending changes.
func (c *GoGitClient) IsDirty(ctx context.Context) (bool, error) {
	status, err := c.status()
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}

// Status returns the pending working-directory entries sorted by path.
func (c *GoGitClient) Status(ctx context.Context) ([]StatusEntry, error) {
	status, err := c.status()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(status))
	for path, fs := range status {
		if fs.Staging == gogit.Unmodified && fs.Worktree == gogit.Unmodified {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	entries := make([]StatusEntry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, StatusEntry{
			Path: path,
			Code: codeFromFileStatus(status[path]),
		})
	}
	return entries, nil
}

// StageAll stages all pending changes, including deletions.
func (c *GoGitClient) StageAll(ctx context.Context) error {
	w, err := c.worktree()
	if err != nil {
		return err
	}
	if err := w.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}
	return nil
}

// Commit records the staged changes with the exact given message, using the
// identity stored in the repository config.
func (c *GoGitClient) Commit(ctx context.Context, message string) error {
	repo, err := c.open()
	if err != nil {
		return err
	}

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("read repository config: %w", err)
	}

	w, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	_, err = w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  cfg.User.Name,
			Email: cfg.User.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Log returns up to limit most recent commits, newest first.
func (c *GoGitClient) Log(ctx context.Context, limit int) ([]LogEntry, error) {
	repo, err := c.open()
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		// A freshly initialized repository has no commits yet.
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	var entries []LogEntry
	err = iter.ForEach(func(commit *object.Commit) error {
		if len(entries) >= limit {
			return storer.ErrStop
		}

		subject := commit.Message
		if idx := strings.IndexByte(subject, '\n'); idx != -1 {
			subject = subject[:idx]
		}

		entries = append(entries, LogEntry{
			SHA:     commit.Hash.String(),
			When:    commit.Committer.When,
			Subject: subject,
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, err
	}

	return entries, nil
}

func (c *GoGitClient) open() (*gogit.Repository, error) {
	repo, err := gogit.PlainOpen(c.dir)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return repo, nil
}

func (c *GoGitClient) worktree() (*gogit.Worktree, error) {
	repo, err := c.open()
	if err != nil {
		return nil, err
	}
	w, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	return w, nil
}

func (c *GoGitClient) status() (gogit.Status, error) {
	w, err := c.worktree()
	if err != nil {
		return nil, err
	}
	status, err := w.Status()
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}
	return status, nil
}

func codeFromFileStatus(fs *gogit.FileStatus) StatusCode {
	code := fs.Worktree
	if code == gogit.Unmodified {
		code = fs.Staging
	}

	switch code {
	case gogit.Untracked:
		return StatusUntracked
	case gogit.Added:
		return StatusAdded
	case gogit.Deleted:
		return StatusDeleted
	case gogit.Renamed, gogit.Copied:
		return StatusRenamed
	default:
		return StatusModified
	}
}
