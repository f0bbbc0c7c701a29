package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// GitCLIClient drives the external git binary. It is the default backend:
// every operation shells out with exec.CommandContext and parses the textual
// output. The working directory does not need to exist until Init is called.
type GitCLIClient struct {
	dir string
}

// NewGitCLIClient creates a client operating on the given directory.
func NewGitCLIClient(dir string) *GitCLIClient {
	return &GitCLIClient{dir: dir}
}

// Version runs `git version` and returns its output. The command is run
// without -C so it works before the working directory exists.
func (c *GitCLIClient) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "git", "version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git version failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// IsInitialized reports whether the metadata directory exists.
func (c *GitCLIClient) IsInitialized() bool {
	info, err := os.Stat(filepath.Join(c.dir, MetadataDirName))
	return err == nil && info.IsDir()
}

// Init initializes an empty repository in the working directory.
func (c *GitCLIClient) Init(ctx context.Context) error {
	_, err := c.run(ctx, "init")
	return err
}

// SetIdentity sets the repository-local commit author identity.
func (c *GitCLIClient) SetIdentity(ctx context.Context, id Identity) error {
	if _, err := c.run(ctx, "config", "user.name", id.Name); err != nil {
		return err
	}
	_, err := c.run(ctx, "config", "user.email", id.Email)
	return err
}

// IsDirty reports whether `git status --porcelain` has any output.
func (c *GitCLIClient) IsDirty(ctx context.Context) (bool, error) {
	out, err := c.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// Status returns the pending working-directory entries.
func (c *GitCLIClient) Status(ctx context.Context) ([]StatusEntry, error) {
	out, err := c.run(ctx, "status", "--porcelain", "-z")
	if err != nil {
		return nil, err
	}
	return parsePorcelain([]byte(out))
}

// StageAll stages all pending changes, including deletions.
func (c *GitCLIClient) StageAll(ctx context.Context) error {
	_, err := c.run(ctx, "add", "-A")
	return err
}

// Commit records the staged changes with the exact given message.
func (c *GitCLIClient) Commit(ctx context.Context, message string) error {
	_, err := c.run(ctx, "commit", "-m", message)
	return err
}

// Log returns up to limit most recent commits, newest first.
func (c *GitCLIClient) Log(ctx context.Context, limit int) ([]LogEntry, error) {
	// Each record is prefixed by 0x1e (record separator) with NUL-separated
	// fields, so subjects containing newlines cannot break parsing.
	const format = "%x1e%H%x00%cI%x00%s"

	// A freshly initialized repository has no commits yet.
	if _, err := c.run(ctx, "rev-parse", "--verify", "HEAD"); err != nil {
		return nil, nil
	}

	out, err := c.run(ctx, "log", "-n", strconv.Itoa(limit), "--pretty=format:"+format)
	if err != nil {
		return nil, err
	}
	return parseLog([]byte(out))
}

// run executes a git command in the working directory and returns its stdout.
func (c *GitCLIClient) run(ctx context.Context, args ...string) (string, error) {
	baseArgs := []string{"-C", c.dir}
	cmd := exec.CommandContext(ctx, "git", append(baseArgs, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// parsePorcelain parses `git status --porcelain -z` output. Records are
// NUL-terminated; rename records carry the original path as an extra
// NUL-terminated field.
func parsePorcelain(out []byte) ([]StatusEntry, error) {
	var entries []StatusEntry

	fields := bytes.Split(out, []byte{0x00})
	for i := 0; i < len(fields); i++ {
		rec := fields[i]
		if len(rec) == 0 {
			continue
		}
		if len(rec) < 4 || rec[2] != ' ' {
			return nil, fmt.Errorf("unexpected git status record: %q", string(rec))
		}

		x, y := rec[0], rec[1]
		path := string(rec[3:])

		if x == 'R' || x == 'C' {
			// Consume the original path field.
			i++
		}

		entries = append(entries, StatusEntry{
			Path: path,
			Code: codeFromPorcelain(x, y),
		})
	}

	return entries, nil
}

func codeFromPorcelain(x, y byte) StatusCode {
	switch {
	case x == '?' || y == '?':
		return StatusUntracked
	case x == 'R' || x == 'C':
		return StatusRenamed
	case x == 'A':
		return StatusAdded
	case x == 'D' || y == 'D':
		return StatusDeleted
	default:
		return StatusModified
	}
}

// parseLog parses the 0x1e/NUL-delimited log format produced by Log.
func parseLog(out []byte) ([]LogEntry, error) {
	var entries []LogEntry

	for _, rec := range bytes.Split(out, []byte{0x1e}) {
		if len(rec) == 0 {
			continue
		}

		fields := bytes.SplitN(rec, []byte{0x00}, 3)
		if len(fields) < 3 {
			return nil, fmt.Errorf("unexpected git log record: %q", string(rec))
		}

		when, err := time.Parse(time.RFC3339, string(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("parse committer date: %w", err)
		}

		entries = append(entries, LogEntry{
			SHA:     string(fields[0]),
			When:    when,
			Subject: strings.TrimSuffix(string(fields[2]), "\n"),
		})
	}

	return entries, nil
}
