package recorder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/masmgr/pkgsnap-go/internal/vcs"
)

// DefaultIdentity is the author identity written into every snapshot
// repository.
var DefaultIdentity = vcs.Identity{
	Name:  "pkgsnap",
	Email: "pkgsnap@localhost",
}

// IgnorePatterns are written verbatim, one per line, into the repository
// ignore file: compiled artifacts, editor backups, downloaded archives and
// the keyring directory.
var IgnorePatterns = []string{
	"*.elc",
	"*~",
	"archives/",
	"gnupg/",
}

const (
	ignoreFileName       = ".gitignore"
	initialCommitMessage = "Initial commit: existing packages"
)

// batchSession accumulates mutations recorded during a multi-step operation.
// At most one session is active per coordinator.
type batchSession struct {
	active bool
	label  string
	events []MutationEvent
}

// Coordinator records package mutations and turns them into snapshot commits.
// Mutations recorded outside a batch session commit immediately; mutations
// recorded during a session are coalesced into a single commit when the
// session ends.
//
// Session state is owned by the coordinator instance and guarded by a mutex,
// so independent coordinators never share state and concurrent hosts stay
// correct.
type Coordinator struct {
	dir        string
	client     vcs.Client
	autoCommit bool

	mu      sync.Mutex
	session batchSession
}

// New creates a coordinator for the given package directory. When autoCommit
// is false, recorded mutations are accepted but never produce commits.
func New(dir string, client vcs.Client, autoCommit bool) *Coordinator {
	return &Coordinator{dir: dir, client: client, autoCommit: autoCommit}
}

// Dir returns the package directory being snapshotted.
func (c *Coordinator) Dir() string {
	return c.dir
}

// Client returns the underlying version-control client.
func (c *Coordinator) Client() vcs.Client {
	return c.client
}

// Record notes one successful package mutation. Outside a batch session it
// commits immediately with "<operation>: <comma-joined subjects>"; during a
// session it only appends the event.
func (c *Coordinator) Record(ctx context.Context, op Operation, subjects ...string) error {
	if !c.autoCommit {
		return nil
	}

	ev := MutationEvent{Op: op, Subjects: subjects}

	c.mu.Lock()
	if c.session.active {
		c.session.events = append(c.session.events, ev)
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	return c.CommitIfDirty(ctx, EventMessage(ev))
}

// BeginBatch opens a batch session with the given label, clearing any prior
// accumulated events. Calling it while a session is already active overwrites
// that session; callers must end a session before opening the next one.
func (c *Coordinator) BeginBatch(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = batchSession{active: true, label: label}
}

// EndBatch closes the active session. It is a no-op when no session is
// active or when no events were recorded; otherwise it commits once with a
// message summarizing all accumulated events.
func (c *Coordinator) EndBatch(ctx context.Context) error {
	c.mu.Lock()
	s := c.session
	c.session = batchSession{}
	c.mu.Unlock()

	if !s.active || len(s.events) == 0 {
		return nil
	}

	return c.CommitIfDirty(ctx, BatchMessage(s.label, s.events))
}

// InBatch reports whether a batch session is currently active.
func (c *Coordinator) InBatch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.active
}

// EnsureRepository lazily initializes the snapshot repository. It creates the
// package directory if absent, initializes version control, configures the
// fixed commit identity, writes the ignore file, and, if the directory held
// any entries before initialization, commits them once as the initial
// snapshot. Repeated calls on an initialized repository are no-ops.
func (c *Coordinator) EnsureRepository(ctx context.Context) error {
	if c.client.IsInitialized() {
		return nil
	}

	hadEntries, err := hasExistingEntries(c.dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create package directory: %w", err)
	}

	if err := c.client.Init(ctx); err != nil {
		return err
	}
	if err := c.client.SetIdentity(ctx, DefaultIdentity); err != nil {
		return err
	}
	if err := writeIgnoreFile(c.dir); err != nil {
		return err
	}

	if hadEntries {
		if err := c.client.StageAll(ctx); err != nil {
			return err
		}
		if err := c.client.Commit(ctx, initialCommitMessage); err != nil {
			return err
		}
	}

	return nil
}

// CommitIfDirty ensures the repository exists, then stages and commits all
// pending changes with the exact given message. It commits nothing when the
// working directory is clean.
func (c *Coordinator) CommitIfDirty(ctx context.Context, message string) error {
	if err := c.EnsureRepository(ctx); err != nil {
		return err
	}

	dirty, err := c.client.IsDirty(ctx)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}

	if err := c.client.StageAll(ctx); err != nil {
		return err
	}
	return c.client.Commit(ctx, message)
}

// hasExistingEntries reports whether the directory contains anything besides
// version-control metadata and the ignore file. A missing directory counts
// as empty.
func hasExistingEntries(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read package directory: %w", err)
	}

	for _, entry := range entries {
		switch entry.Name() {
		case vcs.MetadataDirName, ignoreFileName:
			continue
		}
		return true, nil
	}
	return false, nil
}

func writeIgnoreFile(dir string) error {
	content := strings.Join(IgnorePatterns, "\n") + "\n"
	path := filepath.Join(dir, ignoreFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write ignore file: %w", err)
	}
	return nil
}
