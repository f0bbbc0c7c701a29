package vcs

import "context"

// Client defines the narrow version-control surface the commit coordinator
// depends on. This abstraction allows the coordination logic to be unit-tested
// against a fake implementation without invoking a real binary.
type Client interface {
	// Version queries the backing tool and returns its version string.
	// An error means the tool is unavailable.
	Version(ctx context.Context) (string, error)

	// IsInitialized reports whether the repository metadata directory exists.
	IsInitialized() bool

	// Init initializes an empty repository in the working directory.
	Init(ctx context.Context) error

	// SetIdentity configures the commit author identity for the repository.
	SetIdentity(ctx context.Context, id Identity) error

	// IsDirty reports whether the working directory has any pending
	// (untracked or modified) entries.
	IsDirty(ctx context.Context) (bool, error)

	// Status returns the pending working-directory entries.
	Status(ctx context.Context) ([]StatusEntry, error)

	// StageAll stages every pending change, including deletions.
	StageAll(ctx context.Context) error

	// Commit records the staged changes with the exact given message.
	Commit(ctx context.Context, message string) error

	// Log returns up to limit most recent commits, newest first.
	Log(ctx context.Context, limit int) ([]LogEntry, error)
}

// Compile-time interface conformance checks.
var (
	_ Client = (*GitCLIClient)(nil)
	_ Client = (*GoGitClient)(nil)
)
