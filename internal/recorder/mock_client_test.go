package recorder

import (
	"context"

	"github.com/masmgr/pkgsnap-go/internal/vcs"
)

// mockClient is an in-memory vcs.Client for exercising the coordinator
// without a real repository.
type mockClient struct {
	initialized bool
	dirty       bool
	identity    vcs.Identity

	commits    []string
	stageCalls int

	versionErr error
	commitErr  error
}

var _ vcs.Client = (*mockClient)(nil)

func (m *mockClient) Version(ctx context.Context) (string, error) {
	if m.versionErr != nil {
		return "", m.versionErr
	}
	return "mock 1.0", nil
}

func (m *mockClient) IsInitialized() bool {
	return m.initialized
}

func (m *mockClient) Init(ctx context.Context) error {
	m.initialized = true
	return nil
}

func (m *mockClient) SetIdentity(ctx context.Context, id vcs.Identity) error {
	m.identity = id
	return nil
}

func (m *mockClient) IsDirty(ctx context.Context) (bool, error) {
	return m.dirty, nil
}

func (m *mockClient) Status(ctx context.Context) ([]vcs.StatusEntry, error) {
	if !m.dirty {
		return nil, nil
	}
	return []vcs.StatusEntry{{Path: "pending", Code: vcs.StatusUntracked}}, nil
}

func (m *mockClient) StageAll(ctx context.Context) error {
	m.stageCalls++
	return nil
}

func (m *mockClient) Commit(ctx context.Context, message string) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.commits = append(m.commits, message)
	m.dirty = false
	return nil
}

func (m *mockClient) Log(ctx context.Context, limit int) ([]vcs.LogEntry, error) {
	entries := make([]vcs.LogEntry, 0, len(m.commits))
	for i := len(m.commits) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, vcs.LogEntry{SHA: "0000000000", Subject: m.commits[i]})
	}
	return entries, nil
}
