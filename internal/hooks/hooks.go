// Package hooks attaches mutation recording to a host package manager.
//
// Instead of patching the host at runtime, the host exposes its mutating
// operations through the PackageManager interface and receives back a Tracker
// that wraps them. The tracker records every successful mutation with the
// commit coordinator; bulk operations are wrapped in a batch session so they
// produce a single commit.
package hooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/masmgr/pkgsnap-go/internal/recorder"
)

// ErrToolUnavailable indicates the version-control tool could not be found.
// Activation fails up front with this error and leaves no state behind.
var ErrToolUnavailable = errors.New("version-control tool unavailable")

// ErrUpgradeUnsupported indicates the host does not implement single-package
// upgrade.
var ErrUpgradeUnsupported = errors.New("host does not support single-package upgrade")

// LabelMenuExecute is the batch label for menu-driven bulk operations.
const LabelMenuExecute = "Package menu"

// PackageManager is the surface a host package manager exposes for tracking.
// Bulk operations report what they mutated so the tracker can record the
// individual events.
type PackageManager interface {
	// Install installs the named packages.
	Install(ctx context.Context, names ...string) error

	// Delete removes the named packages.
	Delete(ctx context.Context, names ...string) error

	// UpgradeAll upgrades every outdated package and returns the names of
	// the packages that were upgraded.
	UpgradeAll(ctx context.Context) ([]string, error)

	// MenuExecute runs the host's interactive bulk operation and returns
	// the mutations it performed.
	MenuExecute(ctx context.Context) ([]recorder.MutationEvent, error)
}

// Upgrader is implemented by hosts that also support upgrading a single
// package.
type Upgrader interface {
	Upgrade(ctx context.Context, name string) error
}

// Tracker wraps a PackageManager and records every successful mutation with
// the commit coordinator. A disabled tracker keeps delegating to the host
// without recording.
type Tracker struct {
	host    PackageManager
	rec     *recorder.Coordinator
	enabled bool
}

var _ PackageManager = (*Tracker)(nil)

// Enable verifies the version-control tool is available, prepares the
// snapshot repository and returns a Tracker wrapping host. When the tool is
// missing it returns ErrToolUnavailable without creating the directory or
// touching the host.
func Enable(ctx context.Context, host PackageManager, rec *recorder.Coordinator) (*Tracker, error) {
	if _, err := rec.Client().Version(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}

	if err := rec.EnsureRepository(ctx); err != nil {
		return nil, err
	}

	return &Tracker{host: host, rec: rec, enabled: true}, nil
}

// Disable stops recording. The tracker keeps delegating to the host.
// Idempotent.
func (t *Tracker) Disable() {
	t.enabled = false
}

// Enabled reports whether mutations are being recorded.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// Install installs the named packages and records the mutation.
func (t *Tracker) Install(ctx context.Context, names ...string) error {
	if err := t.host.Install(ctx, names...); err != nil {
		return err
	}
	if !t.enabled {
		return nil
	}
	return t.rec.Record(ctx, recorder.OpInstall, names...)
}

// Delete removes the named packages and records the mutation.
func (t *Tracker) Delete(ctx context.Context, names ...string) error {
	if err := t.host.Delete(ctx, names...); err != nil {
		return err
	}
	if !t.enabled {
		return nil
	}
	return t.rec.Record(ctx, recorder.OpDelete, names...)
}

// Upgrade upgrades a single package when the host supports it.
func (t *Tracker) Upgrade(ctx context.Context, name string) error {
	up, ok := t.host.(Upgrader)
	if !ok {
		return ErrUpgradeUnsupported
	}
	if err := up.Upgrade(ctx, name); err != nil {
		return err
	}
	if !t.enabled {
		return nil
	}
	return t.rec.Record(ctx, recorder.OpUpgrade, name)
}

// UpgradeAll upgrades every outdated package inside a batch session, so the
// whole operation produces at most one commit.
func (t *Tracker) UpgradeAll(ctx context.Context) ([]string, error) {
	if !t.enabled {
		return t.host.UpgradeAll(ctx)
	}

	t.rec.BeginBatch(recorder.LabelPackageUpgrade)

	names, err := t.host.UpgradeAll(ctx)
	if err != nil {
		// Still close the session so partially completed upgrades are
		// committed and the coordinator returns to idle.
		if endErr := t.rec.EndBatch(ctx); endErr != nil {
			return names, endErr
		}
		return names, err
	}

	for _, name := range names {
		if err := t.rec.Record(ctx, recorder.OpUpgrade, name); err != nil {
			return names, err
		}
	}

	return names, t.rec.EndBatch(ctx)
}

// MenuExecute runs the host's interactive bulk operation inside a batch
// session and records the mutations it reports.
func (t *Tracker) MenuExecute(ctx context.Context) ([]recorder.MutationEvent, error) {
	if !t.enabled {
		return t.host.MenuExecute(ctx)
	}

	t.rec.BeginBatch(LabelMenuExecute)

	events, err := t.host.MenuExecute(ctx)
	if err != nil {
		if endErr := t.rec.EndBatch(ctx); endErr != nil {
			return events, endErr
		}
		return events, err
	}

	for _, ev := range events {
		if err := t.rec.Record(ctx, ev.Op, ev.Subjects...); err != nil {
			return events, err
		}
	}

	return events, t.rec.EndBatch(ctx)
}
