package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/pkgsnap-go/config"
	"github.com/masmgr/pkgsnap-go/internal/recorder"
	"github.com/masmgr/pkgsnap-go/internal/vcs"
)

// CommandContext holds common state for command execution.
type CommandContext struct {
	Config   *config.Config
	Dir      string
	Client   vcs.Client
	Recorder *recorder.Coordinator
}

// NewCommandContext creates a context from CLI flags. It loads the
// configuration, resolves the package directory and assembles the
// version-control client and commit coordinator.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	dir := cfg.RepoDir
	if dir == "" {
		dir = "."
	}

	client, err := newClient(cfg.Backend, dir)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config:   cfg,
		Dir:      dir,
		Client:   client,
		Recorder: recorder.New(dir, client, cfg.AutoCommit),
	}, nil
}

// newClient selects the version-control backend.
func newClient(backend, dir string) (vcs.Client, error) {
	switch backend {
	case config.BackendGoGit:
		return vcs.NewGoGitClient(dir), nil
	case config.BackendGitCLI, "":
		return vcs.NewGitCLIClient(dir), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
