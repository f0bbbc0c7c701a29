package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/pkgsnap-go/config"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "pkgsnap",
		Usage:   "Version-control snapshots for a package directory",
		Version: "1.0.0",
		Commands: []*cli.Command{
			InitCmd(),
			CommitCmd(),
			StatusCmd(),
			LogCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Package directory to snapshot",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Version-control backend (gitcli, gogit)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if backend := c.String("backend"); backend != "" {
		cfg.Backend = backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if dir := c.String("dir"); dir != "" {
		cfg.RepoDir = dir
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
