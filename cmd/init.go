package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// InitCmd creates the init command, which prepares the snapshot repository.
func InitCmd() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Initialize version control for the package directory",
		Flags:  commonFlags(),
		Action: initAction,
	}
}

func initAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	// The tool check comes first so a missing binary aborts before any
	// directory is created.
	version, err := cc.Client.Version(c.Context)
	if err != nil {
		return fmt.Errorf("version-control tool unavailable: %w", err)
	}

	already := cc.Client.IsInitialized()

	if err := cc.Recorder.EnsureRepository(c.Context); err != nil {
		return err
	}

	if already {
		fmt.Printf("Repository already initialized in %s\n", cc.Dir)
		return nil
	}

	color.Green("Initialized snapshot repository")
	fmt.Printf("Directory: %s\n", cc.Dir)
	fmt.Printf("Tool: %s\n", version)
	return nil
}
