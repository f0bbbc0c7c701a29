package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/pkgsnap-go/internal/output"
)

// StatusCmd creates the status command, which lists pending changes.
func StatusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "List pending (untracked or modified) entries",
		Flags: append(commonFlags(),
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "Glob patterns to include (can be specified multiple times)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Glob patterns to exclude (can be specified multiple times)",
			},
		),
		Action: statusAction,
	}
}

func statusAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !cc.Client.IsInitialized() {
		return fmt.Errorf("no snapshot repository in %s (run 'pkgsnap init')", cc.Dir)
	}

	entries, err := cc.Client.Status(c.Context)
	if err != nil {
		return err
	}

	include := cc.Config.Filters.Include
	if flagInclude := c.StringSlice("include"); len(flagInclude) > 0 {
		include = flagInclude
	}
	exclude := cc.Config.Filters.Exclude
	if flagExclude := c.StringSlice("exclude"); len(flagExclude) > 0 {
		exclude = flagExclude
	}

	entries = output.FilterEntries(entries, include, exclude)
	return output.WriteStatus(os.Stdout, cc.Dir, entries)
}
