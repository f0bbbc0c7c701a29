package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/pkgsnap-go/internal/output"
)

// LogCmd creates the log command, which shows recent snapshot commits.
func LogCmd() *cli.Command {
	return &cli.Command{
		Name:  "log",
		Usage: "Show recent snapshot commits",
		Flags: append(commonFlags(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Number of commits to show",
				Value:   20,
			},
		),
		Action: logAction,
	}
}

func logAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !cc.Client.IsInitialized() {
		return fmt.Errorf("no snapshot repository in %s (run 'pkgsnap init')", cc.Dir)
	}

	entries, err := cc.Client.Log(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}

	return output.WriteLog(os.Stdout, cc.Dir, entries)
}
