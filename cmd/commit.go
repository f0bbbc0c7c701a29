package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// CommitCmd creates the commit command, the manual snapshot entry point.
// It bypasses batching entirely: the given message is used as-is when the
// working directory has pending changes.
func CommitCmd() *cli.Command {
	return &cli.Command{
		Name:  "commit",
		Usage: "Snapshot pending changes with a custom message",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "message",
				Aliases:  []string{"m"},
				Usage:    "Commit message",
				Required: true,
			},
		),
		Action: commitAction,
	}
}

func commitAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if err := cc.Recorder.EnsureRepository(c.Context); err != nil {
		return err
	}

	dirty, err := cc.Client.IsDirty(c.Context)
	if err != nil {
		return err
	}
	if !dirty {
		fmt.Println("Nothing to commit; working directory clean.")
		return nil
	}

	message := c.String("message")
	if err := cc.Recorder.CommitIfDirty(c.Context, message); err != nil {
		return err
	}

	fmt.Printf("Committed: %s\n", message)
	return nil
}
