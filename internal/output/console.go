package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/pkgsnap-go/internal/vcs"
)

// WriteStatus prints the pending working-directory entries as a table.
func WriteStatus(w io.Writer, dir string, entries []vcs.StatusEntry) error {
	if _, err := color.New(color.FgGreen).Fprintln(w, "Pending changes"); err != nil {
		return err
	}
	fmt.Fprintf(w, "Directory: %s\n", dir)
	fmt.Fprintf(w, "Entries: %d\n\n", len(entries))

	if len(entries) == 0 {
		fmt.Fprintln(w, "Working directory clean.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "State\tPath")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", entry.Code, entry.Path)
	}
	return tw.Flush()
}

// WriteLog prints recent snapshot commits, newest first.
func WriteLog(w io.Writer, dir string, entries []vcs.LogEntry) error {
	if _, err := color.New(color.FgGreen).Fprintln(w, "Snapshot history"); err != nil {
		return err
	}
	fmt.Fprintf(w, "Directory: %s\n\n", dir)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No snapshots yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Commit\tDate\tMessage")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			shortSHA(entry.SHA),
			entry.When.Format("2006-01-02 15:04"),
			entry.Subject,
		)
	}
	return tw.Flush()
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
