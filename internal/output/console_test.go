package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/masmgr/pkgsnap-go/internal/vcs"
)

func TestWriteStatus(t *testing.T) {
	var buf bytes.Buffer
	entries := []vcs.StatusEntry{
		{Path: "foo.txt", Code: vcs.StatusUntracked},
		{Path: "bar.go", Code: vcs.StatusModified},
	}

	if err := WriteStatus(&buf, "/pkgs", entries); err != nil {
		t.Fatalf("WriteStatus failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Pending changes", "/pkgs", "foo.txt", "untracked", "bar.go", "modified"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteStatus_Clean(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStatus(&buf, "/pkgs", nil); err != nil {
		t.Fatalf("WriteStatus failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Working directory clean.") {
		t.Errorf("expected clean message, got:\n%s", buf.String())
	}
}

func TestWriteLog(t *testing.T) {
	var buf bytes.Buffer
	entries := []vcs.LogEntry{
		{
			SHA:     "0123456789abcdef",
			When:    time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
			Subject: "Install: foo",
		},
	}

	if err := WriteLog(&buf, "/pkgs", entries); err != nil {
		t.Fatalf("WriteLog failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Snapshot history", "01234567", "2024-05-01 10:30", "Install: foo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789abcdef") {
		t.Error("full SHA should be truncated")
	}
}

func TestWriteLog_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLog(&buf, "/pkgs", nil); err != nil {
		t.Fatalf("WriteLog failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No snapshots yet.") {
		t.Errorf("expected empty message, got:\n%s", buf.String())
	}
}
