package vcs

import (
	"testing"
	"time"
)

func TestParsePorcelain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []StatusEntry
	}{
		{
			name:  "Empty",
			input: "",
			want:  nil,
		},
		{
			name:  "Untracked",
			input: "?? foo.txt\x00",
			want:  []StatusEntry{{Path: "foo.txt", Code: StatusUntracked}},
		},
		{
			name:  "Modified",
			input: " M pkg/lib.go\x00",
			want:  []StatusEntry{{Path: "pkg/lib.go", Code: StatusModified}},
		},
		{
			name:  "StagedAdd",
			input: "A  new.go\x00",
			want:  []StatusEntry{{Path: "new.go", Code: StatusAdded}},
		},
		{
			name:  "Deleted",
			input: " D gone.go\x00",
			want:  []StatusEntry{{Path: "gone.go", Code: StatusDeleted}},
		},
		{
			name:  "RenameConsumesOriginalPath",
			input: "R  new-name.go\x00old-name.go\x00?? other.txt\x00",
			want: []StatusEntry{
				{Path: "new-name.go", Code: StatusRenamed},
				{Path: "other.txt", Code: StatusUntracked},
			},
		},
		{
			name:  "PathWithSpaces",
			input: "?? dir with space/file name.txt\x00",
			want:  []StatusEntry{{Path: "dir with space/file name.txt", Code: StatusUntracked}},
		},
		{
			name:  "MultipleEntries",
			input: "?? a\x00 M b\x00 D c\x00",
			want: []StatusEntry{
				{Path: "a", Code: StatusUntracked},
				{Path: "b", Code: StatusModified},
				{Path: "c", Code: StatusDeleted},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePorcelain([]byte(tt.input))
			if err != nil {
				t.Fatalf("parsePorcelain failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParsePorcelain_Malformed(t *testing.T) {
	if _, err := parsePorcelain([]byte("garbage\x00")); err == nil {
		t.Fatal("expected error for malformed record")
	}
}

func TestParseLog(t *testing.T) {
	input := "\x1eaaaa\x002024-05-01T10:00:00+00:00\x00Install: foo" +
		"\x1ebbbb\x002024-04-30T09:30:00+00:00\x00Initial commit: existing packages"

	entries, err := parseLog([]byte(input))
	if err != nil {
		t.Fatalf("parseLog failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].SHA != "aaaa" || entries[0].Subject != "Install: foo" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if !entries[0].When.Equal(want) {
		t.Errorf("first entry time = %v, want %v", entries[0].When, want)
	}
	if entries[1].Subject != "Initial commit: existing packages" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestParseLog_Empty(t *testing.T) {
	entries, err := parseLog(nil)
	if err != nil {
		t.Fatalf("parseLog failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestParseLog_Malformed(t *testing.T) {
	if _, err := parseLog([]byte("\x1eonly-a-sha")); err == nil {
		t.Fatal("expected error for malformed record")
	}
}

func TestCodeFromPorcelain(t *testing.T) {
	tests := []struct {
		x, y byte
		want StatusCode
	}{
		{'?', '?', StatusUntracked},
		{'A', ' ', StatusAdded},
		{'R', ' ', StatusRenamed},
		{'C', ' ', StatusRenamed},
		{' ', 'D', StatusDeleted},
		{'D', ' ', StatusDeleted},
		{' ', 'M', StatusModified},
		{'M', 'M', StatusModified},
	}

	for _, tt := range tests {
		if got := codeFromPorcelain(tt.x, tt.y); got != tt.want {
			t.Errorf("codeFromPorcelain(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestStatusCodeString(t *testing.T) {
	tests := []struct {
		code StatusCode
		want string
	}{
		{StatusUntracked, "untracked"},
		{StatusModified, "modified"},
		{StatusAdded, "added"},
		{StatusDeleted, "deleted"},
		{StatusRenamed, "renamed"},
		{StatusCode(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("StatusCode(%d).String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}
