package vcs

import "time"

// MetadataDirName is the repository metadata directory created by Init.
const MetadataDirName = ".git"

// Identity is the author identity used for snapshot commits.
type Identity struct {
	Name  string
	Email string
}

// StatusCode classifies a pending working-directory entry.
type StatusCode int

const (
	StatusUntracked StatusCode = iota
	StatusModified
	StatusAdded
	StatusDeleted
	StatusRenamed
)

// String returns a string representation of the status code.
func (c StatusCode) String() string {
	switch c {
	case StatusUntracked:
		return "untracked"
	case StatusModified:
		return "modified"
	case StatusAdded:
		return "added"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// StatusEntry is a single pending (untracked or modified) path reported
// by the working directory.
type StatusEntry struct {
	Path string
	Code StatusCode
}

// LogEntry is minimal information about one snapshot commit.
type LogEntry struct {
	SHA     string
	When    time.Time
	Subject string
}
