package recorder

// Operation identifies the kind of package mutation being recorded.
type Operation int

const (
	OpInstall Operation = iota
	OpDelete
	OpUpgrade
	OpMenuExecute
)

// String returns the operation name as it appears in commit messages.
func (o Operation) String() string {
	switch o {
	case OpInstall:
		return "Install"
	case OpDelete:
		return "Delete"
	case OpUpgrade:
		return "Upgrade"
	case OpMenuExecute:
		return "Menu execute"
	default:
		return "unknown"
	}
}

// MutationEvent captures one completed package mutation. Immutable once
// created.
type MutationEvent struct {
	Op       Operation
	Subjects []string
}
