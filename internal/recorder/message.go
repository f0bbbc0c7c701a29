package recorder

import (
	"fmt"
	"strings"
)

// LabelPackageUpgrade is the batch label whose commit message enumerates the
// upgraded package names.
const LabelPackageUpgrade = "Package upgrade"

// EventMessage formats the commit message for a single non-batched mutation.
func EventMessage(ev MutationEvent) string {
	return fmt.Sprintf("%s: %s", ev.Op, strings.Join(ev.Subjects, ", "))
}

// BatchMessage builds the commit message for a completed batch session.
//
// Upgrade batches enumerate the unique package names across all events in
// first-seen order. Every other label collapses to
// "<label>: multiple operations" regardless of event contents; the shortened
// form is a deliberate product choice and part of the observable output.
func BatchMessage(label string, events []MutationEvent) string {
	if label != LabelPackageUpgrade {
		return label + ": multiple operations"
	}

	seen := make(map[string]bool)
	var names []string
	for _, ev := range events {
		for _, subject := range ev.Subjects {
			if seen[subject] {
				continue
			}
			seen[subject] = true
			names = append(names, subject)
		}
	}

	return fmt.Sprintf("%s: %s", label, strings.Join(names, ", "))
}
