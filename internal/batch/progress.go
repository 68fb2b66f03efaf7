package batch

import "fmt"

// Status is the lifecycle state of one file in a batch.
type Status string

const (
	StatusPending  Status = "pending"
	StatusWorking  Status = "working"
	StatusComplete Status = "complete"
	StatusDegraded Status = "degraded"
)

// ProgressEvent reports a state change of one input file.
type ProgressEvent struct {
	Index   int
	Path    string
	Status  Status
	Message string
}

// FormatProgress formats a ProgressEvent as a human-readable status line.
func FormatProgress(event ProgressEvent) string {
	switch event.Status {
	case StatusPending:
		return fmt.Sprintf("  ○ %s (pending)", event.Path)
	case StatusWorking:
		return fmt.Sprintf("  ● %s...", event.Path)
	case StatusComplete:
		return fmt.Sprintf("  ✓ %s", event.Path)
	case StatusDegraded:
		return fmt.Sprintf("  ✗ %s: %s", event.Path, event.Message)
	default:
		return fmt.Sprintf("  ? %s (unknown status)", event.Path)
	}
}
