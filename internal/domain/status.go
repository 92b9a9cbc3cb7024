package domain

// Status is the lifecycle state of a processing request. Transitions are
// forward-only: pending -> processing -> completed/failed.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// RowStatus is the derived state of a single product row.
type RowStatus string

const (
	RowStatusPending        RowStatus = "pending"
	RowStatusSuccess        RowStatus = "success"
	RowStatusPartialFailure RowStatus = "partial_failure"
)
