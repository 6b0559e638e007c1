package runner

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs are the arguments of the job auditing one notebook.
type JobArgs struct {
	// AuditID identifies the persisted audit to process. It is the unique key
	// of the job so each audit is enqueued at most once.
	AuditID uuid.UUID `json:"auditId" river:"unique"`

	// maxAttempts is how many times River runs the job before discarding it.
	maxAttempts int
}

// Kind returns the River job kind the audit worker is registered for.
func (args JobArgs) Kind() string { return "AuditNotebookJob" }

// InsertOpts returns the River options applied when the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
