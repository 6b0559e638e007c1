package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReasonDead is the reason attached to every URL that did not answer a probe
// with a status code below 400.
const ReasonDead = "dead"

// AuditID uniquely identifies a persisted notebook audit.
type AuditID uuid.UUID

// String returns the canonical textual form of the ID.
func (id AuditID) String() string { return uuid.UUID(id).String() }

// RunID groups the audits created by a single run.
type RunID uuid.UUID

// String returns the canonical textual form of the ID.
func (id RunID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether id is the zero RunID, i.e. no run was created.
func (id RunID) IsZero() bool { return id == RunID{} }

// AuditStatus represents the lifecycle state of a persisted audit.
type AuditStatus string

const (
	// AuditStatusPending indicates the audit has been enqueued but not processed yet.
	AuditStatusPending AuditStatus = "PENDING"
	// AuditStatusPassed indicates every URL in the notebook answered the probe.
	AuditStatusPassed AuditStatus = "PASSED"
	// AuditStatusFailed indicates at least one URL in the notebook is dead.
	AuditStatusFailed AuditStatus = "FAILED"
	// AuditStatusError indicates the notebook could not be audited at all,
	// see LastError for details.
	AuditStatusError AuditStatus = "ERROR"
)

// DeadLink is a URL candidate that failed its probe.
type DeadLink struct {
	URL    string
	Reason string
}

// AuditResult is the outcome of checking the links of one notebook.
// An empty Dead slice means the notebook passed.
type AuditResult struct {
	// Notebook is the path of the audited notebook file.
	Notebook string
	// Checked is the number of URL candidates extracted from the notebook.
	Checked int
	// Dead lists unreachable URLs in order of first occurrence.
	Dead []DeadLink
}

// Passed reports whether no dead link was found.
func (r AuditResult) Passed() bool { return len(r.Dead) == 0 }

// Report renders the human-readable failure report: a header line naming the
// notebook followed by one "- {url} is dead" line per dead URL. It returns an
// empty string for a passing result.
func (r AuditResult) Report() string {
	if r.Passed() {
		return ""
	}

	var b strings.Builder
	b.WriteString(r.Notebook)
	b.WriteString(":\n")
	for _, d := range r.Dead {
		b.WriteString("- ")
		b.WriteString(d.URL)
		b.WriteString(" is ")
		b.WriteString(d.Reason)
		b.WriteString("\n")
	}

	return b.String()
}

// Audit is a persisted notebook audit belonging to a run.
type Audit struct {
	// ID is the unique identifier of the audit.
	ID AuditID
	// RunID identifies the run that created this audit.
	RunID RunID

	// Notebook is the path of the notebook to audit.
	Notebook string
	// Status is the current lifecycle state of the audit.
	Status AuditStatus
	// Result holds the latest verdict; it is empty while pending.
	Result AuditResult

	// Attempts is the number of times the audit has been processed.
	Attempts uint
	// LastError stores the most recent processing error, if any.
	LastError string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RunStatus folds the statuses of the audits of a run into one: PENDING while
// any audit is pending, otherwise ERROR if any audit errored, otherwise FAILED
// if any notebook has dead links, otherwise PASSED.
func RunStatus(audits []Audit) AuditStatus {
	status := AuditStatusPassed
	for _, a := range audits {
		switch a.Status {
		case AuditStatusPending:
			return AuditStatusPending
		case AuditStatusError:
			status = AuditStatusError
		case AuditStatusFailed:
			if status != AuditStatusError {
				status = AuditStatusFailed
			}
		case AuditStatusPassed:
		}
	}

	return status
}
