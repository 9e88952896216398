package domain

import "time"

// CaptureStatus is the lifecycle state of a submitted screenshot.
type CaptureStatus string

const (
	CaptureStatusPending   CaptureStatus = "pending"
	CaptureStatusCompleted CaptureStatus = "completed"
	CaptureStatusValidated CaptureStatus = "validated"
	CaptureStatusRejected  CaptureStatus = "rejected"
	// CaptureStatusFailed is part of the schema but no transition currently
	// reaches it; transient failures leave the row pending for retry.
	CaptureStatusFailed CaptureStatus = "failed"
)

// Valid reports whether s is a known status value.
func (s CaptureStatus) Valid() bool {
	switch s {
	case CaptureStatusPending, CaptureStatusCompleted, CaptureStatusValidated,
		CaptureStatusRejected, CaptureStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status graph allows moving from s to next.
// Pending rows may only complete; completed rows may only be validated or
// rejected. Everything else is terminal.
func (s CaptureStatus) CanTransitionTo(next CaptureStatus) bool {
	switch s {
	case CaptureStatusPending:
		return next == CaptureStatusCompleted
	case CaptureStatusCompleted:
		return next == CaptureStatusValidated || next == CaptureStatusRejected
	}
	return false
}

// Capture represents one submitted screenshot and its lifecycle record.
// SubjectID and BuildLabel are nil for legacy captures submitted before the
// command accepted them; the validation session collects both interactively.
type Capture struct {
	ID            int64             `json:"id"`
	SubmitterID   string            `json:"submitter_id"`
	SubmitterName string            `json:"submitter_name"`
	SubjectID     *int64            `json:"subject_id,omitempty"`
	BuildLabel    *string           `json:"build_label,omitempty"`
	ImageData     []byte            `json:"-"`
	ImageFilename string            `json:"image_filename"`
	Status        CaptureStatus     `json:"status"`
	SubmittedAt   time.Time         `json:"submitted_at"`
	ProcessedAt   *time.Time        `json:"processed_at,omitempty"`
	ValidatedAt   *time.Time        `json:"validated_at,omitempty"`
	NotifiedAt    *time.Time        `json:"notified_at,omitempty"`
	Result        *ExtractionResult `json:"result,omitempty"`
	ErrorMessage  *string           `json:"error_message,omitempty"`
}

// IsLegacy reports whether the capture was submitted without a pre-selected
// subject, meaning the validation session must collect one.
func (c *Capture) IsLegacy() bool {
	return c.SubjectID == nil
}
