package domain

import "errors"

var (
	// ErrCaptureNotFound is returned when a capture id does not exist or a
	// status-guarded update matched no row.
	ErrCaptureNotFound = errors.New("capture not found")

	// ErrInvalidTransition is returned when a status update would violate
	// the capture lifecycle.
	ErrInvalidTransition = errors.New("invalid capture status transition")

	// ErrSubjectNotFound is returned when a subject id does not exist or
	// belongs to another owner.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrNoSubjects is returned when a user has no subjects to attach a
	// validated capture to.
	ErrNoSubjects = errors.New("no subjects registered")

	// ErrDuplicateSnapshot is returned when a validated result matches the
	// subject's latest snapshot on every compared field.
	ErrDuplicateSnapshot = errors.New("duplicate snapshot")

	// ErrMalformedResponse is returned by the delegated engine when the
	// model reply contains no usable JSON object.
	ErrMalformedResponse = errors.New("malformed extraction response")

	// ErrTransientExtraction wraps failures worth retrying: the capture
	// stays pending and a later claim will attempt it again.
	ErrTransientExtraction = errors.New("transient extraction failure")

	// ErrStorageUnavailable is returned when the database cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
