package session

import "time"

// DefaultTimeout bounds each dialog of a validation session.
const DefaultTimeout = 5 * time.Minute

const (
	LogMsgSessionStarted   = "Validation session started"
	LogMsgSessionTimedOut  = "Validation session timed out"
	LogMsgSessionValidated = "Validation session confirmed"
	LogMsgSessionRejected  = "Validation session rejected"
	LogMsgAutoRejected     = "Capture auto-rejected: submitter has no subjects"
)

const ErrMsgClearNotified = "Failed to clear notification mark"
