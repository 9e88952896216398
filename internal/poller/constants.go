package poller

import "time"

// Defaults
const (
	DefaultInterval = 60 * time.Second
)

// Log Messages
const (
	LogMsgPollerStarted   = "Completion poller started"
	LogMsgPollerStopped   = "Completion poller stopped"
	LogMsgSessionLaunched = "Validation session launched"
)

// Error Messages
const (
	ErrMsgListCompleted = "Failed to list completed captures"
	ErrMsgMarkNotified  = "Failed to mark capture notified"
	ErrMsgSessionFailed = "Validation session failed"
)
