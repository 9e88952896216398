package server

import "time"

const (
	ReadHeaderTimeout = 5 * time.Second
	ReadyCheckTimeout = 2 * time.Second
)

// Status String Values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log Messages
const (
	LogMsgServerStarting    = "Server starting"
	LogMsgRequestStarted    = "Request started"
	LogMsgRequestCompleted  = "Request completed"
	LogMsgReadyCheckFailed  = "Readiness check failed"
	LogMsgQueueStatusFailed = "Queue status lookup failed"
)
