package worker

// Log Messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgExtractionStarted = "Extraction started"
	LogMsgExtractionDone    = "Extraction done"
	LogMsgLowConfidence     = "Low confidence extraction archived"
	LogMsgQueueDrained      = "No pending captures"
)

// Error Messages
const (
	ErrMsgRecordFailure = "Failed to record extraction error"
	ErrMsgArchiveFailed = "Failed to archive low confidence extraction"
)
