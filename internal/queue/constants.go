package queue

// DefaultNotifyBatchSize caps how many completed captures one poll cycle
// hands to the notifier.
const DefaultNotifyBatchSize = 10

const (
	ErrMsgEnqueueFailed     = "failed to enqueue capture: %w"
	ErrMsgClaimFailed       = "failed to claim pending capture: %w"
	ErrMsgCompleteFailed    = "failed to complete capture %d: %w"
	ErrMsgFinalizeFailed    = "failed to finalize capture %d: %w"
	ErrMsgRecordFailed      = "failed to record capture error: %w"
	ErrMsgNotifyStateFailed = "failed to update notify state for capture %d: %w"
)

const (
	LogMsgCaptureEnqueued  = "Capture enqueued"
	LogMsgCaptureCompleted = "Capture processing completed"
	LogMsgCaptureFinalized = "Capture finalized"
	LogMsgCaptureRetained  = "Capture left pending after failure"
)
