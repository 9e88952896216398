package snapshot

// DefaultHistoryLimit caps history queries when the caller has no opinion.
const DefaultHistoryLimit = 50

const (
	ErrMsgAppendFailed  = "failed to append snapshot: %w"
	ErrMsgHistoryFailed = "failed to load history: %w"
	ErrMsgCompareFailed = "failed to compare snapshots: %w"
	ErrMsgNoResult      = "capture has no extraction result"
)

const (
	LogMsgSnapshotAppended = "Snapshot appended"
	LogMsgDuplicateSkipped = "Duplicate snapshot skipped"
	UnknownCharacterName   = "Unknown"
)
