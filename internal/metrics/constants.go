package metrics

// Metric Names
const (
	MetricNameCapturesSubmitted    = "captures_submitted_total"
	MetricNameCapturesCompleted    = "captures_completed_total"
	MetricNameCapturesValidated    = "captures_validated_total"
	MetricNameCapturesRejected     = "captures_rejected_total"
	MetricNameExtractionFailures   = "extraction_failures_total"
	MetricNameExtractionConfidence = "extraction_confidence"
	MetricNameExtractionDuration   = "extraction_duration_seconds"
	MetricNameQueueDepth           = "capture_queue_depth"
	MetricNameSessionsTimedOut     = "validation_sessions_timed_out_total"
)

// Help Texts
const (
	HelpTextCapturesSubmitted    = "Total number of screenshots submitted to the queue"
	HelpTextCapturesCompleted    = "Total number of captures that finished extraction"
	HelpTextCapturesValidated    = "Total number of captures confirmed by their submitter"
	HelpTextCapturesRejected     = "Total number of captures rejected during validation"
	HelpTextExtractionFailures   = "Total number of extraction attempts that left a capture pending"
	HelpTextExtractionConfidence = "Confidence score distribution of completed extractions"
	HelpTextExtractionDuration   = "Time spent extracting one capture"
	HelpTextQueueDepth           = "Number of captures currently pending"
	HelpTextSessionsTimedOut     = "Total number of validation prompts that expired unanswered"
)

// Labels
const (
	LabelEngine = "engine"
)

// ConfidenceBuckets covers the 0..1 confidence range.
var ConfidenceBuckets = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// DurationBuckets covers sub-second OCR up to slow remote calls.
var DurationBuckets = []float64{0.5, 1, 2, 5, 10, 20, 30, 60}
