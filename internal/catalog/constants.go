package catalog

// MinCandidateLength filters out OCR fragments too short to match a card
// name without false positives.
const MinCandidateLength = 3
