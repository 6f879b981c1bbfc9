package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchErrorResponse is the HTTP error body for rejected batches: the same
// code/message plus one entry per offending line.
type BatchErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Lines   []LineError `json:"lines"`
}

// LineError mirrors ledger.LineError for serialization.
type LineError struct {
	Line   int    `json:"line"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
