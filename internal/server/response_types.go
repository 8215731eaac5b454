// file: internal/server/response_types.go
// version: 1.0.0
// guid: e1f2a3b4-c5d6-e7f8-091a-2b3c4d5e6f70

package server

// SubmissionResult is the outcome of a form submission: either a successful
// mutation or a recoverable rejection, each carrying the user-facing message.
type SubmissionResult struct {
	OK      bool
	Message string
}

// Success builds a successful SubmissionResult
func Success(message string) SubmissionResult {
	return SubmissionResult{OK: true, Message: message}
}

// Warning builds a rejected SubmissionResult
func Warning(message string) SubmissionResult {
	return SubmissionResult{OK: false, Message: message}
}
