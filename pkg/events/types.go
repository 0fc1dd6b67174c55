// Package events defines the batch-mode parse progress events published
// to the /parse broker stream by cmd/webidlparse. Nothing in pkg/lexer,
// pkg/ast, or pkg/parser depends on this package: eventing is strictly a
// CLI-batch-mode concern, never part of the synchronous parse call.
package events

// EventFileStarted is published when a batch run begins parsing a file.
type EventFileStarted struct {
	RunID string
	Path  string
}

// EventFileParsed is published when a file parses successfully.
type EventFileParsed struct {
	RunID           string
	Path            string
	DefinitionCount int
}

// EventFileFailed is published when a file fails to parse.
type EventFileFailed struct {
	RunID string
	Path  string
	Error error
}

// EventBatchDone is published once every file in a batch run has been
// attempted.
type EventBatchDone struct {
	RunID     string
	FileCount int
	FailCount int
}
