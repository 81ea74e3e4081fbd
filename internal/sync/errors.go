package sync

import "fmt"

// SyncError tags a failure with the pipeline stage it happened in, so
// callers can tell "categories endpoint failed, fallback used" apart from
// "the run itself failed" without catching anything.
type SyncError struct {
	Stage string
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Stage, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) *SyncError {
	return &SyncError{Stage: stage, Err: err}
}
