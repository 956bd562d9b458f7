package pipeline

import "fmt"

// Stage identifies the pipeline stage an error escaped from.
type Stage string

const (
	StageRecords  Stage = "health record flattening"
	StageWorkouts Stage = "workout flattening"
	StageDaily    Stage = "daily aggregation"
)

// ProcessingError is the single error type every stage fails with. The first
// bad row aborts the stage; there is no row-level recovery.
type ProcessingError struct {
	Stage Stage
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func processingError(stage Stage, err error) error {
	return &ProcessingError{Stage: stage, Err: err}
}
