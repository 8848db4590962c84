package booking

import "fmt"

// StepError is a validation failure the wizard shows inline on a step.
type StepError struct {
	Step    Step
	Field   string
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Step, e.Field, e.Message)
}

func newStepError(step Step, field, msg string) error {
	return &StepError{
		Step:    step,
		Field:   field,
		Message: msg,
	}
}
