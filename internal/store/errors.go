package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoaded      = errors.New("store not loaded")
	ErrNegativeCount  = errors.New("tasbeeh count cannot be negative")
	ErrEmptyHabitName = errors.New("habit name cannot be empty")
)

// NotFoundError is returned for an unknown prayer name or habit id.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// InvalidGoalError rejects a tasbeeh goal that is not positive.
type InvalidGoalError struct {
	Goal int
}

func (e *InvalidGoalError) Error() string {
	return fmt.Sprintf("invalid tasbeeh goal %d: must be greater than zero", e.Goal)
}
