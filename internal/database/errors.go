package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

const (
	EntityState    = "state"
	EntityHabit    = "habit"
	EntityDay      = "day"
	EntitySetting  = "setting"
	EntityDatabase = "database"
)

type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Key: key, Err: err}
}

// DeserializationError reports a persisted state blob that could not be
// decoded or failed its checksum. Callers recover by starting fresh.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
