package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorKind classifies import/query failures so handlers and tests do not
// have to match on raw error strings.
type ErrorKind string

const (
	ErrKindFileNotFound         ErrorKind = "FileNotFound"
	ErrKindParseError           ErrorKind = "ParseError"
	ErrKindPartialImportFailure ErrorKind = "PartialImportFailure"
	ErrKindStoreUnavailable     ErrorKind = "StoreUnavailable"
)

type KindError struct {
	Kind ErrorKind
	Err  error
}

func (e *KindError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *KindError) Unwrap() error { return e.Err }

func WrapKind(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &KindError{Kind: kind, Err: err}
}

// KindOf reports the ErrorKind of err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	return ""
}
