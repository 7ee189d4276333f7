package bnr

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a bulletin could not be obtained.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// FetchError is returned by FetchBulletin and ParseBulletin.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func networkError(format string, args ...any) error {
	return &FetchError{Kind: KindNetwork, Err: fmt.Errorf(format, args...)}
}

func parseError(format string, args ...any) error {
	return &FetchError{Kind: KindParse, Err: fmt.Errorf(format, args...)}
}

// IsNetwork reports whether err is a FetchError caused by the transport or a bad HTTP status.
func IsNetwork(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindNetwork
}

// IsParse reports whether err is a FetchError caused by a malformed document.
func IsParse(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindParse
}
