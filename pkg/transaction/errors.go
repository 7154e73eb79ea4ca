// Copyright 2025 The Activeledger Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transaction

import (
	"errors"
	"fmt"
)

// ErrorType categorizes document construction errors.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeDuplicateStreamAlias indicates a stream alias that is already
	// present in the document.
	ErrTypeDuplicateStreamAlias

	// ErrTypeIncompleteTransaction indicates a document frozen without the
	// required input stream.
	ErrTypeIncompleteTransaction
)

// String returns a human-readable name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeDuplicateStreamAlias:
		return "DuplicateStreamAlias"
	case ErrTypeIncompleteTransaction:
		return "IncompleteTransaction"
	default:
		return "UnknownError"
	}
}

// BuildError is a structured error for document construction failures. It
// names the offending stream alias where one exists so callers can act on
// it rather than re-parse the message.
type BuildError struct {
	// Type categorizes the error.
	Type ErrorType

	// Alias is the stream alias involved, if any.
	Alias string

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Alias != "" {
		return fmt.Sprintf("%s: %s (alias: %s)", e.Type, e.Message, e.Alias)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// IsDuplicateStreamAlias reports whether err is a BuildError for a stream
// alias collision.
func IsDuplicateStreamAlias(err error) bool {
	var buildErr *BuildError
	return errors.As(err, &buildErr) && buildErr.Type == ErrTypeDuplicateStreamAlias
}

// IsIncompleteTransaction reports whether err is a BuildError for a document
// frozen without an input stream.
func IsIncompleteTransaction(err error) bool {
	var buildErr *BuildError
	return errors.As(err, &buildErr) && buildErr.Type == ErrTypeIncompleteTransaction
}

func duplicateStreamAlias(alias, section string) *BuildError {
	return &BuildError{
		Type:    ErrTypeDuplicateStreamAlias,
		Alias:   alias,
		Message: fmt.Sprintf("alias already present among %s streams", section),
	}
}

func incompleteTransaction() *BuildError {
	return &BuildError{
		Type:    ErrTypeIncompleteTransaction,
		Message: "document has no input stream",
	}
}
