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

package keys

import (
	"errors"
	"fmt"
)

// ErrorType categorizes key material errors for programmatic handling.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeUnsupportedAlgorithm indicates an algorithm tag outside the
	// network's fixed enumeration.
	ErrTypeUnsupportedAlgorithm

	// ErrTypeInvalidKeyMaterial indicates key bytes that do not parse as a
	// valid private key for the requested algorithm.
	ErrTypeInvalidKeyMaterial
)

// String returns a human-readable name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeUnsupportedAlgorithm:
		return "UnsupportedAlgorithm"
	case ErrTypeInvalidKeyMaterial:
		return "InvalidKeyMaterial"
	default:
		return "UnknownError"
	}
}

// KeyError is a structured error for key material failures.
//
// It carries the error category, the algorithm tag involved, and the
// underlying cause. Callers can branch on the category:
//
//	var keyErr *keys.KeyError
//	if errors.As(err, &keyErr) && keyErr.Type == keys.ErrTypeInvalidKeyMaterial {
//	    // ask the caller for different key material
//	}
type KeyError struct {
	// Type categorizes the error.
	Type ErrorType

	// Algorithm is the tag the operation was attempted with.
	Algorithm string

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (algorithm: %s): %v", e.Type, e.Message, e.Algorithm, e.Cause)
	}
	return fmt.Sprintf("%s: %s (algorithm: %s)", e.Type, e.Message, e.Algorithm)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *KeyError) Unwrap() error {
	return e.Cause
}

// IsUnsupportedAlgorithm reports whether err is a KeyError for an algorithm
// tag outside the supported enumeration.
func IsUnsupportedAlgorithm(err error) bool {
	var keyErr *KeyError
	return errors.As(err, &keyErr) && keyErr.Type == ErrTypeUnsupportedAlgorithm
}

// IsInvalidKeyMaterial reports whether err is a KeyError for unparseable or
// mismatched private key material.
func IsInvalidKeyMaterial(err error) bool {
	var keyErr *KeyError
	return errors.As(err, &keyErr) && keyErr.Type == ErrTypeInvalidKeyMaterial
}

func unsupportedAlgorithm(tag string) *KeyError {
	return &KeyError{
		Type:      ErrTypeUnsupportedAlgorithm,
		Algorithm: tag,
		Message:   "algorithm tag is not part of the supported enumeration",
	}
}

func invalidKeyMaterial(alg Algorithm, message string, cause error) *KeyError {
	return &KeyError{
		Type:      ErrTypeInvalidKeyMaterial,
		Algorithm: alg.String(),
		Message:   message,
		Cause:     cause,
	}
}
