package domain

import (
	"fmt"
	"strings"
)

// Category classifies a violation by the kind of normative rule it breaks.
// Categories are stable and can be used for programmatic handling.
type Category string

const (
	CategoryStructural Category = "structural"
	CategoryValue      Category = "value_mismatch"
	CategoryEncoding   Category = "encoding"
	CategoryLength     Category = "length"
	CategorySignature  Category = "signature"
)

// String returns the category as a string.
func (c Category) String() string {
	return string(c)
}

// Violation is a single conformance failure. It carries the clause identifier
// of the normative requirement that was violated, a human-readable message,
// and an optional underlying cause. A Violation is created at the point of
// detection and returned immediately; verifiers never collect violations
// themselves.
type Violation struct {
	Clause   string
	Category Category
	Message  string
	Cause    error
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Clause, v.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (v *Violation) Unwrap() error {
	return v.Cause
}

// NewViolation creates a violation for a registered clause. It panics if the
// clause identifier is unknown; an unattributable violation is a programming
// error, not an input error.
func NewViolation(clause string, category Category, message string) *Violation {
	mustBeRegistered(clause)
	return &Violation{Clause: clause, Category: category, Message: message}
}

// StructuralViolation reports a missing element/attribute or a cardinality
// constraint failure.
func StructuralViolation(clause, message string) *Violation {
	return NewViolation(clause, CategoryStructural, message)
}

// ValueViolation reports a present value that does not equal its required value.
func ValueViolation(clause, message string) *Violation {
	return NewViolation(clause, CategoryValue, message)
}

// EncodingViolation reports a value that cannot be decoded, or a decoded/raw
// inconsistency that indicates a double-encoding defect.
func EncodingViolation(clause, message string) *Violation {
	return NewViolation(clause, CategoryEncoding, message)
}

// LengthViolation reports a value exceeding its size limit.
func LengthViolation(clause, message string) *Violation {
	return NewViolation(clause, CategoryLength, message)
}

// SignatureViolation reports a failed cryptographic verification, carrying the
// verifier's error as cause when there is one.
func SignatureViolation(clause, message string, cause error) *Violation {
	v := NewViolation(clause, CategorySignature, message)
	v.Cause = cause
	return v
}

// Violations is an ordered list of violations, as returned by accumulating
// verification runs.
type Violations []*Violation

// Error implements the error interface by joining all violation messages.
func (vs Violations) Error() string {
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}
