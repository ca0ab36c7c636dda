package core

import (
	"errors"
	"fmt"
)

// Error classes. Every failure surfaced by the module matches exactly one of
// them under errors.Is.
var (
	// ErrStructural indicates a broken tree or index invariant.
	ErrStructural = errors.New("magn: structural violation")

	// ErrLookup indicates an expected feature, value or path is absent.
	ErrLookup = errors.New("magn: lookup failure")

	// ErrSchema indicates table or key declarations inconsistent with rows.
	ErrSchema = errors.New("magn: schema mismatch")
)

// Lookup causes carried by LookupError.Err.
var (
	// ErrUnknownFeature is returned when no index exists for a feature name.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrUnknownValue is returned when a key is absent from its feature index.
	ErrUnknownValue = errors.New("value not indexed")

	// ErrMissingValue is returned when a row lacks a required value.
	ErrMissingValue = errors.New("missing value")

	// ErrNoPath is returned when no path reaches the requested target.
	ErrNoPath = errors.New("no path to target")
)

// StructuralError reports a violated index or assembly invariant.
type StructuralError struct {
	Feature string
	Op      string
	Msg     string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%v: %s %q: %s", ErrStructural, e.Op, e.Feature, e.Msg)
}

func (e *StructuralError) Unwrap() error { return ErrStructural }

// LookupError reports an absent feature, value or path.
//
// errors.Is matches both ErrLookup and the specific cause in Err.
type LookupError struct {
	Op      string
	Feature string
	Key     Key
	Err     error
}

func (e *LookupError) Error() string {
	if e.Key.Valid() {
		return fmt.Sprintf("%v: %s: %v: feature %q key %s", ErrLookup, e.Op, e.Err, e.Feature, e.Key)
	}
	return fmt.Sprintf("%v: %s: %v: feature %q", ErrLookup, e.Op, e.Err, e.Feature)
}

func (e *LookupError) Unwrap() []error { return []error{ErrLookup, e.Err} }

// SchemaError reports declarations that disagree with the supplied rows.
type SchemaError struct {
	Table  string
	Column string
	Msg    string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("%v: table %q column %q: %s", ErrSchema, e.Table, e.Column, e.Msg)
	case e.Table != "":
		return fmt.Sprintf("%v: table %q: %s", ErrSchema, e.Table, e.Msg)
	default:
		return fmt.Sprintf("%v: %s", ErrSchema, e.Msg)
	}
}

func (e *SchemaError) Unwrap() error { return ErrSchema }
