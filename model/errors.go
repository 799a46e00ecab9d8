package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors identifying the class of a referential validation
// failure, checkable with errors.Is even though each is wrapped inside a
// *ValidationError alongside the offending field path.
var (
	// ErrUnknownNode indicates a conn_node or switch endpoint references a
	// name absent from Input.SubstationNodes.
	ErrUnknownNode = errors.New("model: unknown substation node")

	// ErrUnknownZone indicates a zone field references a name absent from
	// Input.Zones.
	ErrUnknownZone = errors.New("model: unknown zone")

	// ErrSeriesLength indicates a load/fixed-load time series does not
	// have exactly Input.Horizon entries.
	ErrSeriesLength = errors.New("model: time series length does not match horizon")

	// ErrInvertedBounds indicates a min/max or soc_min/soc_max pair is out
	// of order.
	ErrInvertedBounds = errors.New("model: lower bound exceeds upper bound")

	// ErrSOCOutOfRange indicates soc_initial falls outside [soc_min, soc_max].
	ErrSOCOutOfRange = errors.New("model: initial state of charge outside bounds")
)

// ValidationError collects every field-level failure found by
// Input.Validate in one pass, rather than forcing callers to fix and
// resubmit one field at a time.
type ValidationError struct {
	Issues []FieldIssue
}

// FieldIssue names one invalid field and the sentinel class of its
// failure.
type FieldIssue struct {
	Field string
	Err   error
}

func (v *ValidationError) add(field string, err error) {
	v.Issues = append(v.Issues, FieldIssue{Field: field, Err: err})
}

// Error implements the error interface, listing every collected issue.
func (v *ValidationError) Error() string {
	if len(v.Issues) == 0 {
		return "model: validation failed"
	}
	parts := make([]string, len(v.Issues))
	for i, iss := range v.Issues {
		parts[i] = fmt.Sprintf("%s: %v", iss.Field, iss.Err)
	}
	return "model: validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes every issue's error so errors.Is(err, ErrUnknownZone)
// etc. matches whichever issue carries that sentinel, not only the first.
func (v *ValidationError) Unwrap() []error {
	errs := make([]error, len(v.Issues))
	for i, iss := range v.Issues {
		errs[i] = iss.Err
	}
	return errs
}

func (v *ValidationError) empty() bool {
	return len(v.Issues) == 0
}
