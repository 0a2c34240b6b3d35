// Package resolve turns free-text queries into validated element records.
// It is the only package that produces the NotFound/Upstream error taxonomy;
// consumers translate the error kind into localized copy and never surface
// upstream internals to the user.
package resolve

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the query matched no catalog entry and no
// enrichment result was available.
var ErrNotFound = errors.New("element not found")

// ErrUpstream is the sentinel for every failure of the enrichment mechanism:
// transport errors, bad status, unparseable or invalid payloads, timeouts.
// Match with errors.Is.
var ErrUpstream = errors.New("upstream lookup failed")

// UpstreamError wraps the cause of an enrichment failure with the stage it
// occurred in. errors.Is(err, ErrUpstream) holds for all instances.
type UpstreamError struct {
	Stage string // "complete", "parse" or "validate"
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// ValidationError reports an upstream payload that parsed but violated the
// record shape. It is always wrapped in an UpstreamError, so callers that
// only branch on the taxonomy need not know about it; callers that want the
// shape detail can errors.As for it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid upstream record: %s: %s", e.Field, e.Reason)
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUpstream reports whether err is an enrichment failure.
func IsUpstream(err error) bool { return errors.Is(err, ErrUpstream) }
