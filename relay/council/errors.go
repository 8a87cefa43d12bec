package council

import (
	"fmt"
)

// FailureKind classifies why a single-model query produced no result.
type FailureKind string

const (
	KindMissingCredential FailureKind = "missing_credential"
	KindTransport         FailureKind = "transport"
	KindUpstreamStatus    FailureKind = "upstream_status"
	KindMalformedResponse FailureKind = "malformed_response"
)

// QueryError is the failure marker carried by a Result. It is never returned as an error
// from the query functions; callers inspect Result.Err instead.
type QueryError struct {
	Kind FailureKind
	// StatusCode is set for KindUpstreamStatus.
	StatusCode int
	Err        error
}

func newQueryError(kind FailureKind, statusCode int, err error) *QueryError {
	return &QueryError{Kind: kind, StatusCode: statusCode, Err: err}
}

func (e *QueryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *QueryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *QueryError of the same kind, so errors.Is(err, &QueryError{Kind: KindTransport}) works.
func (e *QueryError) Is(target error) bool {
	t, ok := target.(*QueryError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}
