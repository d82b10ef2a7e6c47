// Package status holds the command/query status protocol shared by all containers.
//
// Every fallible operation returns its outcome directly as an error, and the container also records
// the outcome so that it can be polled afterwards through an accessor named after the operation
// (PushStatus, PutStatus and so on). An operation that was never invoked reports Nil.
package status

import "fmt"

// Code - Tri-state outcome of the last invocation of an operation
type Code uint8

const (
	// Nil - The operation has never been invoked (or its status was reset by a Clear)
	Nil Code = iota
	// Ok - The last invocation succeeded
	Ok
	// Err - The last invocation failed, the reason is available from Status.Reason
	Err
)

// String - Returns the name of the code
func (C Code) String() string {
	switch C {
	case Nil:
		return "nil"
	case Ok:
		return "ok"
	case Err:
		return "err"
	default:
		return fmt.Sprintf("code(%d)", uint8(C))
	}
}

// Status - Recorded outcome of an operation. The zero value is a Nil status.
type Status struct {
	code   Code
	reason error
}

// Of - Returns the status corresponding to an operation result, Ok for a nil error and Err otherwise
func Of(err error) Status {
	if err == nil {
		return Status{code: Ok}
	}
	return Status{code: Err, reason: err}
}

// Code - Returns the tri-state code
func (S Status) Code() Code {
	return S.code
}

// Reason - Returns the failure reason, nil unless the code is Err
func (S Status) Reason() error {
	return S.reason
}

// IsNil - Returns true if the operation has never been invoked
func (S Status) IsNil() bool {
	return S.code == Nil
}

// IsOk - Returns true if the last invocation succeeded
func (S Status) IsOk() bool {
	return S.code == Ok
}

// IsErr - Returns true if the last invocation failed
func (S Status) IsErr() bool {
	return S.code == Err
}

// String - Returns the code, and the reason for failed invocations
func (S Status) String() string {
	if S.code == Err && S.reason != nil {
		return fmt.Sprintf("%s: %s", S.code, S.reason)
	}
	return S.code.String()
}
