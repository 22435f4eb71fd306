package sylverapi

import "fmt"

// ServiceError means the service answered but reported a failure, either
// through an "error" field or a non-2xx status.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error (%d): %s", e.Status, e.Message)
}

// TransportError means no usable answer arrived: the request could not be
// sent, timed out, or the body could not be read or decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
