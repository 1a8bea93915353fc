package core

import "fmt"

// ClientError is a type for errors that occur in the client package.
// It is a string that can be formatted with arguments. It avoids to
// repeat the error message formatted in the client code.
type ClientError string

const (
	ErrFailedToMarshalRequest ClientError = "failed to marshal request %s"
	ErrFailedToBuildRequest   ClientError = "failed to build request %s"

	ErrFailedToEncodeParams ClientError = "failed to encode params %s"
	ErrFailedToDecodeResult ClientError = "failed to decode result %s"

	ErrEmptyMethod ClientError = "empty RPC method name"
)

// WithArgs returns a new error with the given arguments.
func (e ClientError) WithArgs(args ...any) error {
	return fmt.Errorf(string(e), args...)
}

// ConfigurationError reports an endpoint host that could not be turned into
// a usable URL. It is raised at construction time only: a client is either
// built with three valid endpoints or not built at all.
type ConfigurationError struct {
	Host  string
	Cause error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid endpoint host %q: %v", e.Host, e.Cause)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// TransportError reports that a call never produced a JSON-RPC envelope:
// the endpoint was unreachable, the connection timed out or was cancelled,
// or the daemon answered with something that is not JSON-RPC. It is distinct
// from an APIError, which means the daemon understood and rejected the call.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure talking to %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
