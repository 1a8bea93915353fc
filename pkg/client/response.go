package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/maxbull/factom-go-sdk/internal/common/core"
)

// APIError is the error member of a JSON-RPC response: the daemon
// understood the call and rejected it. It is data rather than a local
// defect, so it travels inside the response's error branch instead of
// being returned as a Go error from the dispatch path.
type APIError struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, string(e.Data))
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// ParseErrorKind separates a body that is not a JSON-RPC envelope at all
// from an envelope whose result does not fit the requested type.
type ParseErrorKind int

const (
	// Malformed means the body is not valid JSON, or decodes to an
	// envelope carrying neither result nor error.
	Malformed ParseErrorKind = iota
	// SchemaMismatch means the envelope is well-formed but the result
	// cannot be decoded into the requested type. This is the usual
	// integration-time defect, so it carries the method name and the
	// offending field path.
	SchemaMismatch
)

func (k ParseErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case SchemaMismatch:
		return "schema mismatch"
	default:
		return fmt.Sprintf("parse error kind(%d)", int(k))
	}
}

// ParseError reports a response body the parser could not turn into a
// typed response.
type ParseError struct {
	Kind   ParseErrorKind
	Method string
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Kind == SchemaMismatch && e.Field != "":
		return fmt.Sprintf("result of %q does not match the expected schema at %q: %v", e.Method, e.Field, e.Err)
	case e.Kind == SchemaMismatch:
		return fmt.Sprintf("result of %q does not match the expected schema: %v", e.Method, e.Err)
	default:
		return fmt.Sprintf("malformed JSON-RPC response: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RawResponse is the stage-one decoded envelope: the error branch is
// fully typed while the result is kept raw, so each call site can bind
// it to its own payload type.
type RawResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *APIError       `json:"error"`
}

// MatchesID reports whether the response id equals the request id.
// Absent and null ids never match; error responses may legally carry a
// null id when the daemon could not read the request id.
func (r *RawResponse) MatchesID(id uint64) bool {
	if len(r.ID) == 0 || string(r.ID) == "null" {
		return false
	}
	var got uint64
	if err := json.Unmarshal(r.ID, &got); err != nil {
		return false
	}
	return got == id
}

// ParseRawResponse decodes body as a JSON-RPC envelope. A body that is
// not JSON, or one carrying neither result nor error, fails as
// Malformed. Binding the result to a concrete type is DecodeResponse's
// job.
func ParseRawResponse(body []byte) (*RawResponse, error) {
	var raw RawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Kind: Malformed, Err: err}
	}
	if raw.Result == nil && raw.Error == nil {
		return nil, &ParseError{Kind: Malformed, Err: errors.New("response carries neither result nor error")}
	}
	return &raw, nil
}

// Response is the typed counterpart of RawResponse: exactly one of
// Result and Error is set.
type Response[T any] struct {
	ID     json.RawMessage
	Result *T
	Error  *APIError
}

// Success reports whether the error branch is absent.
func (r *Response[T]) Success() bool {
	return r.Error == nil
}

// DecodeResponse binds the raw result to T. When the envelope carries an
// error that branch wins and the result bytes are never touched, whatever
// T was asked for. The method name only labels schema mismatch reports.
func DecodeResponse[T any](raw *RawResponse, method string) (*Response[T], error) {
	if raw.Error != nil {
		return &Response[T]{ID: raw.ID, Error: raw.Error}, nil
	}
	if raw.Result == nil {
		return nil, &ParseError{
			Kind:   Malformed,
			Method: method,
			Err:    errors.New("response carries neither result nor error"),
		}
	}

	var result T
	if err := json.Unmarshal(raw.Result, &result); err != nil {
		parseErr := &ParseError{Kind: SchemaMismatch, Method: method, Err: err}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			parseErr.Field = typeErr.Field
		}
		return nil, parseErr
	}
	return &Response[T]{ID: raw.ID, Result: &result}, nil
}

// DecodeInto re-decodes a dynamic result that was first parsed into maps
// and slices, following json tags on dst. Debug API responses vary
// between factomd builds, so callers often take them as map[string]any
// and bind the parts they need afterwards.
func DecodeInto(src any, dst any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  dst,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(src); err != nil {
		return core.ErrFailedToDecodeResult.WithArgs(err)
	}
	return nil
}
