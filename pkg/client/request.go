package client

import (
	"github.com/maxbull/factom-go-sdk/internal/common/core"
)

// JSONRPCVersion is the protocol version tag carried by every envelope.
const JSONRPCVersion = "2.0"

// Request is one JSON-RPC 2.0 request envelope. It is created fresh per
// call and never reused after serialization.
type Request struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      uint64         `json:"id"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
}

// NewRequest builds an envelope for method using the current correlation
// id. Building never advances the id: repeated calls reuse the same id
// until the caller explicitly increments or sets it. A nil params map is
// sent as an empty object, the daemons reject a JSON null there.
func (c *Client) NewRequest(method string, params map[string]any) (*Request, error) {
	if method == "" {
		return nil, core.ErrEmptyMethod.WithArgs()
	}
	if params == nil {
		params = map[string]any{}
	}
	return &Request{
		JSONRPC: JSONRPCVersion,
		ID:      c.requestID.Load(),
		Method:  method,
		Params:  params,
	}, nil
}
