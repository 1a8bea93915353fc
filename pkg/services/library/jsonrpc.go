package library

import (
	"context"

	"go.uber.org/zap"

	"github.com/maxbull/factom-go-sdk/pkg/client"
)

// JSONRPC is the one contract every per-endpoint service needs: dispatch
// a method with its params to a logical endpoint and get the stage-one
// parsed envelope back. Binding the raw result to a concrete type is
// done by the generic helper on top, which keeps this interface
// mockable.
//
//go:generate mockgen --build_flags=--mod=mod --destination mock/jsonrpc.go . JSONRPC
type JSONRPC interface {
	Call(ctx context.Context, endpoint client.Endpoint, method string, params map[string]any,
		logContext ...zap.Field) (*client.RawResponse, error)
}
