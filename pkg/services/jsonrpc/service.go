package jsonrpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maxbull/factom-go-sdk/internal/common/logger"
	"github.com/maxbull/factom-go-sdk/pkg/client"
	"github.com/maxbull/factom-go-sdk/pkg/services/library"
)

// Service wraps the protocol core with logging. Every per-endpoint
// service funnels through here, so this is the one place where calls,
// rejections and id anomalies become visible.
type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.JSONRPC {
	return &Service{
		client: client,
		log:    log,
	}
}

func (s *Service) Call(ctx context.Context, endpoint client.Endpoint, method string, params map[string]any,
	logContext ...zap.Field) (*client.RawResponse, error) {
	s.log.Debug("Making JSON-RPC call",
		append([]zap.Field{
			zap.Stringer("endpoint", endpoint),
			zap.String("method", method),
			zap.Any("params", params),
		}, logContext...)...)

	request, err := s.client.NewRequest(method, params)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Do(ctx, endpoint, request)
	if err != nil {
		s.log.Error("JSON-RPC call failed",
			append([]zap.Field{
				zap.Stringer("endpoint", endpoint),
				zap.String("method", method),
				zap.Error(err),
			}, logContext...)...)
		return nil, fmt.Errorf("JSON-RPC call to %s failed: %w", method, err)
	}

	// The daemons echo the request id back; a mismatch usually means a
	// misbehaving proxy between us and the node. Worth a warning, not a
	// failed call.
	if !raw.MatchesID(request.ID) && raw.Error == nil {
		s.log.Warn("Response id does not match request id",
			append([]zap.Field{
				zap.String("method", method),
				zap.Uint64("request_id", request.ID),
				zap.ByteString("response_id", raw.ID),
			}, logContext...)...)
	}

	if raw.Error != nil {
		s.log.Debug("JSON-RPC call rejected",
			append([]zap.Field{
				zap.String("method", method),
				zap.Int64("code", raw.Error.Code),
				zap.String("message", raw.Error.Message),
			}, logContext...)...)
		return raw, nil
	}

	s.log.Debug("JSON-RPC call successful",
		append([]zap.Field{
			zap.String("method", method),
			zap.ByteString("result", raw.Result),
		}, logContext...)...)

	return raw, nil
}

// Call dispatches method to endpoint through rpc and binds the result
// to T. This is the whole collaborator contract of the per-endpoint
// services: supply a method, a parameter map and a result type, get the
// typed response back.
func Call[T any](ctx context.Context, rpc library.JSONRPC, endpoint client.Endpoint, method string,
	params map[string]any, logContext ...zap.Field) (*client.Response[T], error) {
	raw, err := rpc.Call(ctx, endpoint, method, params, logContext...)
	if err != nil {
		return nil, err
	}
	return client.DecodeResponse[T](raw, method)
}
