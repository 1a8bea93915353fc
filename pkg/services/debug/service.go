package debug

import (
	"context"

	"go.uber.org/zap"

	"github.com/maxbull/factom-go-sdk/internal/common/logger"
	"github.com/maxbull/factom-go-sdk/pkg/client"
	"github.com/maxbull/factom-go-sdk/pkg/payloads"
	"github.com/maxbull/factom-go-sdk/pkg/services/jsonrpc"
	"github.com/maxbull/factom-go-sdk/pkg/services/library"
)

type Service struct {
	rpc library.JSONRPC
	log *logger.Logger
}

func New(rpc library.JSONRPC, log *logger.Logger) library.Debug {
	return &Service{rpc: rpc, log: log}
}

func (s *Service) HoldingQueue(ctx context.Context) (*client.Response[payloads.HoldingQueue], error) {
	return jsonrpc.Call[payloads.HoldingQueue](ctx, s.rpc, client.Debug, "holding-queue", nil)
}

func (s *Service) NetworkInfo(ctx context.Context) (*client.Response[payloads.NetworkInfo], error) {
	return jsonrpc.Call[payloads.NetworkInfo](ctx, s.rpc, client.Debug, "network-info", nil)
}

func (s *Service) PredictiveFER(ctx context.Context) (*client.Response[uint64], error) {
	return jsonrpc.Call[uint64](ctx, s.rpc, client.Debug, "predictive-fer", nil)
}

func (s *Service) AuditServers(ctx context.Context) (*client.Response[payloads.AuditServers], error) {
	return jsonrpc.Call[payloads.AuditServers](ctx, s.rpc, client.Debug, "audit-servers", nil)
}

func (s *Service) FederatedServers(ctx context.Context) (*client.Response[payloads.FederatedServers], error) {
	return jsonrpc.Call[payloads.FederatedServers](ctx, s.rpc, client.Debug, "federated-servers", nil)
}

func (s *Service) Authorities(ctx context.Context) (*client.Response[payloads.Authorities], error) {
	return jsonrpc.Call[payloads.Authorities](ctx, s.rpc, client.Debug, "authorities", nil)
}

func (s *Service) Configuration(ctx context.Context) (*client.Response[map[string]any], error) {
	return jsonrpc.Call[map[string]any](ctx, s.rpc, client.Debug, "configuration", nil)
}

// ReloadConfiguration makes the node re-read factomd.conf in place.
func (s *Service) ReloadConfiguration(ctx context.Context) (*client.Response[map[string]any], error) {
	s.log.Info("Requesting configuration reload")
	return jsonrpc.Call[map[string]any](ctx, s.rpc, client.Debug, "reload-configuration", nil)
}

func (s *Service) ProcessList(ctx context.Context) (*client.Response[map[string]any], error) {
	return jsonrpc.Call[map[string]any](ctx, s.rpc, client.Debug, "process-list", nil)
}

func (s *Service) DropRate(ctx context.Context) (*client.Response[payloads.DropRate], error) {
	return jsonrpc.Call[payloads.DropRate](ctx, s.rpc, client.Debug, "drop-rate", nil)
}

// SetDropRate makes the node randomly drop the given percentage of its
// outgoing messages. Useful for partition drills, ruinous anywhere else.
func (s *Service) SetDropRate(ctx context.Context, rate int64) (*client.Response[payloads.DropRate], error) {
	s.log.Warn("Setting artificial drop rate", zap.Int64("droprate", rate))
	return jsonrpc.Call[payloads.DropRate](ctx, s.rpc, client.Debug, "set-drop-rate",
		map[string]any{"droprate": rate})
}

func (s *Service) Delay(ctx context.Context) (*client.Response[payloads.Delay], error) {
	return jsonrpc.Call[payloads.Delay](ctx, s.rpc, client.Debug, "delay", nil)
}

// SetDelay holds every incoming message for the given number of
// milliseconds before processing.
func (s *Service) SetDelay(ctx context.Context, delay int64) (*client.Response[payloads.Delay], error) {
	s.log.Warn("Setting artificial message delay", zap.Int64("delay_ms", delay))
	return jsonrpc.Call[payloads.Delay](ctx, s.rpc, client.Debug, "set-delay",
		map[string]any{"delay": delay})
}

func (s *Service) Summary(ctx context.Context) (*client.Response[payloads.Summary], error) {
	return jsonrpc.Call[payloads.Summary](ctx, s.rpc, client.Debug, "summary", nil)
}

func (s *Service) Messages(ctx context.Context) (*client.Response[payloads.MessageLog], error) {
	return jsonrpc.Call[payloads.MessageLog](ctx, s.rpc, client.Debug, "messages", nil)
}
