package library

import (
	"context"

	"github.com/maxbull/factom-go-sdk/pkg/client"
	"github.com/maxbull/factom-go-sdk/pkg/payloads"
)

// Debug is factomd's debug API. It only answers on nodes started with
// the debug api enabled, and some results (configuration, process-list)
// change shape between factomd builds, so those come back as maps to be
// re-decoded by the caller.
//
//go:generate mockgen --build_flags=--mod=mod --destination mock/debug.go . Debug
type Debug interface {
	HoldingQueue(ctx context.Context) (*client.Response[payloads.HoldingQueue], error)
	NetworkInfo(ctx context.Context) (*client.Response[payloads.NetworkInfo], error)
	PredictiveFER(ctx context.Context) (*client.Response[uint64], error)
	AuditServers(ctx context.Context) (*client.Response[payloads.AuditServers], error)
	FederatedServers(ctx context.Context) (*client.Response[payloads.FederatedServers], error)
	Authorities(ctx context.Context) (*client.Response[payloads.Authorities], error)

	Configuration(ctx context.Context) (*client.Response[map[string]any], error)
	ReloadConfiguration(ctx context.Context) (*client.Response[map[string]any], error)
	ProcessList(ctx context.Context) (*client.Response[map[string]any], error)

	DropRate(ctx context.Context) (*client.Response[payloads.DropRate], error)
	SetDropRate(ctx context.Context, rate int64) (*client.Response[payloads.DropRate], error)
	Delay(ctx context.Context) (*client.Response[payloads.Delay], error)
	SetDelay(ctx context.Context, delay int64) (*client.Response[payloads.Delay], error)

	Summary(ctx context.Context) (*client.Response[payloads.Summary], error)
	Messages(ctx context.Context) (*client.Response[payloads.MessageLog], error)
}
