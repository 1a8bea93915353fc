/*
Package factom is a typed client for the Factom daemon family: the
factomd node API, the factom-walletd API and factomd's debug API, all
speaking JSON-RPC 2.0 over HTTP. See the README for the full tour.

	f, err := factom.New()
	if err != nil { ... }
	heights, err := f.Daemon().Heights(ctx)
*/
package factom

import (
	"context"
	"net/url"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/maxbull/factom-go-sdk/internal/common/core"
	"github.com/maxbull/factom-go-sdk/internal/common/logger"
	"github.com/maxbull/factom-go-sdk/pkg/client"
	"github.com/maxbull/factom-go-sdk/pkg/config"
	"github.com/maxbull/factom-go-sdk/pkg/retry"
	"github.com/maxbull/factom-go-sdk/pkg/services/daemon"
	"github.com/maxbull/factom-go-sdk/pkg/services/debug"
	"github.com/maxbull/factom-go-sdk/pkg/services/jsonrpc"
	"github.com/maxbull/factom-go-sdk/pkg/services/library"
	"github.com/maxbull/factom-go-sdk/pkg/services/wallet"
)

// Client bundles the three endpoint services over one shared protocol
// core. It satisfies library.Library; the extra methods expose the
// correlation id counter, cloning and raw calls for anything the typed
// surface does not cover.
type Client struct {
	client  *client.Client
	rpc     library.JSONRPC
	retrier *retry.Retrier

	daemonService library.Daemon
	walletService library.Wallet
	debugService  library.Debug

	log *logger.Logger
}

var _ library.Library = (*Client)(nil)

// Load .env from the working directory so the SDK can be pointed at a
// node without exporting variables machine-wide.
func init() {
	_ = gotenv.Load()
}

// New builds a client from the environment, falling back to the local
// daemon ports.
func New() (*Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds a client from an explicit configuration.
func NewWithConfig(cfg *config.Config) (*Client, error) {
	protocol, err := client.New(cfg)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Development)
	if err != nil {
		return nil, err
	}

	return newClient(protocol, log, retry.New(cfg.RetryMode, cfg.RetryMaxTime)), nil
}

// NewOpenNode builds a client against the public load-balanced mainnet
// node. The wallet endpoint keeps its configured value; there is no
// public walletd, and the open node does not serve the debug API.
func NewOpenNode() (*Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	cfg.FactomdURL = core.OpenNodeHost
	cfg.DebugURL = ""
	return NewWithConfig(cfg)
}

// NewTestnet builds a client against the community testnet node.
func NewTestnet() (*Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	cfg.FactomdURL = core.TestnetHost
	cfg.DebugURL = ""
	return NewWithConfig(cfg)
}

// NewWithHosts builds a client against explicit daemon hosts, ignoring
// the endpoint environment variables.
func NewWithHosts(node, wallet string) (*Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	cfg.FactomdURL = node
	cfg.WalletdURL = wallet
	cfg.DebugURL = ""
	return NewWithConfig(cfg)
}

func newClient(protocol *client.Client, log *logger.Logger, retrier *retry.Retrier) *Client {
	rpc := jsonrpc.New(protocol, log)
	return &Client{
		client:        protocol,
		rpc:           rpc,
		retrier:       retrier,
		daemonService: daemon.New(rpc, log),
		walletService: wallet.New(rpc, log),
		debugService:  debug.New(rpc, log),
		log:           log,
	}
}

func (c *Client) Daemon() library.Daemon {
	return c.daemonService
}

func (c *Client) Wallet() library.Wallet {
	return c.walletService
}

func (c *Client) Debug() library.Debug {
	return c.debugService
}

// CurrentID returns the correlation id the next call will be stamped
// with. Ids never advance on their own; see IncrementID.
func (c *Client) CurrentID() uint64 {
	return c.client.CurrentID()
}

// IncrementID advances the correlation id and returns the new value.
func (c *Client) IncrementID() uint64 {
	return c.client.IncrementID()
}

// SetID pins the correlation id, typically to replay a captured
// exchange or to partition id ranges across clones.
func (c *Client) SetID(id uint64) {
	c.client.SetID(id)
}

// Clone returns an independent client over the same endpoints and the
// same HTTP connection pool. The clone starts with the current id and
// counts on its own from there.
func (c *Client) Clone() *Client {
	return newClient(c.client.Clone(), c.log, c.retrier)
}

// EndpointURL reports the normalized URL a logical endpoint resolves
// to.
func (c *Client) EndpointURL(endpoint client.Endpoint) (*url.URL, error) {
	return c.client.EndpointURL(endpoint)
}

// Retry runs op under the configured retry policy. Transport failures
// are retried in backoff mode; everything else fails the first time.
func (c *Client) Retry(ctx context.Context, op func() error) error {
	return c.retrier.Do(ctx, op)
}

// Call sends a raw JSON-RPC request to the chosen endpoint, for daemon
// methods the typed services do not cover yet.
func (c *Client) Call(ctx context.Context, endpoint client.Endpoint, method string,
	params map[string]any, logContext ...zap.Field) (*client.RawResponse, error) {
	return c.rpc.Call(ctx, endpoint, method, params, logContext...)
}
