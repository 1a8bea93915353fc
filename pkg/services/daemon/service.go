// Package daemon talks to the factomd node API. Methods map one to one
// onto the v2 RPC surface; the only logic beyond parameter naming is
// the ack polling pair.
package daemon

import (
	"context"
	"fmt"
	"time"

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

func New(rpc library.JSONRPC, log *logger.Logger) library.Daemon {
	return &Service{rpc: rpc, log: log}
}

func (s *Service) Heights(ctx context.Context) (*client.Response[payloads.Heights], error) {
	return jsonrpc.Call[payloads.Heights](ctx, s.rpc, client.Factomd, "heights", nil)
}

func (s *Service) CurrentMinute(ctx context.Context) (*client.Response[payloads.CurrentMinute], error) {
	return jsonrpc.Call[payloads.CurrentMinute](ctx, s.rpc, client.Factomd, "current-minute", nil)
}

func (s *Service) Properties(ctx context.Context) (*client.Response[payloads.DaemonProperties], error) {
	return jsonrpc.Call[payloads.DaemonProperties](ctx, s.rpc, client.Factomd, "properties", nil)
}

func (s *Service) Diagnostics(ctx context.Context) (*client.Response[payloads.Diagnostics], error) {
	return jsonrpc.Call[payloads.Diagnostics](ctx, s.rpc, client.Factomd, "diagnostics", nil)
}

func (s *Service) EntryCreditRate(ctx context.Context) (*client.Response[payloads.EntryCreditRate], error) {
	return jsonrpc.Call[payloads.EntryCreditRate](ctx, s.rpc, client.Factomd, "entry-credit-rate", nil)
}

func (s *Service) FactoidBalance(ctx context.Context, address string) (*client.Response[payloads.Balance], error) {
	return jsonrpc.Call[payloads.Balance](ctx, s.rpc, client.Factomd, "factoid-balance",
		map[string]any{"address": address})
}

func (s *Service) EntryCreditBalance(ctx context.Context, address string) (*client.Response[payloads.Balance], error) {
	return jsonrpc.Call[payloads.Balance](ctx, s.rpc, client.Factomd, "entry-credit-balance",
		map[string]any{"address": address})
}

func (s *Service) MultipleFactoidBalances(ctx context.Context,
	addresses ...string) (*client.Response[payloads.MultipleBalances], error) {
	s.log.Debug("Querying multiple factoid balances", zap.Int("count", len(addresses)))
	return jsonrpc.Call[payloads.MultipleBalances](ctx, s.rpc, client.Factomd, "multiple-fct-balances",
		map[string]any{"addresses": addresses})
}

func (s *Service) MultipleECBalances(ctx context.Context,
	addresses ...string) (*client.Response[payloads.MultipleBalances], error) {
	s.log.Debug("Querying multiple entry credit balances", zap.Int("count", len(addresses)))
	return jsonrpc.Call[payloads.MultipleBalances](ctx, s.rpc, client.Factomd, "multiple-ec-balances",
		map[string]any{"addresses": addresses})
}

func (s *Service) ChainHead(ctx context.Context, chainID string) (*client.Response[payloads.ChainHead], error) {
	return jsonrpc.Call[payloads.ChainHead](ctx, s.rpc, client.Factomd, "chain-head",
		map[string]any{"chainid": chainID})
}

func (s *Service) CommitChain(ctx context.Context, message string) (*client.Response[payloads.CommitChain], error) {
	return jsonrpc.Call[payloads.CommitChain](ctx, s.rpc, client.Factomd, "commit-chain",
		map[string]any{"message": message})
}

func (s *Service) RevealChain(ctx context.Context, entry string) (*client.Response[payloads.Reveal], error) {
	return jsonrpc.Call[payloads.Reveal](ctx, s.rpc, client.Factomd, "reveal-chain",
		map[string]any{"entry": entry})
}

func (s *Service) CommitEntry(ctx context.Context, message string) (*client.Response[payloads.CommitEntry], error) {
	return jsonrpc.Call[payloads.CommitEntry](ctx, s.rpc, client.Factomd, "commit-entry",
		map[string]any{"message": message})
}

func (s *Service) RevealEntry(ctx context.Context, entry string) (*client.Response[payloads.Reveal], error) {
	return jsonrpc.Call[payloads.Reveal](ctx, s.rpc, client.Factomd, "reveal-entry",
		map[string]any{"entry": entry})
}

func (s *Service) Entry(ctx context.Context, hash string) (*client.Response[payloads.Entry], error) {
	return jsonrpc.Call[payloads.Entry](ctx, s.rpc, client.Factomd, "entry",
		map[string]any{"hash": hash})
}

func (s *Service) EntryBlock(ctx context.Context, keyMR string) (*client.Response[payloads.EntryBlock], error) {
	return jsonrpc.Call[payloads.EntryBlock](ctx, s.rpc, client.Factomd, "entry-block",
		map[string]any{"keymr": keyMR})
}

func (s *Service) PendingEntries(ctx context.Context) (*client.Response[[]payloads.PendingEntry], error) {
	return jsonrpc.Call[[]payloads.PendingEntry](ctx, s.rpc, client.Factomd, "pending-entries", nil)
}

func (s *Service) RawData(ctx context.Context, hash string) (*client.Response[payloads.RawData], error) {
	return jsonrpc.Call[payloads.RawData](ctx, s.rpc, client.Factomd, "raw-data",
		map[string]any{"hash": hash})
}

func (s *Service) Receipt(ctx context.Context, entryHash string,
	includeRawEntry bool) (*client.Response[payloads.Receipt], error) {
	return jsonrpc.Call[payloads.Receipt](ctx, s.rpc, client.Factomd, "receipt",
		map[string]any{"hash": entryHash, "includerawentry": includeRawEntry})
}

func (s *Service) DirectoryBlock(ctx context.Context, keyMR string) (*client.Response[payloads.DirectoryBlock], error) {
	return jsonrpc.Call[payloads.DirectoryBlock](ctx, s.rpc, client.Factomd, "directory-block",
		map[string]any{"keymr": keyMR})
}

func (s *Service) DirectoryBlockHead(ctx context.Context) (*client.Response[payloads.DirectoryBlockHead], error) {
	return jsonrpc.Call[payloads.DirectoryBlockHead](ctx, s.rpc, client.Factomd, "directory-block-head", nil)
}

func (s *Service) DBlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.DBlockByHeight], error) {
	return jsonrpc.Call[payloads.DBlockByHeight](ctx, s.rpc, client.Factomd, "dblock-by-height",
		map[string]any{"height": height})
}

func (s *Service) ABlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.AdminBlock], error) {
	return jsonrpc.Call[payloads.AdminBlock](ctx, s.rpc, client.Factomd, "ablock-by-height",
		map[string]any{"height": height})
}

func (s *Service) ECBlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.EntryCreditBlock], error) {
	return jsonrpc.Call[payloads.EntryCreditBlock](ctx, s.rpc, client.Factomd, "ecblock-by-height",
		map[string]any{"height": height})
}

func (s *Service) FBlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.FactoidBlock], error) {
	return jsonrpc.Call[payloads.FactoidBlock](ctx, s.rpc, client.Factomd, "fblock-by-height",
		map[string]any{"height": height})
}

func (s *Service) AdminBlock(ctx context.Context, keyMR string) (*client.Response[payloads.AdminBlock], error) {
	return jsonrpc.Call[payloads.AdminBlock](ctx, s.rpc, client.Factomd, "admin-block",
		map[string]any{"keymr": keyMR})
}

func (s *Service) EntryCreditBlock(ctx context.Context, keyMR string) (*client.Response[payloads.EntryCreditBlock], error) {
	return jsonrpc.Call[payloads.EntryCreditBlock](ctx, s.rpc, client.Factomd, "entrycredit-block",
		map[string]any{"keymr": keyMR})
}

func (s *Service) FactoidBlock(ctx context.Context, keyMR string) (*client.Response[payloads.FactoidBlock], error) {
	return jsonrpc.Call[payloads.FactoidBlock](ctx, s.rpc, client.Factomd, "factoid-block",
		map[string]any{"keymr": keyMR})
}

func (s *Service) FactoidSubmit(ctx context.Context,
	transaction string) (*client.Response[payloads.FactoidSubmit], error) {
	return jsonrpc.Call[payloads.FactoidSubmit](ctx, s.rpc, client.Factomd, "factoid-submit",
		map[string]any{"transaction": transaction})
}

func (s *Service) Transaction(ctx context.Context, hash string) (*client.Response[payloads.Transaction], error) {
	return jsonrpc.Call[payloads.Transaction](ctx, s.rpc, client.Factomd, "transaction",
		map[string]any{"hash": hash})
}

// PendingTransactions lists transactions sitting in the mempool. An
// empty address means no filter, so the key is left out entirely;
// factomd treats a present-but-empty address as a filter that matches
// nothing.
func (s *Service) PendingTransactions(ctx context.Context,
	address string) (*client.Response[[]payloads.PendingTransaction], error) {
	params := map[string]any{}
	if address != "" {
		params["address"] = address
	}
	return jsonrpc.Call[[]payloads.PendingTransaction](ctx, s.rpc, client.Factomd, "pending-transactions", params)
}

func (s *Service) EntryAck(ctx context.Context, hash, chainID string) (*client.Response[payloads.EntryAck], error) {
	return jsonrpc.Call[payloads.EntryAck](ctx, s.rpc, client.Factomd, "ack",
		map[string]any{"hash": hash, "chainid": chainID})
}

// FactoidAck shares the ack method with EntryAck; the literal chainid
// "f" is how factomd selects the factoid variant.
func (s *Service) FactoidAck(ctx context.Context, txID string) (*client.Response[payloads.FactoidAck], error) {
	return jsonrpc.Call[payloads.FactoidAck](ctx, s.rpc, client.Factomd, "ack",
		map[string]any{"hash": txID, "chainid": "f"})
}

const (
	// DefaultAckTimeout bounds the ack polling helpers when the caller
	// passes no timeout. Acknowledgements normally land within a few
	// seconds of submission.
	DefaultAckTimeout = time.Minute

	ackPollInterval = 2 * time.Second
)

// WaitForEntryAck polls the ack call until the entry itself, not just
// its commit, is acknowledged or in a directory block, then returns the
// final ack. Poll failures and rejections are retried until the
// deadline, so callers can start waiting right after a reveal while the
// node still reports the hash as unknown. A non-positive timeout
// selects DefaultAckTimeout.
func (s *Service) WaitForEntryAck(ctx context.Context, hash, chainID string,
	timeout time.Duration) (*payloads.EntryAck, error) {
	if timeout <= 0 {
		timeout = DefaultAckTimeout
	}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.log.Debug("Polling entry ack", zap.String("hash", hash))
		resp, err := s.EntryAck(ctx, hash, chainID)
		if err != nil {
			s.log.Warn("Entry ack poll failed, will retry",
				zap.String("hash", hash),
				zap.Error(err))
			time.Sleep(ackPollInterval)
			continue
		}

		if resp.Success() && resp.Result.EntryData.Status.Confirmed() {
			return resp.Result, nil
		}
		time.Sleep(ackPollInterval)
	}

	return nil, fmt.Errorf("entry %s was not acknowledged within %v", hash, timeout)
}

// WaitForFactoidAck is WaitForEntryAck for factoid transactions.
func (s *Service) WaitForFactoidAck(ctx context.Context, txID string,
	timeout time.Duration) (*payloads.FactoidAck, error) {
	if timeout <= 0 {
		timeout = DefaultAckTimeout
	}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.log.Debug("Polling factoid ack", zap.String("txid", txID))
		resp, err := s.FactoidAck(ctx, txID)
		if err != nil {
			s.log.Warn("Factoid ack poll failed, will retry",
				zap.String("txid", txID),
				zap.Error(err))
			time.Sleep(ackPollInterval)
			continue
		}

		if resp.Success() && resp.Result.Status.Confirmed() {
			return resp.Result, nil
		}
		time.Sleep(ackPollInterval)
	}

	return nil, fmt.Errorf("transaction %s was not acknowledged within %v", txID, timeout)
}

func (s *Service) AnchorsByHash(ctx context.Context, hash string) (*client.Response[payloads.Anchors], error) {
	return jsonrpc.Call[payloads.Anchors](ctx, s.rpc, client.Factomd, "anchors",
		map[string]any{"hash": hash})
}

func (s *Service) AnchorsByHeight(ctx context.Context, height int64) (*client.Response[payloads.Anchors], error) {
	return jsonrpc.Call[payloads.Anchors](ctx, s.rpc, client.Factomd, "anchors",
		map[string]any{"height": height})
}
