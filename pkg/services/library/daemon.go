package library

import (
	"context"
	"time"

	"github.com/maxbull/factom-go-sdk/pkg/client"
	"github.com/maxbull/factom-go-sdk/pkg/payloads"
)

// Daemon is the factomd node API. Hashes, key merkle roots and chain ids
// are hex strings; amounts are factoshis.
//
//go:generate mockgen --build_flags=--mod=mod --destination mock/daemon.go . Daemon
type Daemon interface {
	Heights(ctx context.Context) (*client.Response[payloads.Heights], error)
	CurrentMinute(ctx context.Context) (*client.Response[payloads.CurrentMinute], error)
	Properties(ctx context.Context) (*client.Response[payloads.DaemonProperties], error)
	Diagnostics(ctx context.Context) (*client.Response[payloads.Diagnostics], error)

	EntryCreditRate(ctx context.Context) (*client.Response[payloads.EntryCreditRate], error)
	FactoidBalance(ctx context.Context, address string) (*client.Response[payloads.Balance], error)
	EntryCreditBalance(ctx context.Context, address string) (*client.Response[payloads.Balance], error)
	MultipleFactoidBalances(ctx context.Context, addresses ...string) (*client.Response[payloads.MultipleBalances], error)
	MultipleECBalances(ctx context.Context, addresses ...string) (*client.Response[payloads.MultipleBalances], error)

	ChainHead(ctx context.Context, chainID string) (*client.Response[payloads.ChainHead], error)
	CommitChain(ctx context.Context, message string) (*client.Response[payloads.CommitChain], error)
	RevealChain(ctx context.Context, entry string) (*client.Response[payloads.Reveal], error)
	CommitEntry(ctx context.Context, message string) (*client.Response[payloads.CommitEntry], error)
	RevealEntry(ctx context.Context, entry string) (*client.Response[payloads.Reveal], error)

	Entry(ctx context.Context, hash string) (*client.Response[payloads.Entry], error)
	EntryBlock(ctx context.Context, keyMR string) (*client.Response[payloads.EntryBlock], error)
	PendingEntries(ctx context.Context) (*client.Response[[]payloads.PendingEntry], error)
	RawData(ctx context.Context, hash string) (*client.Response[payloads.RawData], error)
	Receipt(ctx context.Context, entryHash string, includeRawEntry bool) (*client.Response[payloads.Receipt], error)

	DirectoryBlock(ctx context.Context, keyMR string) (*client.Response[payloads.DirectoryBlock], error)
	DirectoryBlockHead(ctx context.Context) (*client.Response[payloads.DirectoryBlockHead], error)
	DBlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.DBlockByHeight], error)
	ABlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.AdminBlock], error)
	ECBlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.EntryCreditBlock], error)
	FBlockByHeight(ctx context.Context, height int64) (*client.Response[payloads.FactoidBlock], error)
	AdminBlock(ctx context.Context, keyMR string) (*client.Response[payloads.AdminBlock], error)
	EntryCreditBlock(ctx context.Context, keyMR string) (*client.Response[payloads.EntryCreditBlock], error)
	FactoidBlock(ctx context.Context, keyMR string) (*client.Response[payloads.FactoidBlock], error)

	FactoidSubmit(ctx context.Context, transaction string) (*client.Response[payloads.FactoidSubmit], error)
	Transaction(ctx context.Context, hash string) (*client.Response[payloads.Transaction], error)
	PendingTransactions(ctx context.Context, address string) (*client.Response[[]payloads.PendingTransaction], error)
	EntryAck(ctx context.Context, hash, chainID string) (*client.Response[payloads.EntryAck], error)
	FactoidAck(ctx context.Context, txID string) (*client.Response[payloads.FactoidAck], error)
	WaitForEntryAck(ctx context.Context, hash, chainID string, timeout time.Duration) (*payloads.EntryAck, error)
	WaitForFactoidAck(ctx context.Context, txID string, timeout time.Duration) (*payloads.FactoidAck, error)
	AnchorsByHash(ctx context.Context, hash string) (*client.Response[payloads.Anchors], error)
	AnchorsByHeight(ctx context.Context, height int64) (*client.Response[payloads.Anchors], error)
}
