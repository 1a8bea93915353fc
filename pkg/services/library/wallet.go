package library

import (
	"context"

	"github.com/maxbull/factom-go-sdk/pkg/client"
	"github.com/maxbull/factom-go-sdk/pkg/payloads"
)

// Wallet is the factom-walletd API. Transactions are built up server
// side under a caller-chosen temporary name, then composed into
// envelopes for the node API.
//
//go:generate mockgen --build_flags=--mod=mod --destination mock/wallet.go . Wallet
type Wallet interface {
	Address(ctx context.Context, address string) (*client.Response[payloads.Address], error)
	AllAddresses(ctx context.Context) (*client.Response[payloads.AddressList], error)
	GenerateFactoidAddress(ctx context.Context) (*client.Response[payloads.Address], error)
	GenerateECAddress(ctx context.Context) (*client.Response[payloads.Address], error)
	ImportAddresses(ctx context.Context, secrets ...string) (*client.Response[payloads.AddressList], error)
	ImportKoinify(ctx context.Context, words string) (*client.Response[payloads.Address], error)
	RemoveAddress(ctx context.Context, address string) (*client.Response[payloads.Success], error)

	NewTransaction(ctx context.Context, name string) (*client.Response[payloads.WalletTransaction], error)
	DeleteTransaction(ctx context.Context, name string) (*client.Response[payloads.WalletTransaction], error)
	TmpTransactions(ctx context.Context) (*client.Response[payloads.TmpTransactionList], error)
	Transactions(ctx context.Context, query payloads.TransactionsQuery) (*client.Response[payloads.TransactionList], error)
	AddInput(ctx context.Context, name, address string, amount uint64) (*client.Response[payloads.WalletTransaction], error)
	AddOutput(ctx context.Context, name, address string, amount uint64) (*client.Response[payloads.WalletTransaction], error)
	AddECOutput(ctx context.Context, name, address string, amount uint64) (*client.Response[payloads.WalletTransaction], error)
	AddFee(ctx context.Context, name, address string) (*client.Response[payloads.WalletTransaction], error)
	SubFee(ctx context.Context, name, address string) (*client.Response[payloads.WalletTransaction], error)
	SignTransaction(ctx context.Context, name string) (*client.Response[payloads.WalletTransaction], error)
	ComposeTransaction(ctx context.Context, name string) (*client.Response[payloads.ComposedCall], error)
	ComposeChain(ctx context.Context, chain payloads.ChainRequest, ecPub string) (*client.Response[payloads.ComposedCommitReveal], error)
	ComposeEntry(ctx context.Context, entry payloads.EntryRequest, ecPub string) (*client.Response[payloads.ComposedCommitReveal], error)

	WalletBalances(ctx context.Context) (*client.Response[payloads.WalletBalances], error)
	WalletBackup(ctx context.Context) (*client.Response[payloads.WalletBackup], error)
	Height(ctx context.Context) (*client.Response[payloads.WalletHeight], error)
	Properties(ctx context.Context) (*client.Response[payloads.WalletProperties], error)
	SignData(ctx context.Context, signer, data string) (*client.Response[payloads.SignData], error)
	UnlockWallet(ctx context.Context, passphrase string, timeoutSeconds int64) (*client.Response[payloads.UnlockWallet], error)
}
