package wallet

import (
	"context"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/maxbull/factom-go-sdk/internal/common/core"
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

func New(rpc library.JSONRPC, log *logger.Logger) library.Wallet {
	return &Service{rpc: rpc, log: log}
}

// NewTransactionName returns a collision-resistant throwaway name for a
// transaction build. Names are scoped to walletd's temporary area, but
// a predictable name risks clobbering another session's half-built
// transaction.
func NewTransactionName() string {
	return "TX_" + uuid.Must(uuid.NewV4()).String()
}

func (s *Service) Address(ctx context.Context, address string) (*client.Response[payloads.Address], error) {
	return jsonrpc.Call[payloads.Address](ctx, s.rpc, client.Walletd, "address",
		map[string]any{"address": address})
}

func (s *Service) AllAddresses(ctx context.Context) (*client.Response[payloads.AddressList], error) {
	return jsonrpc.Call[payloads.AddressList](ctx, s.rpc, client.Walletd, "all-addresses", nil)
}

func (s *Service) GenerateFactoidAddress(ctx context.Context) (*client.Response[payloads.Address], error) {
	return jsonrpc.Call[payloads.Address](ctx, s.rpc, client.Walletd, "generate-factoid-address", nil)
}

func (s *Service) GenerateECAddress(ctx context.Context) (*client.Response[payloads.Address], error) {
	return jsonrpc.Call[payloads.Address](ctx, s.rpc, client.Walletd, "generate-ec-address", nil)
}

func (s *Service) ImportAddresses(ctx context.Context,
	secrets ...string) (*client.Response[payloads.AddressList], error) {
	imports := make([]map[string]any, 0, len(secrets))
	for _, secret := range secrets {
		imports = append(imports, map[string]any{"secret": secret})
	}
	return jsonrpc.Call[payloads.AddressList](ctx, s.rpc, client.Walletd, "import-addresses",
		map[string]any{"addresses": imports})
}

func (s *Service) ImportKoinify(ctx context.Context, words string) (*client.Response[payloads.Address], error) {
	return jsonrpc.Call[payloads.Address](ctx, s.rpc, client.Walletd, "import-koinify",
		map[string]any{"words": words})
}

func (s *Service) RemoveAddress(ctx context.Context, address string) (*client.Response[payloads.Success], error) {
	return jsonrpc.Call[payloads.Success](ctx, s.rpc, client.Walletd, "remove-address",
		map[string]any{"address": address})
}

// NewTransaction starts a transaction build under the given name. An
// empty name is replaced with a generated one, which the response
// echoes back for the follow-up calls.
func (s *Service) NewTransaction(ctx context.Context,
	name string) (*client.Response[payloads.WalletTransaction], error) {
	if name == "" {
		name = NewTransactionName()
		s.log.Debug("Generated transaction name", zap.String("name", name))
	}
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "new-transaction",
		map[string]any{"tx-name": name})
}

func (s *Service) DeleteTransaction(ctx context.Context,
	name string) (*client.Response[payloads.WalletTransaction], error) {
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "delete-transaction",
		map[string]any{"tx-name": name})
}

func (s *Service) TmpTransactions(ctx context.Context) (*client.Response[payloads.TmpTransactionList], error) {
	return jsonrpc.Call[payloads.TmpTransactionList](ctx, s.rpc, client.Walletd, "tmp-transactions", nil)
}

func (s *Service) Transactions(ctx context.Context,
	query payloads.TransactionsQuery) (*client.Response[payloads.TransactionList], error) {
	params, err := core.ToParams(query)
	if err != nil {
		return nil, err
	}
	return jsonrpc.Call[payloads.TransactionList](ctx, s.rpc, client.Walletd, "transactions", params)
}

func (s *Service) AddInput(ctx context.Context, name, address string,
	amount uint64) (*client.Response[payloads.WalletTransaction], error) {
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "add-input",
		map[string]any{"tx-name": name, "address": address, "amount": amount})
}

func (s *Service) AddOutput(ctx context.Context, name, address string,
	amount uint64) (*client.Response[payloads.WalletTransaction], error) {
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "add-output",
		map[string]any{"tx-name": name, "address": address, "amount": amount})
}

func (s *Service) AddECOutput(ctx context.Context, name, address string,
	amount uint64) (*client.Response[payloads.WalletTransaction], error) {
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "add-ec-output",
		map[string]any{"tx-name": name, "address": address, "amount": amount})
}

func (s *Service) AddFee(ctx context.Context, name,
	address string) (*client.Response[payloads.WalletTransaction], error) {
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "add-fee",
		map[string]any{"tx-name": name, "address": address})
}

func (s *Service) SubFee(ctx context.Context, name,
	address string) (*client.Response[payloads.WalletTransaction], error) {
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "sub-fee",
		map[string]any{"tx-name": name, "address": address})
}

func (s *Service) SignTransaction(ctx context.Context,
	name string) (*client.Response[payloads.WalletTransaction], error) {
	return jsonrpc.Call[payloads.WalletTransaction](ctx, s.rpc, client.Walletd, "sign-transaction",
		map[string]any{"tx-name": name})
}

func (s *Service) ComposeTransaction(ctx context.Context,
	name string) (*client.Response[payloads.ComposedCall], error) {
	return jsonrpc.Call[payloads.ComposedCall](ctx, s.rpc, client.Walletd, "compose-transaction",
		map[string]any{"tx-name": name})
}

func (s *Service) ComposeChain(ctx context.Context, chain payloads.ChainRequest,
	ecPub string) (*client.Response[payloads.ComposedCommitReveal], error) {
	chainParams, err := core.ToParams(chain)
	if err != nil {
		return nil, err
	}
	return jsonrpc.Call[payloads.ComposedCommitReveal](ctx, s.rpc, client.Walletd, "compose-chain",
		map[string]any{"chain": chainParams, "ecpub": ecPub})
}

func (s *Service) ComposeEntry(ctx context.Context, entry payloads.EntryRequest,
	ecPub string) (*client.Response[payloads.ComposedCommitReveal], error) {
	entryParams, err := core.ToParams(entry)
	if err != nil {
		return nil, err
	}
	return jsonrpc.Call[payloads.ComposedCommitReveal](ctx, s.rpc, client.Walletd, "compose-entry",
		map[string]any{"entry": entryParams, "ecpub": ecPub})
}

func (s *Service) WalletBalances(ctx context.Context) (*client.Response[payloads.WalletBalances], error) {
	return jsonrpc.Call[payloads.WalletBalances](ctx, s.rpc, client.Walletd, "wallet-balances", nil)
}

func (s *Service) WalletBackup(ctx context.Context) (*client.Response[payloads.WalletBackup], error) {
	return jsonrpc.Call[payloads.WalletBackup](ctx, s.rpc, client.Walletd, "wallet-backup", nil)
}

func (s *Service) Height(ctx context.Context) (*client.Response[payloads.WalletHeight], error) {
	return jsonrpc.Call[payloads.WalletHeight](ctx, s.rpc, client.Walletd, "get-height", nil)
}

func (s *Service) Properties(ctx context.Context) (*client.Response[payloads.WalletProperties], error) {
	return jsonrpc.Call[payloads.WalletProperties](ctx, s.rpc, client.Walletd, "properties", nil)
}

func (s *Service) SignData(ctx context.Context, signer, data string) (*client.Response[payloads.SignData], error) {
	return jsonrpc.Call[payloads.SignData](ctx, s.rpc, client.Walletd, "sign-data",
		map[string]any{"signer": signer, "data": data})
}

func (s *Service) UnlockWallet(ctx context.Context, passphrase string,
	timeoutSeconds int64) (*client.Response[payloads.UnlockWallet], error) {
	return jsonrpc.Call[payloads.UnlockWallet](ctx, s.rpc, client.Walletd, "unlock-wallet",
		map[string]any{"passphrase": passphrase, "timeout": timeoutSeconds})
}
