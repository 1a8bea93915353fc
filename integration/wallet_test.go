package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_Integration(t *testing.T) {
	ctx := context.Background()
	tc := Setup(t)

	wallet := tc.Client.Wallet()

	t.Run("properties and height", func(t *testing.T) {
		props, err := wallet.Properties(ctx)
		require.NoError(t, err)
		require.True(t, props.Success(), "properties failed: %v", props.Error)
		assert.NotEmpty(t, props.Result.WalletVersion)

		height, err := wallet.Height(ctx)
		require.NoError(t, err)
		require.True(t, height.Success(), "get-height failed: %v", height.Error)
		t.Logf("Wallet height: %d", height.Result.Height)
	})

	t.Run("generate and remove an address", func(t *testing.T) {
		generated, err := wallet.GenerateFactoidAddress(ctx)
		require.NoError(t, err)
		require.True(t, generated.Success(), "generate-factoid-address failed: %v", generated.Error)
		address := generated.Result.Public
		require.NotEmpty(t, address)
		t.Logf("Generated address %s", address)
		defer tc.CleanupAddress(t, address)

		lookup, err := wallet.Address(ctx, address)
		require.NoError(t, err)
		require.True(t, lookup.Success(), "address lookup failed: %v", lookup.Error)
		assert.Equal(t, address, lookup.Result.Public)

		all, err := wallet.AllAddresses(ctx)
		require.NoError(t, err)
		require.True(t, all.Success(), "all-addresses failed: %v", all.Error)

		found := false
		for _, a := range all.Result.Addresses {
			if a.Public == address {
				found = true
				break
			}
		}
		assert.True(t, found, "the generated address should be listed")
	})

	t.Run("build and discard a transaction", func(t *testing.T) {
		tx, err := wallet.NewTransaction(ctx, "")
		require.NoError(t, err)
		require.True(t, tx.Success(), "new-transaction failed: %v", tx.Error)
		name := tx.Result.Name
		require.NotEmpty(t, name)
		defer tc.CleanupTransaction(t, name)

		tmp, err := wallet.TmpTransactions(ctx)
		require.NoError(t, err)
		require.True(t, tmp.Success(), "tmp-transactions failed: %v", tmp.Error)

		found := false
		for _, pending := range tmp.Result.Transactions {
			if pending.TxName == name {
				found = true
				break
			}
		}
		assert.True(t, found, "the new transaction should sit in the temporary list")
	})

	t.Run("wallet balances", func(t *testing.T) {
		balances, err := wallet.WalletBalances(ctx)
		require.NoError(t, err)
		require.True(t, balances.Success(), "wallet-balances failed: %v", balances.Error)
		t.Logf("FCT ack total: %d, EC ack total: %d",
			balances.Result.FCTAccountBalances.Ack,
			balances.Result.ECAccountBalances.Ack)
	})
}
